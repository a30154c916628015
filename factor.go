package natural

import "fmt"

// initialTrialBound is the first upper limit of primes tried during
// factorization, before any bound growth.
const initialTrialBound = 1000

// PrimeFactors returns the prime factors of n with multiplicity, in
// ascending order; their product equals n exactly. Zero and one factor
// to an empty sequence.
//
// Factorization is bounded trial division against the given cache: the
// trial bound starts at min(n, 1000) and grows tenfold, clamped to the
// shrinking unfactored remainder, until the remainder reaches 1. The
// cache is therefore never asked for more primes than the largest prime
// factor requires, and its work is amortized across calls sharing it.
//
// PrimeFactors returns an error:
//   - if cache is nil.
//   - if the magnitude of n exceeds the int64 range, as [ErrOverflow].
//     Trial division repeatedly divides the magnitude, which is defined
//     only for natively representable values.
func (n *Number) PrimeFactors(cache *PrimeCache) ([]int64, error) {
	if cache == nil {
		return nil, fmt.Errorf("nil prime cache: %w", ErrInvalidArgument)
	}
	v, err := n.Int64()
	if err != nil {
		return nil, err
	}
	if v < 2 {
		return nil, nil
	}
	var factors []int64
	remaining := v
	trialMax := v
	if trialMax > initialTrialBound {
		trialMax = initialTrialBound
	}
	for remaining > 1 {
		primes, err := cache.Values(trialMax)
		if err != nil {
			return nil, err
		}
		for _, p := range primes {
			for remaining%p == 0 {
				factors = append(factors, p)
				remaining /= p
			}
		}
		if remaining == 1 {
			break
		}
		if trialMax > remaining/10 {
			trialMax = remaining
		} else {
			trialMax *= 10
		}
	}
	return factors, nil
}

// Factors returns the distinct divisors of n, including 1 and n itself,
// in unspecified order. Zero has no divisor enumeration and returns an
// empty result.
//
// Divisors are enumerated from the prime-factor multiset by testing every
// inclusion combination over its positions and de-duplicating the
// products. The enumeration is exponential in the number of prime factors
// counted with multiplicity, which is acceptable for numbers with modest
// factor counts.
//
// Factors returns an error in the same cases as [Number.PrimeFactors].
func (n *Number) Factors(cache *PrimeCache) ([]int64, error) {
	factors, err := n.PrimeFactors(cache)
	if err != nil {
		return nil, err
	}
	if n.IsZero() {
		return nil, nil
	}
	seen := make(map[int64]struct{})
	for mask := 0; mask < 1<<len(factors); mask++ {
		d := int64(1)
		for i, p := range factors {
			if mask&(1<<i) != 0 {
				d *= p
			}
		}
		seen[d] = struct{}{}
	}
	divisors := make([]int64, 0, len(seen))
	for d := range seen {
		divisors = append(divisors, d)
	}
	return divisors, nil
}
