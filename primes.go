package natural

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

// segmentSize is the default number of candidates sieved per segment.
const segmentSize = 1 << 16

// PrimeCache is an incrementally growing cache of prime numbers.
//
// The cache owns an ascending list of all primes up to its current sieve
// bound. Queries below the bound are answered from the list without any
// recomputation; queries above it extend the sieve only as far as required,
// reusing the already discovered primes to mark composites in the new
// range. Extension walks fixed-size segments with bit-packed marking, so
// memory stays proportional to a segment plus the primes themselves, never
// to the queried bound.
//
// A cache is meant to be constructed once and shared across many
// factorization calls to amortize sieve work. Methods that may extend the
// sieve are not safe for concurrent use; wrap the cache with a mutex if it
// is shared between goroutines. Queries that stay below an already reached
// bound only read.
type PrimeCache struct {
	primes []int64 // ascending, exactly the primes <= bound
	bound  int64   // high-water sieve bound, never decreases
	hint   int64   // pre-size for the first segment, result-invariant
	logger *zap.Logger
}

// A CacheOption configures a [PrimeCache] at construction.
type CacheOption func(*PrimeCache)

// WithSieveHint pre-sizes the first sieve segment for callers that know
// the scale of their upcoming queries. The hint never changes which
// primes a query returns.
//
// A negative hint makes [NewPrimeCache] return an error.
func WithSieveHint(n int64) CacheOption {
	return func(c *PrimeCache) {
		c.hint = n
	}
}

// WithLogger attaches a logger to the cache. Sieve extensions are logged
// at debug level. Passing nil restores the default no-op logger.
func WithLogger(l *zap.Logger) CacheOption {
	return func(c *PrimeCache) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// NewPrimeCache returns an empty prime cache with a sieve bound of 0.
//
// NewPrimeCache returns an error if a negative sieve hint is given.
func NewPrimeCache(opts ...CacheOption) (*PrimeCache, error) {
	c := &PrimeCache{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.hint < 0 {
		return nil, fmt.Errorf("negative sieve hint %v: %w", c.hint, ErrInvalidArgument)
	}
	return c, nil
}

// Values returns all primes less than or equal to max, in ascending order.
// If max exceeds the current sieve bound, the sieve is extended first.
// The returned slice is shared with the cache and must not be modified.
//
// For a given max the result is always the same set of primes, regardless
// of the history of prior queries on the cache.
//
// Values returns an error if max is negative.
func (c *PrimeCache) Values(max int64) ([]int64, error) {
	if max < 0 {
		return nil, fmt.Errorf("negative bound %v: %w", max, ErrInvalidArgument)
	}
	if max > c.bound {
		c.extend(max)
	}
	i := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] > max })
	return c.primes[:i:i], nil
}

// Next returns the smallest prime strictly greater than n.
// If no such prime is known yet, the sieve bound is doubled until one is
// found; by Bertrand's postulate a prime exists below 2n, so the search
// always terminates. Chaining each result into the next call walks the
// ascending sequence of primes following n.
//
// Next returns an error if n is negative.
func (c *PrimeCache) Next(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative value %v: %w", n, ErrInvalidArgument)
	}
	for {
		i := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] > n })
		if i < len(c.primes) {
			return c.primes[i], nil
		}
		target := c.bound * 2
		if target < 16 {
			target = 16
		}
		c.extend(target)
	}
}

// Known returns every prime discovered so far, in ascending order.
// The returned slice is shared with the cache and must not be modified.
func (c *PrimeCache) Known() []int64 {
	return c.primes[:len(c.primes):len(c.primes)]
}

// Bound returns the current sieve bound: the largest integer up to which
// primality has been fully determined. The bound never decreases.
func (c *PrimeCache) Bound() int64 {
	return c.bound
}

// IsPrime reports whether n is prime. Membership below the sieve bound is
// a binary search; above it, the sieve is extended only to the square root
// of n and the known primes are used for trial division.
//
// IsPrime returns an error if n is negative.
func (c *PrimeCache) IsPrime(n int64) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("negative value %v: %w", n, ErrInvalidArgument)
	}
	if n < 2 {
		return false, nil
	}
	if n <= c.bound {
		i := sort.Search(len(c.primes), func(i int) bool { return c.primes[i] >= n })
		return i < len(c.primes) && c.primes[i] == n, nil
	}
	root := isqrt(n)
	if root > c.bound {
		c.extend(root)
	}
	for _, p := range c.primes {
		if p > root {
			break
		}
		if n%p == 0 {
			return false, nil
		}
	}
	return true, nil
}

// extend raises the sieve bound to at least `to`, appending every newly
// discovered prime. Base primes up to sqrt(to) are ensured first, then the
// remaining range is walked in fixed-size segments with one bit of marking
// per candidate.
func (c *PrimeCache) extend(to int64) {
	if to <= c.bound {
		return
	}
	if root := isqrt(to); root > c.bound && root < to {
		c.extend(root)
	}
	seg := int64(segmentSize)
	if c.bound == 0 && c.hint > seg {
		seg = c.hint
	}
	marks := make([]uint64, (seg+63)/64)
	for lo := c.bound + 1; lo <= to; lo += seg {
		hi := lo + seg - 1
		if hi > to {
			hi = to
		}
		for i := range marks {
			marks[i] = 0
		}
		for v := lo; v < 2 && v <= hi; v++ {
			marks[(v-lo)/64] |= 1 << uint((v-lo)%64)
		}
		for _, p := range c.primes {
			if p*p > hi {
				break
			}
			start := p * p
			if start < lo {
				start = ((lo + p - 1) / p) * p
			}
			for m := start; m <= hi; m += p {
				marks[(m-lo)/64] |= 1 << uint((m-lo)%64)
			}
		}
		for v := lo; v <= hi; v++ {
			if marks[(v-lo)/64]&(1<<uint((v-lo)%64)) == 0 {
				c.primes = append(c.primes, v)
			}
		}
	}
	c.bound = to
	c.logger.Debug("sieve extended",
		zap.Int64("bound", to),
		zap.Int64("segment", seg),
		zap.Int("primes", len(c.primes)))
}

// isqrt returns the integer square root of n.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
