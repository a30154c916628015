/*
Package natural implements immutable arbitrary-precision natural numbers
and an incrementally growing prime cache.
It is specifically designed for solving arithmetic puzzles over very
large integers, where the same primes are needed again and again and
intermediate results routinely exceed the native integer range.

# Representation

[Number] keeps its magnitude in one of two forms:

  - a native int64 value, when the magnitude fits the int64 range.
  - a sequence of base-10 digits, least significant first, when it
    does not.

Digits carry no leading (high-order) zeros, except that zero itself is
the single digit 0. Numbers constructed from a string derive their
digits immediately; numbers constructed from an int64 derive them
lazily on first use and cache the result. The cache is observably
transparent: it never changes a returned value, only the cost of
computing it.

Negative values are rejected at construction. There are no rational or
real numbers in this package.

# Prime Cache

[PrimeCache] owns an ascending list of every prime it has discovered
and a high-water sieve bound below which primality is fully determined.
A query at or below the bound is answered from the list without
recomputation; a query above it extends the sieve only as far as
required, reusing the known primes to mark composites in the new range.
Extension is segmented with bit-packed marking, so memory stays
proportional to a segment plus the primes themselves rather than to the
queried bound, which keeps bounds up to 10^8 practical.

The cache is a shared resource: construct it once and pass it to every
factorization call so the sieve work is amortized across them. For a
given bound, [PrimeCache.Values] returns the same set of primes no
matter what was queried before.

# Operations

Addition and multiplication are carried out digit by digit, schoolbook
style, with explicit carry propagation, and are exact at any length.
Results that happen to fit the int64 range regain a native value, so a
chain of operations pays for arbitrary precision only while it needs it.

[Number.PrimeFactors] factors a number by trial division against a
caller-supplied cache, growing its trial bound tenfold at a time so the
cache is never asked for more primes than the largest prime factor
requires. [Number.Factors] enumerates all distinct divisors from the
prime-factor multiset.

# Concurrency

All operations are synchronous. A [Number] is safe for concurrent reads;
its only internal mutation is the guarded, idempotent digit derivation.
A [PrimeCache] is not safe for concurrent use while any call may extend
the sieve, since extension mutates the shared prime list. Callers
sharing a cache between goroutines must serialize access themselves.

# Errors

All methods outside the Must* constructors are panic-free.
Errors are returned in the following cases:

  - Invalid Argument.
    Constructing a number from a negative value or from a string with
    non-digit characters, querying the cache with a negative argument,
    converting digits to a base less than 2, or factoring against a nil
    cache returns an error wrapping [ErrInvalidArgument].

  - Overflow.
    Reading the native value of a number whose magnitude exceeds the
    int64 range returns an error wrapping [ErrOverflow]. The same
    applies to the native-only operations: base conversion and
    factorization. This is an expected representational limit, not a
    defect of the value, which remains fully usable for digit access
    and arithmetic.

Errors are never transient: every failure is either a contract
violation by the caller or an expected representational limit, so there
is nothing to retry.
*/
package natural
