package funcs

import (
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-underbar/metrics"
)

// Memoize returns a wrapper that caches fn's result per distinct argument.
// The first call with a given argument runs fn; later calls with an equal
// argument (by ==) return the stored result without calling fn.
//
// The cache grows without bound for the life of the wrapper. Memoize, like
// the other memoizing constructors, panics if opts fail [Options.Validate].
//
// fn runs without the cache lock held, so concurrent first calls with the
// same argument may each run fn. The result stored first is the one every
// caller, including the losers of that race, gets back.
//
//	fib := funcs.Memoize(func(n int) int { ... })
func Memoize[K comparable, R any](fn func(K) R, opts ...Options) func(K) R {
	c := newMemoCache[K, R](mustResolveOptions(opts))
	return func(arg K) R {
		return c.do(arg, func() R { return fn(arg) })
	}
}

type argPair[A, B comparable] struct {
	a A
	b B
}

// Memoize2 is [Memoize] for two-argument functions. The cache key is the
// ordered pair of arguments.
func Memoize2[A, B comparable, R any](fn func(A, B) R, opts ...Options) func(A, B) R {
	c := newMemoCache[argPair[A, B], R](mustResolveOptions(opts))
	return func(a A, b B) R {
		return c.do(argPair[A, B]{a, b}, func() R { return fn(a, b) })
	}
}

// MemoizeArgs is [Memoize] for variadic functions over arbitrary values.
//
// Argument lists are keyed by content: each argument contributes its
// dynamic type and its %#v rendering, so (1, 2) and (1, 2) share an entry
// while (1, "2") and (1, 2) do not. Values whose %#v rendering hides their
// content, such as pointers and funcs, are keyed by address.
//
//	area := funcs.MemoizeArgs(func(args ...any) any { ... })
//	area(3, 4)
//	area(3, 4) // cached
func MemoizeArgs[R any](fn func(args ...any) R, opts ...Options) func(args ...any) R {
	c := newMemoCache[[blake2b.Size256]byte, R](mustResolveOptions(opts))
	return func(args ...any) R {
		return c.do(argsKey(args), func() R { return fn(args...) })
	}
}

// argsKey hashes a canonical encoding of args: the argument count, then for
// each argument its type name and value, every field length-prefixed.
func argsKey(args []any) [blake2b.Size256]byte {
	buf := binary.AppendUvarint(nil, uint64(len(args)))
	for _, arg := range args {
		buf = appendField(buf, fmt.Sprintf("%T", arg))
		buf = appendField(buf, fmt.Sprintf("%#v", arg))
	}
	return blake2b.Sum256(buf)
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

type memoCache[K comparable, R any] struct {
	mu      sync.Mutex
	entries map[K]R
	opts    Options
}

func newMemoCache[K comparable, R any](opts Options) *memoCache[K, R] {
	return &memoCache[K, R]{entries: make(map[K]R), opts: opts}
}

func (c *memoCache[K, R]) do(key K, compute func() R) R {
	c.mu.Lock()
	if r, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.opts.Metrics.Call(metrics.DecoratorMemoize, c.opts.Name, metrics.OutcomeHit)
		return r
	}
	c.mu.Unlock()

	r := compute()

	c.mu.Lock()
	if prev, ok := c.entries[key]; ok {
		r = prev
	} else {
		c.entries[key] = r
	}
	n := len(c.entries)
	c.mu.Unlock()

	c.opts.Metrics.Call(metrics.DecoratorMemoize, c.opts.Name, metrics.OutcomeMiss)
	c.opts.Metrics.CacheSize(c.opts.Name, n)
	return r
}
