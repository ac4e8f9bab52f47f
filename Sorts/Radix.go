package Sorts

import (
	"math"

	"golang.org/x/exp/constraints"
)

// RadixSort sorts integers by their decimal digits, least significant first.
// Values are shifted by the minimum so negatives need no special pass and the
// number of passes follows the spread of s, not the width of T.
func RadixSort[T constraints.Integer](s []T) {
	if len(s) < 2 {
		return
	}
	signed := ^T(0) < 0
	key := func(x T) uint64 {
		if signed {
			return uint64(x) ^ 1<<63
		}
		return uint64(x)
	}
	lo, hi := key(s[0]), key(s[0])
	for _, x := range s[1:] {
		k := key(x)
		lo, hi = min(lo, k), max(hi, k)
	}
	spread := hi - lo

	keys, kbuf := make([]uint64, len(s)), make([]uint64, len(s))
	buf := make([]T, len(s))
	for i, x := range s {
		keys[i] = key(x) - lo
	}
	src, dst := s, buf
	for exp := uint64(1); spread/exp > 0; exp *= 10 {
		var count [10]int
		for _, k := range keys {
			count[k/exp%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		for i := len(src) - 1; i >= 0; i-- {
			d := keys[i] / exp % 10
			count[d]--
			dst[count[d]], kbuf[count[d]] = src[i], keys[i]
		}
		src, dst = dst, src
		keys, kbuf = kbuf, keys
		if exp > math.MaxUint64/10 {
			break
		}
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
}
