// Package Sorts holds in-place sorting algorithms over slices. Every sort
// takes a less function; the result is in non-decreasing order under it.
package Sorts

import (
	"cmp"
	"math/rand/v2"
)

// below this length QuickSort and MergeSort hand over to InsertionSort.
const insertionCutoff = 12

func Swap[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}

func IsSorted[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// BubbleSort stops after the first pass without swaps. Stable.
func BubbleSort[T any](s []T, less func(a, b T) bool) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if less(s[i], s[i-1]) {
				Swap(s, i, i-1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func SelectionSort[T any](s []T, less func(a, b T) bool) {
	for i := range s {
		m := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[m]) {
				m = j
			}
		}
		Swap(s, i, m)
	}
}

// InsertionSort is stable.
func InsertionSort[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		x, j := s[i], i
		for ; j > 0 && less(x, s[j-1]); j-- {
			s[j] = s[j-1]
		}
		s[j] = x
	}
}

// SlowSort is the quadratic reference sort.
func SlowSort[T any](s []T, less func(a, b T) bool) {
	SelectionSort(s, less)
}

func siftDown[T any](s []T, i int, less func(a, b T) bool) {
	for {
		c := 2*i + 1
		if c >= len(s) {
			return
		}
		if c+1 < len(s) && less(s[c], s[c+1]) {
			c++
		}
		if !less(s[i], s[c]) {
			return
		}
		Swap(s, i, c)
		i = c
	}
}

// HeapSort builds a max heap in place, then repeatedly moves the top to the
// end.
func HeapSort[T any](s []T, less func(a, b T) bool) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, less)
	}
	for n := len(s) - 1; n > 0; n-- {
		Swap(s, 0, n)
		siftDown(s[:n], 0, less)
	}
}

// MergeSort is stable and uses one buffer of len(s).
func MergeSort[T any](s []T, less func(a, b T) bool) {
	mergeSort(s, make([]T, len(s)), less)
}

func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) <= insertionCutoff {
		InsertionSort(s, less)
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)
	if !less(s[mid], s[mid-1]) {
		return
	}
	copy(buf, s)
	i, j, k := 0, mid, 0
	for ; i < mid && j < len(s); k++ {
		if less(buf[j], buf[i]) {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
	}
	for ; i < mid; i, k = i+1, k+1 {
		s[k] = buf[i]
	}
	for ; j < len(s); j, k = j+1, k+1 {
		s[k] = buf[j]
	}
}

// QuickSort partitions three ways around a random pivot, so runs of equal
// elements cost nothing extra. Not stable.
func QuickSort[T any](s []T, less func(a, b T) bool) {
	for len(s) > insertionCutoff {
		lt, gt := partition(s, rand.IntN(len(s)), less)
		// recurse into the smaller side to bound the stack depth
		if lt < len(s)-gt {
			QuickSort(s[:lt], less)
			s = s[gt:]
		} else {
			QuickSort(s[gt:], less)
			s = s[:lt]
		}
	}
	InsertionSort(s, less)
}

// partition s so that s[:lt] < pivot, s[lt:gt] == pivot and s[gt:] > pivot.
func partition[T any](s []T, p int, less func(a, b T) bool) (lt, gt int) {
	pivot := s[p]
	lt, gt = 0, len(s)
	for i := 0; i < gt; {
		if less(s[i], pivot) {
			Swap(s, i, lt)
			lt++
			i++
		} else if less(pivot, s[i]) {
			gt--
			Swap(s, i, gt)
		} else {
			i++
		}
	}
	return
}

// Sort with the fastest general sort in the package.
func Sort[T any](s []T, less func(a, b T) bool) {
	QuickSort(s, less)
}

func SortOrdered[T cmp.Ordered](s []T) {
	Sort(s, cmp.Less[T])
}
