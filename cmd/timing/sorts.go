package main

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/g-m-twostay/go-containers/Sorts"
	"github.com/urfave/cli/v2"
)

type sorter struct {
	name      string
	sort      func([]int, func(a, b int) bool)
	quadratic bool
}

var sorters = []sorter{
	{"bubble", Sorts.BubbleSort[int], true},
	{"selection", Sorts.SelectionSort[int], true},
	{"insertion", Sorts.InsertionSort[int], true},
	{"heap", Sorts.HeapSort[int], false},
	{"merge", Sorts.MergeSort[int], false},
	{"quick", Sorts.QuickSort[int], false},
}

func timeSorts(cctx *cli.Context) error {
	r := newRand(cctx)
	limit := cctx.Int("quadratic-limit")
	for _, n := range cctx.IntSlice("sizes") {
		in := make([]int, n)
		for i := range in {
			in[i] = r.IntN(2*n) - n
		}
		s := make([]int, n)
		for _, st := range sorters {
			if st.quadratic && n > limit {
				slog.Debug("skipped", "name", "sort/"+st.name, "n", n)
				continue
			}
			measure(cctx, "sort/"+st.name, n, func() { copy(s, in) }, func() {
				st.sort(s, cmp.Less[int])
			})
			if !slices.IsSorted(s) {
				slog.Warn("unsorted output", "name", "sort/"+st.name, "n", n)
			}
		}
		measure(cctx, "sort/radix", n, func() { copy(s, in) }, func() {
			Sorts.RadixSort(s)
		})
	}
	return nil
}
