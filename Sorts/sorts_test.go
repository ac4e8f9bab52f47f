package Sorts

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

type algorithm struct {
	name   string
	sort   func([]int, func(a, b int) bool)
	stable bool
}

var algorithms = []algorithm{
	{"Bubble", BubbleSort[int], true},
	{"Selection", SelectionSort[int], false},
	{"Insertion", InsertionSort[int], true},
	{"Slow", SlowSort[int], false},
	{"Heap", HeapSort[int], false},
	{"Merge", MergeSort[int], true},
	{"Quick", QuickSort[int], false},
	{"Sort", Sort[int], false},
}

func inputs() map[string][]int {
	r := rand.New(rand.NewPCG(1, 2))
	random := make([]int, 1000)
	for i := range random {
		random[i] = r.IntN(2000) - 1000
	}
	few := make([]int, 1000)
	for i := range few {
		few[i] = r.IntN(4)
	}
	asc := make([]int, 500)
	for i := range asc {
		asc[i] = i
	}
	desc := slices.Clone(asc)
	slices.Reverse(desc)
	return map[string][]int{
		"empty":  {},
		"single": {1},
		"pair":   {2, 1},
		"random": random,
		"few":    few,
		"asc":    asc,
		"desc":   desc,
		"equal":  slices.Repeat([]int{7}, 100),
	}
}

func TestSorts(t *testing.T) {
	for _, a := range algorithms {
		for name, in := range inputs() {
			got, want := slices.Clone(in), slices.Clone(in)
			slices.Sort(want)
			a.sort(got, cmp.Less[int])
			if !slices.Equal(want, got) {
				t.Errorf("%s on %s: not sorted", a.name, name)
			}
		}
	}
}

func TestSorts_Descending(t *testing.T) {
	f := gofakeit.New(3)
	in := f.ShuffleInts
	for _, a := range algorithms {
		s := make([]int, 300)
		for i := range s {
			s[i] = i
		}
		in(s)
		a.sort(s, func(x, y int) bool { return x > y })
		for i := range s {
			if s[i] != 299-i {
				t.Errorf("%s: s[%d] = %d", a.name, i, s[i])
				break
			}
		}
	}
}

func TestSorts_Stable(t *testing.T) {
	type rec struct{ k, seq int }
	r := rand.New(rand.NewPCG(5, 5))
	in := make([]rec, 400)
	for i := range in {
		in[i] = rec{r.IntN(10), i}
	}
	byKey := func(a, b rec) bool { return a.k < b.k }
	for name, sort := range map[string]func([]rec, func(a, b rec) bool){
		"Bubble":    BubbleSort[rec],
		"Insertion": InsertionSort[rec],
		"Merge":     MergeSort[rec],
	} {
		s := slices.Clone(in)
		sort(s, byKey)
		assert.True(t, slices.IsSortedFunc(s, func(a, b rec) int {
			return cmp.Or(cmp.Compare(a.k, b.k), cmp.Compare(a.seq, b.seq))
		}), name)
	}
}

func TestSortOrdered(t *testing.T) {
	f := gofakeit.New(9)
	words := make([]string, 200)
	for i := range words {
		words[i] = f.Word()
	}
	SortOrdered(words)
	assert.True(t, slices.IsSorted(words))
	assert.True(t, IsSorted(words, cmp.Less[string]))
	assert.False(t, IsSorted([]int{1, 3, 2}, cmp.Less[int]))
}

func TestRadixSort(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	ints := make([]int, 1000)
	for i := range ints {
		ints[i] = r.IntN(1_000_000) - 500_000
	}
	ints = append(ints, math.MaxInt, math.MinInt, 0, -1)
	want := slices.Clone(ints)
	slices.Sort(want)
	RadixSort(ints)
	assert.Equal(t, want, ints)

	bytes := []uint8{255, 0, 17, 3, 3, 200}
	RadixSort(bytes)
	assert.Equal(t, []uint8{0, 3, 3, 17, 200, 255}, bytes)

	small := []int8{-128, 127, -1, 0, 5, -5}
	RadixSort(small)
	assert.Equal(t, []int8{-128, -5, -1, 0, 5, 127}, small)

	u64 := []uint64{math.MaxUint64, 1, math.MaxUint64 - 1, 0}
	RadixSort(u64)
	assert.Equal(t, []uint64{0, 1, math.MaxUint64 - 1, math.MaxUint64}, u64)

	same := []int{4, 4, 4}
	RadixSort(same)
	assert.Equal(t, []int{4, 4, 4}, same)
	RadixSort([]int{})
}

func BenchmarkSorts(b *testing.B) {
	in := inputs()["random"]
	for _, a := range algorithms {
		b.Run(a.name, func(b *testing.B) {
			s := make([]int, len(in))
			for range b.N {
				copy(s, in)
				a.sort(s, cmp.Less[int])
			}
		})
	}
	b.Run("Radix", func(b *testing.B) {
		s := make([]int, len(in))
		for range b.N {
			copy(s, in)
			RadixSort(s)
		}
	})
}
