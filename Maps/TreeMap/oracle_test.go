package TreeMap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// TreeMap must agree with the red-black tree of gods on every operation.
func TestTreeMap_AgainstGods(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	m := New[int, int]()
	o := treemap.NewWithIntComparator()
	for i := range 10000 {
		k := r.IntN(1000)
		switch r.IntN(4) {
		case 0:
			m.Erase(k)
			o.Remove(k)
		case 1:
			v, ok := m.Get(k)
			ov, found := o.Get(k)
			require.Equal(t, found, ok)
			if found {
				require.Equal(t, ov.(int), v)
			}
		default:
			m.Put(k, i)
			o.Put(k, i)
		}
	}
	require.NoError(t, m.verify())
	require.Equal(t, o.Size(), m.Size())

	keys := make([]int, 0, o.Size())
	for _, k := range o.Keys() {
		keys = append(keys, k.(int))
	}
	require.Equal(t, keys, slices.Collect(m.Keys()))
	vals := make([]int, 0, o.Size())
	for _, v := range o.Values() {
		vals = append(vals, v.(int))
	}
	require.Equal(t, vals, slices.Collect(m.Values()))
}

// Bounds and backward iteration must agree with google/btree.
func TestTreeMap_AgainstBTree(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	m := New[int, struct{}]()
	o := btree.NewOrderedG[int](8)
	for range 3000 {
		k := r.IntN(5000)
		if r.IntN(3) == 0 {
			m.Erase(k)
			o.Delete(k)
		} else {
			m.Insert(k, struct{}{})
			o.ReplaceOrInsert(k)
		}
	}
	require.NoError(t, m.verify())
	require.Equal(t, o.Len(), m.Size())

	for range 500 {
		k := r.IntN(5200) - 100
		want, ok := -1, false
		o.AscendGreaterOrEqual(k, func(item int) bool {
			want, ok = item, true
			return false
		})
		if lb := m.LowerBound(k); ok {
			require.Equal(t, want, lb.Key())
		} else {
			require.Equal(t, m.End(), lb)
		}

		ok = false
		o.AscendGreaterOrEqual(k+1, func(item int) bool {
			want, ok = item, true
			return false
		})
		if ub := m.UpperBound(k); ok {
			require.Equal(t, want, ub.Key())
		} else {
			require.Equal(t, m.End(), ub)
		}
	}

	var desc []int
	o.Descend(func(item int) bool {
		desc = append(desc, item)
		return true
	})
	var got []int
	for k := range m.Backward() {
		got = append(got, k)
	}
	require.Equal(t, desc, got)
}
