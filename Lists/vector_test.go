package Lists

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Capacity(t *testing.T) {
	v := NewVector(0, 0)
	assert.Equal(t, 10, v.Cap())
	v = NewVector(8, 1)
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 8, v.Len())

	v.Reserve(4)
	assert.Equal(t, 16, v.Cap())
	v.Reserve(20)
	assert.Equal(t, 20, v.Cap())
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, v.Slice())

	for v.Len() < v.Cap() {
		v.PushBack(2)
	}
	v.PushBack(3)
	assert.Equal(t, 40, v.Cap())
	assert.Equal(t, 21, v.Len())

	w := NewVector(0, 0)
	for i := range 11 {
		w.PushBackIncremental(i)
	}
	assert.Equal(t, 20, w.Cap())
}

func TestVector_Resize(t *testing.T) {
	v := VectorOf(1, 2, 3)
	v.Resize(5, 9)
	assert.Equal(t, []int{1, 2, 3, 9, 9}, v.Slice())
	v.Resize(2, 0)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 0, v.Get(2))
	v.Resize(30, 4)
	assert.Equal(t, 60, v.Cap())
	assert.Equal(t, 4, v.Back())
	assert.Equal(t, 1, v.Front())
}

func TestVector_Access(t *testing.T) {
	v := VectorOf("a", "b", "c")
	p, err := v.At(1)
	require.NoError(t, err)
	*p = "B"
	assert.Equal(t, "B", v.Get(1))

	_, err = v.At(3)
	var oe *OutOfRangeError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, 3, oe.Index)
	assert.Equal(t, "Lists: index 3 out of range [0, 3)", err.Error())
	_, err = v.At(-1)
	assert.Error(t, err)

	v.Set(0, "A")
	var got []string
	for i, s := range v.All() {
		assert.Equal(t, v.Get(i), s)
		got = append(got, s)
	}
	assert.Equal(t, []string{"A", "B", "c"}, got)
}

func TestVector_InsertErase(t *testing.T) {
	v := VectorOf(1, 3)
	require.NoError(t, v.Insert(1, 2))
	require.NoError(t, v.Insert(3, 4))
	require.NoError(t, v.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Slice())
	assert.Error(t, v.Insert(6, 0))

	require.NoError(t, v.Erase(0))
	require.NoError(t, v.Erase(3))
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Error(t, v.Erase(3))

	c := v.Clone()
	c.Set(0, 100)
	assert.Equal(t, 1, v.Front())
	v.Clear()
	assert.True(t, v.Empty())
	_, err := v.PopBack()
	assert.Error(t, err)
	assert.Equal(t, []int{100, 2, 3}, c.Slice())
}

func TestVector_ZeroValue(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.Insert(0, 1))
	v.PushBack(2)
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestVector_AgainstGods(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	v := NewVector(0, 0)
	o := arraylist.New()
	for i := range 5000 {
		switch r.IntN(4) {
		case 0, 1:
			v.PushBack(i)
			o.Add(i)
		case 2:
			at := r.IntN(v.Len() + 1)
			require.NoError(t, v.Insert(at, i))
			o.Insert(at, i)
		default:
			if v.Empty() {
				continue
			}
			at := r.IntN(v.Len())
			require.NoError(t, v.Erase(at))
			o.Remove(at)
		}
		require.Equal(t, o.Size(), v.Len())
	}
	for i, x := range o.Values() {
		require.Equal(t, x, v.Get(i))
	}
}
