package TreeSet

import (
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int]()
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Errorf("size is %d, want 5", S.Size())
	}
}

func TestTreeSet_Take(t *testing.T) {
	S := Of(4, 2, 9, 7)
	var got []int
	for !S.Empty() {
		got = append(got, S.Take())
	}
	assert.Equal(t, []int{2, 4, 7, 9}, got)
	assert.PanicsWithValue(t, "TreeSet: Take from an empty set", func() { S.Take() })
}

func TestTreeSet_Order(t *testing.T) {
	f := gofakeit.New(11)
	S := NewFunc[string](func(a, b string) int {
		// by length, then lexicographically
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	for range 200 {
		S.Put(f.Word())
	}
	words := slices.Collect(S.All())
	assert.Len(t, words, S.Size())
	for i := 1; i < len(words); i++ {
		p, c := words[i-1], words[i]
		assert.True(t, len(p) < len(c) || len(p) == len(c) && p < c, "%q before %q", p, c)
	}
	back := slices.Collect(S.Backward())
	slices.Reverse(back)
	assert.Equal(t, words, back)

	var ranged []string
	S.Range(func(w string) bool {
		ranged = append(ranged, w)
		return len(ranged) < 3
	})
	assert.Equal(t, words[:3], ranged)
}

func TestTreeSet_Bounds(t *testing.T) {
	S := Of(10, 20, 30)
	mn, _ := S.Min()
	mx, _ := S.Max()
	assert.Equal(t, 10, mn)
	assert.Equal(t, 30, mx)
	c, ok := S.Ceiling(20)
	assert.True(t, ok)
	assert.Equal(t, 20, c)
	h, _ := S.Higher(20)
	assert.Equal(t, 30, h)
	_, ok = S.Higher(30)
	assert.False(t, ok)
	_, ok = New[int]().Min()
	assert.False(t, ok)
}

func TestTreeSet_Algebra(t *testing.T) {
	A, B := Of(1, 2, 3, 4), Of(3, 4, 5)
	U := A.Clone()
	U.Union(B)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(U.All()))

	I := A.Clone()
	I.Intersect(B)
	assert.Equal(t, []int{3, 4}, slices.Collect(I.All()))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(A.All()))

	assert.Equal(t, 2, U.RemoveAll(Of(1, 2, 9)))
	assert.True(t, U.Eq(Of(3, 4, 5)))
	assert.False(t, U.Eq(Of(3, 4, 6)))
	assert.False(t, U.Eq(Of(3, 4)))
	assert.Equal(t, 1, U.PutAll(Of(5, 6)))
	assert.Equal(t, "TreeSet\n[3 4 5 6]", U.String())
}
