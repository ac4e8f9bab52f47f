package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"github.com/puzpuzpuz/xsync/v3"
)

// Point lookups: what the ordering of TreeMap costs against hash maps.
// Each runs single threaded; the hash maps are concurrent but the workload
// isn't.

func benchMapLookup(b *testing.B, m Maps.Map[int, int], keys []int) {
	b.Helper()
	for _, k := range keys {
		m.Put(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		if j, ok := m.Get(keys[i%len(keys)]); !ok || j != keys[i%len(keys)] {
			b.Fail()
		}
	}
}

func BenchmarkHashLookup(b *testing.B) {
	keys := randomKeys(benchmarkItemCount)
	b.Run("TreeMap", func(b *testing.B) {
		benchMapLookup(b, TreeMap.New[int, int](), keys)
	})
	b.Run("HaxMap", func(b *testing.B) {
		m := haxmap.New[int, int]()
		for _, k := range keys {
			m.Set(k, k)
		}
		b.ResetTimer()
		for i := range b.N {
			if j, ok := m.Get(keys[i%benchmarkItemCount]); !ok || j != keys[i%benchmarkItemCount] {
				b.Fail()
			}
		}
	})
	b.Run("HashMap", func(b *testing.B) {
		m := hashmap.New[int, int]()
		for _, k := range keys {
			m.Set(k, k)
		}
		b.ResetTimer()
		for i := range b.N {
			if j, ok := m.Get(keys[i%benchmarkItemCount]); !ok || j != keys[i%benchmarkItemCount] {
				b.Fail()
			}
		}
	})
	b.Run("XSyncMap", func(b *testing.B) {
		m := xsync.NewMapOf[int, int]()
		for _, k := range keys {
			m.Store(k, k)
		}
		b.ResetTimer()
		for i := range b.N {
			if j, ok := m.Load(keys[i%benchmarkItemCount]); !ok || j != keys[i%benchmarkItemCount] {
				b.Fail()
			}
		}
	})
}

func BenchmarkHashInsertErase(b *testing.B) {
	keys := randomKeys(benchmarkItemCount)
	b.Run("TreeMap", func(b *testing.B) {
		m := TreeMap.New[int, int]()
		for range b.N {
			for _, k := range keys {
				m.Put(k, k)
			}
			for _, k := range keys {
				m.Erase(k)
			}
		}
	})
	b.Run("HaxMap", func(b *testing.B) {
		m := haxmap.New[int, int]()
		for range b.N {
			for _, k := range keys {
				m.Set(k, k)
			}
			for _, k := range keys {
				m.Del(k)
			}
		}
	})
	b.Run("HashMap", func(b *testing.B) {
		m := hashmap.New[int, int]()
		for range b.N {
			for _, k := range keys {
				m.Set(k, k)
			}
			for _, k := range keys {
				m.Del(k)
			}
		}
	})
	b.Run("XSyncMap", func(b *testing.B) {
		m := xsync.NewMapOf[int, int]()
		for range b.N {
			for _, k := range keys {
				m.Store(k, k)
			}
			for _, k := range keys {
				m.Delete(k)
			}
		}
	})
}
