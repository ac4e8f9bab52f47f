package main

import (
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
	"github.com/urfave/cli/v2"
)

func timeMap(cctx *cli.Context) error {
	r := newRand(cctx)
	faker := gofakeit.New(int64(cctx.Uint64("seed")))
	for _, n := range cctx.IntSlice("sizes") {
		keys := r.Perm(n)
		var m *TreeMap.TreeMap[int, int]
		measure(cctx, "map/insert_random", n, nil, func() {
			m = TreeMap.New[int, int]()
			for _, k := range keys {
				m.Insert(k, k)
			}
		})
		slog.Debug("shape", "name", "map/insert_random", "n", n, "depth", m.Depth())

		measure(cctx, "map/find", n, nil, func() {
			for _, k := range keys {
				sink += m.Find(k).Value()
			}
		})
		measure(cctx, "map/index", n, nil, func() {
			for _, k := range keys {
				*m.Index(k)++
			}
		})
		measure(cctx, "map/iterate", n, nil, func() {
			for it := m.Begin(); it != m.End(); it = it.Next() {
				sink += it.Key()
			}
		})
		measure(cctx, "map/erase", n, func() {
			m = TreeMap.New[int, int]()
			for _, k := range keys {
				m.Insert(k, k)
			}
		}, func() {
			for _, k := range keys {
				m.Erase(k)
			}
		})

		measure(cctx, "map/insert_sequential", n, nil, func() {
			m = TreeMap.New[int, int]()
			for k := range n {
				m.Insert(k, k)
			}
		})
		slog.Debug("shape", "name", "map/insert_sequential", "n", n, "depth", m.Depth())

		words := make([]string, n)
		for i := range words {
			words[i] = faker.LetterN(8)
		}
		measure(cctx, "map/insert_string", n, nil, func() {
			s := TreeMap.New[string, int]()
			for i, w := range words {
				s.Put(w, i)
			}
			sink = s.Size()
		})
	}
	return nil
}
