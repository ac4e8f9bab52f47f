package main

import (
	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/urfave/cli/v2"
)

var sink int

func timeContainers(cctx *cli.Context) error {
	for _, n := range cctx.IntSlice("sizes") {
		measure(cctx, "vector/push_back", n, nil, func() {
			v := Lists.NewVector(0, 0)
			for i := range n {
				v.PushBack(i)
			}
			sink = v.Len()
		})
		measure(cctx, "vector/push_back_incremental", n, nil, func() {
			v := Lists.NewVector(0, 0)
			for i := range n {
				v.PushBackIncremental(i)
			}
			sink = v.Len()
		})
		measure(cctx, "list/push_pop", n, nil, func() {
			var l Lists.List[int]
			for i := range n {
				l.PushBack(i)
			}
			for !l.Empty() {
				sink, _ = l.PopFront()
			}
		})

		queues := map[string]func() Queues.Queue[int]{
			"queue/array": func() Queues.Queue[int] { return Queues.MakeArrayQueue[int](16) },
			"queue/list":  func() Queues.Queue[int] { return new(Queues.ListQueue[int]) },
		}
		for name, mk := range queues {
			measure(cctx, name, n, nil, func() {
				q := mk()
				for i := range n {
					q.Push(i)
				}
				for !q.Empty() {
					sink, _ = q.Pop()
				}
			})
		}

		stacks := map[string]func() Queues.Stack[int]{
			"stack/vector": func() Queues.Stack[int] { return new(Queues.VectorStack[int]) },
			"stack/list":   func() Queues.Stack[int] { return new(Queues.ListStack[int]) },
		}
		for name, mk := range stacks {
			measure(cctx, name, n, nil, func() {
				s := mk()
				for i := range n {
					s.Push(i)
				}
				for !s.Empty() {
					sink, _ = s.Pop()
				}
			})
		}
	}
	return nil
}
