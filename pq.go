package maze

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

type frontierItem[NodeType comparable] struct {
	Node   NodeType
	FScore float64
	seq    uint64
}

// frontier is a min-heap on FScore without decrease-key. A node may be queued
// more than once; callers skip entries for nodes they have already visited.
// Equal scores pop in insertion order.
type frontier[NodeType comparable] struct {
	items  *heap.Heap[frontierItem[NodeType]]
	queued map[NodeType]int
	seq    uint64
}

func newFrontier[NodeType comparable]() *frontier[NodeType] {
	return &frontier[NodeType]{
		items: heap.New[frontierItem[NodeType]](func(a, b frontierItem[NodeType]) bool {
			if a.FScore != b.FScore {
				return a.FScore < b.FScore
			}
			return a.seq < b.seq
		}),
		queued: make(map[NodeType]int),
	}
}

func (f *frontier[NodeType]) Push(node NodeType, fScore float64) {
	f.seq++
	f.items.Push(frontierItem[NodeType]{Node: node, FScore: fScore, seq: f.seq})
	f.queued[node]++
}

func (f *frontier[NodeType]) Pop() (frontierItem[NodeType], bool) {
	item, ok := f.items.Pop()
	if !ok {
		return item, false
	}
	if f.queued[item.Node] <= 1 {
		delete(f.queued, item.Node)
	} else {
		f.queued[item.Node]--
	}
	return item, true
}

func (f *frontier[NodeType]) Len() int { return f.items.Size() }

// Nodes returns the distinct queued nodes that are not in exclude.
func (f *frontier[NodeType]) Nodes(exclude mapset.Set[NodeType]) mapset.Set[NodeType] {
	out := mapset.New[NodeType]()
	for node := range f.queued {
		if !exclude.Has(node) {
			out.Put(node)
		}
	}
	return out
}
