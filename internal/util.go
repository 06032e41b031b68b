package internal

import "github.com/zyedidia/generic/mapset"

// ReconstructPath rebuilds the route to current from the cameFrom map. The
// returned path ends at current and excludes start. It is nil when current is
// start.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	var path []NodeType
	for current != start {
		path = append(path, current)
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// CopySet returns an independent copy of s.
func CopySet[T comparable](s mapset.Set[T]) mapset.Set[T] {
	c := mapset.New[T]()
	s.Each(func(key T) { c.Put(key) })
	return c
}
