package orderstat

import "github.com/ajwerner/avltree/internal/abstract"

type aug struct {
	// children is the number of items rooted at the current subtree.
	children int
}

type updater[T any] struct{}

// Update will update the count for the current node.
func (updater[T]) Update(n *abstract.Node[T, aug]) {
	n.GetA().children = 1 + size(n.Left()) + size(n.Right())
}

func size[T any](n *abstract.Node[T, aug]) int {
	if n == nil {
		return 0
	}
	return n.GetA().children
}
