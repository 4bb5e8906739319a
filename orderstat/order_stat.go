// Package orderstat provides an AVL tree augmented with subtree sizes, which
// supports selecting the i-th smallest key and computing the rank of a key in
// O(log n).
package orderstat

import "github.com/ajwerner/avltree/internal/abstract"

type OrderStatTree[T any] struct {
	t abstract.Map[T, aug]
}

func MakeOrderStatTree[T any](cmp func(T, T) int) *OrderStatTree[T] {
	return &OrderStatTree[T]{
		t: abstract.MakeMap[T, aug](cmp, updater[T]{}),
	}
}

// Set adds v to the tree. It returns false if v was already present.
func (t *OrderStatTree[T]) Set(v T) (added bool) {
	return t.t.Insert(v)
}

// Remove removes v from the tree. It returns false if v was not present.
func (t *OrderStatTree[T]) Remove(v T) (removed bool) {
	return t.t.Delete(v)
}

func (t *OrderStatTree[T]) Len() int { return t.t.Len() }

func (t *OrderStatTree[T]) Check() error { return t.t.Check() }

// Nth returns the i-th smallest key, counting from zero.
func (t *OrderStatTree[T]) Nth(i int) (v T, ok bool) {
	if n := nth(t.t.Root(), i, nil); n != nil {
		return n.Key(), true
	}
	return v, false
}

// Rank returns the number of keys less than v. ok is false if v is not in
// the tree.
func (t *OrderStatTree[T]) Rank(v T) (rank int, ok bool) {
	cfg := t.t.Config()
	for n := t.t.Root(); n != nil; {
		switch c := cfg.Compare(v, n.Key()); {
		case c < 0:
			n = n.Left()
		case c > 0:
			rank += size(n.Left()) + 1
			n = n.Right()
		default:
			return rank + size(n.Left()), true
		}
	}
	return 0, false
}

// nth descends to the i-th node of the subtree rooted at n. If push is not
// nil it is called with each node whose left subtree the descent enters,
// which are exactly the pending ancestors of an in-order walk.
func nth[T any](
	n *abstract.Node[T, aug], i int, push func(*abstract.Node[T, aug]),
) *abstract.Node[T, aug] {
	if i < 0 || i >= size(n) {
		return nil
	}
	for n != nil {
		switch ls := size(n.Left()); {
		case i < ls:
			if push != nil {
				push(n)
			}
			n = n.Left()
		case i > ls:
			i -= ls + 1
			n = n.Right()
		default:
			return n
		}
	}
	panic("invariant violated")
}

type OrderStatIterator[T any] struct {
	it abstract.Iterator[T, aug]
}

func (t *OrderStatTree[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		it: t.t.MakeIter(),
	}
}

// Nth positions the iterator at the i-th smallest key. The iterator is
// invalid if i is out of range.
func (it *OrderStatIterator[T]) Nth(i int) {
	it.it.Reset()
	ll := abstract.LowLevel(&it.it)
	ll.SetNode(nth(ll.Root(), i, ll.Push))
}

func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Cur() }
