package avltree

import (
	"fmt"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

// PrintInOrder writes the keys in ascending order to w, one per line. An
// empty tree is written as "None".
func (t *Tree[T]) PrintInOrder(w io.Writer) error {
	return errors.Wrap(printKeys(w, t.IsEmpty(), t.InOrder()), "print in-order")
}

// PrintPreOrder writes the keys in pre-order to w, one per line. An empty
// tree is written as "None".
func (t *Tree[T]) PrintPreOrder(w io.Writer) error {
	return errors.Wrap(printKeys(w, t.IsEmpty(), t.PreOrder()), "print pre-order")
}

func printKeys[T any](w io.Writer, empty bool, keys iter.Seq[T]) error {
	if empty {
		_, err := fmt.Fprintln(w, "None")
		return err
	}
	for k := range keys {
		if _, err := fmt.Fprintln(w, k); err != nil {
			return err
		}
	}
	return nil
}

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print writes an ASCII drawing of the tree to w, rotated a quarter turn
// anti-clockwise so that right subtrees appear above their parent. Each
// node is shown with its cached height and balance factor. It returns the
// depth of the tree as drawn.
func (t *Tree[T]) Print(w io.Writer) (depth int, err error) {
	p := printer[T]{w: w}
	depth = p.print(t.Root(), "", root)
	return depth, errors.Wrap(p.err, "print tree")
}

type printer[T any] struct {
	w   io.Writer
	err error
}

func (p *printer[T]) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// print returns the maximum depth of the subtree
func (p *printer[T]) print(n *Node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.Right() != nil {
		t := "       "
		if br == left {
			t = "|      "
		}
		rd = p.print(n.Right(), prefix+t, right)
	}
	switch br {
	case root:
		p.printf("%s|------+ ", prefix)
	case left:
		p.printf("%s\\------+ ", prefix)
	case right:
		p.printf("%s/------+ ", prefix)
	}
	p.printf("%v h=%d %+d\n", n.Key(), n.Height(), n.BalanceFactor())
	if n.Left() != nil {
		t := "       "
		if br == right {
			t = "|      "
		}
		ld = p.print(n.Left(), prefix+t, left)
	}
	return 1 + max(rd, ld)
}
