// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"bytes"
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns the tree as an s-expression (key:val left right),
// with nil for missing children.
func (t *tree[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[K, V])
	walk = func(x *node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v ", x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}

// String returns a multi-line drawing of the tree.
// Children are prefixed with L or R; a missing child is drawn
// as nil only when its sibling is present.
func (t *tree[K, V]) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(t.root.label())
	t.root.draw(tp)
	return tp.String()
}

func (x *node[K, V]) label() string {
	return fmt.Sprintf("%v:%v", x.key, x.val)
}

func (x *node[K, V]) draw(tp treeprint.Tree) {
	if x.left == nil && x.right == nil {
		return
	}
	for _, c := range []struct {
		side  string
		child *node[K, V]
	}{{"L", x.left}, {"R", x.right}} {
		switch {
		case c.child == nil:
			tp.AddNode(c.side + " nil")
		case c.child.left == nil && c.child.right == nil:
			tp.AddNode(c.side + " " + c.child.label())
		default:
			c.child.draw(tp.AddBranch(c.side + " " + c.child.label()))
		}
	}
}
