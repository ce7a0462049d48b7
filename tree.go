// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import "iter"

type tree[K, V any] struct {
	root *node[K, V]
}

// A node is a node in the splay tree.
// Nodes have no parent pointers: the path back to the root
// is held by the recursion in splay.
type node[K, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	val   V
}

// rotateRight rotates the subtree rooted at node h,
// turning (h (x a b) c) into (x a (h b c)), and returns x.
func (h *node[K, V]) rotateRight() *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	return x
}

// rotateLeft rotates the subtree rooted at node h,
// turning (h a (x b c)) into (x (h a b) c), and returns x.
func (h *node[K, V]) rotateLeft() *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	return x
}

// splay splays key in the subtree rooted at h and returns the new subtree root.
// If a node with that key exists, it is splayed to the root of the subtree.
// If it does not, the last node along the search path for key is.
//
// Each call looks at most two levels down and rotates them as a pair
// (zig-zig or zig-zag), with a single rotation (zig) only when the
// path ends one level down. The amortized bound depends on the pairing.
func (h *node[K, V]) splay(key K, cmp func(K, K) int) *node[K, V] {
	if h == nil {
		return nil
	}

	switch c := cmp(key, h.key); {
	case c < 0:
		if h.left == nil {
			// key not in tree
			return h
		}
		switch c := cmp(key, h.left.key); {
		case c < 0:
			// zig-zig
			h.left.left = h.left.left.splay(key, cmp)
			h = h.rotateRight()
		case c > 0:
			// zig-zag
			h.left.right = h.left.right.splay(key, cmp)
			if h.left.right != nil {
				h.left = h.left.rotateLeft()
			}
		}
		if h.left == nil {
			return h
		}
		return h.rotateRight()

	case c > 0:
		if h.right == nil {
			// key not in tree
			return h
		}
		switch c := cmp(key, h.right.key); {
		case c < 0:
			// zag-zig
			h.right.left = h.right.left.splay(key, cmp)
			if h.right.left != nil {
				h.right = h.right.rotateRight()
			}
		case c > 0:
			// zag-zag
			h.right.right = h.right.right.splay(key, cmp)
			h = h.rotateLeft()
		}
		if h.right == nil {
			return h
		}
		return h.rotateLeft()
	}
	return h
}

// get splays key to the root and returns its node,
// or nil if key is not in the tree.
func (t *tree[K, V]) get(key K, cmp func(K, K) int) *node[K, V] {
	if t.root == nil {
		return nil
	}
	t.root = t.root.splay(key, cmp)
	if cmp(key, t.root.key) != 0 {
		return nil
	}
	return t.root
}

// set splays key to the root and then either updates the root in place
// or splits the tree around a new root node holding key.
func (t *tree[K, V]) set(key K, val V, cmp func(K, K) int) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, val: val}
		return
	}
	t.root = t.root.splay(key, cmp)

	switch c := cmp(key, t.root.key); {
	case c < 0:
		x := &node[K, V]{key: key, val: val, left: t.root.left, right: t.root}
		t.root.left = nil
		t.root = x
	case c > 0:
		x := &node[K, V]{key: key, val: val, left: t.root, right: t.root.right}
		t.root.right = nil
		t.root = x
	default:
		t.root.val = val
	}
}

// delete splays key to the root and removes it if present.
//
// This is Hibbard deletion modified to reuse splay: instead of swapping
// the root with its successor, the root's left subtree is splayed for key.
// Every key there is smaller than key, so the splay brings the maximum,
// the root's in-order predecessor, to the top with an empty right subtree,
// and the old right subtree is attached there.
// The resulting shape differs from a successor swap.
func (t *tree[K, V]) delete(key K, cmp func(K, K) int) {
	if t.root == nil {
		return
	}
	t.root = t.root.splay(key, cmp)
	if cmp(key, t.root.key) != 0 {
		// not in tree
		return
	}

	if t.root.left == nil {
		t.root = t.root.right
		return
	}
	right := t.root.right
	t.root = t.root.left.splay(key, cmp)
	t.root.right = right
}

// extreme splays x, the minimum or maximum node, to the root.
func (t *tree[K, V]) extreme(x *node[K, V], cmp func(K, K) int) (key K, val V, ok bool) {
	if x == nil {
		return
	}
	t.root = t.root.splay(x.key, cmp)
	return t.root.key, t.root.val, true
}

// Root returns the key at the root of the tree,
// which is the most recently accessed key
// unless that key has since been deleted.
func (t *tree[K, V]) Root() (key K, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.key, true
}

// Clear deletes all keys.
func (t *tree[K, V]) Clear() {
	t.root = nil
}

func (x *node[K, V]) min() *node[K, V] {
	for x != nil && x.left != nil {
		x = x.left
	}
	return x
}

func (x *node[K, V]) max() *node[K, V] {
	for x != nil && x.right != nil {
		x = x.right
	}
	return x
}

// height returns the height of the subtree rooted at x (1-node tree has height 0).
func (x *node[K, V]) height() int {
	if x == nil {
		return -1
	}
	return 1 + max(x.left.height(), x.right.height())
}

func (x *node[K, V]) size() int {
	if x == nil {
		return 0
	}
	return 1 + x.left.size() + x.right.size()
}

// All returns an iterator over the map in ascending key order.
// All does not restructure the tree.
// If the map is modified during the iteration, the results are unspecified.
func (t *tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		x := t.root
		for x != nil || len(stack) > 0 {
			for ; x != nil; x = x.left {
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.key, x.val) {
				return
			}
			x = x.right
		}
	}
}

func (t *tree[K, V]) scan(lo, hi K, cmp func(K, K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if cmp(lo, hi) > 0 {
			return
		}
		var stack []*node[K, V]
		// descend pushes the path to the smallest key ≥ lo below x,
		// skipping left subtrees that are entirely < lo.
		descend := func(x *node[K, V]) {
			for x != nil {
				if cmp(x.key, lo) < 0 {
					x = x.right
				} else {
					stack = append(stack, x)
					x = x.left
				}
			}
		}
		descend(t.root)
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cmp(x.key, hi) > 0 || !yield(x.key, x.val) {
				return
			}
			descend(x.right)
		}
	}
}

// split splays key and cuts the tree around it.
// t keeps the keys less than key, after gets the keys greater than key,
// and x is the detached node holding key, or nil if key was not present.
func (t *tree[K, V]) split(key K, cmp func(K, K) int) (x *node[K, V], after tree[K, V]) {
	if t.root == nil {
		return nil, after
	}
	t.root = t.root.splay(key, cmp)

	switch c := cmp(key, t.root.key); {
	case c < 0:
		after.root = t.root
		t.root = after.root.left
		after.root.left = nil
	case c > 0:
		after.root = t.root.right
		t.root.right = nil
	default:
		x = t.root
		t.root, after.root = x.left, x.right
		x.left, x.right = nil, nil
	}
	return x, after
}

// join appends after to t. Every key in t must be less than every key in after.
func (t *tree[K, V]) join(after tree[K, V], cmp func(K, K) int) {
	if after.root == nil {
		return
	}
	if t.root == nil {
		t.root = after.root
		return
	}
	max := t.root.max()
	if cmp(max.key, after.root.min().key) >= 0 {
		panic("splay join misuse")
	}
	t.root = t.root.splay(max.key, cmp)
	t.root.right = after.root
}

func (t *tree[K, V]) deleteRange(lo, hi K, cmp func(K, K) int) {
	if cmp(lo, hi) > 0 {
		return
	}
	_, after := t.split(hi, cmp)
	t.split(lo, cmp)
	t.join(after, cmp)
}
