package bst

import (
	"fmt"
	"io"
)

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Root() Node {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root
}

// InsertIterative walks down from the root keeping track of the parent and
// attaches a new leaf at the first absent link. Duplicates are dropped.
func (t *tree) InsertIterative(key int) bool {
	if t.root == nil {
		t.root = newNode(key)
		t.size++
		return true
	}

	var parent *bstNode
	curr := t.root
	for curr != nil {
		parent = curr
		switch {
		case curr.key > key:
			curr = curr.left
		case curr.key < key:
			curr = curr.right
		default:
			return false
		}
	}

	if parent.key > key {
		parent.left = newNode(key)
	} else {
		parent.right = newNode(key)
	}
	t.size++
	return true
}

func (t *tree) InsertRecursive(key int) bool {
	inserted := false
	t.root = t.recursiveInsert(t.root, key, &inserted)
	if inserted {
		t.size++
	}
	return inserted
}

// recursiveInsert returns the subtree with key added, the caller re-attaches it
func (t *tree) recursiveInsert(curr *bstNode, key int, inserted *bool) *bstNode {
	if curr == nil {
		*inserted = true
		return newNode(key)
	}

	if curr.key > key {
		curr.left = t.recursiveInsert(curr.left, key, inserted)
	} else if curr.key < key {
		curr.right = t.recursiveInsert(curr.right, key, inserted)
	}
	return curr
}

func (t *tree) Contains(key int) bool {
	return t.root.find(key) != nil
}

// TraverseRecursive visits every node in order and returns how many were visited.
func (t *tree) TraverseRecursive() int {
	count := 0
	t.recursiveForEach(t.root, func(Node) bool {
		count++
		return true
	})
	return count
}

// TraverseIterative visits every node in order using an explicit stack and
// returns how many were visited.
func (t *tree) TraverseIterative() int {
	count := 0
	t.iterativeForEach(func(Node) bool {
		count++
		return true
	})
	return count
}

func (t *tree) ForEach(callback Callback) {
	t.recursiveForEach(t.root, callback)
}

func (t *tree) ForEachIterative(callback Callback) {
	t.iterativeForEach(callback)
}

func (t *tree) Keys() []int {
	keys := make([]int, 0, t.Size())
	t.ForEachIterative(func(n Node) bool {
		keys = append(keys, n.Key())
		return true
	})
	return keys
}

func (t *tree) recursiveForEach(curr *bstNode, callback Callback) traverseAction {
	if curr == nil {
		return traverseContinue
	}
	if t.recursiveForEach(curr.left, callback) == traverseStop {
		return traverseStop
	}
	if !callback(curr) {
		return traverseStop
	}
	return t.recursiveForEach(curr.right, callback)
}

func (t *tree) iterativeForEach(callback Callback) {
	stack := newStack()
	curr := t.root
	for {
		for ; curr != nil; curr = curr.left {
			stack.push(curr)
		}
		if stack.empty() {
			return
		}
		curr = stack.pop()
		if !callback(curr) {
			return
		}
		curr = curr.right
	}
}

func (t *tree) NodeCount(mode CountMode) int {
	if t == nil {
		return 0
	}
	return t.root.nodeCount(mode)
}

func (t *tree) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

// Release tears the tree down in post-order. The tree is empty afterwards and
// releasing it again does nothing.
func (t *tree) Release() {
	if t == nil || t.root == nil {
		return
	}
	t.root.release()
	t.root = nil
	t.size = 0
}

// DumpDOT dumps a GraphViz .dot for debugging.
func (t *tree) DumpDOT(out io.Writer) {
	fmt.Fprintf(out, "digraph G {\nrankdir=\"TB\"\n")
	defer fmt.Fprintf(out, "}\n")

	t.recursiveForEach(t.root, func(n Node) bool {
		fmt.Fprintf(out, "\"%d\" [label=\"%d\"]\n", n.Key(), n.Key())
		if l := n.Left(); l != nil {
			fmt.Fprintf(out, "\"%d\" -> \"%d\"\n", n.Key(), l.Key())
		}
		if r := n.Right(); r != nil {
			fmt.Fprintf(out, "\"%d\" -> \"%d\"\n", n.Key(), r.Key())
		}
		return true
	})
}

func (t *tree) Iterator() Iterator {
	it := &iterator{
		stack: newStack(),
	}
	it.pushLeft(t.root)
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && !it.stack.empty()
}

func (it *iterator) Next() (Node, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.stack.pop()
	it.pushLeft(cur.right)
	return cur, nil
}

func (it *iterator) pushLeft(n *bstNode) {
	for ; n != nil; n = n.left {
		it.stack.push(n)
	}
}
