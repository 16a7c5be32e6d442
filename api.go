package bst

import "io"

type Tree interface {
	InsertIterative(key int) bool
	InsertRecursive(key int) bool
	TraverseIterative() int
	TraverseRecursive() int
	NodeCount(mode CountMode) int
	Height() int
	Release()

	Size() int
	Root() Node
	Contains(key int) bool
	Keys() []int
	ForEach(callback Callback)
	ForEachIterative(callback Callback)
	Iterator() Iterator
	DumpDOT(out io.Writer)
}

type Iterator interface {
	HasNext() bool
	Next() (Node, error)
}

// Node is a read-only view of a tree node. Left and Right return nil when the link is absent.
type Node interface {
	Key() int
	Left() Node
	Right() Node
	IsLeaf() bool
}

func New() Tree {
	return &tree{}
}
