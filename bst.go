package bst

import (
	"github.com/cockroachdb/errors"
)

const (
	// TerminalOnly counts leaves only.
	TerminalOnly CountMode = iota
	// AllNodes counts leaves and internal nodes.
	AllNodes
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// initial capacity of the auxiliary stack used by iterative walks,
	// it grows past this when the tree is taller
	stackHint = 64
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	tree struct {
		size int
		root *bstNode
	}

	CountMode int

	bstNode struct {
		key   int
		left  *bstNode
		right *bstNode
	}

	Callback func(n Node) bool

	traverseAction int

	// explicit stack of node references, grown on demand
	nodeStack []*bstNode

	iterator struct {
		stack nodeStack
	}
)

func newNode(key int) *bstNode {
	return &bstNode{key: key}
}

func (m CountMode) String() string {
	switch m {
	case TerminalOnly:
		return "TerminalOnly"
	case AllNodes:
		return "AllNodes"
	}
	return "CountMode(?)"
}

func newStack() nodeStack {
	return make(nodeStack, 0, stackHint)
}

func (s *nodeStack) push(n *bstNode) {
	*s = append(*s, n)
}

func (s *nodeStack) pop() *bstNode {
	old := *s
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

func (s nodeStack) empty() bool {
	return len(s) == 0
}
