package bst

func (n *bstNode) Key() int {
	return n.key
}

func (n *bstNode) Left() Node {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *bstNode) Right() Node {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *bstNode) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// nodeCount counts leaves, plus internal nodes when mode is AllNodes.
func (n *bstNode) nodeCount(mode CountMode) int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	self := 0
	if mode == AllNodes {
		self = 1
	}
	return self + n.left.nodeCount(mode) + n.right.nodeCount(mode)
}

// height in nodes, a single leaf has height 1
func (n *bstNode) height() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return 1 + max(n.left.height(), n.right.height())
}

// release unlinks the subtree in post-order so that no node outlives its parent link.
func (n *bstNode) release() {
	if n == nil {
		return
	}
	n.left.release()
	n.right.release()
	n.left, n.right = nil, nil
}

func (n *bstNode) find(key int) *bstNode {
	for curr := n; curr != nil; {
		switch {
		case curr.key > key:
			curr = curr.left
		case curr.key < key:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

// Equal reports whether a and b hold the same keys at the same positions.
func Equal(a, b Tree) bool {
	return sameShape(a.Root(), b.Root())
}

func sameShape(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Key() != b.Key() {
		return false
	}
	return sameShape(a.Left(), b.Left()) && sameShape(a.Right(), b.Right())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
