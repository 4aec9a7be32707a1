package syntax

import "strings"

// Slot is one child position of a node: a *Node, a *Token, or nil for an
// optional slot left empty.
type Slot interface {
	isSlot()
}

// Node is an immutable interior element of the tree. Children live in fixed
// slots whose layout is determined by the node kind; optional slots hold nil.
type Node struct {
	kind   Kind
	parent *Node
	slots  []Slot
	pos    Pos
}

// NewNode builds a node from the given slots. Slots that already belong to
// another tree are deep-cloned first, so attaching a node never disturbs the
// tree it came from.
func NewNode(kind Kind, slots ...Slot) *Node {
	node := &Node{kind: kind, slots: make([]Slot, len(slots))}
	for i, slot := range slots {
		node.slots[i] = adopt(node, slot)
	}
	return node
}

// NewNodeAt is NewNode with a source position, used by parsers.
func NewNodeAt(kind Kind, pos Pos, slots ...Slot) *Node {
	node := NewNode(kind, slots...)
	node.pos = pos
	return node
}

func adopt(parent *Node, slot Slot) Slot {
	switch child := slot.(type) {
	case nil:
		return nil
	case *Token:
		if child == nil {
			return nil
		}
		return child
	case *Node:
		if child == nil {
			return nil
		}
		if child.parent != nil {
			child = child.cloneDetached()
		}
		child.parent = parent
		return child
	default:
		return nil
	}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Parent() *Node { return n.parent }

// Ancestor returns the ancestor reached by walking exactly depth parent
// links, or nil if the tree is shallower than that.
func (n *Node) Ancestor(depth int) *Node {
	current := n
	for i := 0; i < depth; i++ {
		if current == nil {
			return nil
		}
		current = current.parent
	}
	return current
}

func (n *Node) Pos() Pos { return n.pos }

func (n *Node) NumSlots() int { return len(n.slots) }

// SlotNode returns the node in slot index, or nil if the slot is empty, out
// of range, or holds a token.
func (n *Node) SlotNode(index int) *Node {
	if index < 0 || index >= len(n.slots) {
		return nil
	}
	node, _ := n.slots[index].(*Node)
	return node
}

// SlotToken returns the token in slot index, or nil if the slot is empty,
// out of range, or holds a node.
func (n *Node) SlotToken(index int) *Token {
	if index < 0 || index >= len(n.slots) {
		return nil
	}
	token, _ := n.slots[index].(*Token)
	return token
}

// Nodes returns the non-nil child nodes in slot order, skipping tokens.
func (n *Node) Nodes() []*Node {
	nodes := make([]*Node, 0, len(n.slots))
	for _, slot := range n.slots {
		if node, ok := slot.(*Node); ok && node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// NthNode returns the index-th child node, counting only node slots.
// Requesting a position past the last node yields nil rather than an error.
func (n *Node) NthNode(index int) *Node {
	if index < 0 {
		return nil
	}
	seen := 0
	for _, slot := range n.slots {
		node, ok := slot.(*Node)
		if !ok || node == nil {
			continue
		}
		if seen == index {
			return node
		}
		seen++
	}
	return nil
}

// FirstToken returns the first token of the subtree in slot order, or nil
// for an empty subtree.
func (n *Node) FirstToken() *Token {
	for _, slot := range n.slots {
		switch child := slot.(type) {
		case *Token:
			return child
		case *Node:
			if token := child.FirstToken(); token != nil {
				return token
			}
		}
	}
	return nil
}

// Text reconstructs the source text of the subtree, trivia included.
func (n *Node) Text() string {
	var builder strings.Builder
	n.writeText(&builder)
	return builder.String()
}

func (n *Node) writeText(builder *strings.Builder) {
	for _, slot := range n.slots {
		switch child := slot.(type) {
		case *Token:
			builder.WriteString(child.TextWithTrivia())
		case *Node:
			child.writeText(builder)
		}
	}
}

// WithSlot returns a copy of the node with one slot replaced. The receiver
// and its tree are left untouched; the copy is detached.
func (n *Node) WithSlot(index int, slot Slot) *Node {
	clone := n.cloneDetached()
	if index >= 0 && index < len(clone.slots) {
		clone.slots[index] = adopt(clone, slot)
	}
	return clone
}

// CloneDetached returns a deep copy of the subtree with no parent.
func (n *Node) CloneDetached() *Node {
	return n.cloneDetached()
}

func (n *Node) cloneDetached() *Node {
	clone := &Node{kind: n.kind, pos: n.pos, slots: make([]Slot, len(n.slots))}
	for i, slot := range n.slots {
		switch child := slot.(type) {
		case *Token:
			clone.slots[i] = child.clone()
		case *Node:
			childClone := child.cloneDetached()
			childClone.parent = clone
			clone.slots[i] = childClone
		}
	}
	return clone
}

func (n *Node) isSlot() {}
