package ast

import "fmt"

// Node is a node of the parsed filter expression tree. The type is a
// closed sum: exactly four concrete kinds exist (Identifier, Not, And,
// Or), and evaluators switch over them exhaustively. Nodes are immutable
// once constructed.
type Node interface {
	// Pos returns the 0-based byte offset of the node's first token in
	// the original expression.
	Pos() int

	// String returns the canonical textual form of the subtree.
	// Re-parsing the canonical form yields a structurally identical tree.
	String() string

	node()
}

// Identifier is a leaf referencing a named condition supplied by the
// caller's Context at evaluation time.
type Identifier struct {
	Name    string
	NamePos int
}

// Not negates its operand.
type Not struct {
	OpPos   int
	Operand Node
}

// And combines two subtrees conjunctively. Left precedes Right in the
// source expression.
type And struct {
	OpPos int
	Left  Node
	Right Node
}

// Or combines two subtrees disjunctively. Left precedes Right in the
// source expression.
type Or struct {
	OpPos int
	Left  Node
	Right Node
}

func (n *Identifier) node() {}
func (n *Not) node()        {}
func (n *And) node()        {}
func (n *Or) node()         {}

func (n *Identifier) Pos() int { return n.NamePos }
func (n *Not) Pos() int        { return n.OpPos }
func (n *And) Pos() int        { return n.Left.Pos() }
func (n *Or) Pos() int         { return n.Left.Pos() }

func (n *Identifier) String() string {
	return n.Name
}

func (n *Not) String() string {
	return "!" + n.Operand.String()
}

func (n *And) String() string {
	return fmt.Sprintf("(%s & %s)", n.Left, n.Right)
}

func (n *Or) String() string {
	return fmt.Sprintf("(%s | %s)", n.Left, n.Right)
}
