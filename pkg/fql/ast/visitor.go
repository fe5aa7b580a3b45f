package ast

import "fmt"

// Visitor provides an interface for traversing the expression tree.
// Implement this interface to perform operations on nodes (analysis,
// identifier collection, rewriting into another representation, etc.).
type Visitor interface {
	VisitIdentifier(*Identifier) error
	VisitNot(*Not) error
	VisitAnd(*And) error
	VisitOr(*Or) error
}

// Walk traverses the tree in source order (pre-order, left before right)
// and calls the visitor for each node. It returns the first error
// encountered, or nil if traversal completes.
func Walk(n Node, v Visitor) error {
	switch n := n.(type) {
	case *Identifier:
		return v.VisitIdentifier(n)
	case *Not:
		if err := v.VisitNot(n); err != nil {
			return err
		}
		return Walk(n.Operand, v)
	case *And:
		if err := v.VisitAnd(n); err != nil {
			return err
		}
		if err := Walk(n.Left, v); err != nil {
			return err
		}
		return Walk(n.Right, v)
	case *Or:
		if err := v.VisitOr(n); err != nil {
			return err
		}
		if err := Walk(n.Left, v); err != nil {
			return err
		}
		return Walk(n.Right, v)
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

// identifierCollector gathers identifier names in source order.
type identifierCollector struct {
	seen  map[string]bool
	names []string
}

func (c *identifierCollector) VisitIdentifier(n *Identifier) error {
	if !c.seen[n.Name] {
		c.seen[n.Name] = true
		c.names = append(c.names, n.Name)
	}
	return nil
}

func (c *identifierCollector) VisitNot(*Not) error { return nil }
func (c *identifierCollector) VisitAnd(*And) error { return nil }
func (c *identifierCollector) VisitOr(*Or) error   { return nil }

// Identifiers returns the distinct identifier names referenced by the
// tree, in source order.
func Identifiers(n Node) []string {
	c := &identifierCollector{seen: make(map[string]bool)}
	// Walk cannot fail here: the collector never returns an error.
	_ = Walk(n, c)
	return c.names
}
