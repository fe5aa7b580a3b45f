// Package ast defines the expression tree produced by parsing a filter
// expression.
//
// The tree is a closed sum of four node kinds: Identifier, Not, And, and
// Or. Nodes are immutable, carry the offset of their first token for
// diagnostics, and print a canonical textual form that re-parses to a
// structurally identical tree.
//
// Use Walk with a Visitor to traverse a tree, or Identifiers to collect
// the distinct filter names it references.
package ast
