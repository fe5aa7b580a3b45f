package ast

import (
	"reflect"
	"testing"
)

func sampleTree() Node {
	// !(a | b) & c
	return &And{
		OpPos: 9,
		Left: &Not{
			OpPos: 0,
			Operand: &Or{
				OpPos: 5,
				Left:  &Identifier{Name: "a", NamePos: 2},
				Right: &Identifier{Name: "b", NamePos: 6},
			},
		},
		Right: &Identifier{Name: "c", NamePos: 11},
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"identifier", &Identifier{Name: "a"}, "a"},
		{"not identifier", &Not{Operand: &Identifier{Name: "a"}}, "!a"},
		{"and", &And{Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}}, "(a & b)"},
		{"or", &Or{Left: &Identifier{Name: "a"}, Right: &Identifier{Name: "b"}}, "(a | b)"},
		{"negated group", sampleTree(), "(!(a | b) & c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_Pos(t *testing.T) {
	root := sampleTree()
	// A subtree's position is its first token's offset.
	if got := root.Pos(); got != 0 {
		t.Errorf("root.Pos() = %d, want 0", got)
	}
	and := root.(*And)
	if got := and.Right.Pos(); got != 11 {
		t.Errorf("Right.Pos() = %d, want 11", got)
	}
}

// orderVisitor records the node kinds seen during traversal.
type orderVisitor struct {
	order []string
}

func (v *orderVisitor) VisitIdentifier(n *Identifier) error {
	v.order = append(v.order, n.Name)
	return nil
}
func (v *orderVisitor) VisitNot(*Not) error { v.order = append(v.order, "!"); return nil }
func (v *orderVisitor) VisitAnd(*And) error { v.order = append(v.order, "&"); return nil }
func (v *orderVisitor) VisitOr(*Or) error   { v.order = append(v.order, "|"); return nil }

func TestWalk_SourceOrder(t *testing.T) {
	v := &orderVisitor{}
	if err := Walk(sampleTree(), v); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	want := []string{"&", "!", "|", "a", "b", "c"}
	if !reflect.DeepEqual(v.order, want) {
		t.Errorf("order = %v, want %v", v.order, want)
	}
}

func TestIdentifiers_DistinctInSourceOrder(t *testing.T) {
	root := &Or{
		Left: &And{
			Left:  &Identifier{Name: "b"},
			Right: &Identifier{Name: "a"},
		},
		Right: &Identifier{Name: "b"},
	}

	want := []string{"b", "a"}
	if got := Identifiers(root); !reflect.DeepEqual(got, want) {
		t.Errorf("Identifiers() = %v, want %v", got, want)
	}
}
