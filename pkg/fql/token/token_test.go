package token

import "testing"

func TestKind_Precedence(t *testing.T) {
	if !(Not.Precedence() > And.Precedence() && And.Precedence() > Or.Precedence()) {
		t.Errorf("precedence order broken: !=%d &=%d |=%d",
			Not.Precedence(), And.Precedence(), Or.Precedence())
	}
	if Identifier.Precedence() != 0 || LParen.Precedence() != 0 {
		t.Error("non-operator kinds must have precedence 0")
	}
}

func TestKind_Associativity(t *testing.T) {
	if !And.LeftAssociative() || !Or.LeftAssociative() {
		t.Error("AND and OR must be left-associative")
	}
	if Not.LeftAssociative() {
		t.Error("NOT must be right-associative")
	}
}

func TestKind_Classification(t *testing.T) {
	for _, k := range []Kind{And, Or} {
		if !k.IsBinary() || !k.IsOperator() {
			t.Errorf("%s must be a binary operator", k)
		}
	}
	if Not.IsBinary() {
		t.Error("NOT is not binary")
	}
	if !Not.IsOperator() {
		t.Error("NOT is an operator")
	}
	for _, k := range []Kind{Identifier, LParen, RParen} {
		if k.IsOperator() {
			t.Errorf("%s is not an operator", k)
		}
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Kind: Identifier, Text: "active", Pos: 4}
	if got := tok.String(); got != `identifier "active" at 4` {
		t.Errorf("String() = %q", got)
	}
}
