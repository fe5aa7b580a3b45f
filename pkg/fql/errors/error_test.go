package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestError_RendersCaretContext(t *testing.T) {
	err := Newf(TypeLexical, 2, "invalid character '#'").WithExpression("A # B")

	got := err.Error()
	if !strings.Contains(got, "[lexical] invalid character '#'") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "--> A # B") {
		t.Errorf("missing expression line: %q", got)
	}
	// The caret must sit under offset 2.
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected 3 lines, got %q", got)
	}
	caretLine := lines[2]
	if idx := strings.Index(caretLine, "^"); idx != len("      ")+2 {
		t.Errorf("caret at column %d, want %d: %q", idx, len("      ")+2, caretLine)
	}
}

func TestError_NoPositionNoContext(t *testing.T) {
	err := New(TypeBlank, "filter expression cannot be empty or blank")
	if got := err.Error(); strings.Contains(got, "-->") {
		t.Errorf("blank error should not render context: %q", got)
	}
}

func TestError_Suggestion(t *testing.T) {
	err := Newf(TypeUnresolved, 0, "no condition found for filter reference 'activ'")
	err.Suggestion = "did you mean 'active'?"
	if got := err.Error(); !strings.Contains(got, "= suggestion: did you mean 'active'?") {
		t.Errorf("missing suggestion: %q", got)
	}
}

func TestIsType(t *testing.T) {
	err := Newf(TypeBracket, 5, "unmatched ')'")
	if !IsType(err, TypeBracket) {
		t.Error("IsType() = false, want true")
	}
	if IsType(err, TypeSyntax) {
		t.Error("IsType() matched wrong type")
	}

	wrapped := fmt.Errorf("parse failed: %w", err)
	if !IsType(wrapped, TypeBracket) {
		t.Error("IsType() should unwrap")
	}
	if IsType(nil, TypeBracket) {
		t.Error("IsType(nil) = true")
	}
}

func TestPosOf(t *testing.T) {
	if got := PosOf(Newf(TypeSyntax, 7, "x")); got != 7 {
		t.Errorf("PosOf() = %d, want 7", got)
	}
	if got := PosOf(fmt.Errorf("plain")); got != -1 {
		t.Errorf("PosOf(plain) = %d, want -1", got)
	}
}

func TestSuggestName(t *testing.T) {
	tests := []struct {
		name       string
		unknown    string
		registered []string
		want       string
	}{
		{"near miss", "activ", []string{"active", "deleted"}, "did you mean 'active'?"},
		{"exact case typo", "Active", []string{"active"}, "did you mean 'active'?"},
		{"no registration", "x", nil, ""},
		{"distant, short list", "zzzz", []string{"active", "deleted"}, "registered filters: active, deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestName(tt.unknown, tt.registered); got != tt.want {
				t.Errorf("SuggestName(%q) = %q, want %q", tt.unknown, got, tt.want)
			}
		})
	}
}

func TestSuggestName_LongListTruncates(t *testing.T) {
	registered := []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff"}
	got := SuggestName("zzzzzz", registered)
	if !strings.HasPrefix(got, "registered filters include: ") || !strings.HasSuffix(got, ", ...") {
		t.Errorf("SuggestName() = %q", got)
	}
}
