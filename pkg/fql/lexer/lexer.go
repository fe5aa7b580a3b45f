// Package lexer turns a filter expression string into an ordered
// sequence of positioned tokens.
//
// The scanner classifies characters into whitespace (a silent token
// separator), the six single-character operator and parenthesis symbols,
// and identifier characters (letters, digits, underscore). Every maximal
// run of identifier characters becomes one Identifier token, validated
// against the identifier naming rule at the moment the run closes. Any
// other character is a fatal lexical error reported with its exact
// offset.
package lexer

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"cyfko/filterql/pkg/fql/token"

	fqlErrors "cyfko/filterql/pkg/fql/errors"
)

// validIdentifier is the process-wide identifier naming rule: a letter
// or underscore followed by letters, digits, or underscores.
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// symbolKinds maps the single-character operator and parenthesis symbols
// to their token kinds.
var symbolKinds = map[byte]token.Kind{
	'&': token.And,
	'|': token.Or,
	'!': token.Not,
	'(': token.LParen,
	')': token.RParen,
}

// Scan tokenizes the expression left to right. The returned tokens carry
// 0-based byte offsets into expr. An empty token sequence is not an
// error here; the grammar validator rejects it with the sequence-level
// rules.
func Scan(expr string) ([]token.Token, error) {
	var tokens []token.Token
	start := -1 // start offset of the identifier run in progress, -1 if none

	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		text := expr[start:end]
		if !validIdentifier.MatchString(text) {
			return fqlErrors.Newf(fqlErrors.TypeLexical, start,
				"invalid identifier '%s': identifiers must start with a letter or underscore and contain only letters, digits, and underscores", text)
		}
		tokens = append(tokens, token.Token{Kind: token.Identifier, Text: text, Pos: start})
		start = -1
		return nil
	}

	for i := 0; i < len(expr); {
		c := expr[i]

		switch kind, isSymbol := symbolKinds[c]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if err := flush(i); err != nil {
				return nil, err
			}
			i++

		case isSymbol:
			if err := flush(i); err != nil {
				return nil, err
			}
			tokens = append(tokens, token.Token{Kind: kind, Text: string(c), Pos: i})
			i++

		case isIdentChar(c):
			if start < 0 {
				start = i
			}
			i++

		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			if unicode.IsSpace(r) {
				// Non-ASCII whitespace separates tokens like ASCII whitespace.
				if err := flush(i); err != nil {
					return nil, err
				}
				i += utf8.RuneLen(r)
				continue
			}
			return nil, fqlErrors.Newf(fqlErrors.TypeLexical, i, "invalid character '%c'", r)
		}
	}

	if err := flush(len(expr)); err != nil {
		return nil, err
	}

	return tokens, nil
}

// isIdentChar reports whether c may appear inside an identifier.
func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
