// Package parser implements the parse pipeline for filter expressions.
//
// The pipeline is strictly linear, with one stage per file:
//
//   - lexing (pkg/fql/lexer): expression string -> positioned tokens
//   - grammar.go: token adjacency and boundary validation
//   - shunting.go: infix -> postfix conversion (shunting-yard)
//   - builder.go: postfix -> expression tree
//
// Each stage fails fast with its own error class from pkg/fql/errors,
// carrying the offending text and 0-based offset. All parse errors are
// raised before any evaluation begins; the parser itself performs no
// lookups and holds no state between calls.
//
// # Usage
//
//	p := parser.NewParser()
//	root, err := p.Parse("!(region_eu | region_us) & active")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(root) // (!(region_eu | region_us) & active)
//
// Most callers use the higher-level pkg/fql API instead, which wraps the
// root node in a Tree and adds evaluation against a Context.
package parser
