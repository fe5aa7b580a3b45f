// Package fql parses and evaluates FQL, a small boolean filter
// combination language.
//
// An FQL expression combines named filters with AND (&), OR (|), NOT (!)
// and parentheses:
//
//	(region_eu | region_us) & active & !suspended
//
// Identifiers start with a letter or underscore and contain only
// letters, digits, and underscores. NOT binds tighter than AND, which
// binds tighter than OR; AND and OR are left-associative.
//
// # Architecture
//
// The package is organized into subpackages forming a linear pipeline:
//
//   - token: token kinds, positions, operator precedence
//   - lexer: expression string -> positioned tokens
//   - parser: grammar validation, infix-to-postfix, tree construction
//   - ast: expression tree nodes and traversal
//   - errors: rich error types with offset, caret context, suggestions
//
// # Basic Usage
//
// Parse once, evaluate against a caller-supplied Context:
//
//	tree, err := fql.Parse("(region_eu | region_us) & active")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := fql.MapContext{
//	    "region_eu": euCondition,
//	    "region_us": usCondition,
//	    "active":    activeCondition,
//	}
//	cond, err := tree.Generate(ctx)
//
// The resulting Condition is whatever algebra the Context's registered
// values implement: an in-memory boolean, a SQL WHERE fragment, a
// criteria object. This package never inspects Condition internals; it
// only composes them through And, Or, and Not.
//
// # Error Handling
//
// Parsing and evaluation return *errors.Error values with an error
// class, the offending text, and its 0-based offset:
//
//	[syntax] binary operator '&' requires a left operand
//	  --> & active
//	      ^
//
// All parse-time errors are raised before any Context lookup happens, so
// a caller never receives a partially-evaluated Condition. An identifier
// missing from the Context is reported at evaluation time as an
// unresolved-reference error naming the identifier.
//
// # Concurrency
//
// Parsing is pure computation: no I/O, no shared mutable state. A Tree
// and the parser are safe for concurrent use. The Context passed to
// Generate is the only shared resource, and its thread-safety is the
// caller's concern.
package fql
