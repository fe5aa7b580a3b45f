// Package errors provides the rich error type shared by every stage of
// the filter expression pipeline.
//
// Each error carries a Type (blank, lexical, syntax, bracket, tree,
// unresolved), a message naming the offending text, and the 0-based
// offset into the expression. When the source expression is attached the
// rendered message includes a caret marking the offset:
//
//	[lexical] invalid character '#'
//	  --> A # B
//	        ^
//
// All errors are fail-fast, non-retryable, and deterministic for a given
// input. Nothing is recovered internally; every error propagates to the
// immediate caller.
package errors
