// Filterql is a developer tool for the FQL filter expression language.
//
// It checks expressions without evaluating them, which is useful in CI
// for filter-set files maintained alongside application code:
//
//	# Check a single expression
//	filterql lint --expr "(region_eu | region_us) & active"
//
//	# Check every expression in a YAML filter set
//	filterql lint --file filters.yaml
//
//	# Print the canonical form of an expression
//	filterql fmt --expr "A|B&C"
//
//	# Show version information
//	filterql version
package main

func main() {
	Execute()
}
