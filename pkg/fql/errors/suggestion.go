package errors

import (
	"fmt"
	"strings"
)

// SuggestName suggests a registered filter name close to an unknown one.
// It returns an empty string when no reasonable suggestion exists.
func SuggestName(unknown string, registered []string) string {
	if len(registered) == 0 {
		return ""
	}

	minDistance := len(unknown) + 1
	var bestMatch string

	for _, name := range registered {
		dist := levenshteinDistance(unknown, name)
		if dist < minDistance {
			minDistance = dist
			bestMatch = name
		}
	}

	// Only suggest near misses; a distant match is noise.
	if minDistance <= 2 && bestMatch != "" {
		return fmt.Sprintf("did you mean '%s'?", bestMatch)
	}

	if len(registered) > 5 {
		return fmt.Sprintf("registered filters include: %s, ...", strings.Join(registered[:5], ", "))
	}
	return fmt.Sprintf("registered filters: %s", strings.Join(registered, ", "))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}
