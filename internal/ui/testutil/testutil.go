// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var whitespace = regexp.MustCompile(`\s+`)

// StripANSI removes escape sequences, including mouse zone markers, so that
// rendered output can be compared as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace replaces multiple consecutive whitespace characters
// with a single space and trims leading/trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != "" || substr == ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// CountLines returns the number of non-empty lines in the output.
func CountLines(output string) int {
	count := 0
	for line := range strings.SplitSeq(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// SplitLines splits plain output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
