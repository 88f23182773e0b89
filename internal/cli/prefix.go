// Package cli provides CLI infrastructure for bizdir.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/bizdir/internal/model"
)

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	return matchPrefix("command", prefix, commands)
}

// MatchFilter resolves "all" or a category from a case-insensitive prefix,
// so "rest" selects Restaurant and "a" selects all.
func MatchFilter(prefix string) (model.Filter, error) {
	options := make([]string, 0, len(model.Filters()))
	for _, f := range model.Filters() {
		options = append(options, string(f))
	}
	match, err := matchPrefix("filter", prefix, options)
	if err != nil {
		return "", err
	}
	return model.ParseFilter(match)
}

// MatchCategory resolves a category from a case-insensitive prefix.
func MatchCategory(prefix string) (model.Category, error) {
	options := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		options = append(options, string(c))
	}
	match, err := matchPrefix("category", prefix, options)
	if err != nil {
		return "", err
	}
	return model.ParseCategory(match)
}

func matchPrefix(kind, prefix string, options []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("empty %s (expected one of: %s)", kind, strings.Join(options, ", "))
	}

	// First check for exact match
	for _, opt := range options {
		if strings.ToLower(opt) == prefix {
			return opt, nil
		}
	}

	// Check for prefix match
	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), prefix) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown %s %q", kind, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", kind, prefix, strings.Join(matches, ", "))
	}
}
