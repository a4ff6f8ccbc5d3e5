package domain

import "strings"

// ContextDirective is the structured block extracted from a "## Context"
// heading: file-glob hints and related-repository paths.
type ContextDirective struct {
	Files []string // File globs to include when gathering context
	Repos []string // Related repository paths
}

// IsZero returns true if the directive carries no hints.
func (c ContextDirective) IsZero() bool {
	return len(c.Files) == 0 && len(c.Repos) == 0
}

// ParseContext extracts the context directive from raw task-file text.
// It activates between a heading case-insensitively equal to "context"
// and the next level-2 heading. Within that span, "files:" and "repos:"
// lines contribute comma-separated tokens; repeated lines accumulate.
func ParseContext(raw string) ContextDirective {
	var directive ContextDirective
	inContext := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if name, ok := headingText(trimmed, "## "); ok {
			inContext = strings.EqualFold(name, "context")
			continue
		}
		if !inContext {
			continue
		}
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "files:"):
			directive.Files = append(directive.Files, splitTokens(trimmed[len("files:"):])...)
		case strings.HasPrefix(lower, "repos:"):
			directive.Repos = append(directive.Repos, splitTokens(trimmed[len("repos:"):])...)
		}
	}
	return directive
}

// splitTokens splits a comma-separated list, trimming and dropping
// empty entries.
func splitTokens(s string) []string {
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
