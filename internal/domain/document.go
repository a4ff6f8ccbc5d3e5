package domain

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// checkboxPattern matches a checkbox task line: an optional leading dash,
// a bracketed marker, then free text.
var checkboxPattern = regexp.MustCompile(`^\s*-?\s*\[([ xX~]?)\]\s*(.*)$`)

// frontmatter holds the optional YAML block at the top of a task file.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Parse turns raw task-file text into a ParsedDocument. It is a pure
// function of its input and never fails: malformed lines are simply not
// recognized as tasks or headings and fall through as ordinary text.
//
// The scan is a single forward pass with one mutable section cursor.
// Lines inside fenced code blocks are never interpreted as structure.
// Prose under a "## Tasks" heading before its first checkbox becomes
// Notes; the first-checkbox flag resets on every section entry, so a
// repeated Tasks heading captures notes again.
func Parse(raw string) *ParsedDocument {
	lines := strings.Split(raw, "\n")
	doc := &ParsedDocument{Lines: lines}

	start, fm := parseFrontmatter(lines)
	if fm != nil {
		doc.Title = fm.Title
		doc.Description = fm.Description
	}

	const headerSection = "\x00header"

	var (
		section      string // active section, "" until a heading is seen
		inTasks      bool   // active section is literally "tasks"
		seenCheckbox bool   // first checkbox seen in the current section entry
		inFence      bool
		description  []string
		notes        []string
	)

	for i := start; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}

		if !inFence {
			if title, ok := headingText(trimmed, "# "); ok {
				if doc.Title == "" {
					doc.Title = title
				}
				section = headerSection
				continue
			}
			if name, ok := headingText(trimmed, "## "); ok {
				section = strings.ToLower(name)
				inTasks = section == "tasks"
				seenCheckbox = false
				continue
			}
			if m := checkboxPattern.FindStringSubmatch(line); m != nil {
				task := Task{
					Line:        i,
					Status:      StatusForMarker(m[1]),
					Description: strings.TrimSpace(m[2]),
				}
				if section != "" && section != headerSection {
					task.Section = section
				}
				doc.Tasks = append(doc.Tasks, task)
				seenCheckbox = true
				continue
			}
		}

		if trimmed == "" {
			continue
		}
		switch {
		case section == headerSection:
			description = append(description, trimmed)
		case inTasks && !seenCheckbox:
			notes = append(notes, trimmed)
		}
	}

	if doc.Description == "" {
		doc.Description = strings.Join(description, "\n")
	}
	doc.Notes = strings.Join(notes, "\n")
	return doc
}

// headingText returns the text of a heading line for the given prefix.
func headingText(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
}

// parseFrontmatter decodes an optional leading YAML block delimited by
// "---" lines. It returns the index of the first body line and the
// decoded block, or (0, nil) when no valid block is present; a malformed
// block is left to the main pass as plain text.
func parseFrontmatter(lines []string) (int, *frontmatter) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, nil
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		var fm frontmatter
		block := strings.Join(lines[1:i], "\n")
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return 0, nil
		}
		return i + 1, &fm
	}
	return 0, nil
}
