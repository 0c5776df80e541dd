package views

import (
	"html/template"
	"strings"
)

// Description renders a project description as literal text. Each line is
// escaped on its own and every newline becomes <br>, so blank lines and
// anything that looks like markup are shown exactly as written.
func Description(text string) template.HTML {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}

	return template.HTML(strings.Join(lines, "<br>\n")) //nolint:gosec // every line is escaped
}
