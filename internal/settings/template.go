package settings

import (
	"html"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z]+)\s*\}\}`)

// Render substitutes {{token}} placeholders case-insensitively. Keys in vars
// must be lowercase. Unknown tokens are left exactly as written; known tokens
// with an empty value render as the empty string.
func Render(tmpl string, vars map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[strings.ToLower(name)]; ok {
			return value
		}
		return match
	})
}

// HTMLBody converts a rendered plain-text body into the HTML email payload:
// blank lines split paragraphs, single newlines become <br>.
func HTMLBody(body string) string {
	paragraphs := regexp.MustCompile(`\n\s*\n`).Split(body, -1)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif;">`)
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lines := strings.Split(p, "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(strings.TrimSpace(line))
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")

	return b.String()
}
