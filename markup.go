package novelsite

import (
	"regexp"
	"strings"

	"github.com/alnah/go-novelsite/internal/pipeline"
)

// Inline patterns. Each is non-greedy and stays on one line.
// Order matters: strong+em first, then strong, then em.
var (
	strongEmPattern = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	strongPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emPattern       = regexp.MustCompile(`\*(.+?)\*`)
)

// ToHTML converts a chapter body to an HTML fragment of <p> elements.
// Only **bold**, *emphasis*, blank-line paragraph breaks and single-newline
// <br> breaks are recognized. Everything else, including '<' and '&',
// passes through verbatim.
func ToHTML(content string) string {
	content = pipeline.NormalizeLineEndings(content)
	content = strings.TrimSpace(dropTitleLine(content))

	var paragraphs []string
	for _, p := range strings.Split(content, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = convertInline(p)
		p = strings.ReplaceAll(p, "\n", "<br>")
		paragraphs = append(paragraphs, "<p>"+p+"</p>")
	}
	return strings.Join(paragraphs, "\n")
}

// dropTitleLine removes the first line when it is a "# " heading.
// "## x" and "#x" are kept.
func dropTitleLine(content string) string {
	if !strings.HasPrefix(content, "# ") {
		return content
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[i+1:]
	}
	return ""
}

// convertInline applies emphasis substitutions to one paragraph.
func convertInline(p string) string {
	p = strongEmPattern.ReplaceAllString(p, "<strong><em>$1</em></strong>")
	p = strongPattern.ReplaceAllString(p, "<strong>$1</strong>")
	p = emPattern.ReplaceAllString(p, "<em>$1</em>")
	return p
}
