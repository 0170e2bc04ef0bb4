package novelsite

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-novelsite/internal/pipeline"
)

// IndexFilename is the name of the generated table-of-contents page.
const IndexFilename = "index.html"

// defaultTOCAnchor is used when Site.TOCHref has no fragment.
const defaultTOCAnchor = "chapters"

// IndexOptions configures the optional index page.
type IndexOptions struct {
	Title     string // Heading above the chapter list (empty = Site.Labels.TOC)
	IntroPath string // Markdown file rendered above the list (empty = none)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}}</title>
{{- if .FontURL}}
    <link rel="preconnect" href="{{.FontBaseURL}}">
{{- if .FontStaticURL}}
    <link rel="preconnect" href="{{.FontStaticURL}}" crossorigin>
{{- end}}
    <link href="{{.FontURL}}" rel="stylesheet">
{{- end}}
    <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body class="index-page">
    <header class="index-header">
        <h1>{{.Name}}</h1>
    </header>
{{- if .Intro}}

    <section class="intro">
        {{.Intro}}
    </section>
{{- end}}

    <section id="{{.Anchor}}" class="chapter-list">
        <h2>{{.Title}}</h2>
        <ol>
{{- range .Entries}}
            <li><a href="{{.Href}}">第 {{.Num}} 章 · {{.Title}}</a></li>
{{- end}}
        </ol>
    </section>

    <footer class="footer">
        <p>© {{.Year}} {{.Holder}}</p>
    </footer>
</body>
</html>`))

type indexEntry struct {
	Href  string
	Num   string
	Title string
}

type indexData struct {
	Lang          string
	Name          string
	FontURL       string
	FontBaseURL   string
	FontStaticURL string
	Stylesheet    string
	Intro         template.HTML
	Anchor        string
	Title         string
	Entries       []indexEntry
	Year          int
	Holder        string
}

// RenderIndex builds the index page listing seq in order. intro is an
// already-rendered HTML fragment (may be empty).
func RenderIndex(site Site, seq Sequence, title string, intro string) (string, error) {
	if title == "" {
		title = site.Labels.TOC
	}

	data := indexData{
		Lang:          site.Lang,
		Name:          site.Name,
		FontURL:       site.FontStylesheetURL(),
		FontBaseURL:   strings.TrimSuffix(site.FontBaseURL, "/"),
		FontStaticURL: strings.TrimSuffix(site.FontStaticURL, "/"),
		Stylesheet:    site.Stylesheet,
		Intro:         template.HTML(intro), // #nosec G203 -- goldmark output, raw HTML disabled
		Anchor:        tocAnchor(site.TOCHref),
		Title:         title,
		Entries:       make([]indexEntry, 0, len(seq)),
		Year:          site.CopyrightYear,
		Holder:        site.Holder(),
	}
	for _, ch := range seq {
		data.Entries = append(data.Entries, indexEntry{
			Href:  ch.OutputName(),
			Num:   DisplayOrdinal(ch.Ordinal),
			Title: ch.Title,
		})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderIndex, err)
	}
	return buf.String(), nil
}

// renderIntro reads and converts the intro Markdown file.
func renderIntro(ctx context.Context, conv pipeline.HTMLConverter, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided intro path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadIntro, err)
	}
	html, err := conv.ToHTML(ctx, string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderIndex, err)
	}
	return strings.TrimSpace(html), nil
}

// tocAnchor returns the fragment of href, e.g. "chapters" for
// "index.html#chapters".
func tocAnchor(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 && i < len(href)-1 {
		return href[i+1:]
	}
	return defaultTOCAnchor
}
