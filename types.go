package novelsite

import (
	"fmt"
	"net/url"
	"strings"
)

// Chapter is one recognized NN-title.md file.
type Chapter struct {
	Filename string // Base name, e.g. "01-爱丁堡的风.md"
	Digits   string // Literal ordinal digits, e.g. "01"
	Ordinal  int    // Parsed ordinal, e.g. 1
	Title    string // Text between "NN-" and ".md"
	Raw      string // Full file content
}

// OutputName returns the page filename for the chapter.
func (c Chapter) OutputName() string {
	return ChapterFilename(c.Ordinal)
}

// Sequence is the filtered, filename-sorted list of chapters.
// Position in the slice, not Ordinal, decides whether a chapter is first or last.
type Sequence []Chapter

// FontFamily is one web font requested from the font service.
type FontFamily struct {
	Family string // "Noto Serif SC"
	Axes   string // "wght@400;600", empty for the family default
}

// Labels holds navigation link text.
type Labels struct {
	Prev string
	Next string
	TOC  string
}

// Site holds the constants shared by every generated page.
type Site struct {
	Name            string
	Lang            string
	CopyrightYear   int
	CopyrightHolder string // Empty = Name
	FontBaseURL     string // Stylesheet host, e.g. https://fonts.googleapis.com
	FontStaticURL   string // Font file host, preconnected with crossorigin
	Fonts           []FontFamily
	Stylesheet      string // Site stylesheet href
	HomeHref        string
	TOCHref         string
	Labels          Labels
}

// DefaultSite returns the settings of the 先凑合 site.
func DefaultSite() Site {
	return Site{
		Name:          "先凑合",
		Lang:          "zh-CN",
		CopyrightYear: 2026,
		FontBaseURL:   "https://fonts.googleapis.com",
		FontStaticURL: "https://fonts.gstatic.com",
		Fonts: []FontFamily{
			{Family: "Noto Serif SC", Axes: "wght@400;600"},
			{Family: "Crimson Pro", Axes: "ital,wght@0,400;0,600;1,400"},
		},
		Stylesheet: "style.css",
		HomeHref:   "index.html",
		TOCHref:    "index.html#chapters",
		Labels: Labels{
			Prev: "← 上一章",
			Next: "下一章 →",
			TOC:  "目录",
		},
	}
}

// Validate checks that the site can render a usable page.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSite)
	}
	if s.Labels.Prev == "" || s.Labels.Next == "" || s.Labels.TOC == "" {
		return fmt.Errorf("%w: navigation labels are required", ErrInvalidSite)
	}
	if s.CopyrightYear < 0 {
		return fmt.Errorf("%w: copyright year %d", ErrInvalidSite, s.CopyrightYear)
	}
	if len(s.Fonts) > 0 && s.FontBaseURL == "" {
		return fmt.Errorf("%w: fonts require a font base URL", ErrInvalidSite)
	}
	for i, f := range s.Fonts {
		if strings.TrimSpace(f.Family) == "" {
			return fmt.Errorf("%w: font %d has no family", ErrInvalidSite, i)
		}
	}
	return nil
}

// Holder returns the copyright holder, defaulting to the site name.
func (s Site) Holder() string {
	if s.CopyrightHolder != "" {
		return s.CopyrightHolder
	}
	return s.Name
}

// FontStylesheetURL builds the css2 request for all fonts, e.g.
// https://fonts.googleapis.com/css2?family=Noto+Serif+SC:wght@400;600&display=swap
// Returns "" when no fonts are configured.
func (s Site) FontStylesheetURL() string {
	if len(s.Fonts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(s.FontBaseURL, "/"))
	b.WriteString("/css2?")
	for i, f := range s.Fonts {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString("family=")
		b.WriteString(url.QueryEscape(f.Family))
		if f.Axes != "" {
			b.WriteString(":")
			b.WriteString(f.Axes)
		}
	}
	b.WriteString("&display=swap")
	return b.String()
}

// Page is one written chapter page.
type Page struct {
	Chapter  Chapter
	Path     string // Full output path
	Position int    // 0-based index in the Sequence
	Total    int    // Sequence length
}

// Result summarizes a Generate run.
type Result struct {
	Pages     []Page
	Skipped   []string // .md names that did not match NN-title.md
	IndexPath string   // Empty unless the index page was written
	StylePath string   // Empty unless style.css was written
}
