package novelsite

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-novelsite/internal/fileutil"
	"github.com/alnah/go-novelsite/internal/pipeline"
)

// filePermissions is used for every written page: rw-r--r--.
const filePermissions = 0o644

// Generator renders a chapter directory into linked pages.
// A Generator holds no per-run state and may be reused.
type Generator struct {
	site       Site
	links      LinkPolicy
	progress   func(Page)
	skip       func(name string)
	index      *IndexOptions
	stylesheet *string
	intro      pipeline.HTMLConverter
}

// Option configures a Generator.
type Option func(*Generator)

// WithLinkPolicy sets how prev/next targets are computed.
// Default: OrdinalLinks.
func WithLinkPolicy(p LinkPolicy) Option {
	return func(g *Generator) {
		if p != nil {
			g.links = p
		}
	}
}

// WithProgress registers a callback invoked after each page is written.
func WithProgress(fn func(Page)) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// WithSkipHook registers a callback invoked for each .md file whose name
// is not NN-title.md.
func WithSkipHook(fn func(name string)) Option {
	return func(g *Generator) {
		g.skip = fn
	}
}

// WithIndex enables writing index.html after the chapter pages.
func WithIndex(opts IndexOptions) Option {
	return func(g *Generator) {
		g.index = &opts
	}
}

// WithStylesheet writes css to the site stylesheet path in the output
// directory. Site.Stylesheet must then be a relative local path.
func WithStylesheet(css string) Option {
	return func(g *Generator) {
		g.stylesheet = &css
	}
}

// NewGenerator creates a Generator for site.
func NewGenerator(site Site, opts ...Option) (*Generator, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		site:  site,
		links: OrdinalLinks,
		intro: pipeline.NewGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.stylesheet != nil {
		if _, err := stylesheetFile(site.Stylesheet); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate converts every chapter in inputDir and writes the pages to
// outputDir, which must already exist. Chapters are handled one at a time:
// read, transform, render, write. The first failure stops the run; pages
// already written stay on disk.
func (g *Generator) Generate(ctx context.Context, inputDir, outputDir string) (*Result, error) {
	names, err := ListChapterFiles(inputDir)
	if err != nil {
		return nil, err
	}

	seq, skipped := FilterChapters(names)
	result := &Result{Skipped: skipped}
	if g.skip != nil {
		for _, name := range skipped {
			g.skip(name)
		}
	}

	for i := range seq {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := g.writeChapter(seq, i, inputDir, outputDir)
		if err != nil {
			return result, err
		}
		result.Pages = append(result.Pages, page)
		if g.progress != nil {
			g.progress(page)
		}
	}

	if g.index != nil {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		indexPath, err := g.writeIndex(ctx, seq, outputDir)
		if err != nil {
			return result, err
		}
		result.IndexPath = indexPath
	}

	if g.stylesheet != nil {
		stylePath, err := g.writeStylesheet(outputDir)
		if err != nil {
			return result, err
		}
		result.StylePath = stylePath
	}

	return result, nil
}

// writeChapter reads seq[i] from disk, renders it and writes its page.
// Content is stored back into seq so the index sees the same chapters.
func (g *Generator) writeChapter(seq Sequence, i int, inputDir, outputDir string) (Page, error) {
	ch := &seq[i]

	data, err := os.ReadFile(filepath.Join(inputDir, ch.Filename)) // #nosec G304 -- listed from input dir
	if err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrReadChapter, ch.Filename, err)
	}
	ch.Raw = string(data)

	prev, next := g.links(seq, i)
	html := RenderPage(g.site, PageData{
		Chapter:  *ch,
		Fragment: ToHTML(ch.Raw),
		Prev:     prev,
		Next:     next,
	})

	outPath := filepath.Join(outputDir, ch.OutputName())
	if err := os.WriteFile(outPath, []byte(html), filePermissions); err != nil {
		return Page{}, fmt.Errorf("%w: %s: %w", ErrWritePage, outPath, err)
	}

	return Page{Chapter: *ch, Path: outPath, Position: i, Total: len(seq)}, nil
}

func (g *Generator) writeIndex(ctx context.Context, seq Sequence, outputDir string) (string, error) {
	intro, err := renderIntro(ctx, g.intro, g.index.IntroPath)
	if err != nil {
		return "", err
	}

	html, err := RenderIndex(g.site, seq, g.index.Title, intro)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outputDir, IndexFilename)
	if err := os.WriteFile(outPath, []byte(html), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWritePage, outPath, err)
	}
	return outPath, nil
}

func (g *Generator) writeStylesheet(outputDir string) (string, error) {
	name, err := stylesheetFile(g.site.Stylesheet)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outputDir, name)
	if err := os.WriteFile(outPath, []byte(*g.stylesheet), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWritePage, outPath, err)
	}
	return outPath, nil
}

// stylesheetFile maps the stylesheet href to a file path under the output
// directory. URLs, absolute paths and paths leaving the directory are refused.
func stylesheetFile(href string) (string, error) {
	clean := path.Clean(href)
	if href == "" || fileutil.IsURL(href) || path.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, "../") || strings.ContainsAny(href, "?#") {
		return "", fmt.Errorf("%w: stylesheet %q is not a local relative path", ErrInvalidSite, href)
	}
	return filepath.FromSlash(clean), nil
}
