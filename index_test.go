package novelsite

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-novelsite/internal/pipeline"
)

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	seq := Sequence{
		{Ordinal: 1, Title: "风"},
		{Ordinal: 2, Title: "雪 & 冰"},
		{Ordinal: 10, Title: "<月>"},
	}

	html, err := RenderIndex(DefaultSite(), seq, "", "<p>序</p>")
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}
	doc := parsePage(t, html)

	if got := doc.Find("header.index-header h1").Text(); got != "先凑合" {
		t.Errorf("heading = %q, want site name", got)
	}
	if got := doc.Find("section.chapter-list h2").Text(); got != "目录" {
		t.Errorf("list title = %q, want TOC label", got)
	}
	if id, _ := doc.Find("section.chapter-list").Attr("id"); id != "chapters" {
		t.Errorf("list id = %q, want chapters", id)
	}
	if got := doc.Find("section.intro p").Text(); got != "序" {
		t.Errorf("intro = %q, want 序", got)
	}

	wantHrefs := []string{"chapter-01.html", "chapter-02.html", "chapter-10.html"}
	wantText := []string{"第 01 章 · 风", "第 02 章 · 雪 & 冰", "第 10 章 · <月>"}
	items := doc.Find("section.chapter-list li a")
	if items.Length() != len(wantHrefs) {
		t.Fatalf("entries = %d, want %d", items.Length(), len(wantHrefs))
	}
	items.Each(func(i int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != wantHrefs[i] {
			t.Errorf("entry %d href = %q, want %q", i, href, wantHrefs[i])
		}
		if s.Text() != wantText[i] {
			t.Errorf("entry %d text = %q, want %q", i, s.Text(), wantText[i])
		}
	})

	// Titles are escaped in the index.
	if !strings.Contains(html, "&lt;月&gt;") {
		t.Error("index should escape chapter titles")
	}
}

func TestRenderIndex_Options(t *testing.T) {
	t.Parallel()

	site := DefaultSite()
	site.TOCHref = "contents.html"
	site.Fonts = nil

	html, err := RenderIndex(site, nil, "全部章节", "")
	if err != nil {
		t.Fatalf("RenderIndex() error = %v", err)
	}
	doc := parsePage(t, html)

	if got := doc.Find("section.chapter-list h2").Text(); got != "全部章节" {
		t.Errorf("list title = %q, want 全部章节", got)
	}
	if id, _ := doc.Find("section.chapter-list").Attr("id"); id != defaultTOCAnchor {
		t.Errorf("list id = %q, want %q", id, defaultTOCAnchor)
	}
	if doc.Find("section.intro").Length() != 0 {
		t.Error("intro section should be omitted when empty")
	}
	if doc.Find(`link[rel="preconnect"]`).Length() != 0 {
		t.Error("no preconnect links expected without fonts")
	}
	if doc.Find("section.chapter-list li").Length() != 0 {
		t.Error("empty sequence should list no chapters")
	}
}

func TestTOCAnchor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"index.html#chapters": "chapters",
		"/#toc":               "toc",
		"index.html":          "chapters",
		"index.html#":         "chapters",
		"":                    "chapters",
	}
	for href, want := range tests {
		if got := tocAnchor(href); got != want {
			t.Errorf("tocAnchor(%q) = %q, want %q", href, got, want)
		}
	}
}

func TestRenderIntro(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	intro := filepath.Join(dir, "intro.md")
	if err := os.WriteFile(intro, []byte("一个关于**风**的故事。\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	conv := pipeline.NewGoldmarkConverter()

	t.Run("no path", func(t *testing.T) {
		t.Parallel()

		got, err := renderIntro(context.Background(), conv, "")
		if err != nil || got != "" {
			t.Errorf("renderIntro(\"\") = %q, %v; want empty, nil", got, err)
		}
	})

	t.Run("markdown file", func(t *testing.T) {
		t.Parallel()

		got, err := renderIntro(context.Background(), conv, intro)
		if err != nil {
			t.Fatalf("renderIntro() error = %v", err)
		}
		if got != "<p>一个关于<strong>风</strong>的故事。</p>" {
			t.Errorf("renderIntro() = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := renderIntro(context.Background(), conv, filepath.Join(dir, "missing.md"))
		if !errors.Is(err, ErrReadIntro) || !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want ErrReadIntro wrapping fs.ErrNotExist", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := renderIntro(ctx, conv, intro)
		if !errors.Is(err, ErrRenderIndex) {
			t.Errorf("error = %v, want ErrRenderIndex", err)
		}
	})
}
