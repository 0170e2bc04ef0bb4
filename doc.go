// Package novelsite turns a directory of numbered Markdown chapters into a
// set of linked static HTML pages for a web-published novel.
//
// # Quick Start
//
//	gen, err := novelsite.NewGenerator(novelsite.DefaultSite())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := gen.Generate(ctx, "chapters", "docs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Pages), "pages written")
//
// # Input Convention
//
// Chapter files are named NN-title.md, for example 01-爱丁堡的风.md. Files
// ending in .md that do not match the pattern are skipped silently and do
// not count toward navigation. Files are processed in filename order, so
// ordinals should be zero-padded to a consistent width.
//
// # Pipeline
//
// Each chapter goes through the same steps, one at a time:
//
//  1. Line endings are normalized and a leading "# Title" line is dropped
//  2. The body is split into paragraphs on blank lines
//  3. **bold** and *emphasis* spans become <strong> and <em>, single
//     newlines become <br>; nothing else is interpreted or escaped
//  4. The fragment is wrapped in the fixed page shell with prev/next links
//     and written to chapter-NN.html
//
// # Navigation
//
// By default prev/next links point at ordinal-1 and ordinal+1, which
// assumes contiguous numbering. Use WithLinkPolicy(PositionLinks) to link
// to the neighbouring files that actually exist.
//
// # Site Configuration
//
// Everything constant across pages (site name, copyright, fonts, labels,
// stylesheet and index hrefs) lives in Site. DefaultSite reproduces the
// 先凑合 site.
package novelsite
