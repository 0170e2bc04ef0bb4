package novelsite

import (
	"fmt"
	"strings"
)

// PageData is everything one chapter page needs besides the Site.
type PageData struct {
	Chapter  Chapter
	Fragment string // Output of ToHTML, inserted verbatim
	Prev     Link
	Next     Link
}

// DisplayOrdinal formats an ordinal the way it appears in titles and
// headers: at least two digits.
func DisplayOrdinal(ordinal int) string {
	return fmt.Sprintf("%02d", ordinal)
}

// RenderPage builds the complete chapter document. Title and fragment are
// written unescaped; chapter text is trusted authored content.
func RenderPage(site Site, data PageData) string {
	num := DisplayOrdinal(data.Chapter.Ordinal)
	title := data.Chapter.Title

	var b strings.Builder
	b.Grow(len(data.Fragment) + 2048)

	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", site.Lang)
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "    <title>第%s章：%s | %s</title>\n", num, title, site.Name)
	writeFontLinks(&b, site)
	fmt.Fprintf(&b, "    <link rel=\"stylesheet\" href=\"%s\">\n", site.Stylesheet)
	b.WriteString("</head>\n<body class=\"chapter-page\">\n")

	b.WriteString("    <nav class=\"nav\">\n")
	b.WriteString("        <div class=\"nav-inner\">\n")
	fmt.Fprintf(&b, "            <a href=\"%s\" class=\"nav-title\">%s</a>\n", site.HomeHref, site.Name)
	b.WriteString("            <div class=\"nav-links\">\n")
	fmt.Fprintf(&b, "                <a href=\"%s\">%s</a>\n", site.TOCHref, site.Labels.TOC)
	b.WriteString("            </div>\n")
	b.WriteString("        </div>\n")
	b.WriteString("    </nav>\n\n")

	b.WriteString("    <header class=\"chapter-header\">\n")
	fmt.Fprintf(&b, "        <span class=\"chapter-number\">第 %s 章</span>\n", num)
	fmt.Fprintf(&b, "        <h1>%s</h1>\n", title)
	b.WriteString("    </header>\n\n")

	b.WriteString("    <article class=\"chapter-content\">\n")
	fmt.Fprintf(&b, "        %s\n", data.Fragment)
	b.WriteString("    </article>\n\n")

	b.WriteString("    <nav class=\"chapter-nav\">\n")
	fmt.Fprintf(&b, "        %s\n", navLink(data.Prev, site.Labels.Prev))
	fmt.Fprintf(&b, "        <a href=\"%s\">%s</a>\n", site.TOCHref, site.Labels.TOC)
	fmt.Fprintf(&b, "        %s\n", navLink(data.Next, site.Labels.Next))
	b.WriteString("    </nav>\n\n")

	b.WriteString("    <footer class=\"footer\">\n")
	fmt.Fprintf(&b, "        <p>© %d %s</p>\n", site.CopyrightYear, site.Holder())
	b.WriteString("    </footer>\n")
	b.WriteString("</body>\n</html>")

	return b.String()
}

// writeFontLinks emits the preconnect hints and the font stylesheet.
// Nothing is written when the site has no fonts.
func writeFontLinks(b *strings.Builder, site Site) {
	href := site.FontStylesheetURL()
	if href == "" {
		return
	}
	fmt.Fprintf(b, "    <link rel=\"preconnect\" href=\"%s\">\n", strings.TrimSuffix(site.FontBaseURL, "/"))
	if site.FontStaticURL != "" {
		fmt.Fprintf(b, "    <link rel=\"preconnect\" href=\"%s\" crossorigin>\n", strings.TrimSuffix(site.FontStaticURL, "/"))
	}
	fmt.Fprintf(b, "    <link href=\"%s\" rel=\"stylesheet\">\n", href)
}

// navLink renders a live anchor or an inert placeholder.
func navLink(l Link, label string) string {
	if !l.Enabled {
		return `<span class="disabled">` + label + `</span>`
	}
	return `<a href="` + l.Href + `">` + label + `</a>`
}
