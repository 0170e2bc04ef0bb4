// Package assets provides the embedded default stylesheet for generated sites.
//
// Chapter pages reference a single stylesheet (style.css by default). The
// generator only writes it when asked to; otherwise the site owner keeps a
// hand-written one next to the pages.
//
// Styles are looked up by bare name:
//
//	styles/
//	└── {name}.css           # e.g. default.css
package assets
