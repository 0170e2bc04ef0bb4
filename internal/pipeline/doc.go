// Package pipeline holds the text stages shared by chapter and index pages:
//   - line-ending normalization applied to every chapter before transform
//   - full Markdown to HTML fragment conversion via Goldmark, used for the
//     optional index intro (chapter bodies use the restricted transformer
//     in the root package instead)
package pipeline
