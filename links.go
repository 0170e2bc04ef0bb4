package novelsite

import (
	"fmt"
	"strings"
)

// Link is one end of a page's prev/next navigation.
type Link struct {
	Href    string
	Enabled bool
}

// LinkPolicy computes the prev and next targets for the chapter at
// position i. Enabled is decided by position alone: the first chapter has no
// prev, the last has no next.
type LinkPolicy func(seq Sequence, i int) (prev, next Link)

// ChapterFilename returns the page name for an ordinal: chapter-01.html,
// chapter-123.html.
func ChapterFilename(ordinal int) string {
	return fmt.Sprintf("chapter-%02d.html", ordinal)
}

// OrdinalLinks points at ordinal-1 and ordinal+1. A gap in numbering
// produces links to pages that do not exist.
func OrdinalLinks(seq Sequence, i int) (prev, next Link) {
	n := seq[i].Ordinal
	prev = Link{Href: ChapterFilename(n - 1), Enabled: i > 0}
	next = Link{Href: ChapterFilename(n + 1), Enabled: i < len(seq)-1}
	return prev, next
}

// PositionLinks points at the neighbouring chapters in the sequence.
func PositionLinks(seq Sequence, i int) (prev, next Link) {
	if i > 0 {
		prev = Link{Href: seq[i-1].OutputName(), Enabled: true}
	}
	if i < len(seq)-1 {
		next = Link{Href: seq[i+1].OutputName(), Enabled: true}
	}
	return prev, next
}

// LinkPolicyByName maps a config name to a policy, ignoring case.
// Returns false for unknown names.
func LinkPolicyByName(name string) (LinkPolicy, bool) {
	switch strings.ToLower(name) {
	case "", "ordinal":
		return OrdinalLinks, true
	case "position":
		return PositionLinks, true
	}
	return nil, false
}
