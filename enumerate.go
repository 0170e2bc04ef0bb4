package novelsite

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const markdownExt = ".md"

var chapterNamePattern = regexp.MustCompile(`^(\d+)-(.+)\.md$`)

// ListChapterFiles returns the names of the .md files directly inside dir,
// sorted ascending by name. Subdirectories are never entered. Names are not
// checked against the chapter pattern here.
func ListChapterFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInputDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ParseChapterFilename extracts ordinal and title from an NN-title.md name.
// ok is false when the name does not match; the caller skips such files.
func ParseChapterFilename(name string) (ch Chapter, ok bool) {
	m := chapterNamePattern.FindStringSubmatch(name)
	if m == nil {
		return Chapter{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only overflow is possible after \d+ matched.
		return Chapter{}, false
	}
	return Chapter{
		Filename: name,
		Digits:   m[1],
		Ordinal:  n,
		Title:    m[2],
	}, true
}

// FilterChapters parses names in order, returning recognized chapters
// (without content) and the names that were skipped.
func FilterChapters(names []string) (Sequence, []string) {
	var seq Sequence
	var skipped []string
	for _, name := range names {
		ch, ok := ParseChapterFilename(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		seq = append(seq, ch)
	}
	return seq, skipped
}
