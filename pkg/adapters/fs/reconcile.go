package fs

import (
	"slices"

	"github.com/aretw0/inikit/pkg/core"
)

// Decode builds a Document from a layout.
//
// Item lines before the first header, lines under a header with an unusable
// name and lines that are neither headers nor items are not part of the
// Document; they only live in the layout. A header repeated later in the
// file continues the same section. A repeated key keeps its first position
// and its last value.
func Decode(l *Layout) *core.Document {
	doc := core.NewDocument()
	section := ""
	for _, line := range l.Lines {
		if IsSectionHeader(line) {
			section = SectionName(line)
			if err := doc.AddSection(section); err != nil {
				section = ""
			}
			continue
		}
		if section == "" || !IsItemLine(line) {
			continue
		}
		key, value := SplitItem(line)
		_ = doc.Set(section, key, value)
	}
	return doc
}

// Reconcile rebuilds the file lines for doc on top of the previous layout.
//
//   - Headers of sections still in doc are kept; their item lines get the
//     current value, or are dropped if the item no longer exists.
//   - A header of a section no longer in doc drops its whole block.
//   - Items that are not in the file yet are inserted after the last item of
//     the section's last block.
//   - Sections that are not in the file yet are appended at the end, separated
//     by a blank line.
//   - Every other line (comments, blanks, unknown content) is kept verbatim.
func Reconcile(prev *Layout, doc *core.Document) *Layout {
	if prev == nil {
		prev = NewLayout()
	}
	out := &Layout{Newline: prev.newline(), BOM: prev.BOM}

	// Missing items go to the last block of a section that appears more than once.
	lastBlock := make(map[string]int)
	for i, line := range prev.Lines {
		if IsSectionHeader(line) {
			if name := SectionName(line); doc.HasSection(name) {
				lastBlock[name] = i
			}
		}
	}

	written := make(map[string]map[string]bool)
	var (
		current  string // recognized section being copied, "" outside of one
		header   int    // index in prev of current's header
		insertAt int    // index in out after current's last header or item
		skipping bool
	)

	closeBlock := func() {
		if current == "" || lastBlock[current] != header {
			return
		}
		var missing []string
		for _, key := range doc.Items(current) {
			if !written[current][key] {
				v, _ := doc.Get(current, key)
				missing = append(missing, FormatItem(key, v))
				written[current][key] = true
			}
		}
		out.Lines = slices.Insert(out.Lines, insertAt, missing...)
	}

	for i, line := range prev.Lines {
		if IsSectionHeader(line) {
			closeBlock()
			current, skipping = "", false

			name := SectionName(line)
			switch {
			case core.ValidateSectionName(name) != nil:
				out.Lines = append(out.Lines, line)
			case doc.HasSection(name):
				out.Lines = append(out.Lines, line)
				current, header, insertAt = name, i, len(out.Lines)
				if written[name] == nil {
					written[name] = make(map[string]bool)
				}
			default:
				skipping = true
			}
			continue
		}

		if skipping {
			continue
		}

		if current != "" && IsItemLine(line) {
			key, _ := SplitItem(line)
			if v, ok := doc.Get(current, key); ok {
				out.Lines = append(out.Lines, FormatItem(key, v))
				written[current][key] = true
				insertAt = len(out.Lines)
			}
			continue
		}

		out.Lines = append(out.Lines, line)
	}
	closeBlock()

	for _, name := range doc.Sections() {
		if _, ok := written[name]; ok {
			continue
		}
		if n := len(out.Lines); n > 0 && out.Lines[n-1] != "" {
			out.Lines = append(out.Lines, "")
		}
		out.Lines = append(out.Lines, FormatHeader(name))
		for _, key := range doc.Items(name) {
			v, _ := doc.Get(name, key)
			out.Lines = append(out.Lines, FormatItem(key, v))
		}
	}

	return out
}
