package fs

import (
	"bytes"
	"strings"
)

// Layout is the raw line content of a file as last read or written.
// It is kept apart from the Document and only used to rebuild the file on save.
type Layout struct {
	Lines   []string
	Newline string
	BOM     bool // the file starts with a UTF-8 byte order mark
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewLayout returns an empty layout using "\n" line endings.
func NewLayout() *Layout {
	return &Layout{Newline: "\n"}
}

// ParseLayout splits data into lines. The newline style is taken from the
// first line ending found; a trailing newline does not produce an empty last line.
// A leading byte order mark is recorded in BOM and kept out of the first line.
func ParseLayout(data []byte) *Layout {
	l := NewLayout()
	if bytes.HasPrefix(data, utf8BOM) {
		l.BOM = true
		data = data[len(utf8BOM):]
	}
	if len(data) == 0 {
		return l
	}
	if i := bytes.IndexByte(data, '\n'); i > 0 && data[i-1] == '\r' {
		l.Newline = "\r\n"
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		if l.Newline == "\r\n" {
			line = strings.TrimSuffix(line, "\r")
		}
		l.Lines = append(l.Lines, line)
	}
	return l
}

// Bytes renders the layout, terminating every line with the layout newline.
func (l *Layout) Bytes() []byte {
	var buf bytes.Buffer
	if l.BOM && len(l.Lines) > 0 {
		buf.Write(utf8BOM)
	}
	for _, line := range l.Lines {
		buf.WriteString(line)
		buf.WriteString(l.newline())
	}
	return buf.Bytes()
}

// Len returns the number of lines.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Lines)
}

func (l *Layout) newline() string {
	if l.Newline == "" {
		return "\n"
	}
	return l.Newline
}

// IsSectionHeader reports whether the first space-delimited token of line
// has the shape [name]... .
func IsSectionHeader(line string) bool {
	token, _, _ := strings.Cut(line, " ")
	return strings.HasPrefix(token, "[") && strings.Contains(token[1:], "]")
}

// SectionName extracts the name between the first '[' and the first ']' of a header line.
// Anything after the closing bracket is ignored.
func SectionName(line string) string {
	token, _, _ := strings.Cut(line, " ")
	name, _, _ := strings.Cut(strings.TrimPrefix(token, "["), "]")
	return name
}

// IsComment reports whether line starts with ';' or '#', ignoring leading blanks.
func IsComment(line string) bool {
	t := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(t, ";") || strings.HasPrefix(t, "#")
}

// IsItemLine reports whether line is a key=value item. Comments never are,
// even when they contain '='.
func IsItemLine(line string) bool {
	return line != "" && line[0] != '=' && strings.Contains(line, "=") && !IsComment(line)
}

// SplitItem splits an item line at its first '='. The value keeps any further '='.
func SplitItem(line string) (key, value string) {
	key, value, _ = strings.Cut(line, "=")
	return key, value
}

// FormatItem renders an item line.
func FormatItem(key, value string) string {
	return key + "=" + value
}

// FormatHeader renders a section header line.
func FormatHeader(name string) string {
	return "[" + name + "]"
}
