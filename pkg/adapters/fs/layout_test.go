package fs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		lines   []string
		newline string
	}{
		{"Empty", "", nil, "\n"},
		{"Trailing Newline", "[A]\nx=1\n", []string{"[A]", "x=1"}, "\n"},
		{"No Trailing Newline", "[A]\nx=1", []string{"[A]", "x=1"}, "\n"},
		{"Trailing Blank Line", "[A]\n\n", []string{"[A]", ""}, "\n"},
		{"CRLF", "[A]\r\nx=1\r\n", []string{"[A]", "x=1"}, "\r\n"},
		{"LF Keeps Stray CR", "[A]\nx=1\r\n", []string{"[A]", "x=1\r"}, "\n"},
		{"Single Newline", "\n", []string{""}, "\n"},
		{"Byte Order Mark", "\uFEFF[A]\r\nx=1\r\n", []string{"[A]", "x=1"}, "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ParseLayout([]byte(tt.data))
			if diff := cmp.Diff(tt.lines, l.Lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if l.Newline != tt.newline {
				t.Errorf("expected newline %q, got %q", tt.newline, l.Newline)
			}
		})
	}
}

func TestLayoutByteOrderMark(t *testing.T) {
	data := "\uFEFF[CONFIG]\nMaxDificult=2\n"
	l := ParseLayout([]byte(data))
	if !l.BOM {
		t.Fatal("expected BOM to be recorded")
	}
	if !IsSectionHeader(l.Lines[0]) {
		t.Errorf("first line should be a header, got %q", l.Lines[0])
	}
	if got := string(l.Bytes()); got != data {
		t.Errorf("BOM lost on write: %q", got)
	}

	doc := Decode(l)
	if v, ok := doc.Get("CONFIG", "MaxDificult"); !ok || v != "2" {
		t.Errorf("first section lost: %q, %v", v, ok)
	}
	if got := string(Reconcile(l, doc).Bytes()); got != data {
		t.Errorf("reconcile changed the file: %q", got)
	}
}

func TestLayoutBytes(t *testing.T) {
	l := &Layout{Lines: []string{"[A]", "x=1"}, Newline: "\r\n"}
	if got := string(l.Bytes()); got != "[A]\r\nx=1\r\n" {
		t.Errorf("unexpected bytes %q", got)
	}

	var empty Layout
	if got := empty.Bytes(); len(got) != 0 {
		t.Errorf("expected no bytes, got %q", got)
	}
	if empty.Len() != 0 {
		t.Errorf("expected zero length")
	}
}

func TestLineGrammar(t *testing.T) {
	headers := []struct {
		line   string
		header bool
		name   string
	}{
		{"[CONFIG]", true, "CONFIG"},
		{"[Q1] trailing words", true, "Q1"},
		{"[Q1]junk", true, "Q1"},
		{"[]", true, ""},
		{"[a b]", false, ""},
		{" [A]", false, ""},
		{"x=[A]", false, ""},
		{"[", false, ""},
	}
	for _, h := range headers {
		if got := IsSectionHeader(h.line); got != h.header {
			t.Errorf("IsSectionHeader(%q) = %v, want %v", h.line, got, h.header)
		}
		if h.header {
			if got := SectionName(h.line); got != h.name {
				t.Errorf("SectionName(%q) = %q, want %q", h.line, got, h.name)
			}
		}
	}

	items := []struct {
		line string
		item bool
	}{
		{"a=1", true},
		{"a=", true},
		{"Question=2+2=?", true},
		{"=1", false},
		{"", false},
		{"no assignment", false},
		{"; a=1", false},
		{"  # a=1", false},
	}
	for _, it := range items {
		if got := IsItemLine(it.line); got != it.item {
			t.Errorf("IsItemLine(%q) = %v, want %v", it.line, got, it.item)
		}
	}

	key, value := SplitItem("Question=2+2=?")
	if key != "Question" || value != "2+2=?" {
		t.Errorf("SplitItem: got %q, %q", key, value)
	}
}
