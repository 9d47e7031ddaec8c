package core

import "strings"

// Enclosers are the opening and closing characters around a packed sub-item.
type Enclosers struct {
	Open  rune
	Close rune
}

// DefaultEnclosers packs sub-items as {KEY=VALUE}.
var DefaultEnclosers = Enclosers{Open: '{', Close: '}'}

// ParseEnclosers builds Enclosers from a two character string such as "{}" or "<>".
// Anything else yields DefaultEnclosers.
func ParseEnclosers(s string) Enclosers {
	r := []rune(s)
	if len(r) != 2 {
		return DefaultEnclosers
	}
	return Enclosers{Open: r[0], Close: r[1]}
}

func (e Enclosers) orDefault() Enclosers {
	if e.Open == 0 || e.Close == 0 {
		return DefaultEnclosers
	}
	return e
}

// PackSubItems encodes values as a single inline string, e.g. {K1=V1}{K2=V2}.
func PackSubItems(values *Values, enc Enclosers) string {
	enc = enc.orDefault()
	var b strings.Builder
	values.Range(func(k, v string) bool {
		b.WriteRune(enc.Open)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
		b.WriteRune(enc.Close)
		return true
	})
	return b.String()
}

// UnpackSubItems decodes a string produced by PackSubItems.
// Fragments that are not enclosed, empty, or unterminated are skipped. The value
// is everything after the first '=' of a group, so values may contain '='.
func UnpackSubItems(s string, enc Enclosers) *Values {
	enc = enc.orDefault()
	out := NewValues()
	open, closing := string(enc.Open), string(enc.Close)

	for {
		start := strings.Index(s, open)
		if start < 0 {
			break
		}
		rest := s[start+len(open):]
		end := strings.Index(rest, closing)
		if end < 0 {
			break
		}
		group := rest[:end]
		s = rest[end+len(closing):]

		if group == "" {
			continue
		}
		key, value, _ := strings.Cut(group, "=")
		if key == "" {
			continue
		}
		out.Set(key, value)
	}
	return out
}
