// Package proto implements the line-oriented text formats used to talk
// to a running UI: input actions going in, widget tree snapshots going
// out.
//
// Action format (one per line):
//
//	<kind> <k>=<v> <k>=<v> ...
//
// Tree format (deterministic, diff-friendly):
//
//	rev <uint64>
//	root <id>
//	node <id> <kind>
//	prop <id> <k>=<v> <k>=<v> ...
//	child <parent> <child>
//
// Values containing spaces, tabs, newlines, quotes, backslashes or '='
// are written in double quotes. Inside quotes \n, \t, \\ and \" are
// recognized escapes.
package proto

import (
	"sort"
	"strings"
)

const specials = " \t\n\\\"="

// EscapeValue encodes a value, quoting it if needed.
func EscapeValue(s string) string {
	if s != "" && !strings.ContainsAny(s, specials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// UnescapeValue decodes a possibly quoted value. Unknown escapes are
// kept verbatim.
func UnescapeValue(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\', '"':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatKV formats a key=value token.
func FormatKV(k, v string) string {
	return k + "=" + EscapeValue(v)
}

// ParseKV splits a key=value token.
func ParseKV(token string) (k, v string, ok bool) {
	k, v, ok = strings.Cut(token, "=")
	if !ok {
		return "", "", false
	}
	return k, UnescapeValue(v), true
}

// Tokenize splits a line on blanks. Quoted runs, including the quoted
// value of a k="v" token, are kept in one token.
func Tokenize(line string) []string {
	var (
		tokens []string
		cur    strings.Builder
		quoted bool
		inTok  bool
	)
	flush := func() {
		if inTok {
			tokens = append(tokens, cur.String())
			cur.Reset()
			inTok = false
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted && c == '\\' && i+1 < len(line):
			cur.WriteByte(c)
			cur.WriteByte(line[i+1])
			i++
		case c == '"':
			quoted = !quoted
			cur.WriteByte(c)
			inTok = true
		case !quoted && (c == ' ' || c == '\t'):
			flush()
		default:
			cur.WriteByte(c)
			inTok = true
		}
	}
	flush()
	return tokens
}

func formatKVs(b *strings.Builder, kvs map[string]string) {
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(FormatKV(k, kvs[k]))
	}
}

func parseKVs(tokens []string, into map[string]string) {
	for _, tok := range tokens {
		if k, v, ok := ParseKV(tok); ok {
			into[k] = v
		}
	}
}
