package numeric

import "strings"

// Parse parses a numeric literal per spec.md §4.1/§6: whitespace outside of
// `{...}` escapes is ignored; an optional leading "<base>'" or `<base>"`
// prefix overrides defaultBase; `{...}` ASCII escapes (hex specialization
// only) convert their contents to hex byte codes. An empty literal parses
// to Null.
func Parse(raw string, defaultBase int, allowEscape bool) (Value, error) {
	base := defaultBase

	body := raw
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	if i > 0 && i < len(body) && (body[i] == '\'' || body[i] == '"') {
		n := 0
		for _, c := range body[:i] {
			n = n*10 + int(c-'0')
		}
		base = n
		body = body[i+1:]
	}

	var sb strings.Builder
	inBrace := false
	for _, r := range body {
		switch {
		case r == '{':
			inBrace = true
			sb.WriteRune(r)
		case r == '}':
			inBrace = false
			sb.WriteRune(r)
		case !inBrace && isSpace(r):
			// skip whitespace outside of an escape
		default:
			sb.WriteRune(r)
		}
	}
	body = sb.String()

	if allowEscape && base == 16 && strings.ContainsRune(body, '{') {
		var err error
		body, err = asciiHexEscape(body)
		if err != nil {
			return Value{}, err
		}
	}

	if body == "" {
		return Null, nil
	}
	return New(body, base)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
