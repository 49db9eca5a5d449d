package variables

import "strings"

// Token is one `{name}` or `{name.suffix}` placeholder found in a template.
type Token struct {
	Raw    string // full token text including braces
	Name   string
	Suffix Suffix
	Offset int // byte offset of '{' in the template
}

// ScanTokens finds every well-formed placeholder in a template. Malformed
// brace sequences (empty, nested, unclosed, or with an unknown suffix
// spelling) are skipped entirely so they pass through rendering untouched.
func ScanTokens(template string) []Token {
	var tokens []Token
	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			break
		}
		open += i
		close := strings.IndexByte(template[open+1:], '}')
		if close < 0 {
			break
		}
		close += open + 1
		inner := template[open+1 : close]
		if nested := strings.IndexByte(inner, '{'); nested >= 0 {
			i = open + 1 + nested
			continue
		}
		name, suffix, ok := splitToken(inner)
		if ok {
			tokens = append(tokens, Token{
				Raw:    template[open : close+1],
				Name:   name,
				Suffix: suffix,
				Offset: open,
			})
		}
		i = close + 1
	}
	return tokens
}

func splitToken(inner string) (string, Suffix, bool) {
	name := inner
	suffix := SuffixBase
	if dot := strings.IndexByte(inner, '.'); dot >= 0 {
		name = inner[:dot]
		// An explicit dot requires a suffix spelling after it.
		parsed, ok := ParseSuffix(inner[dot+1:])
		if !ok || parsed == SuffixBase {
			return "", 0, false
		}
		suffix = parsed
	}
	if !validIdentifier(name) {
		return "", 0, false
	}
	return name, suffix, true
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
