package htmldom

import (
	"strings"
	"unicode/utf8"

	"github.com/speedata/css/scanner"
)

// declaration is one property: value pair of an inline style. The value
// is the source text between the colon and the semicolon.
type declaration struct {
	key   string
	value string
}

// byteOffset converts the 1-based line and rune column of a scanner token
// into a byte offset in text.
func byteOffset(text string, tok *scanner.Token) int {
	i := 0
	for l := 1; l < tok.Line; l++ {
		nl := strings.IndexByte(text[i:], '\n')
		if nl < 0 {
			return len(text)
		}
		i += nl + 1
	}
	for c := 1; c < tok.Column && i < len(text); c++ {
		_, w := utf8.DecodeRuneInString(text[i:])
		i += w
	}
	return i
}

// parseDeclarations splits the contents of a style attribute into
// declarations. The scanner only locates the top level colons and
// semicolons, so strings, escapes and comments inside a value are kept as
// written. Declarations without a colon are dropped. The second return
// value is false if the scanner stopped at an unclosed string or comment;
// an unclosed string runs to the end of text.
func parseDeclarations(text string) ([]declaration, bool) {
	var decls []declaration
	start, colon, level := 0, -1, 0
	flush := func(end int) {
		if colon >= start {
			key := strings.ToLower(strings.TrimSpace(text[start:colon]))
			value := strings.TrimSpace(text[colon+1 : end])
			if key != "" && value != "" {
				decls = setDeclaration(decls, key, value)
			}
		}
		colon = -1
		start = end + 1
	}
	s := scanner.New(text)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.EOF:
			flush(len(text))
			return decls, true
		case scanner.Error:
			if strings.Contains(tok.Value, "comment") {
				flush(byteOffset(text, tok))
			} else {
				flush(len(text))
			}
			return decls, false
		case scanner.Function:
			level++
		case scanner.Delim:
			switch tok.Value {
			case "(":
				level++
			case ")":
				if level > 0 {
					level--
				}
			case ":":
				if level == 0 && colon < 0 {
					colon = byteOffset(text, tok)
				}
			case ";":
				if level == 0 {
					flush(byteOffset(text, tok))
				}
			}
		}
	}
}

// setDeclaration replaces the value of key or appends a new declaration.
// An empty value removes key.
func setDeclaration(decls []declaration, key, value string) []declaration {
	for i, d := range decls {
		if d.key != key {
			continue
		}
		if value == "" {
			return append(decls[:i], decls[i+1:]...)
		}
		decls[i].value = value
		return decls
	}
	if value == "" {
		return decls
	}
	return append(decls, declaration{key: key, value: value})
}

func serializeDeclarations(decls []declaration) string {
	ret := make([]string, 0, len(decls))
	for _, d := range decls {
		ret = append(ret, d.key+": "+d.value+";")
	}
	return strings.Join(ret, " ")
}

// style is the inline style object of an element. It reads and writes the
// style attribute on every call.
type style struct {
	el *Element
}

func (s style) declarations() []declaration {
	text, ok := s.el.GetAttribute("style")
	if !ok {
		return nil
	}
	decls, _ := parseDeclarations(text)
	return decls
}

// SetProperty sets the CSS property name. An empty value removes it. A
// value that does not form exactly one declaration, such as one containing
// a top level semicolon or an unclosed string, is ignored.
func (s style) SetProperty(name, value string) {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	if name == "" {
		return
	}
	if value != "" {
		d, ok := parseDeclarations(name + ": " + value)
		if !ok || len(d) != 1 || d[0].key != name || d[0].value != value {
			return
		}
	}
	decls := setDeclaration(s.declarations(), name, value)
	if len(decls) == 0 {
		s.el.RemoveAttribute("style")
		return
	}
	s.el.setAttr("style", serializeDeclarations(decls))
}

// GetPropertyValue returns the value of name or the empty string.
func (s style) GetPropertyValue(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range s.declarations() {
		if d.key == name {
			return d.value
		}
	}
	return ""
}

// CSSText returns the normalized declarations.
func (s style) CSSText() string {
	return serializeDeclarations(s.declarations())
}
