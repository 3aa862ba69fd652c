package htmldom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidCharacter corresponds to the DOM InvalidCharacterError. It
	// is returned for invalid tag, attribute and class names.
	ErrInvalidCharacter = errors.New("htmldom: invalid character")

	// ErrSyntax corresponds to the DOM SyntaxError.
	ErrSyntax = errors.New("htmldom: syntax error")

	// ErrHierarchy corresponds to the DOM HierarchyRequestError.
	ErrHierarchy = errors.New("htmldom: hierarchy request error")

	// ErrForeignNode is returned when a node from another host is inserted.
	ErrForeignNode = errors.New("htmldom: node does not belong to this host")
)

// validateName checks name against the XML Name production, which is what
// createElement and setAttribute require.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCharacter)
	}
	for i, r := range name {
		if (i == 0 && !isNameStart(r)) || (i > 0 && !isNameChar(r)) {
			return fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, r, name)
		}
	}
	return nil
}

func isNameStart(r rune) bool {
	return r == ':' || r == '_' || unicode.IsLetter(r) || r >= 0x80 && !unicode.IsSpace(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}

// validateToken checks a class token the way DOMTokenList.add does.
func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrSyntax)
	}
	if strings.ContainsAny(token, " \t\n\f\r") {
		return fmt.Errorf("%w: token %q contains whitespace", ErrInvalidCharacter, token)
	}
	return nil
}
