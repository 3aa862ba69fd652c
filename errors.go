package elemental

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument is returned by the package level functions when no host
	// document has been registered.
	ErrNoDocument = errors.New("elemental: no document registered")

	// ErrInvalidChild is returned for children that are neither strings nor
	// nodes.
	ErrInvalidChild = errors.New("elemental: invalid child")

	// ErrMalformedRoot is matched by MalformedRootError.
	ErrMalformedRoot = errors.New("elemental: expected html with a single root element")
)

// MalformedRootError reports markup that does not parse to exactly one
// top-level element.
type MalformedRootError struct {
	// Count is the number of top-level nodes found.
	Count int
	// Type is the type of the single node when Count is 1.
	Type NodeType
}

func (e *MalformedRootError) Error() string {
	if e.Count == 1 {
		return fmt.Sprintf("%s, got a %s node", ErrMalformedRoot, e.Type)
	}
	return fmt.Sprintf("%s, got %d nodes", ErrMalformedRoot, e.Count)
}

// Is reports whether target is ErrMalformedRoot.
func (e *MalformedRootError) Is(target error) bool {
	return target == ErrMalformedRoot
}
