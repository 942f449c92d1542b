package dom

import "fmt"

// DOMException names used by this package.
// https://webidl.spec.whatwg.org/#idl-DOMException-error-names
const (
	SyntaxError           = "SyntaxError"
	InvalidCharacterError = "InvalidCharacterError"
	NotFoundError         = "NotFoundError"
	// TypeError is an ECMAScript error rather than a DOMException name, but
	// the DOM throws it from Supports and callers match on it the same way.
	TypeError = "TypeError"
)

var legacyCodes = map[string]uint16{
	"IndexSizeError":             1,
	"HierarchyRequestError":      3,
	"WrongDocumentError":         4,
	InvalidCharacterError:        5,
	"NoModificationAllowedError": 7,
	NotFoundError:                8,
	"NotSupportedError":          9,
	"InUseAttributeError":        10,
	"InvalidStateError":          11,
	SyntaxError:                  12,
	"InvalidModificationError":   13,
	"NamespaceError":             14,
	"InvalidAccessError":         15,
}

// DOMException is https://webidl.spec.whatwg.org/#idl-DOMException
type DOMException struct {
	Name    string
	Message string
}

func newDOMException(name, format string, args ...interface{}) *DOMException {
	return &DOMException{Name: name, Message: fmt.Sprintf(format, args...)}
}

func (e *DOMException) Error() string {
	return e.Name + ": " + e.Message
}

// Code returns the legacy numeric code for the exception name, or 0 when the
// name has none.
func (e *DOMException) Code() uint16 {
	return legacyCodes[e.Name]
}

// Is matches another *DOMException with the same name so callers can test
// against a template such as &DOMException{Name: SyntaxError}.
func (e *DOMException) Is(target error) bool {
	t, ok := target.(*DOMException)
	if !ok {
		return false
	}
	return t.Name == e.Name
}
