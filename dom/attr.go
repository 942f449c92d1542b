package dom

import "github.com/heathj/gobrowse/webidl"

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	NamespaceURI webidl.DOMString
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Name         webidl.DOMString
	Value        webidl.DOMString
	OwnerElement *Element
	Specified    bool
}

// NewAttr creates an attribute in the null namespace owned by oe.
func NewAttr(name, value webidl.DOMString, oe *Element) *Attr {
	return &Attr{
		LocalName:    name,
		Name:         name,
		Value:        value,
		OwnerElement: oe,
		Specified:    true,
	}
}
