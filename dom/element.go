package dom

import (
	"sort"
	"strings"

	"github.com/heathj/gobrowse/webidl"
)

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is https://dom.spec.whatwg.org/#interface-element
// Only the attribute surface that token lists depend on is modelled.
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName webidl.DOMString
	ClassList         *DOMTokenList
	Attributes        *NamedNodeMap

	tokenLists map[webidl.DOMString]*DOMTokenList
}

// NewElement creates an element with no attributes. HTML elements have their
// local name lowercased.
func NewElement(localName string, ns Namespace) *Element {
	if ns == Htmlns {
		localName = asciiLowercase(localName)
	}
	e := &Element{
		NamespaceURI: ns,
		LocalName:    webidl.DOMString(localName),
		tokenLists:   map[webidl.DOMString]*DOMTokenList{},
	}
	e.Attributes = NewNamedNodeMap(e)
	e.ClassList = e.TokenList("class")
	return e
}

// NewHTMLElement creates an HTML element and sets attrs on it in name order.
func NewHTMLElement(localName string, attrs map[string]string) (*Element, error) {
	e := NewElement(localName, Htmlns)
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := e.SetAttribute(name, attrs[name]); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func validateAttributeName(qn string) error {
	if qn == "" || asciiWhitespace.MatchString(qn) || strings.ContainsAny(qn, "/>=\"'") {
		return newDOMException(InvalidCharacterError, "%q is not a valid attribute name", qn)
	}
	return nil
}

func (e *Element) HasAttributes() bool {
	return e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	return e.Attributes.names()
}

// GetAttribute returns the value of the attribute and whether it exists.
func (e *Element) GetAttribute(qualifiedName string) (string, bool) {
	attr := e.Attributes.GetNamedItem(webidl.DOMString(qualifiedName))
	if attr == nil {
		return "", false
	}
	return string(attr.Value), true
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(webidl.DOMString(qualifiedName)) != nil
}

// SetAttribute is https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) error {
	if err := validateAttributeName(qualifiedName); err != nil {
		return err
	}
	e.setAttribute(qualifiedName, value)
	return nil
}

func (e *Element) setAttribute(qualifiedName, value string) {
	name := e.Attributes.qualify(webidl.DOMString(qualifiedName))
	if attr := e.Attributes.GetNamedItem(name); attr != nil {
		attr.Value = webidl.DOMString(value)
		return
	}
	e.Attributes.SetNamedItem(NewAttr(name, webidl.DOMString(value), e))
}

// RemoveAttribute is a no-op when the attribute does not exist.
func (e *Element) RemoveAttribute(qualifiedName string) {
	_, _ = e.Attributes.RemoveNamedItem(webidl.DOMString(qualifiedName))
}

// ToggleAttribute is https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) (bool, error) {
	if err := validateAttributeName(qualifiedName); err != nil {
		return false, err
	}
	if !e.HasAttribute(qualifiedName) {
		if len(force) == 0 || force[0] {
			e.setAttribute(qualifiedName, "")
			return true, nil
		}
		return false, nil
	}
	if len(force) == 0 || !force[0] {
		e.RemoveAttribute(qualifiedName)
		return false, nil
	}
	return true, nil
}

func (e *Element) ClassName() string {
	v, _ := e.GetAttribute("class")
	return v
}

func (e *Element) SetClassName(v string) {
	e.setAttribute("class", v)
}

// TokenList returns the live token list for the attribute localName. The same
// list is returned on every call for a given attribute.
func (e *Element) TokenList(localName string) *DOMTokenList {
	key := e.Attributes.qualify(webidl.DOMString(localName))
	if l, ok := e.tokenLists[key]; ok {
		return l
	}
	l := &DOMTokenList{
		element:   e,
		localName: string(key),
		supported: supportedTokens(string(e.LocalName), string(key)),
	}
	e.tokenLists[key] = l
	return l
}
