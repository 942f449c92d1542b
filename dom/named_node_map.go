package dom

import (
	"github.com/heathj/gobrowse/webidl"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NamedNodeMap is https://dom.spec.whatwg.org/#namednodemap
// Attributes keep their insertion order.
type NamedNodeMap struct {
	attrs             *orderedmap.OrderedMap[webidl.DOMString, *Attr]
	AssociatedElement *Element
}

func NewNamedNodeMap(oe *Element) *NamedNodeMap {
	return &NamedNodeMap{
		attrs:             orderedmap.New[webidl.DOMString, *Attr](),
		AssociatedElement: oe,
	}
}

func (n *NamedNodeMap) Length() int {
	return n.attrs.Len()
}

// Item returns the attribute at index i in insertion order.
func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 {
		return nil
	}
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		if i == 0 {
			return pair.Value
		}
		i--
	}
	return nil
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	return n.getAttributeByName(qn)
}

func (n *NamedNodeMap) qualify(qn webidl.DOMString) webidl.DOMString {
	if n.AssociatedElement != nil && n.AssociatedElement.NamespaceURI == Htmlns {
		return webidl.DOMString(asciiLowercase(string(qn)))
	}
	return qn
}

func (n *NamedNodeMap) getAttributeByName(qn webidl.DOMString) *Attr {
	if v, ok := n.attrs.Get(n.qualify(qn)); ok {
		return v
	}
	return nil
}

// SetNamedItem adds attr, replacing any attribute with the same name in
// place. The replaced attribute is returned.
func (n *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	attr.OwnerElement = n.AssociatedElement
	old, _ := n.attrs.Set(n.qualify(attr.Name), attr)
	if old == attr {
		return nil
	}
	return old
}

// RemoveNamedItem removes the attribute named qn. It returns NotFoundError
// when there is no such attribute.
func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) (*Attr, error) {
	old, ok := n.attrs.Delete(n.qualify(qn))
	if !ok {
		return nil, newDOMException(NotFoundError, "no attribute named %q", qn)
	}
	old.OwnerElement = nil
	return old, nil
}

func (n *NamedNodeMap) names() []string {
	names := make([]string, 0, n.attrs.Len())
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, string(pair.Key))
	}
	return names
}
