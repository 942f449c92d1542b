package dom

// DOMTokenList is https://dom.spec.whatwg.org/#interface-domtokenlist
//
// The list keeps no token set of its own. Every call parses the associated
// attribute, so writes made through the element are visible immediately.
type DOMTokenList struct {
	element   *Element
	localName string
	// nil when the attribute defines no supported tokens.
	supported map[string]struct{}
}

func (l *DOMTokenList) tokenSet() orderedSet {
	v, _ := l.element.GetAttribute(l.localName)
	return parseOrderedSet(v)
}

// update is https://dom.spec.whatwg.org/#concept-dtl-update
func (l *DOMTokenList) update(set orderedSet) {
	if !l.element.HasAttribute(l.localName) && set.len() == 0 {
		return
	}
	l.element.setAttribute(l.localName, set.serialize())
}

func validateToken(token string) error {
	if token == "" {
		return newDOMException(SyntaxError, "the token must not be empty")
	}
	if asciiWhitespace.MatchString(token) {
		return newDOMException(InvalidCharacterError, "the token %q contains ASCII whitespace", token)
	}
	return nil
}

func validateTokens(tokens []string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	return nil
}

// Element returns the element the list is associated with.
func (l *DOMTokenList) Element() *Element {
	return l.element
}

// LocalName returns the name of the associated attribute.
func (l *DOMTokenList) LocalName() string {
	return l.localName
}

func (l *DOMTokenList) Length() int {
	return l.tokenSet().len()
}

// Item returns the token at index and false when index is out of range.
func (l *DOMTokenList) Item(index int) (string, bool) {
	return l.tokenSet().item(index)
}

func (l *DOMTokenList) Contains(token string) bool {
	return l.tokenSet().contains(token)
}

// Add is https://dom.spec.whatwg.org/#dom-domtokenlist-add
// No token is added when any of them is invalid.
func (l *DOMTokenList) Add(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	set := l.tokenSet()
	for _, token := range tokens {
		set.append(token)
	}
	l.update(set)
	return nil
}

// Remove is https://dom.spec.whatwg.org/#dom-domtokenlist-remove
func (l *DOMTokenList) Remove(tokens ...string) error {
	if err := validateTokens(tokens); err != nil {
		return err
	}
	set := l.tokenSet()
	for _, token := range tokens {
		set.remove(token)
	}
	l.update(set)
	return nil
}

// Toggle is https://dom.spec.whatwg.org/#dom-domtokenlist-toggle
// Only the first value of force is used.
func (l *DOMTokenList) Toggle(token string, force ...bool) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	set := l.tokenSet()
	if set.contains(token) {
		if len(force) == 0 || !force[0] {
			set.remove(token)
			l.update(set)
			return false, nil
		}
		return true, nil
	}
	if len(force) == 0 || force[0] {
		set.append(token)
		l.update(set)
		return true, nil
	}
	return false, nil
}

// Replace is https://dom.spec.whatwg.org/#dom-domtokenlist-replace
func (l *DOMTokenList) Replace(token, newToken string) (bool, error) {
	if token == "" || newToken == "" {
		return false, newDOMException(SyntaxError, "the token must not be empty")
	}
	if err := validateTokens([]string{token, newToken}); err != nil {
		return false, err
	}
	set := l.tokenSet()
	if !set.contains(token) {
		return false, nil
	}
	l.update(set.replace(token, newToken))
	return true, nil
}

// Supports is https://dom.spec.whatwg.org/#dom-domtokenlist-supports
func (l *DOMTokenList) Supports(token string) (bool, error) {
	if l.supported == nil {
		return false, newDOMException(TypeError, "%s attribute has no supported tokens", l.localName)
	}
	_, ok := l.supported[asciiLowercase(token)]
	return ok, nil
}

// Value returns the associated attribute value, or "" when it is absent.
func (l *DOMTokenList) Value() string {
	v, _ := l.element.GetAttribute(l.localName)
	return v
}

func (l *DOMTokenList) SetValue(v string) {
	l.element.setAttribute(l.localName, v)
}

func (l *DOMTokenList) String() string {
	return l.Value()
}

// Tokens returns a snapshot of the current tokens in order.
func (l *DOMTokenList) Tokens() []string {
	return l.tokenSet().tokens()
}
