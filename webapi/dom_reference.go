package webapi

import (
	"fortio.org/safecast"
	"github.com/heathj/gobrowse/dom"
	"github.com/pkg/errors"
)

// domReference delegates to a token list of the in-process DOM.
type domReference struct {
	list *dom.DOMTokenList
}

// FromDOM adapts a token list of the in-process DOM. DOM exceptions raised
// by the list are returned unchanged and stay reachable with errors.As.
func FromDOM(list *dom.DOMTokenList) (Reference, error) {
	if list == nil {
		return nil, errors.New("dom token list must not be nil")
	}
	return domReference{list: list}, nil
}

func (r domReference) Length() (uint32, error) {
	n, err := safecast.Conv[uint32](r.list.Length())
	if err != nil {
		return 0, errors.Wrap(err, "length does not fit an unsigned long")
	}
	return n, nil
}

func (r domReference) Add(token string) error {
	return r.list.Add(token)
}

func (r domReference) Remove(token string) error {
	return r.list.Remove(token)
}

func (r domReference) Toggle(token string) (bool, error) {
	return r.list.Toggle(token)
}

func (r domReference) ToggleForce(token string, force bool) error {
	_, err := r.list.Toggle(token, force)
	return err
}

func (r domReference) Contains(token string) (bool, error) {
	return r.list.Contains(token), nil
}
