package webapi

import "github.com/heathj/gobrowse/webidl"

// Reference is the set of calls a TokenList delegates to. Implementations
// forward each call to a host-owned token collection and must not cache its
// contents.
type Reference interface {
	Length() (webidl.UnsignedLong, error)
	Add(token string) error
	Remove(token string) error
	Toggle(token string) (bool, error)
	ToggleForce(token string, force bool) error
	Contains(token string) (bool, error)
}
