package webapi

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TokenList is a handle to a host-owned DOMTokenList. It holds nothing but
// the reference, so every call observes changes made elsewhere in the host.
//
// https://developer.mozilla.org/en-US/docs/Web/API/DOMTokenList
type TokenList struct {
	ref Reference
	log logrus.FieldLogger
}

type Option func(*TokenList)

// WithLogger logs every delegated call at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *TokenList) {
		l.log = log
	}
}

// NewTokenList binds a handle to ref.
func NewTokenList(ref Reference, opts ...Option) (*TokenList, error) {
	if ref == nil {
		return nil, errors.New("token list reference must not be nil")
	}
	l := &TokenList{ref: ref}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *TokenList) trace(method, token string, err error, extra ...logrus.Fields) {
	if l.log == nil {
		return
	}
	entry := l.log.WithField("method", method)
	if token != "" {
		entry = entry.WithField("token", token)
	}
	for _, fields := range extra {
		entry = entry.WithFields(fields)
	}
	if err != nil {
		entry.WithError(err).Debug("[TOKENLIST]: call failed")
		return
	}
	entry.Debug("[TOKENLIST]: call delegated")
}

// Len returns the number of tokens in the list.
// https://dom.spec.whatwg.org/#dom-domtokenlist-length
func (l *TokenList) Len() (uint32, error) {
	n, err := l.ref.Length()
	err = delegationFailure("length", "", err)
	l.trace("length", "", err)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Add adds token to the underlying attribute. Adding a present token leaves
// the list unchanged.
// https://dom.spec.whatwg.org/#dom-domtokenlist-add
func (l *TokenList) Add(token string) error {
	err := delegationFailure("add", token, l.ref.Add(token))
	l.trace("add", token, err)
	return err
}

// Remove removes token from the underlying attribute. Removing an absent
// token leaves the list unchanged.
// https://dom.spec.whatwg.org/#dom-domtokenlist-remove
func (l *TokenList) Remove(token string) error {
	err := delegationFailure("remove", token, l.ref.Remove(token))
	l.trace("remove", token, err)
	return err
}

// Toggle removes token and returns false if it is present, otherwise adds it
// and returns true.
// https://dom.spec.whatwg.org/#dom-domtokenlist-toggle
func (l *TokenList) Toggle(token string) (bool, error) {
	on, err := l.ref.Toggle(token)
	err = delegationFailure("toggle", token, err)
	l.trace("toggle", token, err)
	if err != nil {
		return false, err
	}
	return on, nil
}

// ToggleForce is a one-way toggle: true only adds token, false only removes
// it.
func (l *TokenList) ToggleForce(token string, force bool) error {
	err := delegationFailure("toggle", token, l.ref.ToggleForce(token, force))
	l.trace("toggle", token, err, logrus.Fields{"force": force})
	return err
}

// Contains reports whether token is in the list.
// https://dom.spec.whatwg.org/#dom-domtokenlist-contains
func (l *TokenList) Contains(token string) (bool, error) {
	ok, err := l.ref.Contains(token)
	err = delegationFailure("contains", token, err)
	l.trace("contains", token, err)
	if err != nil {
		return false, err
	}
	return ok, nil
}
