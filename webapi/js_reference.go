//go:build js && wasm

package webapi

import (
	"syscall/js"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// jsReference delegates to a browser DOMTokenList through syscall/js.
type jsReference struct {
	v js.Value
}

// FromJS adapts v, which must be an instance of the global DOMTokenList.
func FromJS(v js.Value) (Reference, error) {
	ctor := js.Global().Get("DOMTokenList")
	if ctor.Type() != js.TypeFunction {
		return nil, errors.New("DOMTokenList is not defined in this environment")
	}
	if v.Type() != js.TypeObject || !v.InstanceOf(ctor) {
		return nil, errors.Errorf("%s value is not a DOMTokenList", v.Type())
	}
	return jsReference{v: v}, nil
}

// ClassListOf adapts element.classList.
func ClassListOf(element js.Value) (Reference, error) {
	if element.Type() != js.TypeObject {
		return nil, errors.Errorf("%s value is not an element", element.Type())
	}
	return FromJS(element.Get("classList"))
}

// recoverJS turns a panic raised by syscall/js into an error. Exceptions
// thrown by the browser arrive as js.Error.
func recoverJS(op string, err *error) {
	rec := recover()
	if rec == nil {
		return
	}
	if jsErr, ok := rec.(js.Error); ok {
		// js.Error.Error reads .message, which panics on thrown primitives.
		if jsErr.Type() != js.TypeObject {
			*err = errors.Errorf("%s threw %s", op, jsErr.String())
			return
		}
		*err = errors.Wrapf(jsErr, "%s threw", op)
		return
	}
	*err = errors.Errorf("%s panicked: %v", op, rec)
}

func (r jsReference) call(method string, args ...interface{}) (res js.Value, err error) {
	defer recoverJS(method, &err)
	return r.v.Call(method, args...), nil
}

func (r jsReference) get(prop string) (res js.Value, err error) {
	defer recoverJS(prop, &err)
	return r.v.Get(prop), nil
}

func expectBool(op string, res js.Value) (bool, error) {
	if res.Type() != js.TypeBoolean {
		return false, errors.Errorf("%s returned %s, want boolean", op, res.Type())
	}
	return res.Bool(), nil
}

func (r jsReference) Length() (uint32, error) {
	res, err := r.get("length")
	if err != nil {
		return 0, err
	}
	if res.Type() != js.TypeNumber {
		return 0, errors.Errorf("length is %s, want number", res.Type())
	}
	n, err := safecast.Conv[uint32](res.Int())
	if err != nil {
		return 0, errors.Wrap(err, "length does not fit an unsigned long")
	}
	return n, nil
}

func (r jsReference) Add(token string) error {
	_, err := r.call("add", token)
	return err
}

func (r jsReference) Remove(token string) error {
	_, err := r.call("remove", token)
	return err
}

func (r jsReference) Toggle(token string) (bool, error) {
	res, err := r.call("toggle", token)
	if err != nil {
		return false, err
	}
	return expectBool("toggle", res)
}

func (r jsReference) ToggleForce(token string, force bool) error {
	_, err := r.call("toggle", token, force)
	return err
}

func (r jsReference) Contains(token string) (bool, error) {
	res, err := r.call("contains", token)
	if err != nil {
		return false, err
	}
	return expectBool("contains", res)
}
