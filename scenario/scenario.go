// Package scenario replays scripted token list operations against an element
// of the in-process DOM. Scenarios are TOML files:
//
//	name = "classes"
//
//	[element]
//	name = "div"
//	attribute = "class"
//	value = "a"
//
//	[[step]]
//	op = "toggle"
//	token = "a"
//	expect = false
package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Op string

const (
	OpSize        Op = "size"
	OpAdd         Op = "add"
	OpRemove      Op = "remove"
	OpToggle      Op = "toggle"
	OpToggleForce Op = "toggle_force"
	OpContains    Op = "contains"
	// OpSetAttribute writes the attribute directly on the element, the way
	// other code in the host would.
	OpSetAttribute Op = "set_attribute"
)

var knownOps = map[Op]bool{
	OpSize:         true,
	OpAdd:          true,
	OpRemove:       true,
	OpToggle:       true,
	OpToggleForce:  true,
	OpContains:     true,
	OpSetAttribute: true,
}

type Scenario struct {
	Name    string  `toml:"name"`
	Element Element `toml:"element"`
	Steps   []Step  `toml:"step"`
}

type Element struct {
	Name      string `toml:"name"`
	Attribute string `toml:"attribute"`
	// Value is nil when the element starts without the attribute.
	Value *string `toml:"value"`
}

type Step struct {
	Op    Op     `toml:"op"`
	Token string `toml:"token"`
	Force bool   `toml:"force"`
	Value string `toml:"value"`
	// Expect is compared with the formatted result of the operation.
	Expect interface{} `toml:"expect"`
	// ExpectError names the DOMException the step must fail with.
	ExpectError string `toml:"expect_error"`
}

func (s Step) String() string {
	switch s.Op {
	case OpSize:
		return "size()"
	case OpToggleForce:
		return fmt.Sprintf("toggle_force(%q, %t)", s.Token, s.Force)
	case OpSetAttribute:
		return fmt.Sprintf("set_attribute(%q)", s.Value)
	default:
		return fmt.Sprintf("%s(%q)", s.Op, s.Token)
	}
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes a scenario and fills in element defaults.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key %s", undecoded[0])
	}
	if s.Element.Name == "" {
		s.Element.Name = "div"
	}
	if s.Element.Attribute == "" {
		s.Element.Attribute = "class"
	}
	for i, step := range s.Steps {
		if !knownOps[step.Op] {
			return nil, errors.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
	}
	return &s, nil
}
