package scenario

import (
	"fmt"
	"strings"

	"github.com/heathj/gobrowse/dom"
	"github.com/heathj/gobrowse/webapi"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Result struct {
	Index int
	Step  Step
	// Got is nil for operations without a result.
	Got  interface{}
	Err  error
	Pass bool
}

func (r Result) Outcome() string {
	if r.Err != nil {
		var ex *dom.DOMException
		if errors.As(r.Err, &ex) {
			return "error " + ex.Name
		}
		return "error " + r.Err.Error()
	}
	if r.Got == nil {
		return "ok"
	}
	return fmt.Sprint(r.Got)
}

func (r Result) String() string {
	return fmt.Sprintf("%d. %s -> %s", r.Index, r.Step, r.Outcome())
}

type Report struct {
	Name    string
	Results []Result
	// Final is the attribute value after the last step, or nil when the
	// element has no such attribute.
	Final *string
}

func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Pass {
			return false
		}
	}
	return true
}

func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	return failed
}

// Transcript renders one line per step followed by the final attribute.
func (r *Report) Transcript() string {
	var b strings.Builder
	for _, res := range r.Results {
		b.WriteString(res.String())
		b.WriteByte('\n')
	}
	if r.Final == nil {
		b.WriteString("final: <absent>")
	} else {
		fmt.Fprintf(&b, "final: %q", *r.Final)
	}
	return b.String()
}

// Run executes the steps of s in order. Failing steps do not stop the run.
func Run(s *Scenario, log logrus.FieldLogger) (*Report, error) {
	element := dom.NewElement(s.Element.Name, dom.Htmlns)
	if s.Element.Value != nil {
		if err := element.SetAttribute(s.Element.Attribute, *s.Element.Value); err != nil {
			return nil, errors.Wrap(err, "preparing element")
		}
	}
	ref, err := webapi.FromDOM(element.TokenList(s.Element.Attribute))
	if err != nil {
		return nil, err
	}
	var opts []webapi.Option
	if log != nil {
		opts = append(opts, webapi.WithLogger(log.WithField("scenario", s.Name)))
	}
	list, err := webapi.NewTokenList(ref, opts...)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: s.Name}
	for i, step := range s.Steps {
		res := Result{Index: i + 1, Step: step}
		res.Got, res.Err = apply(list, element, s.Element.Attribute, step)
		res.Pass = check(step, res)
		report.Results = append(report.Results, res)
	}
	if v, ok := element.GetAttribute(s.Element.Attribute); ok {
		report.Final = &v
	}
	return report, nil
}

func apply(list *webapi.TokenList, element *dom.Element, attr string, step Step) (interface{}, error) {
	switch step.Op {
	case OpSize:
		return list.Len()
	case OpAdd:
		return nil, list.Add(step.Token)
	case OpRemove:
		return nil, list.Remove(step.Token)
	case OpToggle:
		return list.Toggle(step.Token)
	case OpToggleForce:
		return nil, list.ToggleForce(step.Token, step.Force)
	case OpContains:
		return list.Contains(step.Token)
	case OpSetAttribute:
		return nil, element.SetAttribute(attr, step.Value)
	}
	return nil, errors.Errorf("unknown op %q", step.Op)
}

func check(step Step, res Result) bool {
	if step.ExpectError != "" {
		var ex *dom.DOMException
		return errors.As(res.Err, &ex) && ex.Name == step.ExpectError
	}
	if res.Err != nil {
		return false
	}
	if step.Expect == nil {
		return true
	}
	return fmt.Sprint(step.Expect) == fmt.Sprint(res.Got)
}
