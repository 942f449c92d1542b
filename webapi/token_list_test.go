package webapi

import (
	"bytes"
	"testing"

	"github.com/heathj/gobrowse/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClassList returns a handle on the class list of a fresh div along with
// the element, so tests can mutate the host behind the handle's back.
func newClassList(t *testing.T, class *string) (*TokenList, *dom.Element) {
	t.Helper()
	e := dom.NewElement("div", dom.Htmlns)
	if class != nil {
		require.NoError(t, e.SetAttribute("class", *class))
	}
	ref, err := FromDOM(e.ClassList)
	require.NoError(t, err)
	l, err := NewTokenList(ref)
	require.NoError(t, err)
	return l, e
}

func strPtr(s string) *string { return &s }

func TestNewTokenListRejectsNil(t *testing.T) {
	_, err := NewTokenList(nil)
	assert.Error(t, err)
	_, err = FromDOM(nil)
	assert.Error(t, err)
}

func TestEndToEnd(t *testing.T) {
	l, e := newClassList(t, nil)

	require.NoError(t, l.Add("a"))
	require.NoError(t, l.Add("b"))
	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)

	on, err := l.Toggle("a")
	require.NoError(t, err)
	assert.False(t, on)
	n, err = l.Len()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)

	ok, err := l.Contains("b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.ToggleForce("c", true))
	ok, err = l.Contains("c")
	require.NoError(t, err)
	assert.True(t, ok)
	n, err = l.Len()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)

	assert.Equal(t, "b c", e.ClassName())
}

func TestAddThenContains(t *testing.T) {
	for _, token := range []string{"a", "-x", "ünï", "a:b"} {
		token := token
		t.Run(token, func(t *testing.T) {
			t.Parallel()
			l, _ := newClassList(t, strPtr("z"))
			require.NoError(t, l.Add(token))
			ok, err := l.Contains(token)
			require.NoError(t, err)
			assert.True(t, ok)

			// idempotent
			require.NoError(t, l.Add(token))
			n, err := l.Len()
			require.NoError(t, err)
			assert.Equal(t, uint32(2), n)
		})
	}
}

func TestRemoveThenNotContains(t *testing.T) {
	l, e := newClassList(t, strPtr("a b c"))
	require.NoError(t, l.Remove("b"))
	ok, err := l.Contains("b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Remove("b"))
	assert.Equal(t, "a c", e.ClassName())
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	for _, start := range []string{"", "t"} {
		start := start
		t.Run("start="+start, func(t *testing.T) {
			t.Parallel()
			l, _ := newClassList(t, strPtr(start))
			before, err := l.Contains("t")
			require.NoError(t, err)

			first, err := l.Toggle("t")
			require.NoError(t, err)
			second, err := l.Toggle("t")
			require.NoError(t, err)
			assert.Equal(t, !before, first)
			assert.Equal(t, before, second)

			after, err := l.Contains("t")
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestToggleForceIsIdempotent(t *testing.T) {
	for _, force := range []bool{true, false} {
		l, _ := newClassList(t, strPtr("t u"))
		for i := 0; i < 2; i++ {
			require.NoError(t, l.ToggleForce("t", force))
			ok, err := l.Contains("t")
			require.NoError(t, err)
			assert.Equal(t, force, ok)
		}
	}
}

func TestLenMatchesDistinctMembers(t *testing.T) {
	known := []string{"a", "b", "c", "d"}
	l, e := newClassList(t, strPtr("a b a c"))
	count := func() uint32 {
		var members uint32
		for _, token := range known {
			ok, err := l.Contains(token)
			require.NoError(t, err)
			if ok {
				members++
			}
		}
		return members
	}

	n, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, count(), n)

	// the handle reflects writes made outside of it
	require.NoError(t, e.SetAttribute("class", "d d b"))
	n, err = l.Len()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	assert.Equal(t, count(), n)
}

func TestHostRejectionIsDelegationFailure(t *testing.T) {
	l, e := newClassList(t, strPtr("a"))

	err := l.Add("")
	require.Error(t, err)
	assert.True(t, IsDelegationFailure(err))
	assert.ErrorIs(t, err, &dom.DOMException{Name: dom.SyntaxError})

	var de *DelegationError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "add", de.Op)

	var ex *dom.DOMException
	require.True(t, errors.As(errors.Cause(err), &ex))
	assert.Equal(t, dom.SyntaxError, ex.Name)

	err = l.ToggleForce("x y", true)
	assert.True(t, IsDelegationFailure(err))
	assert.ErrorIs(t, err, &dom.DOMException{Name: dom.InvalidCharacterError})
	assert.Equal(t, "a", e.ClassName())
}

func TestFailuresFromReferenceArePropagated(t *testing.T) {
	boom := errors.New("object is gone")
	ref := &mockReference{}
	ref.On("Length").Return(uint32(0), boom)
	ref.On("Add", "a").Return(boom)
	ref.On("Remove", "a").Return(boom)
	ref.On("Toggle", "a").Return(true, boom)
	ref.On("ToggleForce", "a", false).Return(boom)
	ref.On("Contains", "a").Return(true, boom)

	l, err := NewTokenList(ref)
	require.NoError(t, err)

	_, err = l.Len()
	assert.ErrorIs(t, err, ErrDelegation)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, l.Add("a"), ErrDelegation)
	assert.ErrorIs(t, l.Remove("a"), ErrDelegation)
	on, err := l.Toggle("a")
	assert.ErrorIs(t, err, ErrDelegation)
	assert.False(t, on)
	assert.ErrorIs(t, l.ToggleForce("a", false), ErrDelegation)
	ok, err := l.Contains("a")
	assert.ErrorIs(t, err, ErrDelegation)
	assert.False(t, ok)

	ref.AssertExpectations(t)
}

func TestCallsAreNotCached(t *testing.T) {
	ref := &mockReference{}
	ref.On("Length").Return(uint32(1), nil).Once()
	ref.On("Length").Return(uint32(5), nil).Once()
	ref.On("Contains", "a").Return(true, nil).Once()
	ref.On("Contains", "a").Return(false, nil).Once()

	l, err := NewTokenList(ref)
	require.NoError(t, err)

	n, _ := l.Len()
	assert.Equal(t, uint32(1), n)
	n, _ = l.Len()
	assert.Equal(t, uint32(5), n)
	ok, _ := l.Contains("a")
	assert.True(t, ok)
	ok, _ = l.Contains("a")
	assert.False(t, ok)

	ref.AssertExpectations(t)
}

func TestDelegationErrorMessage(t *testing.T) {
	err := delegationFailure("toggle", "x", errors.New("nope"))
	assert.EqualError(t, err, `token list delegation failed: toggle("x"): nope`)
	err = delegationFailure("length", "", errors.New("nope"))
	assert.EqualError(t, err, "token list delegation failed: length: nope")
	assert.NoError(t, delegationFailure("add", "x", nil))

	wrapped := delegationFailure("add", "x", err)
	assert.Same(t, err, wrapped)
}

func TestWithLoggerTracesCalls(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	e := dom.NewElement("div", dom.Htmlns)
	ref, err := FromDOM(e.ClassList)
	require.NoError(t, err)
	l, err := NewTokenList(ref, WithLogger(log))
	require.NoError(t, err)

	require.NoError(t, l.ToggleForce("a", true))
	require.Error(t, l.Remove(""))

	out := buf.String()
	assert.Contains(t, out, "method=toggle")
	assert.Contains(t, out, "force=true")
	assert.Contains(t, out, "token=a")
	assert.Contains(t, out, "method=remove")
	assert.Contains(t, out, "SyntaxError")
}
