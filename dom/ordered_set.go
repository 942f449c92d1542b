package dom

import (
	"strings"

	"github.com/grafana/regexp"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// https://infra.spec.whatwg.org/#ascii-whitespace
var asciiWhitespace = regexp.MustCompile("[\t\n\f\r ]+")

// orderedSet is https://infra.spec.whatwg.org/#ordered-set over strings.
type orderedSet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func newOrderedSet() orderedSet {
	return orderedSet{m: orderedmap.New[string, struct{}]()}
}

// parseOrderedSet is https://dom.spec.whatwg.org/#concept-ordered-set-parser
func parseOrderedSet(input string) orderedSet {
	set := newOrderedSet()
	for _, token := range asciiWhitespace.Split(input, -1) {
		if token == "" {
			continue
		}
		set.append(token)
	}
	return set
}

func (s orderedSet) len() int {
	return s.m.Len()
}

func (s orderedSet) contains(token string) bool {
	_, ok := s.m.Get(token)
	return ok
}

// append keeps the position of a token that is already present.
func (s orderedSet) append(token string) {
	if s.contains(token) {
		return
	}
	s.m.Set(token, struct{}{})
}

func (s orderedSet) remove(token string) {
	s.m.Delete(token)
}

func (s orderedSet) item(i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		if i == 0 {
			return pair.Key, true
		}
		i--
	}
	return "", false
}

// replace swaps the first of token or replacement for replacement and drops
// the other one. https://infra.spec.whatwg.org/#set-replace
func (s orderedSet) replace(token, replacement string) orderedSet {
	out := newOrderedSet()
	placed := false
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == token || pair.Key == replacement {
			if !placed {
				out.append(replacement)
				placed = true
			}
			continue
		}
		out.append(pair.Key)
	}
	return out
}

func (s orderedSet) tokens() []string {
	tokens := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		tokens = append(tokens, pair.Key)
	}
	return tokens
}

// serialize is https://dom.spec.whatwg.org/#concept-ordered-set-serializer
func (s orderedSet) serialize() string {
	return strings.Join(s.tokens(), " ")
}

// asciiLowercase is https://infra.spec.whatwg.org/#ascii-lowercase
func asciiLowercase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
