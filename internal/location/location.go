// Package location models the navigable location (path plus query string)
// the search text is mirrored into.
package location

import (
	"fmt"
	"net/url"
)

// Location exposes the current query parameters and a way to move to a new
// location.
type Location interface {
	Query() url.Values
	Navigate(target string) error
}

// Memory is an in-process Location with a history stack.
type Memory struct {
	history []*url.URL
}

// NewMemory starts at initial, which defaults to "/".
func NewMemory(initial string) (*Memory, error) {
	if initial == "" {
		initial = "/"
	}
	u, err := parse(initial)
	if err != nil {
		return nil, err
	}
	return &Memory{history: []*url.URL{u}}, nil
}

func parse(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", target, err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

func (m *Memory) current() *url.URL {
	return m.history[len(m.history)-1]
}

// Query returns the parsed query of the current location. Malformed pairs
// are skipped.
func (m *Memory) Query() url.Values {
	q, _ := url.ParseQuery(m.current().RawQuery)
	return q
}

// Navigate pushes target onto the history. A target without a path keeps
// the current one.
func (m *Memory) Navigate(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid location %q: %w", target, err)
	}
	if u.Path == "" {
		u.Path = m.current().Path
	}
	m.history = append(m.history, u)
	return nil
}

// Back returns to the previous location. It reports false at the start of
// the history.
func (m *Memory) Back() bool {
	if len(m.history) <= 1 {
		return false
	}
	m.history = m.history[:len(m.history)-1]
	return true
}

// Current returns the current location as a string.
func (m *Memory) Current() string {
	return m.current().String()
}

// History returns every visited location, oldest first.
func (m *Memory) History() []string {
	out := make([]string, len(m.history))
	for i, u := range m.history {
		out[i] = u.String()
	}
	return out
}
