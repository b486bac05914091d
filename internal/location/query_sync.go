package location

import (
	"strings"

	"tasktrack/internal/logs"
)

// SearchParam is the query parameter holding the search text.
const SearchParam = "search"

// QuerySync binds the search text to a query parameter. The location is read
// once, when the QuerySync is created; afterwards it is only written to.
// Later navigation elsewhere is not picked up.
type QuerySync struct {
	loc    Location
	param  string
	search string
}

// NewQuerySync reads the initial search text from loc. An empty param means
// SearchParam.
func NewQuerySync(loc Location, param string) *QuerySync {
	if param == "" {
		param = SearchParam
	}
	s := &QuerySync{loc: loc, param: param}
	if v := loc.Query().Get(param); v != "" {
		s.search = v
		logs.Logger.Debugf("Initial search from location: %q", v)
	}
	return s
}

// Search returns the current search text.
func (s *QuerySync) Search() string {
	return s.search
}

// SetSearch writes value to the location and then updates the search text.
// The text is updated even if navigation fails so the display follows the
// user's input; the navigation error is returned.
func (s *QuerySync) SetSearch(value string) error {
	target := "/?" + s.param + "=" + EncodeURIComponent(value)
	err := s.loc.Navigate(target)
	if err != nil {
		logs.Logger.Errorf("Navigate to %s failed: %v", target, err)
	}
	s.search = value
	return err
}

const unreservedMarks = "-_.!~*'()"

// EncodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does: everything except ASCII letters, digits and
// -_.!~*'() is escaped as UTF-8 bytes.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(unreservedMarks, c) >= 0
}
