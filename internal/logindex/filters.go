package logindex

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// FilterKind distinguishes an include from an exclude filter.
type FilterKind int

const (
	FilterInclude FilterKind = iota
	FilterExclude
)

const maxFilters = 32

// Matcher evaluates a candidate line's bytes (and optional bookmark meta)
// for a filter match. Regex filters and SQL-compiled predicates both
// satisfy this.
type Matcher interface {
	Matches(meta *BookmarkMeta, text string) (bool, error)
}

// regexMatcher compiles its pattern with dlclark/regexp2 rather than RE2,
// so lookaround and backreferences (lnav's PCRE2 heritage) work.
type regexMatcher struct {
	re *regexp2.Regexp
}

func NewRegexMatcher(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("logindex: bad filter pattern %q: %w", pattern, err)
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) Matches(_ *BookmarkMeta, text string) (bool, error) {
	return m.re.MatchString(text)
}

// TextFilter is one entry in the filter stack: {index, kind, enabled,
// hit_count, matcher}.
type TextFilter struct {
	Index    int
	Kind     FilterKind
	Enabled  bool
	HitCount int64
	Pattern  string
	Matcher  Matcher
}

// Stack is the ordered filter list plus the optional SQL filter/mark
// predicates, per spec.md 4.4's filtering contract.
type Stack struct {
	filters    []*TextFilter
	usedIndex  [maxFilters]bool
	SQLFilter  Matcher // optional; nil means no SQL filter configured
	SQLMark    Matcher // optional; matches add BM_USER_EXPR
}

// Add allocates the next free index (max 32) and appends a new filter.
func (s *Stack) Add(kind FilterKind, pattern string, m Matcher) (*TextFilter, error) {
	idx := -1
	for i := 0; i < maxFilters; i++ {
		if !s.usedIndex[i] {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("logindex: filter stack is full (max %d)", maxFilters)
	}
	s.usedIndex[idx] = true
	f := &TextFilter{Index: idx, Kind: kind, Enabled: true, Pattern: pattern, Matcher: m}
	s.filters = append(s.filters, f)
	return f, nil
}

// Delete removes the filter with the given pattern, freeing its index.
func (s *Stack) Delete(pattern string) bool {
	for i, f := range s.filters {
		if f.Pattern == pattern {
			s.usedIndex[f.Index] = false
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			return true
		}
	}
	return false
}

// SetEnabled toggles a filter by pattern.
func (s *Stack) SetEnabled(pattern string, enabled bool) bool {
	for _, f := range s.filters {
		if f.Pattern == pattern {
			f.Enabled = enabled
			return true
		}
	}
	return false
}

// Filters returns the filter stack in insertion order.
func (s *Stack) Filters() []*TextFilter { return s.filters }

// Matches applies the full filtering contract from spec.md 4.4 pass 3:
// include-filters OR'ed, exclude-filters AND'ed, then the optional SQL
// filter predicate.
func (s *Stack) Matches(meta *BookmarkMeta, text string) (bool, error) {
	anyIncludeEnabled := false
	includeHit := false
	for _, f := range s.filters {
		if !f.Enabled {
			continue
		}
		if f.Kind == FilterInclude {
			anyIncludeEnabled = true
			ok, err := f.Matcher.Matches(meta, text)
			if err != nil {
				return false, err
			}
			if ok {
				f.HitCount++
				includeHit = true
			}
		}
	}
	if anyIncludeEnabled && !includeHit {
		return false, nil
	}

	for _, f := range s.filters {
		if !f.Enabled || f.Kind != FilterExclude {
			continue
		}
		ok, err := f.Matcher.Matches(meta, text)
		if err != nil {
			return false, err
		}
		if ok {
			f.HitCount++
			return false, nil
		}
	}

	if s.SQLFilter != nil {
		ok, err := s.SQLFilter.Matches(meta, text)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
