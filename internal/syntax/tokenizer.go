package syntax

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArgumentMultimap maps prefixes to the values that followed them, in the
// order they appeared. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognised prefix.
func (m *ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

// Has reports whether p appeared at least once.
func (m *ArgumentMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// DuplicatePrefixError reports single-valued prefixes given more than once.
type DuplicatePrefixError struct {
	Prefixes []Prefix
}

func (e *DuplicatePrefixError) Error() string {
	parts := make([]string, len(e.Prefixes))
	for i, p := range e.Prefixes {
		parts[i] = string(p)
	}
	return "Multiple values specified for the following single-valued field(s): " + strings.Join(parts, " ")
}

// VerifyNoDuplicatePrefixesFor fails if any of prefixes appeared more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []Prefix
	for _, p := range prefixes {
		if len(m.values[p]) > 1 && !slices.Contains(dups, p) {
			dups = append(dups, p)
		}
	}
	if len(dups) == 0 {
		return nil
	}
	slices.Sort(dups)
	return &DuplicatePrefixError{Prefixes: dups}
}

type marker struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace, so "x/abcn/Foo" holds no n/
// prefix. When several prefixes match at one position the longest wins.
// Values are trimmed of surrounding whitespace.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	byLength := slices.Clone(prefixes)
	slices.SortStableFunc(byLength, func(a, b Prefix) int { return len(b) - len(a) })

	var markers []marker
	for i := 0; i < len(args); i++ {
		if i > 0 {
			if r, _ := utf8.DecodeLastRuneInString(args[:i]); !unicode.IsSpace(r) {
				continue
			}
		}
		for _, p := range byLength {
			if strings.HasPrefix(args[i:], string(p)) {
				markers = append(markers, marker{prefix: p, start: i})
				i += len(p) - 1
				break
			}
		}
	}

	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(markers) > 0 {
		end = markers[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, mk := range markers {
		stop := len(args)
		if i+1 < len(markers) {
			stop = markers[i+1].start
		}
		value := strings.TrimSpace(args[mk.start+len(mk.prefix) : stop])
		m.values[mk.prefix] = append(m.values[mk.prefix], value)
	}
	return m
}

// String renders the multimap for debugging.
func (m *ArgumentMultimap) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "preamble=%q", m.preamble)
	keys := make([]Prefix, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s%q", k, m.values[k])
	}
	return b.String()
}
