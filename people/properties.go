package people

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// PropertyComparison is the outcome of comparing one property of two people.
// Expected is rendered from the person being compared against, Actual from
// the subject.
type PropertyComparison struct {
	Property string
	Expected string
	Actual   string
	Equal    bool
}

type property struct {
	describe func(p *Person) string
	equal    func(a, b *Person) bool
	// verb used in reports, e.g. "is equal to"
	assertion string
}

var properties = map[string]property{
	"id": {
		describe:  func(p *Person) string { return p.id.String() },
		equal:     func(a, b *Person) bool { return a.id == b.id },
		assertion: "is equal to",
	},
	"name": {
		describe:  func(p *Person) string { return fmt.Sprintf("%q", p.name) },
		equal:     func(a, b *Person) bool { return a.name == b.name },
		assertion: "is equal to",
	},
	"dateOfBirth": {
		describe:  func(p *Person) string { return p.dateOfBirth.String() },
		equal:     func(a, b *Person) bool { return a.dateOfBirth == b.dateOfBirth },
		assertion: "is equal to",
	},
	"image": {
		describe:  func(p *Person) string { return "0x" + strings.ToUpper(hex.EncodeToString(p.image)) },
		equal:     func(a, b *Person) bool { return bytes.Equal(a.image, b.image) },
		assertion: "array content equals",
	},
}

type sortedComparisons []PropertyComparison

func (sc sortedComparisons) Len() int {
	return len(sc)
}

func (sc sortedComparisons) Swap(i, j int) {
	sc[i], sc[j] = sc[j], sc[i]
}

func (sc sortedComparisons) Less(i, j int) bool {
	return sc[i].Property < sc[j].Property
}

// CompareProperties compares subject with other field by field, ignoring the
// identity rule used by Equal. Results are ordered by property name. Nil is
// returned if either person is nil.
func CompareProperties(subject, other *Person) []PropertyComparison {
	if subject == nil || other == nil {
		return nil
	}
	comparisons := make([]PropertyComparison, 0, len(properties))
	for name, prop := range properties {
		comparisons = append(comparisons, PropertyComparison{
			Property: name,
			Expected: prop.describe(other),
			Actual:   prop.describe(subject),
			Equal:    prop.equal(subject, other),
		})
	}
	sort.Sort(sortedComparisons(comparisons))
	return comparisons
}

// PropertiesEqual reports whether every property of subject matches other.
func PropertiesEqual(subject, other *Person) bool {
	if subject == nil || other == nil {
		return subject == other
	}
	for _, c := range CompareProperties(subject, other) {
		if !c.Equal {
			return false
		}
	}
	return true
}

// Report describes a field-by-field comparison of subject against other.
func Report(subject, other *Person) string {
	comparisons := CompareProperties(subject, other)
	var b strings.Builder
	fmt.Fprintf(&b, "▼ Expect that %s:\n", describePerson(subject))
	fmt.Fprintf(&b, "  %s is equal field-by-field to %s", mark(PropertiesEqual(subject, other)), describePerson(other))
	for _, c := range comparisons {
		fmt.Fprintf(&b, "\n    ▼ value of property %s:", c.Property)
		fmt.Fprintf(&b, "\n      %s %s %s", mark(c.Equal), properties[c.Property].assertion, c.Expected)
		if !c.Equal {
			fmt.Fprintf(&b, "\n              found %s", c.Actual)
		}
	}
	return b.String()
}

func describePerson(p *Person) string {
	if p == nil {
		return "null"
	}
	return p.String()
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
