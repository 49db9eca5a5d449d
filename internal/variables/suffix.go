package variables

// Suffix selects which game instance supplies a variable's value.
type Suffix int

const (
	SuffixBase Suffix = iota
	SuffixNext
	SuffixLast
)

// String returns the token spelling of the suffix ("" for base).
func (s Suffix) String() string {
	switch s {
	case SuffixNext:
		return "next"
	case SuffixLast:
		return "last"
	default:
		return ""
	}
}

// ParseSuffix maps a token suffix spelling to a Suffix.
func ParseSuffix(raw string) (Suffix, bool) {
	switch raw {
	case "":
		return SuffixBase, true
	case "next":
		return SuffixNext, true
	case "last":
		return SuffixLast, true
	default:
		return 0, false
	}
}

// SuffixSet records which temporal suffixes a variable supports.
type SuffixSet struct {
	Base bool
	Next bool
	Last bool
}

// Allows reports whether the set permits the given suffix.
func (ss SuffixSet) Allows(s Suffix) bool {
	switch s {
	case SuffixNext:
		return ss.Next
	case SuffixLast:
		return ss.Last
	default:
		return ss.Base
	}
}

// BaseOnly reports whether the variable permits no temporal suffix at all.
func (ss SuffixSet) BaseOnly() bool {
	return ss.Base && !ss.Next && !ss.Last
}

// AllSuffixes is the capability set for fully temporal variables.
var AllSuffixes = SuffixSet{Base: true, Next: true, Last: true}

// BaseOnlySuffix is the capability set for non-temporal variables.
var BaseOnlySuffix = SuffixSet{Base: true}
