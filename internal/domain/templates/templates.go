package templates

import "sort"

// Kind distinguishes template types with different temporal semantics.
// Event templates describe a single fixed game, so temporal suffixes and
// schedule-relative conditions do not apply to them.
type Kind string

const (
	KindTeam  Kind = "TEAM"
	KindEvent Kind = "EVENT"
)

const (
	// MinPriority and MaxPriority bound the conditional range; lower numbers
	// are checked first.
	MinPriority = 1
	MaxPriority = 99
	// FallbackPriority is reserved for unconditioned fallback entries.
	FallbackPriority = 100
)

// Entry is one conditional description rule: when the named condition holds
// for a context, the entry's template supplies the program text.
type Entry struct {
	Condition string `json:"condition,omitempty"`
	Value     string `json:"conditionValue,omitempty"`
	Template  string `json:"template"`
	Priority  int    `json:"priority"`
	Label     string `json:"label,omitempty"`
}

// IsFallback reports whether the entry sits at the reserved fallback priority.
func (e Entry) IsFallback() bool {
	return e.Priority == FallbackPriority
}

// Spec owns the ordered rule set for one template. It is authored and
// persisted elsewhere and consumed read-only here.
type Spec struct {
	ID      string  `json:"id,omitempty"`
	Label   string  `json:"label,omitempty"`
	Kind    Kind    `json:"kind"`
	Entries []Entry `json:"entries"`
}

// Partition splits entries into conditional rules sorted by ascending
// priority and the fallback set. Entries outside [MinPriority, MaxPriority]
// that are not fallbacks are discarded. The sort is stable so equal-priority
// rules keep their authoring order.
func (s Spec) Partition() (conditional, fallbacks []Entry) {
	for _, e := range s.Entries {
		switch {
		case e.IsFallback():
			fallbacks = append(fallbacks, e)
		case e.Priority >= MinPriority && e.Priority <= MaxPriority:
			conditional = append(conditional, e)
		}
	}
	sort.SliceStable(conditional, func(i, j int) bool {
		return conditional[i].Priority < conditional[j].Priority
	})
	return conditional, fallbacks
}

// ConditionNames returns the distinct condition names referenced by the
// spec's conditional entries, in first-seen order.
func (s Spec) ConditionNames() []string {
	seen := make(map[string]bool, len(s.Entries))
	var names []string
	for _, e := range s.Entries {
		if e.IsFallback() || e.Condition == "" || seen[e.Condition] {
			continue
		}
		seen[e.Condition] = true
		names = append(names, e.Condition)
	}
	return names
}
