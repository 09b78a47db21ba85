// Package match finds likely duplicate person records, for datasets
// merged from several imports. Matching is simple boolean logic rather
// than scoring: easier to predict and to debug.
package match

import (
	"strconv"
	"strings"

	"kinview/pkg/model"
)

// nicknames maps common short forms to their formal names, both
// directions checked in loose mode.
var nicknames = map[string]string{
	"bill":   "william",
	"will":   "william",
	"bob":    "robert",
	"rob":    "robert",
	"dick":   "richard",
	"rick":   "richard",
	"jim":    "james",
	"jack":   "john",
	"johnny": "john",
	"liz":    "elizabeth",
	"beth":   "elizabeth",
	"betty":  "elizabeth",
	"peggy":  "margaret",
	"maggie": "margaret",
	"kate":   "katherine",
	"katie":  "katherine",
	"mike":   "michael",
	"tom":    "thomas",
	"ted":    "theodore",
	"ed":     "edward",
	"fred":   "frederick",
	"harry":  "henry",
	"sally":  "sarah",
	"nancy":  "anne",
	"annie":  "anne",
}

// Duplicate pairs two records that look like the same person.
type Duplicate struct {
	A, B   model.RawPerson
	Reason string
}

// Options controls matching strictness.
type Options struct {
	// Loose accepts nickname first-name matches and birth years within
	// two years of each other.
	Loose bool
}

// FindDuplicates reports likely duplicate pairs in load order. Nothing
// is mutated; the report is for a human to act on.
func FindDuplicates(people []model.RawPerson, opts Options) []Duplicate {
	var dups []Duplicate
	for i := range people {
		for j := i + 1; j < len(people); j++ {
			if reason, ok := isMatch(people[i], people[j], opts.Loose); ok {
				dups = append(dups, Duplicate{A: people[i], B: people[j], Reason: reason})
			}
		}
	}
	return dups
}

func isMatch(a, b model.RawPerson, loose bool) (string, bool) {
	for _, an := range a.Names {
		for _, bn := range b.Names {
			if !namesMatch(an, bn, loose) {
				continue
			}
			// Names match; a conflicting birth year vetoes the pair.
			ay, by := birthYear(a), birthYear(b)
			if ay != 0 && by != 0 && !yearsMatch(ay, by, loose) {
				continue
			}
			reason := "same name"
			if ay != 0 && by != 0 {
				reason = "same name and birth year"
			}
			return reason, true
		}
	}
	return "", false
}

func namesMatch(a, b model.RawName, loose bool) bool {
	first1 := strings.ToLower(strings.TrimSpace(a.First))
	first2 := strings.ToLower(strings.TrimSpace(b.First))
	last1 := strings.ToLower(strings.TrimSpace(a.Last))
	last2 := strings.ToLower(strings.TrimSpace(b.Last))

	// Must have first and last names, and last names must match
	// exactly.
	if first1 == "" || first2 == "" || last1 == "" || last2 == "" {
		return false
	}
	if last1 != last2 {
		return false
	}
	if first1 == first2 {
		return true
	}
	return loose && isNickname(first1, first2)
}

func isNickname(a, b string) bool {
	return nicknames[a] == b || nicknames[b] == a
}

func yearsMatch(a, b int, loose bool) bool {
	if a == b {
		return true
	}
	if !loose {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 2
}

func birthYear(p model.RawPerson) int {
	if p.Birth == nil {
		return 0
	}
	run, start := 0, -1
	for i, r := range p.Birth.Date {
		if r >= '0' && r <= '9' {
			if run == 0 {
				start = i
			}
			run++
			if run == 4 {
				y, err := strconv.Atoi(p.Birth.Date[start : i+1])
				if err != nil {
					return 0
				}
				return y
			}
		} else {
			run = 0
		}
	}
	return 0
}
