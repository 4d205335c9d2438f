// Package directory implements the resident directory pipeline: filtering,
// display ordering, and the summary counts shared by the resident and
// director views. Everything here is a pure function of its inputs so the
// pipeline can be tested without any UI or storage behind it.
package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"porchlight/internal/model"
)

// Filters holds the transient view-filter state. Predicates are AND-combined;
// the zero value matches every resident.
type Filters struct {
	Query         string `json:"query"`
	AvailableOnly bool   `json:"available_only"`
	NewOnly       bool   `json:"new_only"`
}

// Summary holds the counts rendered by both the resident and director views.
type Summary struct {
	Open int `json:"open"`
	New  int `json:"new"`
}

// FilterAndSort returns the residents matching f, ordered for display: lit
// porch lights before dark ones, newcomers before established residents, then
// names ascending (locale-aware, case-insensitive). Remaining ties keep their
// original relative order. The input slice is never modified and the result
// is freshly allocated on every call.
func FilterAndSort(residents []model.Resident, f Filters) []model.Resident {
	query := strings.ToLower(f.Query)

	out := make([]model.Resident, 0, len(residents))
	for _, r := range residents {
		if f.AvailableOnly && !r.Available {
			continue
		}
		if f.NewOnly && !r.New {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		out = append(out, r)
	}

	// Collators keep mutable compare buffers, so build one per call rather
	// than sharing package state.
	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Available != b.Available {
			return a.Available
		}
		if a.New != b.New {
			return a.New
		}
		return coll.CompareString(a.Name, b.Name) < 0
	})

	return out
}

func matches(r model.Resident, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Bio), query)
}

// Summarize counts lit porch lights and newcomers across the roster. The
// viewer's own light is included when selfAvailable is true: the director
// view reports availability for the whole community, viewer included.
func Summarize(residents []model.Resident, selfAvailable bool) Summary {
	var s Summary
	for _, r := range residents {
		if r.Available {
			s.Open++
		}
		if r.New {
			s.New++
		}
	}
	if selfAvailable {
		s.Open++
	}
	return s
}
