// Package bulletin turns the flat, fragmented script rows the generation
// pipeline produces into human-reviewable bulletins, one per terminal
// segment (or per country tail when a group ends mid-bulletin).
package bulletin

import (
	"encoding/json"
	"sort"
	"strings"

	"jarayid-admin/domain/model"
)

const (
	// TerminalKey marks the final segment of a bulletin inside a
	// fragment's prompt map.
	TerminalKey = "script_s10"

	// UnknownKey is where a fragment's raw prompt text lands when it is
	// not valid JSON. Malformed fragments degrade to unstructured text
	// instead of aborting assembly.
	UnknownKey = "unknown"

	overviewLimit = 200
	ellipsis      = "…"
)

// Row is one assembled bulletin summary.
type Row struct {
	FragmentID  int64  `json:"id"`
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
	Status      string `json:"status"`
	Overview    string `json:"overview"`
}

// accumulator merges prompt fields in insertion order so the overview is
// deterministic: later fragments overwrite same-named fields in place.
type accumulator struct {
	keys   []string
	values map[string]string
}

func newAccumulator() *accumulator {
	return &accumulator{values: map[string]string{}}
}

func (a *accumulator) set(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *accumulator) has(key string) bool {
	_, ok := a.values[key]
	return ok
}

func (a *accumulator) empty() bool { return len(a.keys) == 0 }

func (a *accumulator) overview() string {
	parts := make([]string, 0, len(a.keys))
	for _, k := range a.keys {
		parts = append(parts, a.values[k])
	}
	joined := strings.Join(parts, " ")
	if runes := []rune(joined); len(runes) > overviewLimit {
		return string(runes[:overviewLimit]) + ellipsis
	}
	return joined
}

// Assemble groups fragments per country and emits one row per bulletin
// boundary: either the terminal field appeared in the accumulator or the
// country's group ran out (flush-on-end, even if incomplete). The input
// order is not trusted; fragments are re-sorted by ascending id, ties
// keeping their original order. Assemble never fails on malformed input.
func Assemble(fragments []model.ScriptFragment) []Row {
	byCountry := map[int64][]model.ScriptFragment{}
	var countries []int64
	for _, f := range fragments {
		if _, ok := byCountry[f.CountryID]; !ok {
			countries = append(countries, f.CountryID)
		}
		byCountry[f.CountryID] = append(byCountry[f.CountryID], f)
	}

	var rows []Row
	for _, countryID := range countries {
		group := byCountry[countryID]
		sort.SliceStable(group, func(i, j int) bool { return group[i].ID < group[j].ID })

		acc := newAccumulator()
		for i, frag := range group {
			merge(acc, frag.Prompt)

			last := i == len(group)-1
			if acc.has(TerminalKey) || last {
				if !acc.empty() {
					rows = append(rows, Row{
						FragmentID:  frag.ID,
						CountryID:   frag.CountryID,
						CountryName: frag.CountryName,
						Status:      frag.Status,
						Overview:    acc.overview(),
					})
				}
				acc = newAccumulator()
			}
		}
	}
	return rows
}

func merge(acc *accumulator, prompt string) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(prompt), &parsed); err != nil || parsed == nil {
		acc.set(UnknownKey, prompt)
		return
	}

	// JSON objects are unordered in Go; sort the keys so merging is a
	// pure function of the input.
	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		acc.set(k, stringify(parsed[k]))
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
