package perft

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Mismatch is a root move both sides produce with different leaf counts.
type Mismatch struct {
	Move      string
	Ours      uint64
	Reference uint64
}

// Report is the difference between two divides of the same position.
type Report struct {
	OnlyOurs      []string
	OnlyReference []string
	Mismatches    []Mismatch
}

// Clean reports whether the divides agree exactly.
func (r Report) Clean() bool {
	return len(r.OnlyOurs) == 0 && len(r.OnlyReference) == 0 && len(r.Mismatches) == 0
}

// Compare lists root moves only one side produced and moves whose counts differ.
// Every list is sorted by move text.
func Compare(ours, reference []Result) Report {
	a := toMap(ours)
	b := toMap(reference)

	var r Report
	keys := maps.Keys(a)
	slices.Sort(keys)
	for _, mv := range keys {
		ref, ok := b[mv]
		switch {
		case !ok:
			r.OnlyOurs = append(r.OnlyOurs, mv)
		case ref != a[mv]:
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Ours: a[mv], Reference: ref})
		}
	}
	for mv := range b {
		if _, ok := a[mv]; !ok {
			r.OnlyReference = append(r.OnlyReference, mv)
		}
	}
	slices.Sort(r.OnlyReference)
	return r
}

func toMap(results []Result) map[string]uint64 {
	m := make(map[string]uint64, len(results))
	for _, res := range results {
		m[res.Move] = res.Nodes
	}
	return m
}

// Write prints the report in a human-readable form.
func (r Report) Write(w io.Writer) error {
	if r.Clean() {
		_, err := fmt.Fprintln(w, "divides match")
		return err
	}
	for _, mv := range r.OnlyOurs {
		if _, err := fmt.Fprintf(w, "only ours:      %s\n", mv); err != nil {
			return err
		}
	}
	for _, mv := range r.OnlyReference {
		if _, err := fmt.Fprintf(w, "only reference: %s\n", mv); err != nil {
			return err
		}
	}
	for _, m := range r.Mismatches {
		if _, err := fmt.Fprintf(w, "count mismatch: %s ours=%d reference=%d\n", m.Move, m.Ours, m.Reference); err != nil {
			return err
		}
	}
	return nil
}
