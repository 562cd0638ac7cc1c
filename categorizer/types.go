package categorizer

import "sort"

const (
	// ProductClassColumn is the derived column holding Result.Class.
	ProductClassColumn = "product_class"
	// ProductSubclassColumn is the derived column holding Result.Subclass.
	ProductSubclassColumn = "product_subclass"
	// DefaultDescriptionColumn is the input column classified by default.
	DefaultDescriptionColumn = "Description"
)

// Result is the classification of a single description.
type Result struct {
	Class    string `json:"product_class"`
	Subclass string `json:"product_subclass"`
}

// LabelCount is one entry of a per-label histogram.
type LabelCount struct {
	Label string
	Count int
}

// Stats summarizes an enrichment pass.
type Stats struct {
	Rows int
	// Unclassified counts rows that fell back on both tables.
	Unclassified int
	Classes      map[string]int
	Subclasses   map[string]int
}

func newStats() Stats {
	return Stats{
		Classes:    make(map[string]int),
		Subclasses: make(map[string]int),
	}
}

func (s *Stats) add(res Result) {
	s.Rows++
	s.Classes[res.Class]++
	s.Subclasses[res.Subclass]++
	if res.Class == DefaultClass && res.Subclass == DefaultSubclass {
		s.Unclassified++
	}
}

// TopClasses returns class counts sorted by count, then label.
func (s Stats) TopClasses() []LabelCount {
	return sortedCounts(s.Classes)
}

// TopSubclasses returns subclass counts sorted by count, then label.
func (s Stats) TopSubclasses() []LabelCount {
	return sortedCounts(s.Subclasses)
}

func sortedCounts(m map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(m))
	for label, n := range m {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Label < out[j].Label
		}
		return out[i].Count > out[j].Count
	})
	return out
}
