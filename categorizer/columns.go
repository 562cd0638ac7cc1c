package categorizer

import (
	"fmt"
	"strings"
)

// enrichLayout describes where the description is read from and where the
// derived columns are written in each record.
type enrichLayout struct {
	header      []string
	description int
	class       int
	subclass    int
}

// resolveEnrichLayout locates the description column and the derived
// columns. Derived columns already present are reused so a second pass
// overwrites them instead of appending duplicates.
func resolveEnrichLayout(header []string, descriptionColumn string) (enrichLayout, error) {
	cleaned := make([]string, len(header))
	for i, cell := range header {
		cleaned[i] = cleanHeader(cell)
	}
	layout := enrichLayout{
		description: findColumn(cleaned, cleanHeader(descriptionColumn)),
		class:       findColumn(cleaned, ProductClassColumn),
		subclass:    findColumn(cleaned, ProductSubclassColumn),
	}
	if layout.description < 0 {
		return layout, fmt.Errorf("column %q not found in header %q", descriptionColumn, cleaned)
	}
	out := make([]string, len(header))
	copy(out, header)
	if len(out) > 0 {
		out[0] = strings.TrimPrefix(out[0], "\ufeff")
	}
	if layout.class < 0 {
		layout.class = len(out)
		out = append(out, ProductClassColumn)
	}
	if layout.subclass < 0 {
		layout.subclass = len(out)
		out = append(out, ProductSubclassColumn)
	}
	layout.header = out
	return layout, nil
}

func findColumn(header []string, name string) int {
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}
