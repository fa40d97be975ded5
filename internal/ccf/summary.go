package ccf

import (
	"fmt"
	"io"
	"strings"
)

// summaryValues is how many settings are shown per option in the summary.
const summaryValues = 4

// WriteSummary prints the record count and one line per requested id: its
// display name and first few settings, or a not-found marker.
func WriteSummary(w io.Writer, t *Table, ids []int) {
	fmt.Fprintf(w, "Parsed %d CCF option definitions\n", t.Len())
	if len(ids) == 0 {
		return
	}

	fmt.Fprintf(w, "\nCCF options requested:\n")
	for _, id := range ids {
		opt, ok := t.Get(id)
		if !ok {
			fmt.Fprintf(w, "  [%3d] ??? (not in CCF data)\n", id)
			continue
		}
		fmt.Fprintf(w, "  [%3d] %-45s %s\n", id, opt.Name, formatValues(opt.Values))
	}
}

func formatValues(v *Values) string {
	keys := v.Keys()
	if len(keys) > summaryValues {
		keys = keys[:summaryValues]
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		label, _ := v.Get(k)
		parts = append(parts, fmt.Sprintf("0x%02X=%s", k, label))
	}
	return strings.Join(parts, ", ")
}
