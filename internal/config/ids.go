package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDs parses an option allow-list such as "1,2,65-73". Blank input
// yields nil.
func ParseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("config: option id %q: %w", part, err)
		}
		last := first
		if isRange {
			last, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("config: option id %q: %w", part, err)
			}
			if last < first {
				return nil, fmt.Errorf("config: option range %q is reversed", part)
			}
		}
		for id := first; id <= last; id++ {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
