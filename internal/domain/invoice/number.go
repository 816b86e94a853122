package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultPrefix = "FAC"

// NextNumber returns the next "<prefix>-<year>-<NNNN>" number given the
// numbers already issued. Numbers that do not follow the pattern are ignored.
func NextNumber(prefix string, year int, existing []string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	head := fmt.Sprintf("%s-%d-", prefix, year)

	last := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, head) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(n, head))
		if err != nil {
			continue
		}
		if seq > last {
			last = seq
		}
	}

	return fmt.Sprintf("%s%04d", head, last+1)
}

// NumberPattern is the SQL LIKE pattern matching every number of a year.
func NumberPattern(prefix string, year int) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-%d-%%", prefix, year)
}
