package pdfops

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// MergeOrder decides the order in which Merge appends documents.
type MergeOrder string

const (
	// OrderLexical sorts file names by plain string comparison, so
	// "page10.pdf" comes before "page2.pdf".
	OrderLexical MergeOrder = "lexical"

	// OrderNumeric sorts "name-<n>.pdf" files by n, after files without a suffix.
	OrderNumeric MergeOrder = "numeric"
)

var numericSuffix = regexp.MustCompile(`-(\d+)\.pdf$`)

// ParseMergeOrder maps a config value to a MergeOrder.
func ParseMergeOrder(s string) (MergeOrder, error) {
	switch MergeOrder(s) {
	case OrderLexical, "":
		return OrderLexical, nil
	case OrderNumeric:
		return OrderNumeric, nil
	default:
		return "", fmt.Errorf("unknown merge order: %s", s)
	}
}

// Sort returns a sorted copy of names.
func (o MergeOrder) Sort(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)

	if o != OrderNumeric {
		sort.Strings(sorted)
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		mi := numericSuffix.FindStringSubmatch(sorted[i])
		mj := numericSuffix.FindStringSubmatch(sorted[j])

		// If both have numbers, sort numerically
		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			if ni != nj {
				return ni < nj
			}
			return sorted[i] < sorted[j]
		}

		// Files without numbers come first
		if len(mi) > 1 {
			return false
		}
		if len(mj) > 1 {
			return true
		}

		return sorted[i] < sorted[j]
	})

	return sorted
}
