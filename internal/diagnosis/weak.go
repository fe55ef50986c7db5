package diagnosis

import (
	"sort"

	"github.com/abhisek/quickcalc/internal/problemgen"
)

// RankWeakOperators orders operators by how often they appear in records,
// most error-prone first. Operators with equal counts keep the order of
// their first appearance in records, so with most-recent-first input the
// more recently missed operator ranks higher. Unknown operators are ignored.
func RankWeakOperators(records []ErrorRecord) []problemgen.Operator {
	counts := make(map[problemgen.Operator]int)
	var order []problemgen.Operator
	for _, r := range records {
		if !r.Operator.Valid() {
			continue
		}
		if counts[r.Operator] == 0 {
			order = append(order, r.Operator)
		}
		counts[r.Operator]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// RecentWindow returns at most the n most recent records.
func RecentWindow(records []ErrorRecord, n int) []ErrorRecord {
	if n >= 0 && len(records) > n {
		return records[:n]
	}
	return records
}

// TopWeak returns at most n operators from RankWeakOperators.
func TopWeak(records []ErrorRecord, n int) []problemgen.Operator {
	ranked := RankWeakOperators(records)
	if n >= 0 && len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
