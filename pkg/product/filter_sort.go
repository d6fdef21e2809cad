package product

import (
	"sort"

	"github.com/maximebaudoin/expired-products/entities"
	"github.com/maximebaudoin/expired-products/pkg/classification"
)

// ClassifiedRecord pairs a stored record with its urgency band computed for
// the current read.
type ClassifiedRecord struct {
	Record entities.ProductRecord
	Result classification.Result
}

// FilterByColor keeps records whose urgency color is in the selection. An
// empty selection means no filter: every record passes.
func FilterByColor(records []ClassifiedRecord, selected []string) []ClassifiedRecord {
	if len(selected) == 0 {
		return records
	}

	kept := make([]ClassifiedRecord, 0, len(records))
	for _, record := range records {
		for _, color := range selected {
			if record.Result.Color == color {
				kept = append(kept, record)
				break
			}
		}
	}
	return kept
}

// SortByExpiration orders records ascending by expiration date through three
// successive stable sorts (day, then month, then year). Each later sort
// dominates the earlier ones, so the net order is (year, month, day) with
// equal dates keeping their prior relative order. The input slice is left
// untouched.
func SortByExpiration(records []ClassifiedRecord) []ClassifiedRecord {
	sorted := make([]ClassifiedRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.Date.Day < sorted[j].Record.Date.Day
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.Date.Month < sorted[j].Record.Date.Month
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Record.Date.Year < sorted[j].Record.Date.Year
	})
	return sorted
}
