// Package holiday resolves fixed-date public holidays for a calendar month.
//
// The holiday data is a static table keyed by full YYYY-MM-DD date strings,
// injected into the resolver. Movable holidays are not computed here; whoever
// supplies the table owns that concern.
package holiday

import "time"

// Table maps a YYYY-MM-DD date string to the holiday's display name.
type Table map[string]string

type Resolver struct {
	table Table
}

func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// ForMonth returns the holidays falling in the same year and month as the
// reference date, keyed by full date string. Months without holidays yield an
// empty map.
func (r *Resolver) ForMonth(reference time.Time) Table {
	prefix := reference.Format("2006-01")

	monthHolidays := make(Table)
	for date, name := range r.table {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			monthHolidays[date] = name
		}
	}
	return monthHolidays
}
