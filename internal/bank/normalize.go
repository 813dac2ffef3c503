package bank

import (
	"fmt"
	"time"
)

// MissingFieldError reports a statement entry with a required source field
// absent. One bad entry fails the whole batch so the caller never sees a
// silently shortened statement.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("statement entry %d: missing field %q", e.Index, e.Field)
}

// Normalize converts raw statement entries into Transactions, preserving
// input order and count. Amounts arrive in minor units and come out divided
// by 100; timestamps come from epoch seconds, rendered in loc (UTC when nil).
// No filtering, sorting or deduplication happens here.
func Normalize(entries []StatementEntry, loc *time.Location) ([]Transaction, error) {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]Transaction, 0, len(entries))
	for i, e := range entries {
		switch {
		case e.ID == nil:
			return nil, &MissingFieldError{Index: i, Field: "id"}
		case e.Time == nil:
			return nil, &MissingFieldError{Index: i, Field: "time"}
		case e.Amount == nil:
			return nil, &MissingFieldError{Index: i, Field: "amount"}
		case e.Description == nil:
			return nil, &MissingFieldError{Index: i, Field: "description"}
		case e.MCC == nil:
			return nil, &MissingFieldError{Index: i, Field: "mcc"}
		}

		out = append(out, Transaction{
			ID:          *e.ID,
			Timestamp:   time.Unix(*e.Time, 0).In(loc),
			Amount:      float64(*e.Amount) / 100,
			Description: *e.Description,
			MCC:         int(*e.MCC),
		})
	}

	return out, nil
}
