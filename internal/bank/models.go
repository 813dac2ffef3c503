package bank

import "time"

// StatementEntry is one raw row of a Monobank personal statement. Fields are
// pointers so an absent source field is distinguishable from a zero value;
// Normalize refuses entries with any field missing.
type StatementEntry struct {
	ID          *string `json:"id"`
	Time        *int64  `json:"time"`
	Amount      *int64  `json:"amount"`
	Description *string `json:"description"`
	MCC         *int64  `json:"mcc"`
}

// Transaction is a normalized statement row returned to the caller. Amount is
// in major currency units (the bank reports minor units), sign preserved.
type Transaction struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	MCC         int       `json:"mcc"`
}
