package receipt

// Record is the structured result of a receipt extraction.
//
// Every field is optional: anything the model could not read arrives as JSON
// null and is passed through untouched. None of the fields carry omitempty,
// so an unknown value round-trips as an explicit null for the caller instead
// of disappearing from the payload.
type Record struct {
	Store       *string    `json:"store"`
	Date        *string    `json:"date"`
	TotalAmount *float64   `json:"total_amount"`
	Currency    *string    `json:"currency"`
	Items       []LineItem `json:"items"`
}

// LineItem is a single purchased item on a receipt. Category is free text
// from the model, not a closed enum.
type LineItem struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}
