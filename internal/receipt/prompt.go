package receipt

// extractionPrompt is the fixed instruction sent with every receipt photo.
// Sanitize and DecodeRecord rely on its output contract (bare JSON object,
// null for unknown fields), so the text is deliberately not configurable.
// The date line allows both year-first and day-first formats; the value is
// passed through as opaque text, never parsed here.
const extractionPrompt = `You are a financial assistant. Analyze this photo of a receipt.
Extract the data as clean JSON (no markdown and no explanations):
{
    "store": "store name",
    "date": "date in YYYY-MM-DD or DD-MM-YYYY format",
    "total_amount": total as a number,
    "currency": "UAH" or "PLN" etc.,
    "items": [
        {"name": "item name", "price": item price, "category": "category (Food, Household, Electronics)"}
    ]
}
If something is not readable, use null.`

// ExtractionPrompt returns the receipt extraction instruction. The returned
// text is identical on every call.
func ExtractionPrompt() string {
	return extractionPrompt
}
