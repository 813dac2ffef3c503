package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dvloznov/budget-core/internal/api/middleware"
	"github.com/dvloznov/budget-core/internal/bank"
	"github.com/dvloznov/budget-core/internal/receipt"
	"github.com/rs/zerolog"
)

// maxUploadBytes caps the multipart form held in memory for a receipt scan.
const maxUploadBytes = 10 << 20

// Extractor runs the receipt extraction pipeline.
type Extractor interface {
	Extract(ctx context.Context, data []byte, mediaType string) (*receipt.Record, error)
}

// StatementSource fetches raw bank statement entries.
type StatementSource interface {
	Statement(ctx context.Context, account string, from, to time.Time) ([]bank.StatementEntry, error)
}

// ReceiptsHandler handles the receipt scanning endpoint. A nil extractor
// means the Gemini credential was absent at startup; requests then fail as a
// configuration error without any network attempt.
type ReceiptsHandler struct {
	extractor Extractor
	log       zerolog.Logger
}

// NewReceiptsHandler creates a new receipts handler.
func NewReceiptsHandler(extractor Extractor, log zerolog.Logger) *ReceiptsHandler {
	return &ReceiptsHandler{
		extractor: extractor,
		log:       log,
	}
}

// ScanReceipt handles POST /scan-receipt
func (h *ReceiptsHandler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "GEMINI_API_KEY is not configured")
		return
	}

	// Cap the whole body: ParseMultipartForm alone only bounds the in-memory
	// portion and spills larger parts to temp files.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.WriteError(w, http.StatusBadRequest, "Uploaded file is too large")
			return
		}
		middleware.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "A file upload named 'file' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	rec, err := h.extractor.Extract(r.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		h.writeExtractError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, rec)
}

// writeExtractError translates pipeline errors into HTTP responses: client
// input faults become 400, configuration and upstream faults become 500. The
// malformed-extraction message already carries its bounded excerpt.
func (h *ReceiptsHandler) writeExtractError(w http.ResponseWriter, err error) {
	var decodeErr *receipt.ImageDecodeError
	var inferErr *receipt.InferenceError
	var extractErr *receipt.ExtractionError

	switch {
	case errors.Is(err, receipt.ErrUnsupportedMediaType):
		middleware.WriteError(w, http.StatusBadRequest, "An image upload is required")
	case errors.As(err, &decodeErr):
		h.log.Warn().Err(err).Msg("Rejected undecodable upload")
		middleware.WriteError(w, http.StatusBadRequest, "Failed to read or open the image: "+decodeErr.Err.Error())
	case errors.Is(err, receipt.ErrAPIKeyMissing):
		middleware.WriteError(w, http.StatusInternalServerError, "GEMINI_API_KEY is not configured")
	case errors.As(err, &inferErr):
		h.log.Error().Err(err).Msg("Inference call failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Gemini API error: "+inferErr.Err.Error())
	case errors.As(err, &extractErr):
		h.log.Error().Err(err).Msg("Model returned invalid JSON")
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		h.log.Error().Err(err).Msg("Receipt scan failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Unknown error: "+err.Error())
	}
}

// TransactionsHandler serves the normalized Monobank statement for a trailing
// window. A nil source means MONO_TOKEN was absent at startup.
type TransactionsHandler struct {
	source StatementSource
	window time.Duration
	loc    *time.Location
	log    zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(source StatementSource, window time.Duration, loc *time.Location, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		source: source,
		window: window,
		loc:    loc,
		log:    log,
	}
}

// ListTransactions handles GET /mono-transactions
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "MONO_TOKEN is not configured")
		return
	}

	to := time.Now()
	from := to.Add(-h.window)

	entries, err := h.source.Statement(r.Context(), bank.DefaultAccount, from, to)
	if err != nil {
		var upErr *bank.UpstreamError
		if errors.As(err, &upErr) {
			h.log.Error().Int("status", upErr.StatusCode).Msg("Monobank returned an error")
			middleware.WriteError(w, upErr.StatusCode, upErr.Body)
			return
		}
		h.log.Error().Err(err).Msg("Failed to fetch statement")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to fetch statement: "+err.Error())
		return
	}

	txs, err := bank.Normalize(entries, h.loc)
	if err != nil {
		h.log.Error().Err(err).Msg("Statement normalization failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Statement normalization failed: "+err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, txs)
}

// HealthHandler reports liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Budget Core API is running",
	})
}
