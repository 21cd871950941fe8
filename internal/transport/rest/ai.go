package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/scoring"
)

type scoringService interface {
	Prediction(ctx context.Context, invoice string) (*scoring.Prediction, error)
	ScoreBatch(ctx context.Context, invoices []string) (*scoring.BatchPrediction, error)
	ScoreAllUnassigned(ctx context.Context) (*scoring.BatchPrediction, error)
	TopScored(ctx context.Context, limit int) ([]domain.Case, error)
	Statistics(ctx context.Context) (*scoring.Statistics, error)
	Health(ctx context.Context) scoring.Health
}

// AIHandler serves /api/ai, the propensity score endpoints.
type AIHandler struct {
	scoring scoringService
	log     *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc scoringService, logger *slog.Logger) *AIHandler {
	return &AIHandler{scoring: svc, log: logger.With("handler", "ai")}
}

type predictionResponse struct {
	InvoiceNumber     string          `json:"invoiceNumber"`
	PropensityScore   float64         `json:"propensityScore"`
	RecommendedAction string          `json:"recommendedAction"`
	ExpectedRecovery  decimal.Decimal `json:"expectedRecovery"`
	Confidence        float64         `json:"confidence"`
	Reasoning         string          `json:"reasoning"`
}

type batchPredictionResponse struct {
	Requested    int                  `json:"requested"`
	Returned     int                  `json:"returned"`
	AverageScore float64              `json:"averageScore"`
	Predictions  []predictionResponse `json:"predictions"`
}

type scoreStatisticsResponse struct {
	TotalScored    int64   `json:"totalScored"`
	TotalCases     int64   `json:"totalCases"`
	AverageScore   float64 `json:"averageScore"`
	MaxScore       float64 `json:"maxScore"`
	MinScore       float64 `json:"minScore"`
	HighPriority   int64   `json:"highPriority"`
	MediumPriority int64   `json:"mediumPriority"`
	LowPriority    int64   `json:"lowPriority"`
}

type aiHealthResponse struct {
	Status    string    `json:"status"`
	Available bool      `json:"available"`
	Timestamp time.Time `json:"timestamp"`
}

type batchScoreRequest struct {
	InvoiceNumbers []string `json:"invoiceNumbers"`
}

func toBatch(b *scoring.BatchPrediction) batchPredictionResponse {
	resp := batchPredictionResponse{
		Requested:    b.Requested,
		Returned:     b.Returned,
		AverageScore: b.AverageScore,
		Predictions:  make([]predictionResponse, len(b.Predictions)),
	}
	for i, p := range b.Predictions {
		resp.Predictions[i] = predictionResponse(p)
	}
	return resp
}

// Health handles GET /api/ai/health. The endpoint answers 200 even when
// the model is down.
func (h *AIHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.scoring.Health(r.Context())
	status := "UP"
	if !st.Available {
		status = "DOWN"
	}
	writeJSON(w, http.StatusOK, aiHealthResponse{Status: status, Available: st.Available, Timestamp: st.Timestamp})
}

// Score handles GET /api/ai/score/{invoiceNumber}.
func (h *AIHandler) Score(w http.ResponseWriter, r *http.Request) {
	p, err := h.scoring.Prediction(r.Context(), chi.URLParam(r, "invoiceNumber"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse(*p))
}

// Top handles GET /api/ai/score/top/{limit}.
func (h *AIHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(chi.URLParam(r, "limit"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("limit", "limit must be an integer"))
		return
	}
	cases, err := h.scoring.TopScored(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// Statistics handles GET /api/ai/score/statistics.
func (h *AIHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.scoring.Statistics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreStatisticsResponse(*st))
}

// Batch handles POST /api/ai/score/batch.
func (h *AIHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	b, err := h.scoring.ScoreBatch(r.Context(), req.InvoiceNumbers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatch(b))
}

// AllUnassigned handles POST /api/ai/score/all-unassigned.
func (h *AIHandler) AllUnassigned(w http.ResponseWriter, r *http.Request) {
	b, err := h.scoring.ScoreAllUnassigned(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatch(b))
}
