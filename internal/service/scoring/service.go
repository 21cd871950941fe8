// Package scoring keeps case propensity scores in sync with the external
// model and derives collection recommendations from them.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	model "github.com/heartmarshall/debt-recovery-backend/internal/adapter/scoring"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const maxTopScored = 200

type caseRepo interface {
	GetByInvoice(ctx context.Context, invoice string) (*domain.Case, error)
	GetByInvoices(ctx context.Context, invoices []string) (map[string]domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Case, error)
	ListUnscored(ctx context.Context, statuses ...domain.Status) ([]domain.Case, error)
	ListTopScored(ctx context.Context, limit int) ([]domain.Case, error)
	UpdateScore(ctx context.Context, invoice string, score float64) error
}

type predictor interface {
	Predict(ctx context.Context, reqs []model.Request) ([]model.Prediction, error)
	Healthy(ctx context.Context) bool
}

// Service scores cases.
type Service struct {
	log   *slog.Logger
	cases caseRepo
	model predictor
	now   func() time.Time
}

// NewService creates a new scoring service.
func NewService(logger *slog.Logger, cases caseRepo, model predictor) *Service {
	return &Service{
		log:   logger.With("service", "scoring"),
		cases: cases,
		model: model,
		now:   time.Now,
	}
}

// ScoreUnscored sends every ASSIGNED or UN_ASSIGNED case without a score to
// the model in one batch and stores the returned scores. A failed model call
// is logged and yields zero updates so the next cycle retries the same set.
func (s *Service) ScoreUnscored(ctx context.Context) (int, error) {
	cases, err := s.cases.ListUnscored(ctx, domain.StatusAssigned, domain.StatusUnassigned)
	if err != nil {
		return 0, fmt.Errorf("scoring.ScoreUnscored list: %w", err)
	}
	if len(cases) == 0 {
		return 0, nil
	}

	scores, err := s.predict(ctx, cases)
	if err != nil {
		s.log.WarnContext(ctx, "scoring service unavailable",
			slog.Int("pending", len(cases)),
			slog.String("error", err.Error()))
		return 0, nil
	}

	updated, err := s.store(ctx, scores)
	if err != nil {
		return updated, fmt.Errorf("scoring.ScoreUnscored: %w", err)
	}
	s.log.InfoContext(ctx, "cases scored",
		slog.Int("pending", len(cases)),
		slog.Int("updated", updated))
	return updated, nil
}

// ScoreCase scores one case on demand and stores the result.
func (s *Service) ScoreCase(ctx context.Context, invoice string) (float64, error) {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return 0, err
	}
	scores, err := s.predict(ctx, []domain.Case{*c})
	if err != nil {
		return 0, fmt.Errorf("scoring.ScoreCase: %w", err)
	}
	score, ok := scores[invoice]
	if !ok {
		return 0, &domain.UpstreamError{Service: "scoring", Err: errors.New("no prediction for " + invoice)}
	}
	if err := s.cases.UpdateScore(ctx, invoice, score); err != nil {
		return 0, fmt.Errorf("scoring.ScoreCase update: %w", err)
	}
	return score, nil
}

// Prediction returns the recommendation for a case, scoring it first when it
// has no score yet. A model outage leaves the case unscored.
func (s *Service) Prediction(ctx context.Context, invoice string) (*Prediction, error) {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if err := s.ensureScored(ctx, []*domain.Case{c}); err != nil {
		return nil, err
	}
	p := predictionFor(c)
	return &p, nil
}

// ScoreBatch returns predictions for every known invoice, scoring the
// unscored ones in a single model call. Unknown invoices are skipped.
func (s *Service) ScoreBatch(ctx context.Context, invoices []string) (*BatchPrediction, error) {
	found, err := s.cases.GetByInvoices(ctx, invoices)
	if err != nil {
		return nil, fmt.Errorf("scoring.ScoreBatch: %w", err)
	}

	cases := make([]*domain.Case, 0, len(found))
	for _, inv := range invoices {
		c, ok := found[inv]
		if !ok {
			continue
		}
		cases = append(cases, &c)
	}
	if err := s.ensureScored(ctx, cases); err != nil {
		return nil, err
	}

	res := &BatchPrediction{
		Requested:   len(invoices),
		Predictions: make([]Prediction, 0, len(cases)),
	}
	var total float64
	var scored int
	for _, c := range cases {
		res.Predictions = append(res.Predictions, predictionFor(c))
		if c.IsScored() {
			total += c.PropensityScore
			scored++
		}
	}
	res.Returned = len(res.Predictions)
	if scored > 0 {
		res.AverageScore = total / float64(scored)
	}
	return res, nil
}

// ScoreAllUnassigned runs ScoreBatch over every UN_ASSIGNED case.
func (s *Service) ScoreAllUnassigned(ctx context.Context) (*BatchPrediction, error) {
	cases, err := s.cases.ListByStatus(ctx, domain.StatusUnassigned)
	if err != nil {
		return nil, fmt.Errorf("scoring.ScoreAllUnassigned: %w", err)
	}
	invoices := make([]string, len(cases))
	for i, c := range cases {
		invoices[i] = c.InvoiceNumber
	}
	return s.ScoreBatch(ctx, invoices)
}

// TopScored returns the highest scored cases.
func (s *Service) TopScored(ctx context.Context, limit int) ([]domain.Case, error) {
	if limit < 1 {
		return nil, domain.NewValidationError("limit", "limit must be positive")
	}
	limit = min(limit, maxTopScored)
	cases, err := s.cases.ListTopScored(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("scoring.TopScored: %w", err)
	}
	return cases, nil
}

// Statistics summarizes the score distribution over scored cases.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("scoring.Statistics: %w", err)
	}

	st := &Statistics{TotalCases: int64(len(cases))}
	var sum float64
	for _, c := range cases {
		if !c.IsScored() {
			continue
		}
		score := c.PropensityScore
		if st.TotalScored == 0 || score > st.MaxScore {
			st.MaxScore = score
		}
		if st.TotalScored == 0 || score < st.MinScore {
			st.MinScore = score
		}
		st.TotalScored++
		sum += score

		switch {
		case score >= HighPriorityMin:
			st.HighPriority++
		case score >= MediumPriorityMin:
			st.MediumPriority++
		default:
			st.LowPriority++
		}
	}
	if st.TotalScored > 0 {
		st.AverageScore = sum / float64(st.TotalScored)
	}
	return st, nil
}

// Health reports whether the model answers.
func (s *Service) Health(ctx context.Context) Health {
	return Health{Available: s.model.Healthy(ctx), Timestamp: s.now().UTC()}
}

// ensureScored scores the unscored cases in place. Model failures are logged
// and leave the cases unscored.
func (s *Service) ensureScored(ctx context.Context, cases []*domain.Case) error {
	var pending []domain.Case
	for _, c := range cases {
		if !c.IsScored() {
			pending = append(pending, *c)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	scores, err := s.predict(ctx, pending)
	if err != nil {
		s.log.WarnContext(ctx, "on-demand scoring failed",
			slog.Int("cases", len(pending)),
			slog.String("error", err.Error()))
		return nil
	}
	if _, err := s.store(ctx, scores); err != nil {
		return fmt.Errorf("scoring: store scores: %w", err)
	}
	for _, c := range cases {
		if score, ok := scores[c.InvoiceNumber]; ok {
			c.PropensityScore = score
		}
	}
	return nil
}

// predict returns valid scores keyed by invoice. Out-of-range scores are
// dropped.
func (s *Service) predict(ctx context.Context, cases []domain.Case) (map[string]float64, error) {
	reqs := make([]model.Request, len(cases))
	for i := range cases {
		reqs[i] = model.RequestFor(&cases[i])
	}
	preds, err := s.model.Predict(ctx, reqs)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(preds))
	for _, p := range preds {
		if p.PropensityScore < 0 || p.PropensityScore > 1 {
			s.log.WarnContext(ctx, "score out of range",
				slog.String("invoice", p.InvoiceNumber),
				slog.Float64("score", p.PropensityScore))
			continue
		}
		scores[p.InvoiceNumber] = p.PropensityScore
	}
	return scores, nil
}

// store writes scores back by invoice. Invoices unknown to the store are
// skipped.
func (s *Service) store(ctx context.Context, scores map[string]float64) (int, error) {
	updated := 0
	for invoice, score := range scores {
		err := s.cases.UpdateScore(ctx, invoice, score)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *Service) getCase(ctx context.Context, invoice string) (*domain.Case, error) {
	c, err := s.cases.GetByInvoice(ctx, invoice)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Case not found: %s", invoice)
		}
		return nil, fmt.Errorf("scoring: get case: %w", err)
	}
	return c, nil
}
