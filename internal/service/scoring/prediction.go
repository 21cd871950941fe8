package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Score bands of the statistics endpoint.
const (
	HighPriorityMin   = 0.7
	MediumPriorityMin = 0.4
)

const maxConfidence = 0.95

// Prediction is the recommendation derived from a case score.
type Prediction struct {
	InvoiceNumber     string
	PropensityScore   float64
	RecommendedAction string
	ExpectedRecovery  decimal.Decimal
	Confidence        float64
	Reasoning         string
}

// BatchPrediction is the result of scoring several invoices.
type BatchPrediction struct {
	Requested    int
	Returned     int
	AverageScore float64
	Predictions  []Prediction
}

// Statistics describes the score distribution. Min, max and average are
// zero when nothing is scored.
type Statistics struct {
	TotalScored    int64
	TotalCases     int64
	AverageScore   float64
	MaxScore       float64
	MinScore       float64
	HighPriority   int64
	MediumPriority int64
	LowPriority    int64
}

// Health is the availability of the model.
type Health struct {
	Available bool
	Timestamp time.Time
}

func predictionFor(c *domain.Case) Prediction {
	p := Prediction{
		InvoiceNumber:     c.InvoiceNumber,
		PropensityScore:   domain.UnscoredPropensity,
		RecommendedAction: RecommendedAction(c.PropensityScore),
		ExpectedRecovery:  decimal.Zero,
		Reasoning:         "Case pending AI analysis",
	}
	if !c.IsScored() {
		return p
	}

	score := c.PropensityScore
	p.PropensityScore = score
	p.ExpectedRecovery = c.AmountOrZero().Mul(decimal.NewFromFloat(score)).Round(2)
	p.Confidence = min(score*1.2, maxConfidence)
	p.Reasoning = reasoning(c)
	return p
}

// RecommendedAction maps a score in [0, 1] to the next collection step.
func RecommendedAction(score float64) string {
	switch {
	case score < 0:
		return "Awaiting AI analysis"
	case score >= 0.8:
		return "IMMEDIATE ACTION - High recovery probability"
	case score >= 0.6:
		return "Priority outreach recommended"
	case score >= 0.4:
		return "Standard follow-up procedures"
	case score >= 0.2:
		return "Consider settlement options"
	default:
		return "Evaluate for write-off consideration"
	}
}

func reasoning(c *domain.Case) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recovery probability: %.1f%%", c.PropensityScore*100)
	if c.DaysOverdue != nil {
		fmt.Fprintf(&b, ", Days overdue: %d", *c.DaysOverdue)
	}
	if c.Amount != nil {
		fmt.Fprintf(&b, ", Amount: $%s", c.Amount.StringFixed(2))
	}
	if c.PastDefaults != nil && *c.PastDefaults > 0 {
		fmt.Fprintf(&b, ", Past defaults: %d", *c.PastDefaults)
	}
	return b.String()
}
