package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "vyaparkendra/contexts/insights/advisory-service/domain/errors"
)

// GSTAnalysis and CreditPrediction are canned model outputs. The shapes
// are stable so clients can build against them before the real models
// are hosted.
type GSTAnalysis struct {
	RiskLevel       string   `json:"risk_level"`
	ComplianceScore int      `json:"compliance_score"`
	Recommendations []string `json:"recommendations"`
}

type CreditPrediction struct {
	EstimatedScore     int      `json:"estimated_score"`
	DefaultProbability float64  `json:"default_probability"`
	Factors            []string `json:"factors"`
}

type Service struct {
	Logger *slog.Logger
}

func (s Service) GSTAnalysis(_ context.Context, data string) (GSTAnalysis, error) {
	if strings.TrimSpace(data) == "" {
		return GSTAnalysis{}, domainerrors.ErrEmptyAdvisoryInput
	}
	return GSTAnalysis{
		RiskLevel:       "Low",
		ComplianceScore: 92,
		Recommendations: []string{
			"File GSTR-3B before the 20th to avoid late fees",
			"Reconcile input tax credit with GSTR-2B monthly",
			"Maintain digital copies of all purchase invoices",
		},
	}, nil
}

func (s Service) CreditScorePrediction(_ context.Context, data string) (CreditPrediction, error) {
	if strings.TrimSpace(data) == "" {
		return CreditPrediction{}, domainerrors.ErrEmptyAdvisoryInput
	}
	return CreditPrediction{
		EstimatedScore:     745,
		DefaultProbability: 0.04,
		Factors: []string{
			"Consistent GST filing history",
			"Stable monthly transaction volume",
			"No existing loan defaults",
		},
	}, nil
}
