package httpadapter

import (
	"context"
	"log/slog"

	"vyaparkendra/contexts/insights/advisory-service/application"
	httptransport "vyaparkendra/contexts/insights/advisory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GSTAnalysisHandler(ctx context.Context, body httptransport.AdvisoryRequest) (httptransport.GSTAnalysisResponse, error) {
	analysis, err := h.Service.GSTAnalysis(ctx, body.Data)
	if err != nil {
		return httptransport.GSTAnalysisResponse{}, err
	}
	return httptransport.GSTAnalysisResponse{
		Status:          "success",
		RiskLevel:       analysis.RiskLevel,
		ComplianceScore: analysis.ComplianceScore,
		Recommendations: analysis.Recommendations,
	}, nil
}

func (h Handler) CreditPredictionHandler(ctx context.Context, body httptransport.AdvisoryRequest) (httptransport.CreditPredictionResponse, error) {
	prediction, err := h.Service.CreditScorePrediction(ctx, body.Data)
	if err != nil {
		return httptransport.CreditPredictionResponse{}, err
	}
	return httptransport.CreditPredictionResponse{
		Status:             "success",
		EstimatedScore:     prediction.EstimatedScore,
		DefaultProbability: prediction.DefaultProbability,
		Factors:            prediction.Factors,
	}, nil
}
