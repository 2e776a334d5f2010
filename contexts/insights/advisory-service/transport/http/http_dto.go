package httptransport

type AdvisoryRequest struct {
	Data string `json:"data"`
}

type GSTAnalysisResponse struct {
	Status          string   `json:"status"`
	RiskLevel       string   `json:"risk_level"`
	ComplianceScore int      `json:"compliance_score"`
	Recommendations []string `json:"recommendations"`
}

type CreditPredictionResponse struct {
	Status             string   `json:"status"`
	EstimatedScore     int      `json:"estimated_score"`
	DefaultProbability float64  `json:"default_probability"`
	Factors            []string `json:"factors"`
}
