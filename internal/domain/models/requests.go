package models

// Requests for the analysis HTTP endpoints.

type AnalysisRequest struct {
	Ticker string `param:"ticker" json:"ticker" validate:"required,max=16"`
	Period string `query:"period" json:"period" default:"1mo" validate:"required,max=8"`
}
