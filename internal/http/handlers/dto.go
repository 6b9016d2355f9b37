package handlers

import "encoding/json"

type RevenueResponse struct {
	Period string  `json:"period"`
	Gross  float64 `json:"gross"`
	Net    float64 `json:"net"`
}

type ComparePeriod struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Value float64 `json:"value"`
}

type CompareResponse struct {
	Metric      string        `json:"metric"`
	Period1     ComparePeriod `json:"period1"`
	Period2     ComparePeriod `json:"period2"`
	DiffPercent float64       `json:"diff_percent"`
}

type DashboardRequest struct {
	Name   string          `json:"name"`
	Layout json.RawMessage `json:"layout"`
}

type SummaryRequest struct {
	Question string `json:"question"`
}

type SummaryResponse struct {
	Question string `json:"question"`
	Summary  string `json:"summary"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}
