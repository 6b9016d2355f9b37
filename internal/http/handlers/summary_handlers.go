package handlers

import (
	"errors"
	"net/http"

	"github.com/lucasvieira94/nola-god-level/internal/summarizer"
	"go.uber.org/zap"
)

// SummaryHandler godoc
// @Summary Summarize a free-text customer question via the completion model
// @Tags summary
// @Accept json
// @Produce json
// @Param question body SummaryRequest true "question, at most 500 characters"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [post]
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := summarySvc.Summarize(r.Context(), req.Question)
	if errors.Is(err, summarizer.ErrEmptyQuestion) || errors.Is(err, summarizer.ErrQuestionTooLong) {
		writeFieldErrors(w, []FieldError{{Field: "question", Description: err.Error()}})
		return
	}
	if err != nil {
		// Provider failures surface uniformly as a gateway error with the
		// underlying detail; the question is not echoed back.
		log.Error("summary generation failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   "failed to generate summary",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Question: req.Question, Summary: summary})
}
