// Package summarizer forwards free-text customer questions to an external
// completion model and returns a short summary of the question.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxQuestionChars = 500

var (
	ErrEmptyQuestion   = errors.New("question is required")
	ErrQuestionTooLong = fmt.Errorf("question must be at most %d characters", maxQuestionChars)
)

// CompletionClient is the outbound dependency. Tests substitute a mock and
// assert on call counts.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	client  CompletionClient
	timeout time.Duration
}

func New(client CompletionClient, timeout time.Duration) *Service {
	return &Service{client: client, timeout: timeout}
}

// ValidateQuestion runs before any external call is attempted.
func ValidateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	if utf8.RuneCountInString(question) > maxQuestionChars {
		return ErrQuestionTooLong
	}
	return nil
}

func buildPrompt(question string) string {
	return "Summarize the following customer question in at most two short, " +
		"clear and objective sentences, keeping a professional tone without " +
		"losing the original intent of the question:\n\n" + question
}

// Summarize validates the question, sends it with the fixed prompt and
// returns the trimmed model output. The outbound call never blocks longer
// than the configured timeout.
func (s *Service) Summarize(ctx context.Context, question string) (string, error) {
	if err := ValidateQuestion(question); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.Complete(ctx, buildPrompt(question))
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
