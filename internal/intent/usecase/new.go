package usecase

import (
	"context"

	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/log"
)

// Scorer is a Classifier that also exposes raw per-intent scores.
type Scorer interface {
	intent.Classifier
	Scores(text string) []intent.Score
}

// UseCase runs utterances through classification, refinement and routing
// without executing any tool.
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, text string) (Analysis, error)
}

type implUseCase struct {
	l          log.Logger
	classifier Scorer
}

// New creates a new intent UseCase.
func New(l log.Logger, classifier Scorer) UseCase {
	return &implUseCase{l: l, classifier: classifier}
}
