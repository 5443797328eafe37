package usecase

import (
	"context"
	"unicode/utf8"

	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/model"
)

func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, text string) (Analysis, error) {
	if utf8.RuneCountInString(text) > MaxTextLength {
		return Analysis{}, ErrTextTooLong
	}

	classified := uc.classifier.Classify(text)
	refined := uc.classifier.Refine(classified)
	routing := toolmap.Map(refined, sc.UserID)
	if !routing.Success {
		uc.l.Debugf(ctx, "internal.intent.usecase.Analyze: %s: %s", refined.Intent, routing.Error)
	}

	return Analysis{
		Classified: classified,
		Refined:    refined,
		Routing:    routing,
		Scores:     uc.classifier.Scores(text),
	}, nil
}
