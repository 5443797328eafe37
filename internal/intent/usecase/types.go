package usecase

import (
	"errors"

	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/intent"
)

// MaxTextLength bounds utterances accepted by the debug surfaces.
const MaxTextLength = 10000

var ErrTextTooLong = errors.New("text must be at most 10000 characters")

// Analysis is every intermediate result of one pass through the pipeline.
type Analysis struct {
	Classified intent.ClassifiedIntent `json:"classified"`
	Refined    intent.ClassifiedIntent `json:"refined"`
	Routing    toolmap.Result          `json:"routing"`
	Scores     []intent.Score          `json:"scores"`
}
