package usecase

import (
	"strings"
	"unicode/utf8"

	"todo-ai-chatbot/internal/task"
)

func (uc *implUseCase) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", task.ErrInvalidTitle
	}
	return title, nil
}

func (uc *implUseCase) validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > task.MaxDescriptionLength {
		return task.ErrDescriptionTooLong
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
