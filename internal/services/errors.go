package services

import (
	"errors"
	"fmt"

	"core-d-backend/internal/fashion"
	"core-d-backend/internal/imaging"
	"core-d-backend/internal/jsonx"
)

// ErrGeminiNotConfigured is returned by every model-backed operation when no
// GEMINI_API_KEY was configured.
var ErrGeminiNotConfigured = errors.New("GEMINI_API_KEY가 설정되지 않았습니다. .env에 GEMINI_API_KEY를 추가하세요.")

// StepError attributes an upstream failure to the pipeline step that made
// the call.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s 실패: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// IsValidation reports whether err rejects the request itself, as opposed to
// a failure while serving it.
func IsValidation(err error) bool {
	var invalid *fashion.ValidationError
	return errors.As(err, &invalid) || errors.Is(err, imaging.ErrNotImage)
}

// Describe renders err as the message returned to clients.
func Describe(err error) string {
	var parseErr *jsonx.ParseError
	if errors.As(err, &parseErr) {
		return "응답 파싱 실패: " + parseErr.Error()
	}
	return err.Error()
}
