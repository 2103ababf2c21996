package insighting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
)

var (
	ErrCreatorIDRequired = errors.New("creator ID is required")
	ErrCreatorNotFound   = errors.New("creator profile not found")
)

// InsightsError é um erro com contexto adicional para o cálculo de insights
type InsightsError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	CreatorID string
	Details   string
}

func (e *InsightsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightsError) Unwrap() error {
	return e.Err
}

func newCreatorIDRequiredError() *InsightsError {
	return &InsightsError{
		Err:  ErrCreatorIDRequired,
		Code: apiErrors.ErrMissingRequiredData,
	}
}

func newCreatorNotFoundError(creatorID string) *InsightsError {
	return &InsightsError{
		Err:       ErrCreatorNotFound,
		Code:      apiErrors.ErrCreatorNotFound,
		CreatorID: creatorID,
		Details:   creatorID,
	}
}
