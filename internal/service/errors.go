package service

import (
	"fmt"

	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

type ErrInvalidInput struct {
	error
}

func NewErrInvalidInput(err error) *ErrInvalidInput {
	return &ErrInvalidInput{err}
}

func (e *ErrInvalidInput) Unwrap() error {
	return e.error
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format types.ReportFormat) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format: %s", format)}
}
