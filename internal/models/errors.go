package models

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrValidation          = errors.New("validation failed")
	ErrStoreIO             = errors.New("store i/o failure")
	ErrPartialPromotion    = errors.New("promotion partially applied")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(flds ...FieldError) error {
	return &ValidationError{Fields: flds}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StoreError wraps a failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreIO
}

// PromotionError means the paid student exists but the trial record is still active.
type PromotionError struct {
	Student *Student
	Err     error
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("student %d created but trial record not archived: %v", e.Student.ID, e.Err)
}

func (e *PromotionError) Unwrap() error {
	return e.Err
}

func (e *PromotionError) Is(target error) bool {
	return target == ErrPartialPromotion
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
