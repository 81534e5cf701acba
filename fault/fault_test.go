package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindClassification(t *testing.T) {
	notFound := NewNotFound("survey not found")
	validation := NewValidation("bad edit")
	internal := NewInternal("an unexpected error occurred", errors.New("db down"))

	if !IsNotFound(notFound) || IsValidation(notFound) || IsInternal(notFound) {
		t.Errorf("not-found fault misclassified")
	}
	if !IsValidation(validation) || IsNotFound(validation) {
		t.Errorf("validation fault misclassified")
	}
	if !IsInternal(internal) || IsValidation(internal) {
		t.Errorf("internal fault misclassified")
	}
}

func TestWrappedFaultStillClassifies(t *testing.T) {
	err := fmt.Errorf("update survey: %w", NewValidation("bad edit"))
	if !IsValidation(err) {
		t.Errorf("expected wrapped fault to classify as validation")
	}
	if Detail(err) != "bad edit" {
		t.Errorf("expected detail from wrapped fault, got %q", Detail(err))
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("an unexpected error occurred", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to reach the cause")
	}
}

func TestDetailFallsBackForPlainErrors(t *testing.T) {
	if Detail(errors.New("sql: bad conn")) != "internal server error" {
		t.Errorf("expected generic detail for non-fault errors")
	}
}

func TestErrorStringCarriesKindAndCause(t *testing.T) {
	err := NewInternal("boom", errors.New("cause"))
	want := "[Internal] boom: cause"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	plain := NewValidation("nope")
	if plain.Error() != "[Validation] nope" {
		t.Errorf("unexpected error string %q", plain.Error())
	}
}
