package models

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateQuestionTextEmpty(t *testing.T) {
	if err := ValidateQuestionText("", nil); !errors.Is(err, ErrQuestionEmpty) {
		t.Errorf("ValidateQuestionText(\"\") = %v, want ErrQuestionEmpty", err)
	}
	if err := ValidateQuestionText("   \t ", nil); !errors.Is(err, ErrQuestionEmpty) {
		t.Errorf("ValidateQuestionText(whitespace) = %v, want ErrQuestionEmpty", err)
	}
}

func TestValidateQuestionTextLength(t *testing.T) {
	atLimit := strings.Repeat("a", MaxQuestionLength)
	if err := ValidateQuestionText(atLimit, nil); err != nil {
		t.Errorf("ValidateQuestionText(200 chars) = %v, want nil", err)
	}

	overLimit := strings.Repeat("a", MaxQuestionLength+1)
	if err := ValidateQuestionText(overLimit, nil); !errors.Is(err, ErrQuestionTooLong) {
		t.Errorf("ValidateQuestionText(201 chars) = %v, want ErrQuestionTooLong", err)
	}

	// Surrounding whitespace does not count against the limit
	padded := "  " + atLimit + "  "
	if err := ValidateQuestionText(padded, nil); err != nil {
		t.Errorf("ValidateQuestionText(padded 200 chars) = %v, want nil", err)
	}
}

func TestValidateQuestionTextDuplicate(t *testing.T) {
	existing := []Question{
		{ID: 1, VenueID: 1, Text: "How was the food?"},
		{ID: 2, VenueID: 1, Text: "  How was the service?  "},
	}

	if err := ValidateQuestionText("how was THE food?", existing); !errors.Is(err, ErrQuestionDuplicate) {
		t.Errorf("case-insensitive duplicate = %v, want ErrQuestionDuplicate", err)
	}
	if err := ValidateQuestionText("How was the service?", existing); !errors.Is(err, ErrQuestionDuplicate) {
		t.Errorf("duplicate against padded existing text = %v, want ErrQuestionDuplicate", err)
	}
	if err := ValidateQuestionText("How was the music?", existing); err != nil {
		t.Errorf("distinct question = %v, want nil", err)
	}
}
