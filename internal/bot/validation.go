package bot

import (
	"strings"
	"unicode/utf8"

	"fittracker/internal/models"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validatePlanName validates training plan name (step 1 of the wizard).
// Длина считается в символах, не в байтах: «Ноги» — 4 символа.
func validatePlanName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "Название плана не может быть пустым"}
	}
	n := utf8.RuneCountInString(name)
	if n < 3 {
		return ValidationError{Field: "name", Message: "Название слишком короткое (минимум 3 символа)"}
	}
	if n > 100 {
		return ValidationError{Field: "name", Message: "Название слишком длинное (максимум 100 символов)"}
	}
	return nil
}

// validateRepetitions validates repetitions count for a set
func validateRepetitions(reps int) error {
	if reps < models.MinRepetitions {
		return ValidationError{Field: "repetitions", Message: "Количество повторений должно быть положительным"}
	}
	if reps > models.MaxRepetitions {
		return ValidationError{Field: "repetitions", Message: "Слишком много повторений (максимум 999)"}
	}
	return nil
}

// validateSetWeight validates weight in kg for a set
func validateSetWeight(weight float64) error {
	if weight < models.MinWeight {
		return ValidationError{Field: "weight", Message: "Вес не может быть отрицательным"}
	}
	if weight > models.MaxWeight {
		return ValidationError{Field: "weight", Message: "Вес слишком большой (максимум 999.99 кг)"}
	}
	return nil
}

// validateSetCount validates how many sets are added at once
func validateSetCount(n int) error {
	if n < 1 {
		return ValidationError{Field: "sets", Message: "Количество подходов должно быть положительным"}
	}
	if n > 20 {
		return ValidationError{Field: "sets", Message: "Слишком много подходов (максимум 20)"}
	}
	return nil
}
