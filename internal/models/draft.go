package models

import "time"

// Draft — durable snapshot of an unfinished plan-creation wizard.
// Written continuously in create mode, deleted on submit/discard,
// expires after the TTL (checked lazily on load).
type Draft struct {
	Step                int                        `json:"step"`
	Basics              *PlanBasics                `json:"basics"`
	SelectedExerciseIDs []string                   `json:"selected_exercise_ids"`
	SetsByExercise      map[string][]SetDescriptor `json:"sets_by_exercise"`
	Timestamp           time.Time                  `json:"timestamp"`
}

// Age возвращает возраст черновика
func (d *Draft) Age() time.Duration {
	return time.Since(d.Timestamp)
}
