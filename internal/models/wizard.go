package models

// WizardMode фиксируется на всё время жизни мастера
type WizardMode string

const (
	ModeCreate WizardMode = "create"
	ModeEdit   WizardMode = "edit"
)

// Limits for a single set
const (
	MinRepetitions = 1
	MaxRepetitions = 999
	MinWeight      = 0
	MaxWeight      = 999.99
)

// Default set assigned to an exercise that has no configured sets yet
const (
	DefaultSetRepetitions = 1
	DefaultSetWeight      = 2.5
)

// SetDescriptor — один подход: повторения × вес, с позицией
// внутри упражнения (плотная нумерация с нуля)
type SetDescriptor struct {
	Repetitions int     `json:"repetitions"`
	Weight      float64 `json:"weight"`
	Order       int     `json:"order"`
}

// Valid reports whether repetitions and weight are inside the allowed ranges
func (s SetDescriptor) Valid() bool {
	if s.Repetitions < MinRepetitions || s.Repetitions > MaxRepetitions {
		return false
	}
	if s.Weight < MinWeight || s.Weight > MaxWeight {
		return false
	}
	return true
}

// DefaultSet возвращает подход по умолчанию
func DefaultSet() SetDescriptor {
	return SetDescriptor{Repetitions: DefaultSetRepetitions, Weight: DefaultSetWeight, Order: 0}
}

// PlanBasics — шаг 1 мастера: имя, описание, цель
type PlanBasics struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Goal        PlanGoal `json:"goal"`
}

// WizardState is the in-memory working document of the plan-creation wizard.
// Mutated only through the Machine operations; validity is checked by the
// step predicates, never at the mutation boundary.
type WizardState struct {
	Mode                WizardMode                 `json:"mode"`
	CurrentStep         int                        `json:"current_step"` // 1..3
	CompletedSteps      map[int]bool               `json:"completed_steps"`
	Basics              *PlanBasics                `json:"basics"`
	SelectedExerciseIDs []string                   `json:"selected_exercise_ids"`
	SetsByExercise      map[string][]SetDescriptor `json:"sets_by_exercise"`
}

// NewWizardState создаёт пустое состояние мастера
func NewWizardState(mode WizardMode) *WizardState {
	return &WizardState{
		Mode:           mode,
		CurrentStep:    1,
		CompletedSteps: make(map[int]bool),
		SetsByExercise: make(map[string][]SetDescriptor),
	}
}

// Clone возвращает глубокую копию состояния; снимок можно сериализовать,
// не оглядываясь на дальнейшие мутации оригинала
func (s *WizardState) Clone() *WizardState {
	c := &WizardState{
		Mode:           s.Mode,
		CurrentStep:    s.CurrentStep,
		CompletedSteps: make(map[int]bool, len(s.CompletedSteps)),
		SetsByExercise: make(map[string][]SetDescriptor, len(s.SetsByExercise)),
	}
	for step, done := range s.CompletedSteps {
		c.CompletedSteps[step] = done
	}
	if s.Basics != nil {
		b := *s.Basics
		c.Basics = &b
	}
	if len(s.SelectedExerciseIDs) > 0 {
		c.SelectedExerciseIDs = make([]string, len(s.SelectedExerciseIDs))
		copy(c.SelectedExerciseIDs, s.SelectedExerciseIDs)
	}
	for id, sets := range s.SetsByExercise {
		cp := make([]SetDescriptor, len(sets))
		copy(cp, sets)
		c.SetsByExercise[id] = cp
	}
	return c
}

// IsEmpty reports whether the wizard has not been touched yet:
// no basics, no selected exercises, no sets
func (s *WizardState) IsEmpty() bool {
	return s.Basics == nil && len(s.SelectedExerciseIDs) == 0 && len(s.SetsByExercise) == 0
}
