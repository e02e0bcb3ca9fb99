package wizard

import (
	"strings"
	"sync"
	"unicode/utf8"

	"fittracker/internal/models"
)

// Steps of the plan-creation wizard
const (
	StepBasics        = 1
	StepExercises     = 2
	StepConfiguration = 3
)

// Name length limits for step 1, in runes
const (
	MinPlanNameLen = 3
	MaxPlanNameLen = 100
)

// Submitter принимает финальную составную команду мастера
type Submitter interface {
	Create(ownerID int64, cmd models.PlanCompositionCommand) (*models.Plan, error)
}

// Discarder удаляет сохранённый черновик
type Discarder interface {
	Discard() error
}

// Machine owns the 3-step wizard flow over a WizardState: basics →
// exercise selection → set configuration. Transitions are strictly linear;
// NextStep is gated on the current step's validator, PrevStep is
// unconditional. Mutations are total — out-of-range input is stored and
// caught by the validators, never rejected at the boundary.
//
// Состояние читает не только диалоговый цикл, но и фоновое автосохранение,
// поэтому машина потокобезопасна: State отдаёт независимый снимок.
type Machine struct {
	mu    sync.RWMutex
	state *models.WizardState
}

// NewMachine создаёт мастер с пустым состоянием
func NewMachine(mode models.WizardMode) *Machine {
	return &Machine{state: models.NewWizardState(mode)}
}

// NewMachineForEdit hydrates the wizard from an existing plan
func NewMachineForEdit(plan *models.Plan) *Machine {
	m := &Machine{state: models.NewWizardState(models.ModeEdit)}
	m.state.Basics = &models.PlanBasics{
		Name:        plan.Name,
		Description: plan.Description,
		Goal:        plan.Goal,
	}
	for _, pe := range plan.Exercises {
		m.state.SelectedExerciseIDs = append(m.state.SelectedExerciseIDs, pe.ExerciseID)
		sets := make([]models.SetDescriptor, 0, len(pe.Sets))
		for _, s := range pe.Sets {
			sets = append(sets, models.SetDescriptor{
				Repetitions: s.Repetitions,
				Weight:      s.Weight,
				Order:       s.OrderNum,
			})
		}
		m.state.SetsByExercise[pe.ExerciseID] = sets
	}
	return m
}

// State возвращает снимок состояния мастера. Снимок не связан с рабочим
// состоянием: его можно сериализовать параллельно с мутациями.
func (m *Machine) State() *models.WizardState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// CurrentStep возвращает текущий шаг (1..3)
func (m *Machine) CurrentStep() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.CurrentStep
}

// IsStepValid — чистый предикат валидности шага, без побочных эффектов
func (m *Machine) IsStepValid(step int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stepValid(step)
}

func (m *Machine) stepValid(step int) bool {
	switch step {
	case StepBasics:
		if m.state.Basics == nil {
			return false
		}
		n := utf8.RuneCountInString(strings.TrimSpace(m.state.Basics.Name))
		return n >= MinPlanNameLen && n <= MaxPlanNameLen
	case StepExercises:
		return len(m.state.SelectedExerciseIDs) > 0
	case StepConfiguration:
		if len(m.state.SelectedExerciseIDs) == 0 {
			return false
		}
		for _, id := range m.state.SelectedExerciseIDs {
			sets, ok := m.state.SetsByExercise[id]
			if !ok || len(sets) == 0 {
				return false
			}
			for _, s := range sets {
				if !s.Valid() {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

// CanProceedToNextStep reports whether the current step passes its validator
func (m *Machine) CanProceedToNextStep() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stepValid(m.state.CurrentStep)
}

// NextStep advances one step; no-op unless the current step is valid
func (m *Machine) NextStep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stepValid(m.state.CurrentStep) {
		return
	}
	m.state.CompletedSteps[m.state.CurrentStep] = true
	if m.state.CurrentStep < StepConfiguration {
		m.state.CurrentStep++
	}
}

// PrevStep steps back unconditionally
func (m *Machine) PrevStep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.CurrentStep > StepBasics {
		m.state.CurrentStep--
	}
}

// GoToStep — непроверяемый переход; используется только при восстановлении
// из черновика
func (m *Machine) GoToStep(step int) {
	if step < StepBasics || step > StepConfiguration {
		return
	}
	m.mu.Lock()
	m.state.CurrentStep = step
	m.mu.Unlock()
}

// SaveBasics replaces the basics wholesale
func (m *Machine) SaveBasics(basics models.PlanBasics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := basics
	m.state.Basics = &b
}

// SaveExercises replaces the selection and prunes setsByExercise to the new
// id set, preserving existing sets for the ids retained.
func (m *Machine) SaveExercises(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedExerciseIDs = make([]string, len(ids))
	copy(m.state.SelectedExerciseIDs, ids)

	kept := make(map[string]bool, len(ids))
	for _, id := range ids {
		kept[id] = true
	}
	for id := range m.state.SetsByExercise {
		if !kept[id] {
			delete(m.state.SetsByExercise, id)
		}
	}
}

// SaveSetsConfig rebuilds setsByExercise from a full per-exercise list.
// Used both for direct edits and for draft restoration.
func (m *Machine) SaveSetsConfig(config []ExerciseConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SetsByExercise = make(map[string][]models.SetDescriptor, len(config))
	for _, c := range config {
		sets := make([]models.SetDescriptor, len(c.Sets))
		copy(sets, c.Sets)
		m.state.SetsByExercise[c.ExerciseID] = sets
	}
}

// BuildCommand derives the composite command from the current state
func (m *Machine) BuildCommand() models.PlanCompositionCommand {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cmd := models.PlanCompositionCommand{}
	if m.state.Basics != nil {
		cmd.Name = strings.TrimSpace(m.state.Basics.Name)
		cmd.Description = m.state.Basics.Description
		cmd.Goal = m.state.Basics.Goal
	}
	for _, id := range m.state.SelectedExerciseIDs {
		ex := models.PlanExerciseCommand{ExerciseID: id}
		for _, s := range m.state.SetsByExercise[id] {
			order := s.Order
			ex.Sets = append(ex.Sets, models.SetInput{
				Repetitions: s.Repetitions,
				Weight:      s.Weight,
				Order:       &order,
			})
		}
		cmd.Exercises = append(cmd.Exercises, ex)
	}
	return cmd
}

// Submit delegates the final composite command to the composition service
// and, on success, clears the wizard state and the stored draft.
// drafts может быть nil (режим редактирования черновиков не ведёт).
func (m *Machine) Submit(ownerID int64, svc Submitter, drafts Discarder) (*models.Plan, error) {
	plan, err := svc.Create(ownerID, m.BuildCommand())
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.state = models.NewWizardState(m.state.Mode)
	m.mu.Unlock()
	if drafts != nil {
		drafts.Discard()
	}
	return plan, nil
}
