package wizard

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"fittracker/internal/models"
)

func validSets() []models.SetDescriptor {
	return []models.SetDescriptor{{Repetitions: 10, Weight: 60, Order: 0}}
}

func TestStepOneValidation(t *testing.T) {
	tests := []struct {
		name   string
		basics *models.PlanBasics
		want   bool
	}{
		{"no basics", nil, false},
		{"empty name", &models.PlanBasics{Name: ""}, false},
		{"too short", &models.PlanBasics{Name: "ab"}, false},
		{"spaces only", &models.PlanBasics{Name: "   "}, false},
		{"minimum length", &models.PlanBasics{Name: "abc"}, true},
		{"trimmed to minimum", &models.PlanBasics{Name: "  abc  "}, true},
		{"maximum length", &models.PlanBasics{Name: strings.Repeat("a", 100)}, true},
		{"over maximum", &models.PlanBasics{Name: strings.Repeat("a", 101)}, false},
		// длина считается в символах: кириллица занимает два байта
		{"cyrillic two chars", &models.PlanBasics{Name: "Но"}, false},
		{"cyrillic four chars", &models.PlanBasics{Name: "Ноги"}, true},
		{"cyrillic hundred chars", &models.PlanBasics{Name: strings.Repeat("ж", 100)}, true},
		{"cyrillic over hundred", &models.PlanBasics{Name: strings.Repeat("ж", 101)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(models.ModeCreate)
			if tt.basics != nil {
				m.SaveBasics(*tt.basics)
			}
			if got := m.IsStepValid(StepBasics); got != tt.want {
				t.Errorf("IsStepValid(1) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextStepGatedOnValidity(t *testing.T) {
	m := NewMachine(models.ModeCreate)

	// невалидный шаг 1 — NextStep не двигает текущий шаг
	m.NextStep()
	if m.CurrentStep() != StepBasics {
		t.Fatalf("CurrentStep = %d, want %d", m.CurrentStep(), StepBasics)
	}

	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})
	m.NextStep()
	if m.CurrentStep() != StepExercises {
		t.Fatalf("CurrentStep = %d, want %d", m.CurrentStep(), StepExercises)
	}

	// пустой выбор — стоим на месте
	m.NextStep()
	if m.CurrentStep() != StepExercises {
		t.Fatalf("CurrentStep = %d after invalid next, want %d", m.CurrentStep(), StepExercises)
	}

	m.SaveExercises([]string{"e1"})
	m.NextStep()
	if m.CurrentStep() != StepConfiguration {
		t.Fatalf("CurrentStep = %d, want %d", m.CurrentStep(), StepConfiguration)
	}

	// шаг 3 без подходов невалиден; NextStep — no-op
	m.NextStep()
	if m.CurrentStep() != StepConfiguration {
		t.Errorf("CurrentStep = %d, want %d", m.CurrentStep(), StepConfiguration)
	}

	if !m.State().CompletedSteps[StepBasics] || !m.State().CompletedSteps[StepExercises] {
		t.Errorf("completed steps not recorded: %v", m.State().CompletedSteps)
	}
}

func TestPrevStepUnconditional(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})
	m.NextStep()

	m.PrevStep()
	if m.CurrentStep() != StepBasics {
		t.Errorf("CurrentStep = %d, want %d", m.CurrentStep(), StepBasics)
	}
	// ниже первого шага не уходим
	m.PrevStep()
	if m.CurrentStep() != StepBasics {
		t.Errorf("CurrentStep = %d, want %d", m.CurrentStep(), StepBasics)
	}
}

func TestGoToStepBounds(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.GoToStep(3)
	if m.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d, want 3", m.CurrentStep())
	}
	m.GoToStep(0)
	if m.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d after out-of-range jump", m.CurrentStep())
	}
	m.GoToStep(4)
	if m.CurrentStep() != 3 {
		t.Errorf("CurrentStep = %d after out-of-range jump", m.CurrentStep())
	}
}

func TestSaveExercisesPrunesSets(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveExercises([]string{"e1", "e2", "e3"})
	m.SaveSetsConfig([]ExerciseConfig{
		{ExerciseID: "e1", Sets: validSets()},
		{ExerciseID: "e2", Sets: validSets()},
		{ExerciseID: "e3", Sets: validSets()},
	})

	// убираем e2 — его подходы должны исчезнуть, остальные сохраниться
	m.SaveExercises([]string{"e1", "e3"})

	state := m.State()
	if _, ok := state.SetsByExercise["e2"]; ok {
		t.Error("sets for removed exercise survived")
	}
	if len(state.SetsByExercise["e1"]) != 1 || len(state.SetsByExercise["e3"]) != 1 {
		t.Errorf("retained sets lost: %v", state.SetsByExercise)
	}

	// инвариант: ключи подходов ⊆ выбранных упражнений
	for id := range state.SetsByExercise {
		found := false
		for _, sel := range state.SelectedExerciseIDs {
			if sel == id {
				found = true
			}
		}
		if !found {
			t.Errorf("sets key %q not in selection", id)
		}
	}
}

func TestStepThreeValidation(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveExercises([]string{"e1", "e2"})

	if m.IsStepValid(StepConfiguration) {
		t.Error("valid without any sets")
	}

	m.SaveSetsConfig([]ExerciseConfig{{ExerciseID: "e1", Sets: validSets()}})
	if m.IsStepValid(StepConfiguration) {
		t.Error("valid while e2 has no sets")
	}

	m.SaveSetsConfig([]ExerciseConfig{
		{ExerciseID: "e1", Sets: validSets()},
		{ExerciseID: "e2", Sets: []models.SetDescriptor{{Repetitions: 1000, Weight: 60, Order: 0}}},
	})
	if m.IsStepValid(StepConfiguration) {
		t.Error("valid with out-of-range repetitions")
	}

	m.SaveSetsConfig([]ExerciseConfig{
		{ExerciseID: "e1", Sets: validSets()},
		{ExerciseID: "e2", Sets: validSets()},
	})
	if !m.IsStepValid(StepConfiguration) {
		t.Error("invalid with complete valid sets")
	}
}

func TestBuildCommandOrdering(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "  Leg Day  ", Goal: models.GoalStrength})
	m.SaveExercises([]string{"e2", "e1"})
	m.SaveSetsConfig([]ExerciseConfig{
		{ExerciseID: "e1", Sets: validSets()},
		{ExerciseID: "e2", Sets: []models.SetDescriptor{
			{Repetitions: 5, Weight: 100, Order: 0},
			{Repetitions: 5, Weight: 105, Order: 1},
		}},
	})

	cmd := m.BuildCommand()
	if cmd.Name != "Leg Day" {
		t.Errorf("Name = %q, want trimmed", cmd.Name)
	}
	// порядок упражнений — порядок выбора
	got := []string{cmd.Exercises[0].ExerciseID, cmd.Exercises[1].ExerciseID}
	if !reflect.DeepEqual(got, []string{"e2", "e1"}) {
		t.Errorf("exercise order = %v", got)
	}
	if len(cmd.Exercises[0].Sets) != 2 {
		t.Errorf("e2 sets = %d, want 2", len(cmd.Exercises[0].Sets))
	}
	if *cmd.Exercises[0].Sets[1].Order != 1 {
		t.Errorf("explicit set order not carried")
	}
}

type fakeSubmitter struct {
	cmd  models.PlanCompositionCommand
	err  error
	plan *models.Plan
}

func (f *fakeSubmitter) Create(ownerID int64, cmd models.PlanCompositionCommand) (*models.Plan, error) {
	f.cmd = cmd
	if f.err != nil {
		return nil, f.err
	}
	return f.plan, nil
}

type fakeDiscarder struct{ discarded bool }

func (f *fakeDiscarder) Discard() error {
	f.discarded = true
	return nil
}

func TestSubmitClearsStateAndDraft(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})
	m.SaveExercises([]string{"e1"})
	m.SaveSetsConfig([]ExerciseConfig{{ExerciseID: "e1", Sets: validSets()}})

	svc := &fakeSubmitter{plan: &models.Plan{ID: "p1", Name: "Leg Day"}}
	drafts := &fakeDiscarder{}

	plan, err := m.Submit(42, svc, drafts)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if plan.ID != "p1" {
		t.Errorf("plan = %+v", plan)
	}
	if !drafts.discarded {
		t.Error("draft not discarded on success")
	}
	if !m.State().IsEmpty() || m.CurrentStep() != StepBasics {
		t.Error("state not cleared after submit")
	}
}

func TestSubmitFailureKeepsState(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})
	m.SaveExercises([]string{"e1"})

	svc := &fakeSubmitter{err: errors.New("boom")}
	drafts := &fakeDiscarder{}

	if _, err := m.Submit(42, svc, drafts); err == nil {
		t.Fatal("expected error")
	}
	if drafts.discarded {
		t.Error("draft discarded on failure")
	}
	if m.State().IsEmpty() {
		t.Error("state cleared on failure")
	}
}

func TestNewMachineForEdit(t *testing.T) {
	plan := &models.Plan{
		Name: "Old",
		Goal: models.GoalEndurance,
		Exercises: []models.PlanExercise{
			{ExerciseID: "e1", OrderNum: 0, Sets: []models.PlanExerciseSet{
				{ExerciseID: "e1", OrderNum: 0, Repetitions: 10, Weight: 60},
			}},
			{ExerciseID: "e2", OrderNum: 1, Sets: []models.PlanExerciseSet{
				{ExerciseID: "e2", OrderNum: 0, Repetitions: 8, Weight: 40},
			}},
		},
	}

	m := NewMachineForEdit(plan)
	state := m.State()
	if state.Mode != models.ModeEdit {
		t.Errorf("mode = %s", state.Mode)
	}
	if !reflect.DeepEqual(state.SelectedExerciseIDs, []string{"e1", "e2"}) {
		t.Errorf("selection = %v", state.SelectedExerciseIDs)
	}
	if state.SetsByExercise["e2"][0].Weight != 40 {
		t.Errorf("sets not hydrated: %v", state.SetsByExercise)
	}
	if !m.IsStepValid(StepBasics) || !m.IsStepValid(StepExercises) || !m.IsStepValid(StepConfiguration) {
		t.Error("hydrated plan should pass all step validators")
	}
}

func TestStateIsDetachedSnapshot(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})
	m.SaveExercises([]string{"e1"})
	m.SaveSetsConfig([]ExerciseConfig{{ExerciseID: "e1", Sets: validSets()}})

	snap := m.State()
	snap.Basics.Name = "changed"
	snap.SelectedExerciseIDs[0] = "other"
	snap.SetsByExercise["e1"][0].Repetitions = 99
	snap.CompletedSteps[StepBasics] = true

	state := m.State()
	if state.Basics.Name != "Leg Day" {
		t.Errorf("basics leaked through snapshot: %q", state.Basics.Name)
	}
	if state.SelectedExerciseIDs[0] != "e1" {
		t.Errorf("selection leaked through snapshot: %v", state.SelectedExerciseIDs)
	}
	if state.SetsByExercise["e1"][0].Repetitions != 10 {
		t.Errorf("sets leaked through snapshot: %v", state.SetsByExercise)
	}
	if state.CompletedSteps[StepBasics] {
		t.Error("completed steps leaked through snapshot")
	}
}

// Снимок сериализуется фоновым автосохранением, пока диалоговый цикл
// мутирует состояние; под -race здесь не должно быть гонок
func TestConcurrentSnapshotDuringMutation(t *testing.T) {
	m := NewMachine(models.ModeCreate)
	m.SaveBasics(models.PlanBasics{Name: "Leg Day"})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := json.Marshal(m.State()); err != nil {
				t.Errorf("marshal snapshot: %v", err)
				return
			}
		}
	}()

	for i := 0; i < 500; i++ {
		m.SaveExercises([]string{"e1", "e2"})
		m.SaveSetsConfig([]ExerciseConfig{
			{ExerciseID: "e1", Sets: validSets()},
			{ExerciseID: "e2", Sets: validSets()},
		})
		m.NextStep()
		m.PrevStep()
		m.GoToStep(StepConfiguration)
	}
	close(done)
	wg.Wait()
}
