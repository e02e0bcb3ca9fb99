package models

import "time"

// PlanGoal represents the training goal of a plan
type PlanGoal string

const (
	GoalStrength       PlanGoal = "strength"
	GoalMuscleMass     PlanGoal = "muscle_mass"
	GoalEndurance      PlanGoal = "endurance"
	GoalGeneralFitness PlanGoal = "general_fitness"
)

// NameRu возвращает русское название цели
func (g PlanGoal) NameRu() string {
	switch g {
	case GoalStrength:
		return "Сила"
	case GoalMuscleMass:
		return "Масса"
	case GoalEndurance:
		return "Выносливость"
	case GoalGeneralFitness:
		return "Общая форма"
	default:
		return string(g)
	}
}

// ParseGoal разбирает цель из текста кнопки
func ParseGoal(text string) (PlanGoal, bool) {
	for _, g := range []PlanGoal{GoalStrength, GoalMuscleMass, GoalEndurance, GoalGeneralFitness} {
		if text == string(g) || text == g.NameRu() {
			return g, true
		}
	}
	return "", false
}

// Plan represents a training plan header
type Plan struct {
	ID          string     `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Goal        PlanGoal   `json:"goal"`
	DeletedAt   *time.Time `json:"deleted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Exercises []PlanExercise `json:"exercises"`
}

// PlanExercise связывает план с упражнением; порядок членства
// независим от порядка подходов
type PlanExercise struct {
	PlanID       string `json:"plan_id"`
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"` // joined
	OrderNum     int    `json:"order_num"`

	Sets []PlanExerciseSet `json:"sets"`
}

// PlanExerciseSet represents one prescribed set of a plan exercise
type PlanExerciseSet struct {
	PlanID      string  `json:"plan_id"`
	ExerciseID  string  `json:"exercise_id"`
	OrderNum    int     `json:"order_num"`
	Repetitions int     `json:"repetitions"`
	Weight      float64 `json:"weight"`
}

// PlanListItem for displaying plan list
type PlanListItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Goal          PlanGoal  `json:"goal"`
	ExerciseCount int       `json:"exercise_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SetInput — параметры одного подхода в команде создания плана
type SetInput struct {
	Repetitions int     `json:"repetitions"`
	Weight      float64 `json:"weight"`
	Order       *int    `json:"order,omitempty"`
}

// PlanExerciseCommand — одно упражнение в команде с его подходами
type PlanExerciseCommand struct {
	ExerciseID string     `json:"exercise_id"`
	Sets       []SetInput `json:"sets"`
}

// PlanCompositionCommand is the single composite command the wizard emits
// on final confirmation; the one stable contract between the client flow
// and the server-side orchestration.
type PlanCompositionCommand struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Goal        PlanGoal              `json:"goal"`
	Exercises   []PlanExerciseCommand `json:"exercises"`
}
