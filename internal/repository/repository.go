package repository

import "database/sql"

// Repository содержит все репозитории
type Repository struct {
	Plan     *PlanRepository
	Exercise *ExerciseRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		Plan:     NewPlanRepository(db),
		Exercise: NewExerciseRepository(db),
	}
}

// Migrate создаёт таблицы ядра. Каскадное удаление membership/sets при
// удалении плана — та самая гарантия, на которую опирается компенсация
// в planservice.
func Migrate(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			category_id TEXT REFERENCES categories(id),
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS training_plans (
			id          TEXT PRIMARY KEY,
			owner_id    BIGINT NOT NULL,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			goal        TEXT NOT NULL DEFAULT '',
			deleted_at  TIMESTAMPTZ,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS plan_exercises (
			plan_id     TEXT NOT NULL REFERENCES training_plans(id) ON DELETE CASCADE,
			exercise_id TEXT NOT NULL REFERENCES exercises(id),
			order_num   INT NOT NULL,
			PRIMARY KEY (plan_id, exercise_id)
		)`,
		`CREATE TABLE IF NOT EXISTS plan_exercise_sets (
			plan_id     TEXT NOT NULL REFERENCES training_plans(id) ON DELETE CASCADE,
			exercise_id TEXT NOT NULL,
			order_num   INT NOT NULL,
			repetitions INT NOT NULL,
			weight      NUMERIC(6,2) NOT NULL,
			PRIMARY KEY (plan_id, exercise_id, order_num)
		)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
