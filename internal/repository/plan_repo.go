package repository

import (
	"database/sql"

	"fittracker/internal/models"
)

// PlanRepository работает с тренировочными планами
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository создаёт репозиторий планов
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// InsertPlan создаёт строку плана
func (r *PlanRepository) InsertPlan(plan *models.Plan) error {
	_, err := r.db.Exec(`
		INSERT INTO training_plans (id, owner_id, name, description, goal)
		VALUES ($1, $2, $3, $4, $5)`,
		plan.ID, plan.OwnerID, plan.Name, plan.Description, plan.Goal,
	)
	return err
}

// InsertMemberships вставляет строки членства упражнений в плане
func (r *PlanRepository) InsertMemberships(memberships []models.PlanExercise) error {
	for _, m := range memberships {
		_, err := r.db.Exec(`
			INSERT INTO plan_exercises (plan_id, exercise_id, order_num)
			VALUES ($1, $2, $3)
			ON CONFLICT (plan_id, exercise_id) DO UPDATE SET order_num = $3`,
			m.PlanID, m.ExerciseID, m.OrderNum,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// InsertSets вставляет строки подходов
func (r *PlanRepository) InsertSets(sets []models.PlanExerciseSet) error {
	for _, s := range sets {
		_, err := r.db.Exec(`
			INSERT INTO plan_exercise_sets (plan_id, exercise_id, order_num, repetitions, weight)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (plan_id, exercise_id, order_num)
			DO UPDATE SET repetitions = $4, weight = $5`,
			s.PlanID, s.ExerciseID, s.OrderNum, s.Repetitions, s.Weight,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeletePlan удаляет план; membership и подходы уходят каскадом через FK
func (r *PlanRepository) DeletePlan(planID string) error {
	_, err := r.db.Exec(`DELETE FROM training_plans WHERE id = $1`, planID)
	return err
}

// DeleteMemberships удаляет все строки членства плана
func (r *PlanRepository) DeleteMemberships(planID string) error {
	_, err := r.db.Exec(`DELETE FROM plan_exercises WHERE plan_id = $1`, planID)
	return err
}

// DeleteSets удаляет все подходы плана
func (r *PlanRepository) DeleteSets(planID string) error {
	_, err := r.db.Exec(`DELETE FROM plan_exercise_sets WHERE plan_id = $1`, planID)
	return err
}

// CountActiveByOwner возвращает число не удалённых планов владельца
func (r *PlanRepository) CountActiveByOwner(ownerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM training_plans
		WHERE owner_id = $1 AND deleted_at IS NULL`, ownerID).Scan(&count)
	return count, err
}

// GetByID возвращает заголовок плана (включая мягко удалённые)
func (r *PlanRepository) GetByID(planID string) (*models.Plan, error) {
	plan := &models.Plan{}
	var deletedAt sql.NullTime
	err := r.db.QueryRow(`
		SELECT id, owner_id, name, COALESCE(description, ''), COALESCE(goal, ''),
		       deleted_at, created_at, updated_at
		FROM training_plans
		WHERE id = $1`, planID).Scan(
		&plan.ID, &plan.OwnerID, &plan.Name, &plan.Description, &plan.Goal,
		&deletedAt, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		plan.DeletedAt = &deletedAt.Time
	}
	return plan, nil
}

// GetWithDetails возвращает план с упражнениями и подходами в их порядке
func (r *PlanRepository) GetWithDetails(planID string) (*models.Plan, error) {
	plan, err := r.GetByID(planID)
	if err != nil || plan == nil {
		return plan, err
	}

	rows, err := r.db.Query(`
		SELECT pe.exercise_id, e.name, pe.order_num
		FROM plan_exercises pe
		JOIN exercises e ON e.id = pe.exercise_id
		WHERE pe.plan_id = $1
		ORDER BY pe.order_num`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pe models.PlanExercise
		if err := rows.Scan(&pe.ExerciseID, &pe.ExerciseName, &pe.OrderNum); err != nil {
			continue
		}
		pe.PlanID = planID
		plan.Exercises = append(plan.Exercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plan.Exercises {
		sets, err := r.getSets(planID, plan.Exercises[i].ExerciseID)
		if err != nil {
			return nil, err
		}
		plan.Exercises[i].Sets = sets
	}
	return plan, nil
}

func (r *PlanRepository) getSets(planID, exerciseID string) ([]models.PlanExerciseSet, error) {
	rows, err := r.db.Query(`
		SELECT plan_id, exercise_id, order_num, repetitions, weight
		FROM plan_exercise_sets
		WHERE plan_id = $1 AND exercise_id = $2
		ORDER BY order_num`, planID, exerciseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []models.PlanExerciseSet
	for rows.Next() {
		var s models.PlanExerciseSet
		if err := rows.Scan(&s.PlanID, &s.ExerciseID, &s.OrderNum, &s.Repetitions, &s.Weight); err != nil {
			continue
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// ListByOwner возвращает не удалённые планы владельца
func (r *PlanRepository) ListByOwner(ownerID int64) ([]models.PlanListItem, error) {
	rows, err := r.db.Query(`
		SELECT tp.id, tp.name, COALESCE(tp.goal, ''),
		       (SELECT COUNT(*) FROM plan_exercises pe WHERE pe.plan_id = tp.id),
		       tp.created_at
		FROM training_plans tp
		WHERE tp.owner_id = $1 AND tp.deleted_at IS NULL
		ORDER BY tp.created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.PlanListItem
	for rows.Next() {
		var p models.PlanListItem
		if err := rows.Scan(&p.ID, &p.Name, &p.Goal, &p.ExerciseCount, &p.CreatedAt); err != nil {
			continue
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// SoftDelete помечает план удалённым, не трогая его и его детей
func (r *PlanRepository) SoftDelete(planID string) error {
	_, err := r.db.Exec(`
		UPDATE training_plans SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, planID)
	return err
}

// UpdateHeader обновляет имя, описание и цель плана
func (r *PlanRepository) UpdateHeader(plan *models.Plan) error {
	_, err := r.db.Exec(`
		UPDATE training_plans
		SET name = $1, description = $2, goal = $3, updated_at = NOW()
		WHERE id = $4`,
		plan.Name, plan.Description, plan.Goal, plan.ID,
	)
	return err
}
