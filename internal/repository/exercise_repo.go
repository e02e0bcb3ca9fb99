package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"fittracker/internal/models"
)

// ExerciseRepository работает с каталогом упражнений
type ExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository создаёт репозиторий каталога
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// List возвращает страницу каталога с необязательным фильтром по категории
func (r *ExerciseRepository) List(filter models.ExerciseFilter) ([]models.Exercise, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	rows, err := r.db.Query(`
		SELECT e.id, e.name, COALESCE(e.category_id, ''), COALESCE(c.name, ''),
		       COALESCE(e.description, ''), e.created_at
		FROM exercises e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE ($1 = '' OR e.category_id = $1)
		ORDER BY e.name
		LIMIT $2 OFFSET $3`, filter.CategoryID, perPage, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.CategoryID, &e.Category,
			&e.Description, &e.CreatedAt); err != nil {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetByIDs возвращает упражнения по списку id
func (r *ExerciseRepository) GetByIDs(ids []string) ([]models.Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(`
		SELECT e.id, e.name, COALESCE(e.category_id, ''), COALESCE(c.name, ''),
		       COALESCE(e.description, ''), e.created_at
		FROM exercises e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.CategoryID, &e.Category,
			&e.Description, &e.CreatedAt); err != nil {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// MissingIDs возвращает id из списка, которых нет в каталоге
func (r *ExerciseRepository) MissingIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(`
		SELECT wanted.id
		FROM unnest($1::text[]) AS wanted(id)
		LEFT JOIN exercises e ON e.id = wanted.id
		WHERE e.id IS NULL`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		missing = append(missing, id)
	}
	return missing, rows.Err()
}

// GetByID возвращает одно упражнение (nil, если не найдено)
func (r *ExerciseRepository) GetByID(id string) (*models.Exercise, error) {
	e := &models.Exercise{}
	err := r.db.QueryRow(`
		SELECT e.id, e.name, COALESCE(e.category_id, ''), COALESCE(c.name, ''),
		       COALESCE(e.description, ''), e.created_at
		FROM exercises e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1`, id).Scan(
		&e.ID, &e.Name, &e.CategoryID, &e.Category, &e.Description, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Categories возвращает все категории
func (r *ExerciseRepository) Categories() ([]models.Category, error) {
	rows, err := r.db.Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
