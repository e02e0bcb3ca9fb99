package models

import "time"

// Exercise represents an exercise from the catalog
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	Category    string    `json:"category"` // joined
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category represents an exercise category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExerciseFilter — параметры постраничной выборки каталога
type ExerciseFilter struct {
	CategoryID string
	Page       int
	PerPage    int
}
