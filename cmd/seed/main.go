package main

import (
	"database/sql"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"fittracker/internal/config"
	"fittracker/internal/repository"
)

// Наполняет каталог базовым набором категорий и упражнений.
// Запускать один раз после миграции.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Ошибка конфигурации: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logrus.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("Ошибка миграции: %v", err)
	}

	catalog := map[string][]string{
		"Грудь": {"Жим лёжа", "Жим гантелей на наклонной", "Разводка гантелей"},
		"Спина": {"Становая тяга", "Подтягивания", "Тяга штанги в наклоне"},
		"Ноги":  {"Приседания со штангой", "Жим ногами", "Румынская тяга"},
		"Плечи": {"Жим стоя", "Махи гантелями в стороны"},
		"Руки":  {"Подъём штанги на бицепс", "Французский жим"},
		"Кор":   {"Планка", "Скручивания"},
	}

	for category, exercises := range catalog {
		categoryID := uuid.New().String()
		_, err := db.Exec(`
			INSERT INTO categories (id, name) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`, categoryID, category)
		if err != nil {
			logrus.Fatalf("Ошибка вставки категории %s: %v", category, err)
		}
		// id мог остаться от прошлого запуска
		if err := db.QueryRow(`SELECT id FROM categories WHERE name = $1`, category).Scan(&categoryID); err != nil {
			logrus.Fatalf("Ошибка чтения категории %s: %v", category, err)
		}

		for _, name := range exercises {
			var exists bool
			if err := db.QueryRow(`
				SELECT EXISTS(SELECT 1 FROM exercises WHERE name = $1 AND category_id = $2)`,
				name, categoryID).Scan(&exists); err != nil {
				logrus.Fatalf("Ошибка проверки упражнения %s: %v", name, err)
			}
			if exists {
				continue
			}
			_, err := db.Exec(`
				INSERT INTO exercises (id, name, category_id) VALUES ($1, $2, $3)`,
				uuid.New().String(), name, categoryID)
			if err != nil {
				logrus.Fatalf("Ошибка вставки упражнения %s: %v", name, err)
			}
		}
	}

	logrus.Info("Каталог упражнений заполнен")
}
