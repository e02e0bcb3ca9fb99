package main

import (
	"database/sql"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"fittracker/internal/bot"
	"fittracker/internal/config"
	"fittracker/internal/draft"
	"fittracker/internal/planservice"
	"fittracker/internal/repository"
)

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

	if err := db.Ping(); err != nil {
		logrus.Fatalf("База данных недоступна: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("Ошибка миграции: %v", err)
	}

	repo := repository.New(db)
	svc := planservice.New(repo.Plan, repo.Exercise, cfg.PlanLimit)

	draftStore, err := draft.OpenStore(cfg.DraftDBPath)
	if err != nil {
		logrus.Fatalf("Ошибка открытия хранилища черновиков: %v", err)
	}
	defer draftStore.Close()
	drafts := draft.NewRecovery(draftStore, cfg.DraftTTL)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logrus.Fatalf("Ошибка инициализации Telegram API: %v", err)
	}

	logrus.Infof("Бот запущен: @%s", api.Self.UserName)

	telegramBot := bot.New(api, db, repo, svc, drafts, cfg)
	if err := telegramBot.Start(); err != nil {
		logrus.Fatal(err)
	}
}
