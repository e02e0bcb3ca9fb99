package bot

import (
	"database/sql"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"fittracker/internal/config"
	"fittracker/internal/draft"
	"fittracker/internal/planservice"
	"fittracker/internal/repository"
)

// Bot представляет Telegram бота
type Bot struct {
	api    *tgbotapi.BotAPI
	db     *sql.DB
	repo   *repository.Repository
	svc    *planservice.Service
	drafts *draft.Recovery
	config *config.Config
	cron   *cron.Cron
}

// userStates хранит текущее состояние диалога каждого чата
var userStates = struct {
	sync.RWMutex
	states map[int64]string
}{states: make(map[int64]string)}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, db *sql.DB, repo *repository.Repository, svc *planservice.Service, drafts *draft.Recovery, cfg *config.Config) *Bot {
	return &Bot{
		api:    api,
		db:     db,
		repo:   repo,
		svc:    svc,
		drafts: drafts,
		config: cfg,
	}
}

// Start запускает бота и фоновое автосохранение черновиков
func (b *Bot) Start() error {
	b.startAutosave()

	updates, err := b.initUpdatesChannel()
	if err != nil {
		return err
	}

	b.handleUpdates(updates)
	return nil
}

// startAutosave запускает безусловное периодическое сохранение черновика —
// страховку на случай пропущенного сохранения по изменению
func (b *Bot) startAutosave() {
	b.cron = cron.New()
	b.cron.AddFunc(fmt.Sprintf("@every %s", b.config.AutosaveInterval), func() {
		session := activeCreateSession()
		if session == nil {
			return
		}
		// State отдаёт независимый снимок: тик работает параллельно
		// с диалоговым циклом, не трогая рабочее состояние
		if err := b.drafts.Save(session.machine.State()); err != nil {
			logrus.Warnf("Автосохранение черновика не удалось: %v", err)
		}
	})
	b.cron.Start()
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) initUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u), nil
}
