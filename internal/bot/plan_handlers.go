package bot

import (
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fittracker/internal/wizard"
)

// States for plan list management
const (
	statePlanEditSelect    = "plan_edit_select"
	statePlanDeleteSelect  = "plan_delete_select"
	statePlanDeleteConfirm = "plan_delete_confirm"
)

// deleteStore хранит план, выбранный для удаления
var deleteStore = struct {
	sync.RWMutex
	planID map[int64]string
}{planID: make(map[int64]string)}

// showPlansList показывает планы владельца
func (b *Bot) showPlansList(chatID int64) {
	plans, err := b.svc.List(chatID)
	if err != nil {
		b.sendError(chatID, "Ошибка загрузки планов", err)
		return
	}

	if len(plans) == 0 {
		b.sendMessage(chatID, "У вас пока нет планов. /newplan — создать первый.")
		return
	}

	var text strings.Builder
	text.WriteString("📋 Ваши планы:\n\n")
	for i, p := range plans {
		text.WriteString(fmt.Sprintf("%d. %s", i+1, p.Name))
		if p.Goal != "" {
			text.WriteString(" — " + p.Goal.NameRu())
		}
		text.WriteString(fmt.Sprintf(" (упражнений: %d)\n", p.ExerciseCount))
	}
	b.sendMessage(chatID, text.String())
}

// plansKeyboard строит клавиатуру выбора плана
func (b *Bot) plansKeyboard(chatID int64) (tgbotapi.ReplyKeyboardMarkup, int, error) {
	plans, err := b.svc.List(chatID)
	if err != nil {
		return tgbotapi.ReplyKeyboardMarkup{}, 0, err
	}

	var buttons [][]tgbotapi.KeyboardButton
	for _, p := range plans {
		label := fmt.Sprintf("%s [%s]", p.Name, p.ID)
		buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("Отмена")))
	return tgbotapi.NewReplyKeyboard(buttons...), len(plans), nil
}

// --- Редактирование (полная замена состава плана) ---

func (b *Bot) handleEditPlan(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	keyboard, count, err := b.plansKeyboard(chatID)
	if err != nil {
		b.sendError(chatID, "Ошибка загрузки планов", err)
		return
	}
	if count == 0 {
		b.sendMessage(chatID, "Нет планов для изменения. /newplan — создать.")
		return
	}

	setState(chatID, statePlanEditSelect)
	b.sendMessageWithKeyboard(chatID, "Выберите план для изменения:", keyboard)
}

func (b *Bot) handlePlanEditSelect(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	planID := parseIDFromBrackets(message.Text)
	if planID == "" {
		b.sendMessage(chatID, "Выберите план с клавиатуры")
		return
	}

	plan, err := b.svc.Get(planID, chatID)
	if err != nil {
		b.sendError(chatID, composeErrorMessage(err), err)
		return
	}

	// Мастер в режиме редактирования: состояние наполняется из плана,
	// черновик не ведётся
	session := &wizardSession{
		machine:    wizard.NewMachineForEdit(plan),
		editPlanID: planID,
		names:      make(map[string]string),
	}
	for _, pe := range plan.Exercises {
		session.selection = append(session.selection, pe.ExerciseID)
	}
	setWizardSession(chatID, session)
	b.loadExerciseNames(session, session.selection)

	// Текущие значения — отправная точка; "-" и «Пропустить» оставляют их
	session.pendingBasics = *session.machine.State().Basics

	setState(chatID, stateWizardName)
	b.sendMessageWithKeyboard(chatID,
		fmt.Sprintf("Изменение плана «%s».\n\nШаг 1 из 3. Введите новое название (или «-», чтобы оставить):", plan.Name),
		createCancelKeyboard())
}

// --- Мягкое удаление ---

func (b *Bot) handleDeletePlan(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	keyboard, count, err := b.plansKeyboard(chatID)
	if err != nil {
		b.sendError(chatID, "Ошибка загрузки планов", err)
		return
	}
	if count == 0 {
		b.sendMessage(chatID, "Нет планов для удаления.")
		return
	}

	setState(chatID, statePlanDeleteSelect)
	b.sendMessageWithKeyboard(chatID, "Выберите план для удаления:", keyboard)
}

func (b *Bot) handlePlanDeleteSelect(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	planID := parseIDFromBrackets(message.Text)
	if planID == "" {
		b.sendMessage(chatID, "Выберите план с клавиатуры")
		return
	}

	deleteStore.Lock()
	deleteStore.planID[chatID] = planID
	deleteStore.Unlock()

	setState(chatID, statePlanDeleteConfirm)
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Да, удалить"),
			tgbotapi.NewKeyboardButton("Отмена"),
		),
	)
	b.sendMessageWithKeyboard(chatID, "Удалить план? Его можно будет восстановить только через поддержку.", keyboard)
}

func (b *Bot) handlePlanDeleteConfirm(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.Text != "Да, удалить" {
		b.sendMessage(chatID, "Нажмите «Да, удалить» или «Отмена»")
		return
	}

	deleteStore.RLock()
	planID := deleteStore.planID[chatID]
	deleteStore.RUnlock()

	if err := b.svc.SoftDelete(planID, chatID); err != nil {
		b.sendError(chatID, composeErrorMessage(err), err)
		return
	}

	deleteStore.Lock()
	delete(deleteStore.planID, chatID)
	deleteStore.Unlock()
	clearState(chatID)

	b.sendPlainKeyboardRemove(chatID, "🗑 План удалён.")
	b.showPlansList(chatID)
}
