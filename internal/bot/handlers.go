package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCommand routes bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start", "help":
		b.sendMessage(chatID, "💪 Фитнес-трекер\n\n"+
			"/newplan — создать тренировочный план\n"+
			"/plans — мои планы\n"+
			"/editplan — изменить план\n"+
			"/delplan — удалить план\n"+
			"/cancel — прервать текущее действие")

	case "newplan":
		b.handleNewPlan(message)

	case "plans":
		b.showPlansList(chatID)

	case "editplan":
		b.handleEditPlan(message)

	case "delplan":
		b.handleDeletePlan(message)

	case "cancel":
		b.cancelWizard(chatID, true)

	default:
		b.sendMessage(chatID, "Неизвестная команда. /help — список команд.")
	}
}

// handleMessage routes plain messages by the chat's dialog state
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.Text == "Отмена" {
		b.cancelWizard(chatID, true)
		return
	}

	switch getState(chatID) {
	case stateWizardRestore:
		b.handleWizardRestore(message)
	case stateWizardName:
		b.handleWizardName(message)
	case stateWizardDescription:
		b.handleWizardDescription(message)
	case stateWizardGoal:
		b.handleWizardGoal(message)
	case stateWizardExercises:
		b.handleWizardExercises(message)
	case stateWizardConfigure:
		b.handleWizardConfigure(message)
	case stateWizardConfirm:
		b.handleWizardConfirm(message)
	case statePlanEditSelect:
		b.handlePlanEditSelect(message)
	case statePlanDeleteSelect:
		b.handlePlanDeleteSelect(message)
	case statePlanDeleteConfirm:
		b.handlePlanDeleteConfirm(message)
	default:
		b.sendMessage(chatID, "Не понял. /help — список команд.")
	}
}
