package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"fittracker/internal/models"
	"fittracker/internal/planservice"
	"fittracker/internal/wizard"
)

// States for the plan-creation wizard flow
const (
	stateWizardRestore     = "wizard_restore"
	stateWizardName        = "wizard_name"
	stateWizardDescription = "wizard_description"
	stateWizardGoal        = "wizard_goal"
	stateWizardExercises   = "wizard_exercises"
	stateWizardConfigure   = "wizard_configure"
	stateWizardConfirm     = "wizard_confirm"
)

// wizardSession хранит состояние мастера одного чата
type wizardSession struct {
	machine      *wizard.Machine
	configurator *wizard.Configurator
	editPlanID   string // непустой в режиме редактирования

	pendingBasics models.PlanBasics
	selection     []string
	names         map[string]string // exerciseID → название, для вывода

	// Защита от повторной отправки, пока создание плана не завершилось
	submitting bool
}

var wizardSessions = struct {
	sync.RWMutex
	sessions map[int64]*wizardSession
}{sessions: make(map[int64]*wizardSession)}

func getWizardSession(chatID int64) *wizardSession {
	wizardSessions.RLock()
	defer wizardSessions.RUnlock()
	return wizardSessions.sessions[chatID]
}

func setWizardSession(chatID int64, s *wizardSession) {
	wizardSessions.Lock()
	wizardSessions.sessions[chatID] = s
	wizardSessions.Unlock()
}

func clearWizardSession(chatID int64) {
	wizardSessions.Lock()
	delete(wizardSessions.sessions, chatID)
	wizardSessions.Unlock()
}

// activeCreateSession возвращает сессию мастера в режиме создания, если
// такая есть. Слот черновика один на процесс, поэтому достаточно первой.
func activeCreateSession() *wizardSession {
	wizardSessions.RLock()
	defer wizardSessions.RUnlock()
	for _, s := range wizardSessions.sessions {
		if s.machine != nil && s.machine.State().Mode == models.ModeCreate {
			return s
		}
	}
	return nil
}

// handleNewPlan starts the creation wizard. When a stored draft survives,
// the user chooses restore/discard before any wizard state is touched.
func (b *Bot) handleNewPlan(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	d, err := b.drafts.Load()
	if err != nil {
		logrus.Errorf("Ошибка чтения черновика: %v", err)
	}
	if d != nil {
		setState(chatID, stateWizardRestore)
		keyboard := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("Восстановить"),
				tgbotapi.NewKeyboardButton("Начать заново"),
			),
		)
		b.sendMessageWithKeyboard(chatID,
			fmt.Sprintf("Найден незавершённый план (шаг %d). Восстановить?", d.Step), keyboard)
		return
	}

	b.startFreshWizard(chatID)
}

func (b *Bot) startFreshWizard(chatID int64) {
	setWizardSession(chatID, &wizardSession{
		machine: wizard.NewMachine(models.ModeCreate),
		names:   make(map[string]string),
	})
	setState(chatID, stateWizardName)
	b.sendMessageWithKeyboard(chatID,
		"📋 Новый тренировочный план\n\nШаг 1 из 3. Введите название плана (3–100 символов):",
		createCancelKeyboard())
}

// handleWizardRestore handles the restore/discard choice
func (b *Bot) handleWizardRestore(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Text {
	case "Восстановить":
		d, err := b.drafts.Load()
		if err != nil || d == nil {
			b.sendMessage(chatID, "Черновик недоступен, начинаем заново.")
			b.startFreshWizard(chatID)
			return
		}
		b.restoreFromDraft(chatID, d)

	case "Начать заново":
		if err := b.drafts.Discard(); err != nil {
			logrus.Warnf("Не удалось удалить черновик: %v", err)
		}
		b.startFreshWizard(chatID)

	default:
		b.sendMessage(chatID, "Выберите «Восстановить» или «Начать заново»")
	}
}

// restoreFromDraft rebuilds the wizard through its named operations and an
// unchecked jump to the drafted step
func (b *Bot) restoreFromDraft(chatID int64, d *models.Draft) {
	m := wizard.NewMachine(models.ModeCreate)
	if d.Basics != nil {
		m.SaveBasics(*d.Basics)
	}
	m.SaveExercises(d.SelectedExerciseIDs)
	configs := make([]wizard.ExerciseConfig, 0, len(d.SetsByExercise))
	for id, sets := range d.SetsByExercise {
		configs = append(configs, wizard.ExerciseConfig{ExerciseID: id, Sets: sets})
	}
	m.SaveSetsConfig(configs)
	m.GoToStep(d.Step)

	session := &wizardSession{
		machine:   m,
		selection: append([]string(nil), d.SelectedExerciseIDs...),
		names:     make(map[string]string),
	}
	setWizardSession(chatID, session)
	b.loadExerciseNames(session, d.SelectedExerciseIDs)

	switch m.CurrentStep() {
	case wizard.StepBasics:
		setState(chatID, stateWizardName)
		b.sendMessageWithKeyboard(chatID, "Черновик восстановлен.\n\nШаг 1 из 3. Введите название плана:", createCancelKeyboard())
	case wizard.StepExercises:
		b.showExerciseSelection(chatID, session)
	case wizard.StepConfiguration:
		b.enterConfiguration(chatID, session)
	}
}

// --- Шаг 1: основные данные ---

func (b *Bot) handleWizardName(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil {
		b.cancelWizard(chatID, false)
		return
	}

	text := strings.TrimSpace(message.Text)
	if session.editPlanID != "" && text == "-" {
		// В режиме редактирования "-" оставляет текущее название
		setState(chatID, stateWizardDescription)
		b.sendMessage(chatID, "Введите описание плана (или «-», чтобы пропустить):")
		return
	}

	if err := validatePlanName(text); err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	session.pendingBasics.Name = text
	setState(chatID, stateWizardDescription)
	b.sendMessage(chatID, "Введите описание плана (или «-», чтобы пропустить):")
}

func (b *Bot) handleWizardDescription(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil {
		b.cancelWizard(chatID, false)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text != "-" {
		session.pendingBasics.Description = text
	}

	setState(chatID, stateWizardGoal)
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(models.GoalStrength.NameRu()),
			tgbotapi.NewKeyboardButton(models.GoalMuscleMass.NameRu()),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(models.GoalEndurance.NameRu()),
			tgbotapi.NewKeyboardButton(models.GoalGeneralFitness.NameRu()),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Пропустить"),
			tgbotapi.NewKeyboardButton("Отмена"),
		),
	)
	b.sendMessageWithKeyboard(chatID, "Выберите цель плана:", keyboard)
}

func (b *Bot) handleWizardGoal(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil {
		b.cancelWizard(chatID, false)
		return
	}

	if message.Text != "Пропустить" {
		goal, ok := models.ParseGoal(message.Text)
		if !ok {
			b.sendMessage(chatID, "Выберите цель с клавиатуры или «Пропустить»")
			return
		}
		session.pendingBasics.Goal = goal
	}

	m := session.machine
	m.SaveBasics(session.pendingBasics)
	m.NextStep()
	b.saveDraft(session)

	b.showExerciseSelection(chatID, session)
}

// --- Шаг 2: выбор упражнений ---

// showExerciseSelection показывает каталог; нажатие на упражнение
// добавляет/убирает его, порядок выбора сохраняется
func (b *Bot) showExerciseSelection(chatID int64, session *wizardSession) {
	setState(chatID, stateWizardExercises)

	exercises, err := b.repo.Exercise.List(models.ExerciseFilter{Page: 1, PerPage: 50})
	if err != nil {
		b.sendError(chatID, "Ошибка загрузки каталога упражнений", err)
		return
	}
	if len(exercises) == 0 {
		b.sendMessage(chatID, "Каталог упражнений пуст. Обратитесь к администратору.")
		return
	}

	var buttons [][]tgbotapi.KeyboardButton
	for _, e := range exercises {
		session.names[e.ID] = e.Name
		label := fmt.Sprintf("%s [%s]", e.Name, e.ID)
		buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	buttons = append(buttons, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("Готово"),
		tgbotapi.NewKeyboardButton("Отмена"),
	))

	text := "Шаг 2 из 3. Выберите упражнения (нажатие добавляет или убирает):"
	if len(session.selection) > 0 {
		text += "\n\nВыбрано: " + b.selectionSummary(session)
	}
	b.sendMessageWithKeyboard(chatID, text, tgbotapi.NewReplyKeyboard(buttons...))
}

func (b *Bot) handleWizardExercises(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil {
		b.cancelWizard(chatID, false)
		return
	}

	if message.Text == "Готово" {
		if len(session.selection) == 0 {
			b.sendMessage(chatID, "Выберите хотя бы одно упражнение")
			return
		}
		session.machine.SaveExercises(session.selection)
		session.machine.NextStep()
		b.saveDraft(session)
		b.enterConfiguration(chatID, session)
		return
	}

	id := parseIDFromBrackets(message.Text)
	if id == "" || session.names[id] == "" {
		b.sendMessage(chatID, "Выберите упражнение с клавиатуры или нажмите «Готово»")
		return
	}

	// Тоггл: повторное нажатие убирает упражнение из выбора
	removed := false
	for i, sel := range session.selection {
		if sel == id {
			session.selection = append(session.selection[:i], session.selection[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		session.selection = append(session.selection, id)
	}

	session.machine.SaveExercises(session.selection)
	b.saveDraft(session)

	if len(session.selection) == 0 {
		b.sendMessage(chatID, "Выбор пуст")
		return
	}
	b.sendMessage(chatID, "Выбрано: "+b.selectionSummary(session))
}

func (b *Bot) selectionSummary(session *wizardSession) string {
	names := make([]string, 0, len(session.selection))
	for _, id := range session.selection {
		names = append(names, session.names[id])
	}
	return strings.Join(names, ", ")
}

// --- Шаг 3: настройка подходов ---

// enterConfiguration строит конфигуратор из выбранных упражнений и уже
// накопленных подходов (черновик или редактируемый план)
func (b *Bot) enterConfiguration(chatID int64, session *wizardSession) {
	setState(chatID, stateWizardConfigure)

	state := session.machine.State()
	b.loadExerciseNames(session, state.SelectedExerciseIDs)

	m := session.machine
	session.configurator = wizard.NewConfigurator(
		state.SelectedExerciseIDs,
		state.SetsByExercise,
		func(removedID string) {
			// Уведомление об удалении: мастер узнаёт о нём снаружи,
			// конфигуратор от мастера не зависит
			ids := make([]string, 0, len(session.selection))
			for _, id := range session.selection {
				if id != removedID {
					ids = append(ids, id)
				}
			}
			session.selection = ids
			m.SaveExercises(ids)
		},
	)
	b.syncConfig(session)

	b.showConfiguration(chatID, session)
}

func (b *Bot) showConfiguration(chatID int64, session *wizardSession) {
	var text strings.Builder
	text.WriteString("Шаг 3 из 3. Подходы:\n\n")

	expanded := session.configurator.Expanded()
	for i, cfg := range session.configurator.Config() {
		marker := "▸"
		if cfg.ExerciseID == expanded {
			marker = "▾"
		}
		text.WriteString(fmt.Sprintf("%s %d. %s\n", marker, i+1, session.names[cfg.ExerciseID]))
		if cfg.ExerciseID == expanded {
			for _, s := range cfg.Sets {
				text.WriteString(fmt.Sprintf("      подход %d: %d × %.1f кг\n", s.Order+1, s.Repetitions, s.Weight))
			}
		}
	}

	text.WriteString("\nКоманды:\n")
	text.WriteString("N — раскрыть/свернуть упражнение N\n")
	text.WriteString("+ повт вес — добавить подход\n")
	text.WriteString("++ кол-во повт вес — добавить несколько\n")
	text.WriteString("= номер повт вес — изменить подход\n")
	text.WriteString("- номер — удалить подход\n")
	text.WriteString("убрать N — убрать упражнение\n")
	text.WriteString("порядок N M — переставить упражнение\n")
	text.WriteString("Готово — к подтверждению")

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Готово"),
			tgbotapi.NewKeyboardButton("Назад"),
			tgbotapi.NewKeyboardButton("Отмена"),
		),
	)
	b.sendMessageWithKeyboard(chatID, text.String(), keyboard)
}

func (b *Bot) handleWizardConfigure(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil || session.configurator == nil {
		b.cancelWizard(chatID, false)
		return
	}

	c := session.configurator
	text := strings.TrimSpace(message.Text)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		b.sendMessage(chatID, "Не понял команду. Список команд под списком упражнений.")
		return
	}

	switch {
	case text == "Готово":
		b.syncConfig(session)
		if !session.machine.CanProceedToNextStep() {
			b.sendMessage(chatID, "У каждого упражнения должен быть хотя бы один корректный подход")
			return
		}
		session.machine.NextStep()
		b.showConfirmation(chatID, session)
		return

	case text == "Назад":
		session.machine.PrevStep()
		b.showExerciseSelection(chatID, session)
		return

	case len(fields) == 1 && isNumber(fields[0]):
		// Номер упражнения — раскрыть/свернуть
		n, _ := strconv.Atoi(fields[0])
		ids := c.ExerciseIDs()
		if n < 1 || n > len(ids) {
			b.sendMessage(chatID, "Нет упражнения с таким номером")
			return
		}
		c.Toggle(ids[n-1])

	case fields[0] == "+" && len(fields) == 3:
		b.addSets(chatID, session, 1, fields[1], fields[2])
		return

	case fields[0] == "++" && len(fields) == 4:
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			b.sendMessage(chatID, "Укажите количество подходов числом")
			return
		}
		if err := validateSetCount(n); err != nil {
			b.sendMessage(chatID, err.Error())
			return
		}
		b.addSets(chatID, session, n, fields[2], fields[3])
		return

	case fields[0] == "=" && len(fields) == 4:
		b.updateSet(chatID, session, fields[1], fields[2], fields[3])
		return

	case fields[0] == "-" && len(fields) == 2:
		list := c.SetListOf(c.Expanded())
		if list == nil {
			b.sendMessage(chatID, "Сначала раскройте упражнение")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > list.Len() {
			b.sendMessage(chatID, "Нет подхода с таким номером")
			return
		}
		list.Remove(n - 1)
		c.SetSets(c.Expanded(), list.Sets())

	case fields[0] == "убрать" && len(fields) == 2:
		n, err := strconv.Atoi(fields[1])
		ids := c.ExerciseIDs()
		if err != nil || n < 1 || n > len(ids) {
			b.sendMessage(chatID, "Нет упражнения с таким номером")
			return
		}
		c.RemoveExercise(ids[n-1])
		if len(c.ExerciseIDs()) == 0 {
			b.sendMessage(chatID, "Все упражнения убраны, вернёмся к выбору.")
			session.machine.PrevStep()
			b.saveDraft(session)
			b.showExerciseSelection(chatID, session)
			return
		}

	case fields[0] == "порядок" && len(fields) == 3:
		nums, ok := parseInts(fields[1:])
		ids := c.ExerciseIDs()
		if !ok || nums[0] < 1 || nums[0] > len(ids) || nums[1] < 1 || nums[1] > len(ids) {
			b.sendMessage(chatID, "Укажите два номера упражнений")
			return
		}
		c.Reorder(ids[nums[0]-1], ids[nums[1]-1])

	default:
		b.sendMessage(chatID, "Не понял команду. Список команд под списком упражнений.")
		return
	}

	b.syncConfig(session)
	b.showConfiguration(chatID, session)
}

// addSets добавляет подход(ы) к раскрытому упражнению
func (b *Bot) addSets(chatID int64, session *wizardSession, n int, repsField, weightField string) {
	c := session.configurator
	list := c.SetListOf(c.Expanded())
	if list == nil {
		b.sendMessage(chatID, "Сначала раскройте упражнение")
		return
	}

	reps, weight, err := parseSetParams(repsField, weightField)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	list.BulkAdd(n, reps, weight)
	c.SetSets(c.Expanded(), list.Sets())
	b.syncConfig(session)
	b.showConfiguration(chatID, session)
}

// updateSet изменяет параметры подхода раскрытого упражнения
func (b *Bot) updateSet(chatID int64, session *wizardSession, numField, repsField, weightField string) {
	c := session.configurator
	list := c.SetListOf(c.Expanded())
	if list == nil {
		b.sendMessage(chatID, "Сначала раскройте упражнение")
		return
	}

	n, err := strconv.Atoi(numField)
	if err != nil || n < 1 || n > list.Len() {
		b.sendMessage(chatID, "Нет подхода с таким номером")
		return
	}
	reps, weight, err := parseSetParams(repsField, weightField)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	list.Update(n-1, reps, weight)
	c.SetSets(c.Expanded(), list.Sets())
	b.syncConfig(session)
	b.showConfiguration(chatID, session)
}

func parseSetParams(repsField, weightField string) (int, float64, error) {
	reps, err := strconv.Atoi(repsField)
	if err != nil {
		return 0, 0, ValidationError{Field: "repetitions", Message: "Укажите повторения числом"}
	}
	if err := validateRepetitions(reps); err != nil {
		return 0, 0, err
	}
	weight, err := strconv.ParseFloat(strings.ReplaceAll(weightField, ",", "."), 64)
	if err != nil {
		return 0, 0, ValidationError{Field: "weight", Message: "Укажите вес числом"}
	}
	if err := validateSetWeight(weight); err != nil {
		return 0, 0, err
	}
	return reps, weight, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// syncConfig проталкивает производную конфигурацию в мастер и черновик —
// единственный путь, по которому наружу уходят изменения конфигуратора
func (b *Bot) syncConfig(session *wizardSession) {
	session.machine.SaveSetsConfig(session.configurator.Config())
	b.saveDraft(session)
}

// saveDraft — немедленное сохранение по изменению; дубликаты отсекаются
// внутри Recovery
func (b *Bot) saveDraft(session *wizardSession) {
	if err := b.drafts.Save(session.machine.State()); err != nil {
		logrus.Warnf("Сохранение черновика не удалось: %v", err)
	}
}

// --- Подтверждение и отправка ---

func (b *Bot) showConfirmation(chatID int64, session *wizardSession) {
	state := session.machine.State()
	text, ok := confirmationText(state, session.names)
	if !ok {
		// Черновик мог сохраниться без основных данных (шаг 1 пропущен
		// непроверяемым переходом) — возвращаемся к шагу 1
		session.machine.GoToStep(wizard.StepBasics)
		setState(chatID, stateWizardName)
		b.sendMessageWithKeyboard(chatID,
			"Название плана не заполнено.\n\nШаг 1 из 3. Введите название плана (3–100 символов):",
			createCancelKeyboard())
		return
	}

	setState(chatID, stateWizardConfirm)
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Подтвердить"),
			tgbotapi.NewKeyboardButton("Назад"),
			tgbotapi.NewKeyboardButton("Отмена"),
		),
	)
	b.sendMessageWithKeyboard(chatID, text, keyboard)
}

// confirmationText собирает сводку плана для подтверждения. Второе значение
// false, когда основных данных нет и подтверждать нечего.
func confirmationText(state *models.WizardState, names map[string]string) (string, bool) {
	if state.Basics == nil {
		return "", false
	}

	var text strings.Builder
	text.WriteString("Проверьте план:\n\n")
	text.WriteString("Название: " + state.Basics.Name + "\n")
	if state.Basics.Description != "" {
		text.WriteString("Описание: " + state.Basics.Description + "\n")
	}
	if state.Basics.Goal != "" {
		text.WriteString("Цель: " + state.Basics.Goal.NameRu() + "\n")
	}
	text.WriteString("\nУпражнения:\n")
	for i, id := range state.SelectedExerciseIDs {
		text.WriteString(fmt.Sprintf("%d. %s — подходов: %d\n", i+1, names[id], len(state.SetsByExercise[id])))
	}
	return text.String(), true
}

func (b *Bot) handleWizardConfirm(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := getWizardSession(chatID)
	if session == nil {
		b.cancelWizard(chatID, false)
		return
	}

	switch message.Text {
	case "Подтвердить":
		b.submitPlan(chatID, session)

	case "Назад":
		setState(chatID, stateWizardConfigure)
		b.showConfiguration(chatID, session)

	default:
		b.sendMessage(chatID, "Нажмите «Подтвердить», «Назад» или «Отмена»")
	}
}

// submitPlan — одна длинная операция; повторная отправка блокируется,
// пока текущая не завершилась
func (b *Bot) submitPlan(chatID int64, session *wizardSession) {
	if session.submitting {
		b.sendMessage(chatID, "План уже отправляется, подождите…")
		return
	}
	session.submitting = true
	defer func() { session.submitting = false }()

	var plan *models.Plan
	var err error
	if session.editPlanID != "" {
		plan, err = b.svc.Replace(session.editPlanID, chatID, session.machine.BuildCommand())
	} else {
		plan, err = session.machine.Submit(chatID, b.svc, b.drafts)
	}
	if err != nil {
		b.sendError(chatID, composeErrorMessage(err), err)
		return
	}

	clearWizardSession(chatID)
	clearState(chatID)
	b.sendPlainKeyboardRemove(chatID,
		fmt.Sprintf("✅ План «%s» сохранён (упражнений: %d). /plans — список планов.",
			plan.Name, len(plan.Exercises)))
}

// composeErrorMessage maps service failures to user-facing messages.
// Not-found and forbidden are reported identically on purpose.
func composeErrorMessage(err error) string {
	switch {
	case errors.Is(err, planservice.ErrPlanLimitReached):
		return "Достигнут лимит планов (7). Сначала удалите один из существующих планов."
	case errors.Is(err, planservice.ErrExerciseNotFound):
		return "Некоторые выбранные упражнения больше не существуют. Обновите каталог (/newplan) и соберите план заново."
	case errors.Is(err, planservice.ErrPlanNotFound), errors.Is(err, planservice.ErrForbidden):
		return "План не найден."
	default:
		return "Не удалось сохранить план. Попробуйте ещё раз."
	}
}

// cancelWizard discards local state and, in create mode, the stored draft
func (b *Bot) cancelWizard(chatID int64, notify bool) {
	session := getWizardSession(chatID)
	if session == nil || session.machine.State().Mode == models.ModeCreate {
		if err := b.drafts.Discard(); err != nil {
			logrus.Warnf("Не удалось удалить черновик: %v", err)
		}
	}
	clearWizardSession(chatID)
	clearState(chatID)
	if notify {
		b.sendPlainKeyboardRemove(chatID, "Создание плана отменено.")
	}
}

// loadExerciseNames подтягивает названия упражнений для вывода
func (b *Bot) loadExerciseNames(session *wizardSession, ids []string) {
	if len(ids) == 0 {
		return
	}
	exercises, err := b.repo.Exercise.GetByIDs(ids)
	if err != nil {
		logrus.Warnf("Ошибка загрузки названий упражнений: %v", err)
		return
	}
	for _, e := range exercises {
		session.names[e.ID] = e.Name
	}
}
