package draft

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fittracker/internal/models"
)

// SlotPlanWizard — единственный слот черновика мастера планов.
// Слот один на процесс: второй одновременно начатый мастер перезапишет
// черновик первого.
const SlotPlanWizard = "plan_wizard"

// DefaultTTL — срок жизни черновика
const DefaultTTL = 7 * 24 * time.Hour

// SlotStore — минимальный контракт хранилища слотов; реализуется *Store
type SlotStore interface {
	Put(slot, payload string, savedAt time.Time) error
	Get(slot string) (payload string, ok bool, err error)
	Delete(slot string) error
}

// Recovery mirrors the wizard state to durable local storage and offers
// recovery on next load. It never mutates wizard state itself; the caller
// decides what to do with a recovered draft.
type Recovery struct {
	store SlotStore
	ttl   time.Duration

	mu          sync.Mutex
	lastContent string // сериализованная форма последней записи, для дедупликации
}

// NewRecovery создаёт механизм восстановления; ttl <= 0 означает DefaultTTL
func NewRecovery(store SlotStore, ttl time.Duration) *Recovery {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Recovery{store: store, ttl: ttl}
}

// Save serializes a subset of the wizard state into a draft and writes it.
// No-ops in edit mode and for an untouched (empty) state. A string-equality
// comparison against the last written form skips unchanged writes.
func (r *Recovery) Save(state *models.WizardState) error {
	if state == nil || state.Mode == models.ModeEdit || state.IsEmpty() {
		return nil
	}

	d := FromState(state)

	// Содержимое для сравнения — без метки времени, иначе дедупликация
	// никогда не сработает
	content, err := json.Marshal(d)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if string(content) == r.lastContent {
		return nil
	}

	d.Timestamp = time.Now()
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := r.store.Put(SlotPlanWizard, string(payload), d.Timestamp); err != nil {
		return err
	}
	r.lastContent = string(content)
	return nil
}

// Load reads the stored draft. A draft older than the TTL is deleted and nil
// is returned; a corrupted payload is likewise swallowed and treated as
// "no draft" — recovery never surfaces storage garbage to the caller.
func (r *Recovery) Load() (*models.Draft, error) {
	payload, ok, err := r.store.Get(SlotPlanWizard)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var d models.Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		logrus.Warnf("Повреждённый черновик удалён: %v", err)
		r.store.Delete(SlotPlanWizard)
		return nil, nil
	}

	if d.Age() > r.ttl {
		if err := r.store.Delete(SlotPlanWizard); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &d, nil
}

// Discard deletes the stored draft and resets the dedup tracker so a
// subsequent Save is not incorrectly skipped as a duplicate.
func (r *Recovery) Discard() error {
	r.mu.Lock()
	r.lastContent = ""
	r.mu.Unlock()
	return r.store.Delete(SlotPlanWizard)
}

// FromState строит черновик из состояния мастера (метка времени не заполнена)
func FromState(state *models.WizardState) *models.Draft {
	d := &models.Draft{
		Step:           state.CurrentStep,
		SetsByExercise: make(map[string][]models.SetDescriptor, len(state.SetsByExercise)),
	}
	if state.Basics != nil {
		b := *state.Basics
		d.Basics = &b
	}
	d.SelectedExerciseIDs = make([]string, len(state.SelectedExerciseIDs))
	copy(d.SelectedExerciseIDs, state.SelectedExerciseIDs)
	for id, sets := range state.SetsByExercise {
		cp := make([]models.SetDescriptor, len(sets))
		copy(cp, sets)
		d.SetsByExercise[id] = cp
	}
	return d
}

// ToState rebuilds a wizard state (create mode) from a draft
func ToState(d *models.Draft) *models.WizardState {
	state := models.NewWizardState(models.ModeCreate)
	state.CurrentStep = d.Step
	if state.CurrentStep < 1 || state.CurrentStep > 3 {
		state.CurrentStep = 1
	}
	if d.Basics != nil {
		b := *d.Basics
		state.Basics = &b
	}
	state.SelectedExerciseIDs = make([]string, len(d.SelectedExerciseIDs))
	copy(state.SelectedExerciseIDs, d.SelectedExerciseIDs)
	for id, sets := range d.SetsByExercise {
		cp := make([]models.SetDescriptor, len(sets))
		copy(cp, sets)
		state.SetsByExercise[id] = cp
	}
	return state
}
