package wizard

import "fittracker/internal/models"

// ExerciseConfig — производное значение конфигуратора: упражнение и его
// подходы в итоговом порядке. Потребители видят только его, не внутренние
// индексы.
type ExerciseConfig struct {
	ExerciseID string
	Sets       []models.SetDescriptor
}

type configuratorEntry struct {
	exerciseID string
	order      int
	list       *SetList
}

// Configurator владеет упорядоченной коллекцией упражнений с подходами
// для всего плана; развёрнуто не больше одного упражнения за раз.
type Configurator struct {
	entries  []*configuratorEntry
	expanded string // id развёрнутого упражнения, "" если ни одного
	onRemove func(exerciseID string)
}

// NewConfigurator builds the collection from the selected exercises.
// Each exercise gets its validated prior sets, or a single default set when
// none exist or the prior data fails validation (the fallback is silent).
// The first exercise starts expanded. onRemove may be nil.
func NewConfigurator(selected []string, prior map[string][]models.SetDescriptor, onRemove func(string)) *Configurator {
	c := &Configurator{onRemove: onRemove}
	for i, id := range selected {
		list := NewSetList([]models.SetDescriptor{models.DefaultSet()})
		if priorSets, ok := prior[id]; ok {
			candidate := NewSetList(priorSets)
			if candidate.Valid() {
				list = candidate
			}
		}
		c.entries = append(c.entries, &configuratorEntry{exerciseID: id, order: i, list: list})
	}
	if len(c.entries) > 0 {
		c.expanded = c.entries[0].exerciseID
	}
	return c
}

// Toggle expands the exercise if collapsed, collapses it if already expanded
func (c *Configurator) Toggle(exerciseID string) {
	if c.find(exerciseID) == -1 {
		return
	}
	if c.expanded == exerciseID {
		c.expanded = ""
		return
	}
	c.expanded = exerciseID
}

// Expanded возвращает id развёрнутого упражнения ("" — ни одного)
func (c *Configurator) Expanded() string {
	return c.expanded
}

// SetSets wholesale-replaces the sets of one exercise. Other exercises are
// untouched; order fields are stored as given (renumbering is the caller's
// responsibility).
func (c *Configurator) SetSets(exerciseID string, sets []models.SetDescriptor) {
	i := c.find(exerciseID)
	if i == -1 {
		return
	}
	c.entries[i].list = NewSetList(sets)
}

// SetListOf возвращает движок подходов упражнения (nil, если его нет)
func (c *Configurator) SetListOf(exerciseID string) *SetList {
	i := c.find(exerciseID)
	if i == -1 {
		return nil
	}
	return c.entries[i].list
}

// RemoveExercise removes the exercise, renumbers the remaining ones densely
// and hands the expanded focus to the first remaining exercise when the
// removed one was expanded. Notifies the removal callback on success.
func (c *Configurator) RemoveExercise(exerciseID string) {
	i := c.find(exerciseID)
	if i == -1 {
		return
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.renumber()

	if c.expanded == exerciseID {
		if len(c.entries) > 0 {
			c.expanded = c.entries[0].exerciseID
		} else {
			c.expanded = ""
		}
	}
	if c.onRemove != nil {
		c.onRemove(exerciseID)
	}
}

// Reorder moves the exercise fromID to the position currently held by toID
// (array move, not a swap) and renumbers densely. No-op when either id is
// absent, the ids are equal, or toID is empty (drag cancelled).
func (c *Configurator) Reorder(fromID, toID string) {
	if toID == "" || fromID == toID {
		return
	}
	from := c.find(fromID)
	to := c.find(toID)
	if from == -1 || to == -1 {
		return
	}

	moved := c.entries[from]
	c.entries = append(c.entries[:from], c.entries[from+1:]...)
	c.entries = append(c.entries[:to], append([]*configuratorEntry{moved}, c.entries[to:]...)...)
	c.renumber()
}

// IsValid reports whether the collection is non-empty and every exercise's
// sets pass validation. Дублирует правило шага 3 мастера намеренно — чтобы
// конфигуратор тестировался независимо.
func (c *Configurator) IsValid() bool {
	if len(c.entries) == 0 {
		return false
	}
	for _, e := range c.entries {
		if !e.list.Valid() {
			return false
		}
	}
	return true
}

// Config derives the submission-ready ordered configuration
func (c *Configurator) Config() []ExerciseConfig {
	out := make([]ExerciseConfig, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, ExerciseConfig{ExerciseID: e.exerciseID, Sets: e.list.Sets()})
	}
	return out
}

// ExerciseIDs возвращает id упражнений в текущем порядке
func (c *Configurator) ExerciseIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, e.exerciseID)
	}
	return ids
}

func (c *Configurator) find(exerciseID string) int {
	for i, e := range c.entries {
		if e.exerciseID == exerciseID {
			return i
		}
	}
	return -1
}

func (c *Configurator) renumber() {
	for i, e := range c.entries {
		e.order = i
	}
}
