package wizard

import "fittracker/internal/models"

// SetList владеет упорядоченным списком подходов одного упражнения
type SetList struct {
	sets []models.SetDescriptor
}

// NewSetList создаёт список из уже имеющихся подходов (копируя их)
func NewSetList(sets []models.SetDescriptor) *SetList {
	l := &SetList{sets: make([]models.SetDescriptor, len(sets))}
	copy(l.sets, sets)
	return l
}

// Add appends a set with the next dense order number
func (l *SetList) Add(repetitions int, weight float64) {
	l.sets = append(l.sets, models.SetDescriptor{
		Repetitions: repetitions,
		Weight:      weight,
		Order:       len(l.sets),
	})
}

// BulkAdd appends n copies of the same set parameters
func (l *SetList) BulkAdd(n, repetitions int, weight float64) {
	for i := 0; i < n; i++ {
		l.Add(repetitions, weight)
	}
}

// Update replaces repetitions/weight of the set at index; order is untouched.
// Индекс вне диапазона игнорируется.
func (l *SetList) Update(index, repetitions int, weight float64) {
	if index < 0 || index >= len(l.sets) {
		return
	}
	l.sets[index].Repetitions = repetitions
	l.sets[index].Weight = weight
}

// Remove deletes the set at index and renumbers the rest
func (l *SetList) Remove(index int) {
	if index < 0 || index >= len(l.sets) {
		return
	}
	l.sets = append(l.sets[:index], l.sets[index+1:]...)
	l.Renumber()
}

// Renumber перенумеровывает подходы плотно с нуля
func (l *SetList) Renumber() {
	for i := range l.sets {
		l.sets[i].Order = i
	}
}

// Len возвращает количество подходов
func (l *SetList) Len() int {
	return len(l.sets)
}

// Sets returns a copy of the current sets
func (l *SetList) Sets() []models.SetDescriptor {
	out := make([]models.SetDescriptor, len(l.sets))
	copy(out, l.sets)
	return out
}

// Valid reports whether the list is non-empty and every set passes validation
func (l *SetList) Valid() bool {
	if len(l.sets) == 0 {
		return false
	}
	for _, s := range l.sets {
		if !s.Valid() {
			return false
		}
	}
	return true
}
