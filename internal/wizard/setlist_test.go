package wizard

import (
	"testing"

	"fittracker/internal/models"
)

func TestSetListAddAssignsDenseOrder(t *testing.T) {
	l := NewSetList(nil)
	l.Add(10, 60)
	l.Add(8, 70)
	l.Add(6, 80)

	sets := l.Sets()
	if len(sets) != 3 {
		t.Fatalf("len = %d, want 3", len(sets))
	}
	for i, s := range sets {
		if s.Order != i {
			t.Errorf("sets[%d].Order = %d, want %d", i, s.Order, i)
		}
	}
}

func TestSetListBulkAdd(t *testing.T) {
	l := NewSetList(nil)
	l.BulkAdd(4, 12, 40)

	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}
	for i, s := range l.Sets() {
		if s.Repetitions != 12 || s.Weight != 40 || s.Order != i {
			t.Errorf("sets[%d] = %+v", i, s)
		}
	}
}

func TestSetListRemoveRenumbers(t *testing.T) {
	l := NewSetList(nil)
	l.Add(10, 60)
	l.Add(8, 70)
	l.Add(6, 80)

	l.Remove(1)

	sets := l.Sets()
	if len(sets) != 2 {
		t.Fatalf("len = %d, want 2", len(sets))
	}
	if sets[0].Repetitions != 10 || sets[1].Repetitions != 6 {
		t.Errorf("unexpected sets after remove: %+v", sets)
	}
	for i, s := range sets {
		if s.Order != i {
			t.Errorf("sets[%d].Order = %d, want %d", i, s.Order, i)
		}
	}
}

func TestSetListRemoveOutOfRange(t *testing.T) {
	l := NewSetList([]models.SetDescriptor{{Repetitions: 5, Weight: 50, Order: 0}})
	l.Remove(-1)
	l.Remove(5)
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestSetListUpdate(t *testing.T) {
	l := NewSetList(nil)
	l.Add(10, 60)

	l.Update(0, 5, 100)
	s := l.Sets()[0]
	if s.Repetitions != 5 || s.Weight != 100 || s.Order != 0 {
		t.Errorf("set = %+v", s)
	}

	// индекс вне диапазона игнорируется
	l.Update(3, 1, 1)
	if l.Sets()[0].Repetitions != 5 {
		t.Errorf("out-of-range update mutated the list")
	}
}

func TestSetListValid(t *testing.T) {
	tests := []struct {
		name string
		sets []models.SetDescriptor
		want bool
	}{
		{"empty list", nil, false},
		{"single valid", []models.SetDescriptor{{Repetitions: 10, Weight: 60, Order: 0}}, true},
		{"zero reps", []models.SetDescriptor{{Repetitions: 0, Weight: 60, Order: 0}}, false},
		{"reps over limit", []models.SetDescriptor{{Repetitions: 1000, Weight: 60, Order: 0}}, false},
		{"zero weight ok", []models.SetDescriptor{{Repetitions: 1, Weight: 0, Order: 0}}, true},
		{"negative weight", []models.SetDescriptor{{Repetitions: 1, Weight: -1, Order: 0}}, false},
		{"weight over limit", []models.SetDescriptor{{Repetitions: 1, Weight: 1000, Order: 0}}, false},
		{"max boundary", []models.SetDescriptor{{Repetitions: 999, Weight: 999.99, Order: 0}}, true},
		{"one bad among good", []models.SetDescriptor{
			{Repetitions: 10, Weight: 60, Order: 0},
			{Repetitions: 0, Weight: 60, Order: 1},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewSetList(tt.sets)
			if got := l.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetListSetsReturnsCopy(t *testing.T) {
	l := NewSetList(nil)
	l.Add(10, 60)

	sets := l.Sets()
	sets[0].Repetitions = 1
	if l.Sets()[0].Repetitions != 10 {
		t.Errorf("Sets() leaked internal slice")
	}
}
