package wizard

import (
	"reflect"
	"sort"
	"testing"

	"fittracker/internal/models"
)

func ids(c *Configurator) []string {
	return c.ExerciseIDs()
}

func TestNewConfiguratorDefaultsAndPrior(t *testing.T) {
	prior := map[string][]models.SetDescriptor{
		"e2": {{Repetitions: 8, Weight: 70, Order: 0}, {Repetitions: 8, Weight: 75, Order: 1}},
		"e3": {{Repetitions: 0, Weight: 70, Order: 0}}, // невалидные данные
	}
	c := NewConfigurator([]string{"e1", "e2", "e3"}, prior, nil)

	cfg := c.Config()
	if len(cfg) != 3 {
		t.Fatalf("len(config) = %d, want 3", len(cfg))
	}

	// e1: нет данных — один подход по умолчанию
	if !reflect.DeepEqual(cfg[0].Sets, []models.SetDescriptor{models.DefaultSet()}) {
		t.Errorf("e1 sets = %+v, want default", cfg[0].Sets)
	}
	// e2: валидные прежние подходы сохранены
	if len(cfg[1].Sets) != 2 || cfg[1].Sets[1].Weight != 75 {
		t.Errorf("e2 sets = %+v", cfg[1].Sets)
	}
	// e3: невалидные данные молча заменены подходом по умолчанию
	if !reflect.DeepEqual(cfg[2].Sets, []models.SetDescriptor{models.DefaultSet()}) {
		t.Errorf("e3 sets = %+v, want default fallback", cfg[2].Sets)
	}

	if c.Expanded() != "e1" {
		t.Errorf("expanded = %q, want e1", c.Expanded())
	}
}

func TestToggle(t *testing.T) {
	c := NewConfigurator([]string{"e1", "e2"}, nil, nil)

	c.Toggle("e2")
	if c.Expanded() != "e2" {
		t.Errorf("expanded = %q, want e2", c.Expanded())
	}

	// повторный тоггл сворачивает
	c.Toggle("e2")
	if c.Expanded() != "" {
		t.Errorf("expanded = %q, want empty", c.Expanded())
	}

	// неизвестный id игнорируется
	c.Toggle("nope")
	if c.Expanded() != "" {
		t.Errorf("expanded = %q after unknown toggle", c.Expanded())
	}
}

func TestRemoveExerciseHandsExpandedToFirst(t *testing.T) {
	// Сценарий: 3 упражнения, раскрыто E1, удаляем E1 → раскрыто E2;
	// удаляем оставшиеся — раскрытого нет, список пуст
	var removed []string
	c := NewConfigurator([]string{"e1", "e2", "e3"}, nil, func(id string) {
		removed = append(removed, id)
	})

	if c.Expanded() != "e1" {
		t.Fatalf("expanded = %q, want e1", c.Expanded())
	}

	c.RemoveExercise("e1")
	if c.Expanded() != "e2" {
		t.Errorf("expanded = %q, want e2", c.Expanded())
	}

	c.RemoveExercise("e2")
	c.RemoveExercise("e3")
	if c.Expanded() != "" {
		t.Errorf("expanded = %q, want empty", c.Expanded())
	}
	if len(ids(c)) != 0 {
		t.Errorf("ids = %v, want empty", ids(c))
	}

	if !reflect.DeepEqual(removed, []string{"e1", "e2", "e3"}) {
		t.Errorf("removal notifications = %v", removed)
	}
}

func TestRemoveExerciseRenumbers(t *testing.T) {
	c := NewConfigurator([]string{"e1", "e2", "e3"}, nil, nil)
	c.RemoveExercise("e2")

	if !reflect.DeepEqual(ids(c), []string{"e1", "e3"}) {
		t.Errorf("ids = %v", ids(c))
	}
	for i, e := range c.entries {
		if e.order != i {
			t.Errorf("entries[%d].order = %d, want %d", i, e.order, i)
		}
	}
}

func TestReorderIsPurePermutation(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{"move forward", "e1", "e3", []string{"e2", "e3", "e1"}},
		{"move backward", "e3", "e1", []string{"e3", "e1", "e2"}},
		{"adjacent", "e2", "e3", []string{"e1", "e3", "e2"}},
		{"same id is no-op", "e2", "e2", []string{"e1", "e2", "e3"}},
		{"unknown from is no-op", "zz", "e1", []string{"e1", "e2", "e3"}},
		{"unknown to is no-op", "e1", "zz", []string{"e1", "e2", "e3"}},
		{"empty target is no-op", "e1", "", []string{"e1", "e2", "e3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfigurator([]string{"e1", "e2", "e3"}, nil, nil)
			c.Reorder(tt.from, tt.to)

			got := ids(c)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}

			// мультимножество id не изменилось
			sorted := append([]string(nil), got...)
			sort.Strings(sorted)
			if !reflect.DeepEqual(sorted, []string{"e1", "e2", "e3"}) {
				t.Errorf("id multiset changed: %v", got)
			}
			// плотная нумерация 0..N-1
			for i, e := range c.entries {
				if e.order != i {
					t.Errorf("entries[%d].order = %d, want %d", i, e.order, i)
				}
			}
		})
	}
}

func TestSetSetsDoesNotTouchOthers(t *testing.T) {
	c := NewConfigurator([]string{"e1", "e2"}, nil, nil)
	c.SetSets("e1", []models.SetDescriptor{{Repetitions: 5, Weight: 100, Order: 0}})

	cfg := c.Config()
	if cfg[0].Sets[0].Repetitions != 5 {
		t.Errorf("e1 sets = %+v", cfg[0].Sets)
	}
	if !reflect.DeepEqual(cfg[1].Sets, []models.SetDescriptor{models.DefaultSet()}) {
		t.Errorf("e2 sets changed: %+v", cfg[1].Sets)
	}
}

func TestConfiguratorIsValid(t *testing.T) {
	c := NewConfigurator(nil, nil, nil)
	if c.IsValid() {
		t.Error("empty configurator reported valid")
	}

	c = NewConfigurator([]string{"e1"}, nil, nil)
	if !c.IsValid() {
		t.Error("default set reported invalid")
	}

	c.SetSets("e1", []models.SetDescriptor{{Repetitions: 0, Weight: 10, Order: 0}})
	if c.IsValid() {
		t.Error("invalid set reported valid")
	}

	c.SetSets("e1", nil)
	if c.IsValid() {
		t.Error("exercise without sets reported valid")
	}
}
