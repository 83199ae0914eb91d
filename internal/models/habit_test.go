package models

import "testing"

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		want    int
	}{
		{"zero progress", 0, 8, 0},
		{"half way", 4, 8, 50},
		{"truncates", 1, 3, 33},
		{"truncates instead of rounding up", 2, 3, 66},
		{"one short of large target", 199, 200, 99},
		{"complete", 8, 8, 100},
		{"over target clamps to 100", 12, 8, 100},
		{"zero target", 3, 0, 0},
		{"negative target", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Habit{CurrentCount: tt.current, TargetCount: tt.target}
			if got := h.CompletionPercentage(); got != tt.want {
				t.Errorf("CompletionPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsCompleted(t *testing.T) {
	t.Run("below target", func(t *testing.T) {
		h := Habit{CurrentCount: 7, TargetCount: 8}
		if h.IsCompleted() {
			t.Error("IsCompleted() = true, want false")
		}
	})

	t.Run("at target", func(t *testing.T) {
		h := Habit{CurrentCount: 8, TargetCount: 8}
		if !h.IsCompleted() {
			t.Error("IsCompleted() = false, want true")
		}
	})

	t.Run("completed matches full percentage", func(t *testing.T) {
		h := Habit{CurrentCount: 5, TargetCount: 5}
		if h.CompletionPercentage() != 100 {
			t.Errorf("CompletionPercentage() = %d, want 100", h.CompletionPercentage())
		}
		if !h.IsCompleted() {
			t.Error("IsCompleted() = false for habit at 100%")
		}
	})
}

// The percentage reads 100 exactly when the target is met, for any positive
// target — an incomplete habit must never display as fully done.
func TestCompletionPercentageMatchesIsCompleted(t *testing.T) {
	for _, target := range []int{1, 2, 3, 8, 199, 200, 1000} {
		for _, current := range []int{0, 1, target - 1, target, target + 1} {
			if current < 0 {
				continue
			}
			h := Habit{CurrentCount: current, TargetCount: target}
			atFull := h.CompletionPercentage() == 100
			if atFull != h.IsCompleted() {
				t.Errorf("habit %d/%d: CompletionPercentage() == 100 is %v but IsCompleted() is %v",
					current, target, atFull, h.IsCompleted())
			}
		}
	}
}
