package choice

import "testing"

func selectableFn(choices []Choice) func(int) bool {
	return func(i int) bool { return choices[i].Selectable() }
}

func TestMove_SkipsUnselectable(t *testing.T) {
	choices := []Choice{
		Separator(""),
		Item("a"),
		{Value: "b", Disabled: true},
		Item("c"),
		Separator(""),
	}

	if got := Move(1, Next, len(choices), selectableFn(choices)); got != 3 {
		t.Errorf("Move next from 1 = %d, want 3 (skips disabled)", got)
	}
	if got := Move(3, Previous, len(choices), selectableFn(choices)); got != 1 {
		t.Errorf("Move previous from 3 = %d, want 1", got)
	}
}

func TestMove_WrapsThroughFullList(t *testing.T) {
	choices := []Choice{
		Item("a"),
		Separator(""),
		Item("b"),
	}

	if got := Move(2, Next, len(choices), selectableFn(choices)); got != 0 {
		t.Errorf("Move next from last = %d, want wrap to 0", got)
	}
	if got := Move(0, Previous, len(choices), selectableFn(choices)); got != 2 {
		t.Errorf("Move previous from first = %d, want wrap to 2", got)
	}
}

// Move must terminate on a selectable index from any starting point, for
// any list that satisfies the bounds invariant.
func TestMove_AlwaysLandsOnSelectable(t *testing.T) {
	choices := []Choice{
		Separator("top"),
		{Value: 1, Disabled: true},
		Item(2),
		Separator("mid"),
		{Value: 3, DisabledReason: "soon"},
		Item(4),
		Separator("end"),
	}

	for start := 0; start < len(choices); start++ {
		for _, dir := range []Direction{Previous, Next} {
			got := Move(start, dir, len(choices), selectableFn(choices))
			if !choices[got].Selectable() {
				t.Errorf("Move(%d, %v) = %d, not selectable", start, dir, got)
			}
		}
	}
}

func TestAtBoundary(t *testing.T) {
	b := Bounds{First: 1, Last: 4}

	if !AtBoundary(1, Previous, b) {
		t.Error("previous at first should be a boundary")
	}
	if !AtBoundary(4, Next, b) {
		t.Error("next at last should be a boundary")
	}
	if AtBoundary(2, Previous, b) || AtBoundary(2, Next, b) {
		t.Error("interior index should not be a boundary")
	}
}

func TestDigitTarget(t *testing.T) {
	choices := []Choice{
		Item("a"),
		Separator(""),
		{Value: "b", Disabled: true},
		Item("c"),
	}

	tests := []struct {
		digit int
		want  int
	}{
		{1, 0},   // selectable
		{2, -1},  // separator
		{3, -1},  // disabled
		{4, 3},   // selectable
		{5, -1},  // out of range
		{9, -1},  // out of range
	}

	for _, tt := range tests {
		if got := DigitTarget(choices, tt.digit); got != tt.want {
			t.Errorf("DigitTarget(%d) = %d, want %d", tt.digit, got, tt.want)
		}
	}
}
