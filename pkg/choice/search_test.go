package choice

import "testing"

func TestMatchPrefix(t *testing.T) {
	choices := []Choice{
		{Value: 1, Name: "Alpha"},
		{Value: 2, Name: "Beta"},
		{Value: 3, Name: "Gamma"},
	}

	t.Run("CaseInsensitive", func(t *testing.T) {
		if got := MatchPrefix(choices, "b"); got != 1 {
			t.Errorf("MatchPrefix(\"b\") = %d, want 1 (Beta)", got)
		}
		if got := MatchPrefix(choices, "GAM"); got != 2 {
			t.Errorf("MatchPrefix(\"GAM\") = %d, want 2 (Gamma)", got)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		if got := MatchPrefix(choices, "z"); got != -1 {
			t.Errorf("MatchPrefix(\"z\") = %d, want -1", got)
		}
	})

	t.Run("EmptyTerm", func(t *testing.T) {
		if got := MatchPrefix(choices, ""); got != -1 {
			t.Errorf("MatchPrefix(\"\") = %d, want -1", got)
		}
	})

	t.Run("SkipsUnselectable", func(t *testing.T) {
		list := []Choice{
			Separator("Browsers"),
			{Value: "ff", Name: "Firefox", Disabled: true},
			{Value: "fl", Name: "Flow"},
		}
		if got := MatchPrefix(list, "f"); got != 2 {
			t.Errorf("MatchPrefix(\"f\") = %d, want 2 (first selectable)", got)
		}
	})

	t.Run("FallsBackToValueText", func(t *testing.T) {
		list := []Choice{Item("open"), Item("edit")}
		if got := MatchPrefix(list, "ed"); got != 1 {
			t.Errorf("MatchPrefix(\"ed\") = %d, want 1", got)
		}
	})
}

func TestMatch_FuzzyMode(t *testing.T) {
	choices := []Choice{
		Separator(""),
		{Value: 1, Name: "npm run build"},
		{Value: 2, Name: "npm run test"},
		{Value: 3, Name: "git status"},
	}

	if got := Match(choices, "nrt", MatchModeFuzzy); got != 2 {
		t.Errorf("fuzzy Match(\"nrt\") = %d, want 2 (npm run test)", got)
	}
	if got := Match(choices, "xyzzy", MatchModeFuzzy); got != -1 {
		t.Errorf("fuzzy Match with no candidates = %d, want -1", got)
	}
	if got := Match(choices, "", MatchModeFuzzy); got != -1 {
		t.Errorf("fuzzy Match with empty term = %d, want -1", got)
	}
}
