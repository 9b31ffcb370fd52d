package dice

import (
	"testing"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
)

func TestParseNotation(t *testing.T) {
	tcs := []struct {
		notation     string
		wantCount    int
		wantSides    int
		wantModifier int
	}{
		{notation: "1d20", wantCount: 1, wantSides: 20, wantModifier: 0},
		{notation: "2d6+3", wantCount: 2, wantSides: 6, wantModifier: 3},
		{notation: "1d8-1", wantCount: 1, wantSides: 8, wantModifier: -1},
		{notation: "  1D12+5  ", wantCount: 1, wantSides: 12, wantModifier: 5},
		{notation: "10d4", wantCount: 10, wantSides: 4, wantModifier: 0},
		{notation: "1d1", wantCount: 1, wantSides: 1, wantModifier: 0},
	}

	for _, tc := range tcs {
		parsed, err := ParseNotation(tc.notation)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", tc.notation, err)
		}
		if parsed.Count != tc.wantCount || parsed.Sides != tc.wantSides || parsed.Modifier != tc.wantModifier {
			t.Errorf("ParseNotation(%q) = %+v, want (%d, %d, %d)",
				tc.notation, parsed, tc.wantCount, tc.wantSides, tc.wantModifier)
		}
	}
}

func TestParseNotationInvalid(t *testing.T) {
	invalid := []string{
		"",
		"d20",
		"1d",
		"20",
		"1d20+",
		"1d20++2",
		"2d6+3d4",
		"0d6",
		"1d0",
		"-1d6",
		"one d20",
		"1d20 + 5",
	}

	for _, notation := range invalid {
		_, err := ParseNotation(notation)
		if err == nil {
			t.Errorf("ParseNotation(%q): expected error, got none", notation)
			continue
		}
		if !errors.IsCode(err, errors.CodeDiceInvalidNotation) {
			t.Errorf("ParseNotation(%q): expected DICE_INVALID_NOTATION, got %v", notation, err)
		}
		if meta := errors.GetMetadata(err); meta["Notation"] != notation {
			t.Errorf("ParseNotation(%q): error metadata %v missing offending string", notation, meta)
		}
	}
}

func TestNotationString(t *testing.T) {
	tcs := []struct {
		notation Notation
		want     string
	}{
		{notation: Notation{Count: 1, Sides: 20}, want: "1d20"},
		{notation: Notation{Count: 2, Sides: 6, Modifier: 3}, want: "2d6+3"},
		{notation: Notation{Count: 1, Sides: 8, Modifier: -1}, want: "1d8-1"},
	}

	for _, tc := range tcs {
		if got := tc.notation.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestNotationStringRoundTrip(t *testing.T) {
	for _, notation := range []string{"1d20", "2d6+3", "1d8-1", "4d10+12"} {
		parsed, err := ParseNotation(notation)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", notation, err)
		}
		reparsed, err := ParseNotation(parsed.String())
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", parsed.String(), err)
		}
		if parsed != reparsed {
			t.Errorf("round trip %q -> %+v -> %+v", notation, parsed, reparsed)
		}
	}
}
