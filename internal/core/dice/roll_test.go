package dice

import (
	"testing"
)

// fixedRoller returns a roller cycling through the provided die values.
func fixedRoller(values ...int) *Roller {
	i := 0
	return NewRollerFunc(func(sides int) int {
		value := values[i%len(values)]
		i++
		return value
	})
}

func TestRollBounds(t *testing.T) {
	roller := NewRoller(42)

	notations := []struct {
		notation string
		sides    int
		count    int
		modifier int
	}{
		{notation: "1d20", sides: 20, count: 1},
		{notation: "2d6+3", sides: 6, count: 2, modifier: 3},
		{notation: "4d8-2", sides: 8, count: 4, modifier: -2},
		{notation: "1d1", sides: 1, count: 1},
	}

	for _, tc := range notations {
		for i := 0; i < 50; i++ {
			result, err := roller.Roll(tc.notation, "test", "tester", false, false)
			if err != nil {
				t.Fatalf("Roll(%q): %v", tc.notation, err)
			}
			if len(result.Rolls) != tc.count {
				t.Fatalf("Roll(%q): got %d dice, want %d", tc.notation, len(result.Rolls), tc.count)
			}
			sum := 0
			for _, die := range result.Rolls {
				if die < 1 || die > tc.sides {
					t.Fatalf("Roll(%q): die %d outside [1, %d]", tc.notation, die, tc.sides)
				}
				sum += die
			}
			if result.Total != sum+tc.modifier {
				t.Fatalf("Roll(%q): total %d != sum %d + modifier %d", tc.notation, result.Total, sum, tc.modifier)
			}
		}
	}
}

func TestRollDeterministicSeed(t *testing.T) {
	first, err := NewRoller(7).Roll("3d6+2", "test", "tester", false, false)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	second, err := NewRoller(7).Roll("3d6+2", "test", "tester", false, false)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	if first.Total != second.Total {
		t.Errorf("same seed produced totals %d and %d", first.Total, second.Total)
	}
	for i := range first.Rolls {
		if first.Rolls[i] != second.Rolls[i] {
			t.Errorf("same seed produced dice %v and %v", first.Rolls, second.Rolls)
			break
		}
	}
}

func TestRollAdvantage(t *testing.T) {
	roller := fixedRoller(8, 17)

	result, err := roller.Roll("1d20+4", "Stealth Check", "vex", true, false)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	if !result.AdvantageUsed {
		t.Error("expected advantage to be recorded")
	}
	if len(result.Rolls) != 2 {
		t.Fatalf("expected both raw rolls retained, got %v", result.Rolls)
	}
	if result.KeptRoll == nil || *result.KeptRoll != 17 {
		t.Fatalf("expected kept roll 17, got %v", result.KeptRoll)
	}
	if result.Total != 21 {
		t.Errorf("expected total 21 (17+4), got %d", result.Total)
	}
}

func TestRollDisadvantage(t *testing.T) {
	roller := fixedRoller(8, 17)

	result, err := roller.Roll("1d20+4", "Stealth Check", "vex", false, true)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	if !result.DisadvantageUsed {
		t.Error("expected disadvantage to be recorded")
	}
	if result.KeptRoll == nil || *result.KeptRoll != 8 {
		t.Fatalf("expected kept roll 8, got %v", result.KeptRoll)
	}
	if result.Total != 12 {
		t.Errorf("expected total 12 (8+4), got %d", result.Total)
	}
}

func TestRollAdvantageAndDisadvantageCancel(t *testing.T) {
	roller := fixedRoller(8, 17)

	result, err := roller.Roll("1d20+4", "Stealth Check", "vex", true, true)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	if result.AdvantageUsed || result.DisadvantageUsed {
		t.Error("both flags requested should cancel to a normal roll")
	}
	if len(result.Rolls) != 1 {
		t.Fatalf("expected a single die, got %v", result.Rolls)
	}
	if result.KeptRoll != nil {
		t.Errorf("expected no kept roll, got %d", *result.KeptRoll)
	}
	if result.Total != 12 {
		t.Errorf("expected total 12 (8+4), got %d", result.Total)
	}
}

func TestRollAdvantageOnlyAppliesToSingleD20(t *testing.T) {
	for _, notation := range []string{"2d20", "1d12", "3d6+1"} {
		result, err := fixedRoller(5).Roll(notation, "test", "tester", true, false)
		if err != nil {
			t.Fatalf("Roll(%q): %v", notation, err)
		}
		if result.AdvantageUsed {
			t.Errorf("Roll(%q): advantage applied to a non single-d20 roll", notation)
		}
		if result.KeptRoll != nil {
			t.Errorf("Roll(%q): unexpected kept roll", notation)
		}
	}
}

func TestRollCriticalAndFumble(t *testing.T) {
	tcs := []struct {
		name         string
		notation     string
		dice         []int
		advantage    bool
		disadvantage bool
		wantCritical bool
		wantFumble   bool
	}{
		{name: "natural 20", notation: "1d20+5", dice: []int{20}, wantCritical: true},
		{name: "natural 1", notation: "1d20+5", dice: []int{1}, wantFumble: true},
		{name: "plain 15", notation: "1d20+5", dice: []int{15}},
		{name: "advantage keeps the 20", notation: "1d20", dice: []int{3, 20}, advantage: true, wantCritical: true},
		{name: "disadvantage keeps the 1", notation: "1d20", dice: []int{1, 20}, disadvantage: true, wantFumble: true},
		{name: "disadvantage drops the 20", notation: "1d20", dice: []int{20, 12}, disadvantage: true},
		{name: "max faces on non-d20 are not critical", notation: "2d6", dice: []int{6, 6}},
		{name: "d12 showing 12 is not critical", notation: "1d12", dice: []int{12}},
		{name: "d6 showing 1 is not a fumble", notation: "1d6", dice: []int{1}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			result, err := fixedRoller(tc.dice...).Roll(tc.notation, "test", "tester", tc.advantage, tc.disadvantage)
			if err != nil {
				t.Fatalf("roll: %v", err)
			}
			if result.Critical != tc.wantCritical {
				t.Errorf("critical = %v, want %v", result.Critical, tc.wantCritical)
			}
			if result.Fumble != tc.wantFumble {
				t.Errorf("fumble = %v, want %v", result.Fumble, tc.wantFumble)
			}
		})
	}
}

func TestRollInvalidNotation(t *testing.T) {
	if _, err := NewRoller(1).Roll("garbage", "test", "tester", false, false); err == nil {
		t.Fatal("expected malformed notation to propagate an error")
	}
}

func TestInitiative(t *testing.T) {
	result, err := fixedRoller(13).Initiative("goblin_1", 2, false)
	if err != nil {
		t.Fatalf("initiative: %v", err)
	}
	if result.Total != 15 {
		t.Errorf("expected 13+2=15, got %d", result.Total)
	}
	if result.Purpose != "Initiative" {
		t.Errorf("unexpected purpose %q", result.Purpose)
	}
	if result.Notation != "1d20+2" {
		t.Errorf("unexpected notation %q", result.Notation)
	}
}

func TestInitiativeNegativeModifier(t *testing.T) {
	result, err := fixedRoller(10).Initiative("zombie_1", -2, false)
	if err != nil {
		t.Fatalf("initiative: %v", err)
	}
	if result.Total != 8 {
		t.Errorf("expected 10-2=8, got %d", result.Total)
	}
}

func TestDamageCriticalDoublesDiceOnly(t *testing.T) {
	roller := fixedRoller(4, 6)

	result, err := roller.Damage("thokk", "1d8+3", "slashing", true)
	if err != nil {
		t.Fatalf("damage: %v", err)
	}

	if len(result.Rolls) != 2 {
		t.Fatalf("critical 1d8+3 should roll 2 dice, got %v", result.Rolls)
	}
	if result.Modifier != 3 {
		t.Errorf("modifier should be added once, got %d", result.Modifier)
	}
	if result.Total != 13 {
		t.Errorf("expected 4+6+3=13, got %d", result.Total)
	}
	if result.Notation != "2d8+3" {
		t.Errorf("expected doubled notation 2d8+3, got %q", result.Notation)
	}
}

func TestDamagePurpose(t *testing.T) {
	result, err := fixedRoller(3).Damage("vex", "1d6", "piercing", false)
	if err != nil {
		t.Fatalf("damage: %v", err)
	}
	if result.Purpose != "Piercing Damage" {
		t.Errorf("unexpected purpose %q", result.Purpose)
	}

	plain, err := fixedRoller(3).Damage("vex", "1d6", "damage", false)
	if err != nil {
		t.Fatalf("damage: %v", err)
	}
	if plain.Purpose != "Damage" {
		t.Errorf("unexpected purpose %q", plain.Purpose)
	}
}

func TestAbilityCheckAndSavingThrow(t *testing.T) {
	checkResult, err := fixedRoller(11).AbilityCheck("vex", "Perception", 3, false, false)
	if err != nil {
		t.Fatalf("ability check: %v", err)
	}
	if checkResult.Purpose != "Perception Check" || checkResult.Total != 14 {
		t.Errorf("unexpected ability check result %+v", checkResult)
	}

	saveResult, err := fixedRoller(9).SavingThrow("lira", "WIS", 5, false, false)
	if err != nil {
		t.Fatalf("saving throw: %v", err)
	}
	if saveResult.Purpose != "WIS Save" || saveResult.Total != 14 {
		t.Errorf("unexpected saving throw result %+v", saveResult)
	}
}
