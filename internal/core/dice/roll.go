// Package dice implements dice mechanics for the combat engine: notation
// parsing, randomized rolling with advantage and disadvantage, critical and
// fumble detection, and chat-ready result formatting.
package dice

import (
	"fmt"
	"math/rand"
)

// RollFunc produces a single die result in [1, sides]. Tests inject fixed
// functions; production rollers wrap a seeded math/rand source.
type RollFunc func(sides int) int

// NewRollFunc returns a RollFunc backed by a seeded pseudo-random source.
//
// The returned function is deterministic with respect to seed: the same seed
// always yields the same sequence of die results for the same sequence of
// calls.
func NewRollFunc(seed int64) RollFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(sides int) int {
		return rng.Intn(sides) + 1
	}
}

// Roller rolls dice through an injectable random source.
type Roller struct {
	roll RollFunc
}

// NewRoller creates a roller seeded for deterministic replay.
func NewRoller(seed int64) *Roller {
	return &Roller{roll: NewRollFunc(seed)}
}

// NewRollerFunc creates a roller using the provided roll function directly.
func NewRollerFunc(fn RollFunc) *Roller {
	return &Roller{roll: fn}
}

// Result captures everything about a single dice roll. It is fully
// reconstructable from the notation plus the raw rolls and carries no hidden
// state, so callers and tests can assert on every field independently.
type Result struct {
	Rolls            []int  `json:"rolls"`
	Modifier         int    `json:"modifier"`
	Total            int    `json:"total"`
	Purpose          string `json:"purpose"`
	Roller           string `json:"roller"`
	AdvantageUsed    bool   `json:"advantage_used"`
	DisadvantageUsed bool   `json:"disadvantage_used"`
	Critical         bool   `json:"critical"`
	Fumble           bool   `json:"fumble"`
	Notation         string `json:"notation"`
	KeptRoll         *int   `json:"kept_roll,omitempty"`
}

// Roll rolls dice using standard notation.
//
// Advantage and disadvantage apply only when the notation resolves to exactly
// one d20; requesting both cancels to a normal roll. Under advantage or
// disadvantage two d20s are rolled, both raw results are retained in Rolls,
// and KeptRoll records which one counted toward the total.
//
// Critical and fumble are defined only for single-d20 rolls: the kept (or
// sole) die showing 20 is a critical, showing 1 is a fumble. Non-d20 rolls
// never set either flag.
func (r *Roller) Roll(notation, purpose, roller string, advantage, disadvantage bool) (Result, error) {
	parsed, err := ParseNotation(notation)
	if err != nil {
		return Result{}, err
	}

	isD20 := parsed.Sides == 20 && parsed.Count == 1
	useAdvantage := advantage && isD20 && !disadvantage
	useDisadvantage := disadvantage && isD20 && !advantage

	var rolls []int
	var keptRoll *int
	baseTotal := 0

	if useAdvantage || useDisadvantage {
		first := r.roll(parsed.Sides)
		second := r.roll(parsed.Sides)
		rolls = []int{first, second}

		kept := max(first, second)
		if useDisadvantage {
			kept = min(first, second)
		}
		keptRoll = &kept
		baseTotal = kept
	} else {
		rolls = make([]int, parsed.Count)
		for i := range rolls {
			rolls[i] = r.roll(parsed.Sides)
			baseTotal += rolls[i]
		}
	}

	critical := false
	fumble := false
	if isD20 {
		checkRoll := rolls[0]
		if keptRoll != nil {
			checkRoll = *keptRoll
		}
		critical = checkRoll == 20
		fumble = checkRoll == 1
	}

	return Result{
		Rolls:            rolls,
		Modifier:         parsed.Modifier,
		Total:            baseTotal + parsed.Modifier,
		Purpose:          purpose,
		Roller:           roller,
		AdvantageUsed:    useAdvantage,
		DisadvantageUsed: useDisadvantage,
		Critical:         critical,
		Fumble:           fumble,
		Notation:         notation,
		KeptRoll:         keptRoll,
	}, nil
}

// Initiative rolls 1d20 plus a dexterity modifier for turn-order seeding.
func (r *Roller) Initiative(roller string, dexModifier int, advantage bool) (Result, error) {
	return r.Roll(d20Notation(dexModifier), "Initiative", roller, advantage, false)
}

// Attack rolls 1d20 plus an attack bonus.
func (r *Roller) Attack(roller string, attackBonus int, advantage, disadvantage bool) (Result, error) {
	return r.Roll(d20Notation(attackBonus), "Attack Roll", roller, advantage, disadvantage)
}

// AbilityCheck rolls 1d20 plus a modifier for the named ability or skill.
func (r *Roller) AbilityCheck(roller, ability string, modifier int, advantage, disadvantage bool) (Result, error) {
	return r.Roll(d20Notation(modifier), fmt.Sprintf("%s Check", ability), roller, advantage, disadvantage)
}

// SavingThrow rolls 1d20 plus a modifier for the named save.
func (r *Roller) SavingThrow(roller, saveType string, modifier int, advantage, disadvantage bool) (Result, error) {
	return r.Roll(d20Notation(modifier), fmt.Sprintf("%s Save", saveType), roller, advantage, disadvantage)
}

// Damage rolls damage dice. A critical hit doubles the number of dice rolled
// while the flat modifier is added once: 1d8+3 becomes 2d8+3, not (1d8+3)x2.
func (r *Roller) Damage(roller, damageDice, damageType string, critical bool) (Result, error) {
	parsed, err := ParseNotation(damageDice)
	if err != nil {
		return Result{}, err
	}

	if critical {
		parsed.Count *= 2
	}

	purpose := "Damage"
	if damageType != "" && damageType != "damage" {
		purpose = fmt.Sprintf("%s Damage", titleCase(damageType))
	}

	return r.Roll(parsed.String(), purpose, roller, false, false)
}

// d20Notation builds "1d20+K" or "1d20-K" for a signed modifier.
func d20Notation(modifier int) string {
	if modifier >= 0 {
		return fmt.Sprintf("1d20+%d", modifier)
	}
	return fmt.Sprintf("1d20%d", modifier)
}
