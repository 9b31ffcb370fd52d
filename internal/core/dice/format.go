package dice

import (
	"fmt"
	"strings"
	"unicode"
)

// Format renders a roll result as a single chat-ready line, for example:
//
//	Attack Roll for Vex: [15] + 5 = 20
//	Damage Roll for Thokk: [4, 6] + 3 = 13
//	Stealth Check (advantage) for Vex: [8, 17] + 4 = 21 (took 17)
//	Attack Roll for Vex: [20] + 5 = 25 CRITICAL HIT!
//
// Format is a pure function of the reported fields, so a Result reconstructed
// from serialized fields renders identically to the original.
func Format(result Result) string {
	parts := make([]string, 0, len(result.Rolls))
	for _, roll := range result.Rolls {
		parts = append(parts, fmt.Sprintf("%d", roll))
	}
	rollsStr := "[" + strings.Join(parts, ", ") + "]"

	modStr := ""
	if result.Modifier > 0 {
		modStr = fmt.Sprintf(" + %d", result.Modifier)
	} else if result.Modifier < 0 {
		modStr = fmt.Sprintf(" - %d", -result.Modifier)
	}

	advStr := ""
	if result.AdvantageUsed {
		advStr = " (advantage)"
	} else if result.DisadvantageUsed {
		advStr = " (disadvantage)"
	}

	keptStr := ""
	if result.KeptRoll != nil {
		keptStr = fmt.Sprintf(" (took %d)", *result.KeptRoll)
	}

	critStr := ""
	if result.Critical {
		critStr = " CRITICAL HIT!"
	} else if result.Fumble {
		critStr = " FUMBLE!"
	}

	return fmt.Sprintf("%s%s for %s: %s%s = %d%s%s",
		result.Purpose, advStr, result.Roller, rollsStr, modStr, result.Total, keptStr, critStr)
}

// titleCase upper-cases the first rune of a damage-type label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
