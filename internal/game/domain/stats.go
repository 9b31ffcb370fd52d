package domain

import "strings"

// CharacterStats holds the six ability scores. Scores range 1 to 30.
type CharacterStats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// DefaultStats returns a stat block with every score at 10.
func DefaultStats() CharacterStats {
	return CharacterStats{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

// Modifier returns the ability modifier for the named ability,
// floor((score-10)/2) rounding toward negative infinity, so a score of 8
// yields -1. Accepts both abbreviated ("str") and full ("strength") names,
// case-insensitive. Unknown names resolve as a score of 10, modifier 0.
func (s CharacterStats) Modifier(ability string) int {
	score := 10
	switch strings.ToLower(ability) {
	case "str", "strength":
		score = s.Strength
	case "dex", "dexterity":
		score = s.Dexterity
	case "con", "constitution":
		score = s.Constitution
	case "int", "intelligence":
		score = s.Intelligence
	case "wis", "wisdom":
		score = s.Wisdom
	case "cha", "charisma":
		score = s.Charisma
	}
	return floorDiv(score-10, 2)
}

// floorDiv divides rounding toward negative infinity. Go's integer division
// truncates toward zero, which gives the wrong modifier for odd scores
// below 10.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
