// Package check evaluates roll totals against armor classes and difficulty
// classes.
package check

// MeetsDifficulty returns true if total >= difficulty.
// This is the most common difficulty check in tabletop RPGs.
func MeetsDifficulty(total, difficulty int) bool {
	return total >= difficulty
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, negative indicate failure.
func Margin(total, difficulty int) int {
	return total - difficulty
}

// Hit reports whether an attack total hits the target's armor class.
// A critical hit (natural 20) always hits regardless of AC.
func Hit(attackTotal, targetAC int, isCritical bool) bool {
	if isCritical {
		return true
	}
	return MeetsDifficulty(attackTotal, targetAC)
}

// Success reports whether a saving throw or ability check beats its DC.
// A natural 20 always succeeds and a natural 1 always fails; the natural-20
// rule is checked first, so a roll flagged as both succeeds.
func Success(rollTotal, dc int, isNatural20, isNatural1 bool) bool {
	if isNatural20 {
		return true
	}
	if isNatural1 {
		return false
	}
	return MeetsDifficulty(rollTotal, dc)
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Success bool
	Margin  int
}

// Check performs a difficulty check and returns the result.
func Check(total, difficulty int) Result {
	return Result{
		Success: MeetsDifficulty(total, difficulty),
		Margin:  Margin(total, difficulty),
	}
}
