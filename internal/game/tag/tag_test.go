package tag

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		message string
		name    string
		value   string
		content string
	}{
		{"[TURN:thokk] Your turn!", "TURN", "thokk", "Your turn!"},
		{"[NARRATION] The cave grows dark.", "NARRATION", "", "The cave grows dark."},
		{"[COMBAT:hit] The arrow strikes true!", "COMBAT", "hit", "The arrow strikes true!"},
		{"[PROMPT] What do you do?", "PROMPT", "", "What do you do?"},
		{"[INFO] Party HP: Thokk 8/12", "INFO", "", "Party HP: Thokk 8/12"},
		{"No tag here", "", "", "No tag here"},
		{"", "", "", ""},
		{"[TURN:thokk]", "TURN", "thokk", ""},
		{"[NARRATION] Line one.\nLine two.", "NARRATION", "", "Line one.\nLine two."},
		{"mid-sentence [TURN:thokk] tag", "", "", "mid-sentence [TURN:thokk] tag"},
	}
	for _, test := range tests {
		parsed := Parse(test.message)
		if parsed.Name != test.name || parsed.Value != test.value || parsed.Content != test.content {
			t.Errorf("Parse(%q) = %+v, want {%s %s %s}",
				test.message, parsed, test.name, test.value, test.content)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	message := Format(Turn, "thokk", "Your turn!")
	if message != "[TURN:thokk] Your turn!" {
		t.Errorf("Format = %q", message)
	}

	parsed := Parse(message)
	if parsed.Name != Turn || parsed.Value != "thokk" || parsed.Content != "Your turn!" {
		t.Errorf("round trip lost data: %+v", parsed)
	}

	if got := Format(Narration, "", "The cave grows dark."); got != "[NARRATION] The cave grows dark." {
		t.Errorf("Format without value = %q", got)
	}
}

func TestStripForDisplay(t *testing.T) {
	if got := StripForDisplay("[TURN:thokk] Your turn!"); got != "Your turn!" {
		t.Errorf("StripForDisplay = %q", got)
	}
	if got := StripForDisplay("No tag here"); got != "No tag here" {
		t.Errorf("untagged message should pass through, got %q", got)
	}
}

func TestTurnHelpers(t *testing.T) {
	if !IsTurn("[TURN:lira] Lira, you're up.") {
		t.Error("IsTurn missed a turn tag")
	}
	if IsTurn("[NARRATION] quiet falls") {
		t.Error("IsTurn matched narration")
	}
	if got := TurnTarget("[TURN:lira] Lira, you're up."); got != "lira" {
		t.Errorf("TurnTarget = %q", got)
	}
	if got := TurnTarget("Not a turn message"); got != "" {
		t.Errorf("TurnTarget on plain text = %q", got)
	}
}

func TestCombatResult(t *testing.T) {
	isCombat, kind := CombatResult("[COMBAT:crit] Devastating blow!")
	if !isCombat || kind != "crit" {
		t.Errorf("CombatResult = %v %q", isCombat, kind)
	}
	isCombat, kind = CombatResult("Regular message")
	if isCombat || kind != "" {
		t.Errorf("CombatResult on plain text = %v %q", isCombat, kind)
	}
}

func TestNarrationAndPrompt(t *testing.T) {
	if !IsNarration("[NARRATION] fog rolls in") || IsNarration("[PROMPT] go on") {
		t.Error("IsNarration misclassified")
	}
	if !IsPrompt("[PROMPT] what now?") || IsPrompt("plain") {
		t.Error("IsPrompt misclassified")
	}
}
