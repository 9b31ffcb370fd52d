package check

import "testing"

func TestMeetsDifficulty(t *testing.T) {
	tcs := []struct {
		name       string
		total      int
		difficulty int
		want       bool
	}{
		{name: "exceeds", total: 18, difficulty: 15, want: true},
		{name: "exact meets", total: 15, difficulty: 15, want: true},
		{name: "one under fails", total: 14, difficulty: 15, want: false},
		{name: "zero difficulty", total: 0, difficulty: 0, want: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeetsDifficulty(tc.total, tc.difficulty); got != tc.want {
				t.Errorf("MeetsDifficulty(%d, %d) = %v, want %v", tc.total, tc.difficulty, got, tc.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	if got := Margin(18, 15); got != 3 {
		t.Errorf("Margin(18, 15) = %d, want 3", got)
	}
	if got := Margin(10, 15); got != -5 {
		t.Errorf("Margin(10, 15) = %d, want -5", got)
	}
}

func TestHit(t *testing.T) {
	tcs := []struct {
		name        string
		attackTotal int
		targetAC    int
		isCritical  bool
		want        bool
	}{
		{name: "meets AC", attackTotal: 15, targetAC: 15, want: true},
		{name: "beats AC", attackTotal: 19, targetAC: 15, want: true},
		{name: "under AC", attackTotal: 14, targetAC: 15, want: false},
		{name: "critical ignores AC", attackTotal: 5, targetAC: 25, isCritical: true, want: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Hit(tc.attackTotal, tc.targetAC, tc.isCritical); got != tc.want {
				t.Errorf("Hit(%d, %d, %v) = %v, want %v", tc.attackTotal, tc.targetAC, tc.isCritical, got, tc.want)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	tcs := []struct {
		name        string
		rollTotal   int
		dc          int
		isNatural20 bool
		isNatural1  bool
		want        bool
	}{
		{name: "beats DC", rollTotal: 16, dc: 13, want: true},
		{name: "under DC", rollTotal: 12, dc: 13, want: false},
		{name: "natural 20 beats impossible DC", rollTotal: 21, dc: 30, isNatural20: true, want: true},
		{name: "natural 1 fails trivial DC", rollTotal: 6, dc: 2, isNatural1: true, want: false},
		{name: "natural 20 wins when both flagged", rollTotal: 10, dc: 15, isNatural20: true, isNatural1: true, want: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Success(tc.rollTotal, tc.dc, tc.isNatural20, tc.isNatural1); got != tc.want {
				t.Errorf("Success(%d, %d, %v, %v) = %v, want %v",
					tc.rollTotal, tc.dc, tc.isNatural20, tc.isNatural1, got, tc.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	result := Check(18, 15)
	if !result.Success || result.Margin != 3 {
		t.Errorf("Check(18, 15) = %+v, want success with margin 3", result)
	}

	result = Check(10, 15)
	if result.Success || result.Margin != -5 {
		t.Errorf("Check(10, 15) = %+v, want failure with margin -5", result)
	}
}
