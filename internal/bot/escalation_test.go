package bot

import "testing"

func TestContainsEscalationPhrase(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I want to SPEAK TO MANAGER now", true},
		{"I want to speak to a manager, this is unacceptable", true},
		{"give me a human agent", true},
		{"i am not satisfied with this", true},
		{"please escalate this ticket", true},
		{"where is your supervisor", true},
		{"the fish was lovely, thanks", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ContainsEscalationPhrase(tc.text); got != tc.want {
			t.Errorf("ContainsEscalationPhrase(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestComplaintSeverity(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"everything is fine", 0},
		{"the order was wrong", 1},
		{"wrong item and terrible packaging", 2},
		{"WRONG, terrible, awful, I am angry", 4},
	}

	for _, tc := range cases {
		if got := ComplaintSeverity(tc.text); got != tc.want {
			t.Errorf("ComplaintSeverity(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
