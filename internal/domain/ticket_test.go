package domain

import "testing"

func TestTicketUID(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{1, "TK1001"},
		{42, "TK1042"},
		{9000, "TK10000"},
	}
	for _, tc := range cases {
		if got := TicketUID(tc.id); got != tc.want {
			t.Fatalf("TicketUID(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestIsPendingTriage(t *testing.T) {
	pending := []TicketStatus{TicketStatusCreated, TicketStatusNeedsTriaging, TicketStatusReopened}
	for _, status := range pending {
		if !status.IsPendingTriage() {
			t.Fatalf("%s should be pending triage", status)
		}
	}
	settled := []TicketStatus{TicketStatusAssigned, TicketStatusInProgress, TicketStatusFixed, TicketStatusResolved}
	for _, status := range settled {
		if status.IsPendingTriage() {
			t.Fatalf("%s should not be pending triage", status)
		}
	}
}
