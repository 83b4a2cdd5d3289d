package schedule

import (
	"testing"
	"time"

	"auditdesk/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func entry(t *testing.T, id, member, project, start, end string) model.ScheduleEntry {
	t.Helper()
	return model.ScheduleEntry{
		ID:          id,
		TeamMember:  member,
		Project:     project,
		Start:       day(t, start),
		End:         day(t, end),
		HoursPerDay: 8,
		Phase:       model.PhaseFieldwork,
		Status:      model.StatusScheduled,
	}
}

func TestOverlaps(t *testing.T) {
	a := entry(t, "a", "priya", "Acme", "2026-01-05", "2026-01-09")

	tests := []struct {
		name string
		b    model.ScheduleEntry
		want bool
	}{
		{"inside", entry(t, "b", "priya", "Beta", "2026-01-06", "2026-01-07"), true},
		{"touching end", entry(t, "b", "priya", "Beta", "2026-01-09", "2026-01-12"), true},
		{"touching start", entry(t, "b", "priya", "Beta", "2026-01-02", "2026-01-05"), true},
		{"after", entry(t, "b", "priya", "Beta", "2026-01-10", "2026-01-12"), false},
		{"before", entry(t, "b", "priya", "Beta", "2026-01-01", "2026-01-04"), false},
	}
	for _, tt := range tests {
		if got := Overlaps(a, tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConflicts(t *testing.T) {
	entries := []model.ScheduleEntry{
		entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09"),
		entry(t, "2", "priya", "Beta", "2026-01-08", "2026-01-12"),
		entry(t, "3", "ravi", "Acme", "2026-01-05", "2026-01-09"), // different member
		entry(t, "4", "priya", "Gamma", "2026-02-01", "2026-02-05"),
	}

	got := Conflicts(entries)
	if len(got) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(got))
	}
	if got[0].Member != "priya" || got[0].A.ID != "1" || got[0].B.ID != "2" {
		t.Errorf("conflict = %s/%s-%s", got[0].Member, got[0].A.ID, got[0].B.ID)
	}
}

func TestConflictsWith_IgnoresSelf(t *testing.T) {
	existing := []model.ScheduleEntry{
		entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09"),
	}
	candidate := entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09")
	if got := ConflictsWith(candidate, existing); len(got) != 0 {
		t.Errorf("entry conflicts with itself: %v", got)
	}

	candidate.ID = "2"
	if got := ConflictsWith(candidate, existing); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestMemberLoad(t *testing.T) {
	entries := []model.ScheduleEntry{
		entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09"),
		entry(t, "2", "priya", "Beta", "2026-01-07", "2026-01-10"),
		entry(t, "3", "ravi", "Acme", "2026-01-07", "2026-01-07"),
	}

	if got := MemberLoad(entries, "priya", day(t, "2026-01-06")); got != 8 {
		t.Errorf("load on single booking day = %.1f, want 8", got)
	}
	if got := MemberLoad(entries, "priya", day(t, "2026-01-08")); got != 16 {
		t.Errorf("load on double-booked day = %.1f, want 16", got)
	}
	if got := MemberLoad(entries, "priya", day(t, "2026-01-20")); got != 0 {
		t.Errorf("load on free day = %.1f, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	good := entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09")
	if err := Validate(good); err != nil {
		t.Errorf("Validate(good) = %v", err)
	}

	inverted := good
	inverted.Start, inverted.End = inverted.End, inverted.Start
	if err := Validate(inverted); err == nil {
		t.Error("Validate accepted inverted date range")
	}

	zeroHours := good
	zeroHours.HoursPerDay = 0
	if err := Validate(zeroHours); err == nil {
		t.Error("Validate accepted zero hours per day")
	}

	badPhase := good
	badPhase.Phase = "wrapup"
	if err := Validate(badPhase); err == nil {
		t.Error("Validate accepted unknown phase")
	}
}

func TestScheduledHours(t *testing.T) {
	e := entry(t, "1", "priya", "Acme", "2026-01-05", "2026-01-09")
	if got := ScheduledHours(e); got != 40 {
		t.Errorf("ScheduledHours = %.1f, want 40 (5 days x 8h)", got)
	}

	single := entry(t, "2", "priya", "Acme", "2026-01-05", "2026-01-05")
	if got := ScheduledHours(single); got != 8 {
		t.Errorf("single day = %.1f, want 8", got)
	}
}
