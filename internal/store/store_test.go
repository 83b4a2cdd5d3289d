package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"auditdesk/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "auditdesk.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleProject(name string) model.Project {
	return model.Project{
		Name:         name,
		Client:       "Acme Industries Ltd",
		Sector:       "MFG",
		StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		TotalBudget:  500000,
		CreationDate: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Budget: &model.BudgetResult{
			Category: model.CategorySmall,
			PhaseHours: map[model.Phase]int{
				model.PhasePlanning:      40,
				model.PhaseFieldwork:     120,
				model.PhaseManagerReview: 24,
				model.PhasePartnerReview: 16,
			},
			TotalHours: 200,
			TotalDays:  25,
		},
	}
}

func TestProjectsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := []model.Project{sampleProject("Acme FY26"), sampleProject("Globex FY26")}
	if err := s.SaveProjects(want); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}

	got, err := s.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].Name != "Acme FY26" || got[1].Name != "Globex FY26" {
		t.Errorf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].Budget == nil || got[0].Budget.TotalHours != 200 {
		t.Errorf("budget not preserved: %+v", got[0].Budget)
	}
	if got[0].Budget.PhaseHours[model.PhaseFieldwork] != 120 {
		t.Errorf("phase hours not preserved: %+v", got[0].Budget.PhaseHours)
	}
}

func TestSaveProjectsReplacesTable(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveProjects([]model.Project{sampleProject("A"), sampleProject("B")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}
	if err := s.SaveProjects([]model.Project{sampleProject("B")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}

	got, err := s.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("expected only B to remain, got %+v", got)
	}
}

func TestTimeEntriesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := []model.TimeEntry{
		{
			ID: "te-2", Project: "Acme FY26", Resource: "Priya",
			Phase: model.PhaseFieldwork,
			Date:  time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Hours: 7.5,
			Description: "inventory count",
			EntryTime:   time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC),
		},
		{
			ID: "te-1", Project: "Acme FY26", Resource: "Ravi",
			Phase: model.PhasePlanning,
			Date:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Hours: 4,
			EntryTime: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
		},
	}
	if err := s.SaveTimeEntries(want); err != nil {
		t.Fatalf("SaveTimeEntries: %v", err)
	}

	got, err := s.LoadTimeEntries()
	if err != nil {
		t.Fatalf("LoadTimeEntries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Ordered by date.
	if got[0].ID != "te-1" || got[1].ID != "te-2" {
		t.Errorf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
	if got[1].Hours != 7.5 || got[1].Description != "inventory count" {
		t.Errorf("entry not preserved: %+v", got[1])
	}
	if !got[1].Date.Equal(want[0].Date) {
		t.Errorf("date = %v, want %v", got[1].Date, want[0].Date)
	}
}

func TestTeamMembersRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := []model.TeamMember{
		{
			Name: "Priya", Role: "manager", Skills: []string{"caro", "ind-as"},
			AvailabilityHours: 160, HourlyRate: 2000,
			StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{Name: "Ravi", Role: "seniorArticle", AvailabilityHours: 180, HourlyRate: 600},
	}
	if err := s.SaveTeamMembers(want); err != nil {
		t.Fatalf("SaveTeamMembers: %v", err)
	}

	got, err := s.LoadTeamMembers()
	if err != nil {
		t.Fatalf("LoadTeamMembers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}
	if got[0].Name != "Priya" || len(got[0].Skills) != 2 {
		t.Errorf("member not preserved: %+v", got[0])
	}
	if got[1].HourlyRate != 600 {
		t.Errorf("rate = %v, want 600", got[1].HourlyRate)
	}
}

func TestScheduleEntriesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := []model.ScheduleEntry{
		{
			ID: "se-1", TeamMember: "Priya", Project: "Acme FY26",
			Start:       time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
			End:         time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
			HoursPerDay: 8, Phase: model.PhaseFieldwork, Status: model.StatusScheduled,
		},
	}
	if err := s.SaveScheduleEntries(want); err != nil {
		t.Fatalf("SaveScheduleEntries: %v", err)
	}

	got, err := s.LoadScheduleEntries()
	if err != nil {
		t.Fatalf("LoadScheduleEntries: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].ID != "se-1" || got[0].HoursPerDay != 8 || got[0].Status != model.StatusScheduled {
		t.Errorf("entry not preserved: %+v", got[0])
	}
}

func TestCounts(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveProjects([]model.Project{sampleProject("A")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}
	if err := s.SaveTeamMembers([]model.TeamMember{{Name: "Priya", Role: "manager"}}); err != nil {
		t.Fatalf("SaveTeamMembers: %v", err)
	}

	projects, timeEntries, members, schedules, err := s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if projects != 1 || timeEntries != 0 || members != 1 || schedules != 0 {
		t.Errorf("counts = %d/%d/%d/%d, want 1/0/1/0", projects, timeEntries, members, schedules)
	}
}

func TestBackupAndList(t *testing.T) {
	s := openTestStore(t)
	backupsDir := t.TempDir()

	if err := s.SaveProjects([]model.Project{sampleProject("A")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}

	info, err := s.Backup(backupsDir)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if info.SizeBytes <= 0 {
		t.Errorf("backup size = %d, want > 0", info.SizeBytes)
	}

	for _, f := range []string{"auditdesk.db", "projects.json", "time_entries.csv"} {
		if _, err := os.Stat(filepath.Join(info.Path, f)); err != nil {
			t.Errorf("missing backup file %s: %v", f, err)
		}
	}

	backups, err := ListBackups(backupsDir)
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 1 || backups[0].Name != info.Name {
		t.Fatalf("ListBackups = %+v", backups)
	}
}

func TestListBackups_MissingDir(t *testing.T) {
	backups, err := ListBackups(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if backups != nil {
		t.Fatalf("expected nil, got %+v", backups)
	}
}

func TestRestore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "auditdesk.db")
	backupsDir := t.TempDir()

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveProjects([]model.Project{sampleProject("Original")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}
	info, err := s.Backup(backupsDir)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	// Diverge from the backup, then restore.
	if err := s.SaveProjects([]model.Project{sampleProject("Changed")}); err != nil {
		t.Fatalf("SaveProjects: %v", err)
	}
	if _, err := s.Restore(backupsDir, info.Name); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()

	got, err := s.LoadProjects()
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Original" {
		t.Fatalf("expected restored state, got %+v", got)
	}

	// The pre-restore snapshot exists alongside the original backup.
	backups, err := ListBackups(backupsDir)
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
}
