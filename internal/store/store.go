// Package store provides SQLite-backed persistence for projects, time
// entries, team members and schedule bookings.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"auditdesk/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// Store wraps the SQLite database holding all engagement data.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveProjects replaces the projects table with the given set. Each
// project is stored as a JSON document keyed by name.
func (s *Store) SaveProjects(projects []model.Project) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM projects"); err != nil {
		return err
	}
	for _, p := range projects {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding project %q: %w", p.Name, err)
		}
		_, err = tx.Exec(`INSERT INTO projects (name, data, creation_date) VALUES (?, ?, ?)`,
			p.Name, string(data), p.CreationDate.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadProjects reads all projects ordered by name.
func (s *Store) LoadProjects() ([]model.Project, error) {
	rows, err := s.db.Query("SELECT data FROM projects ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p model.Project
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decoding project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// SaveTimeEntries replaces the time_entries table with the given set.
func (s *Store) SaveTimeEntries(entries []model.TimeEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM time_entries"); err != nil {
		return err
	}
	for _, e := range entries {
		_, err = tx.Exec(`INSERT INTO time_entries
			(id, project, resource, phase, entry_date, hours, description, entry_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Project, e.Resource, string(e.Phase),
			e.Date.Format(dateLayout), e.Hours, e.Description,
			e.EntryTime.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadTimeEntries reads all time entries ordered by date.
func (s *Store) LoadTimeEntries() ([]model.TimeEntry, error) {
	rows, err := s.db.Query(`SELECT id, project, resource, phase, entry_date, hours, description, entry_time
		FROM time_entries ORDER BY entry_date, entry_time`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		var phase, dateStr, entryStr string
		var desc sql.NullString
		if err := rows.Scan(&e.ID, &e.Project, &e.Resource, &phase, &dateStr, &e.Hours, &desc, &entryStr); err != nil {
			return nil, err
		}
		e.Phase = model.Phase(phase)
		if desc.Valid {
			e.Description = desc.String
		}
		e.Date, _ = time.Parse(dateLayout, dateStr)
		e.EntryTime, _ = time.Parse(time.RFC3339, entryStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveTeamMembers replaces the team_members table with the given set.
// Core columns are duplicated for querying; the full record lives in the
// JSON data column.
func (s *Store) SaveTeamMembers(members []model.TeamMember) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM team_members"); err != nil {
		return err
	}
	for _, m := range members {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding member %q: %w", m.Name, err)
		}
		_, err = tx.Exec(`INSERT INTO team_members
			(name, role, availability_hours, hourly_rate, data)
			VALUES (?, ?, ?, ?, ?)`,
			m.Name, m.Role, m.AvailabilityHours, m.HourlyRate, string(data))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadTeamMembers reads all team members ordered by name.
func (s *Store) LoadTeamMembers() ([]model.TeamMember, error) {
	rows, err := s.db.Query("SELECT data FROM team_members ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var members []model.TeamMember
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var m model.TeamMember
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			return nil, fmt.Errorf("decoding member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// SaveScheduleEntries replaces the schedule_entries table with the given set.
func (s *Store) SaveScheduleEntries(entries []model.ScheduleEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM schedule_entries"); err != nil {
		return err
	}
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding schedule entry %q: %w", e.ID, err)
		}
		_, err = tx.Exec(`INSERT INTO schedule_entries
			(id, team_member, project, start_date, end_date, hours_per_day, phase, status, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.TeamMember, e.Project,
			e.Start.Format(dateLayout), e.End.Format(dateLayout),
			e.HoursPerDay, string(e.Phase), e.Status, string(data))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadScheduleEntries reads all schedule entries ordered by start date.
func (s *Store) LoadScheduleEntries() ([]model.ScheduleEntry, error) {
	rows, err := s.db.Query("SELECT data FROM schedule_entries ORDER BY start_date, team_member")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.ScheduleEntry
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var e model.ScheduleEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("decoding schedule entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Counts returns the number of rows in each table, for the overview.
func (s *Store) Counts() (projects, timeEntries, members, scheduleEntries int, err error) {
	count := func(table string) (int, error) {
		var n int
		err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
		return n, err
	}
	if projects, err = count("projects"); err != nil {
		return
	}
	if timeEntries, err = count("time_entries"); err != nil {
		return
	}
	if members, err = count("team_members"); err != nil {
		return
	}
	scheduleEntries, err = count("schedule_entries")
	return
}
