package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"auditdesk/internal/model"
)

const backupPrefix = "backup_"

// BackupInfo describes one backup directory.
type BackupInfo struct {
	Name      string
	Path      string
	CreatedAt time.Time
	SizeBytes int64
}

// Backup writes a timestamped backup under backupsDir: a copy of the
// database plus plain-format exports (projects.json, time_entries.csv)
// that stay readable without the tool.
func (s *Store) Backup(backupsDir string) (BackupInfo, error) {
	name := backupPrefix + time.Now().Format("20060102_150405")
	dir := filepath.Join(backupsDir, name)
	for n := 2; ; n++ {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			break
		}
		// Same-second collision, e.g. the pre-restore snapshot.
		name = fmt.Sprintf("%s_%d", backupPrefix+time.Now().Format("20060102_150405"), n)
		dir = filepath.Join(backupsDir, name)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return BackupInfo{}, fmt.Errorf("creating backup dir: %w", err)
	}

	// Fold the WAL into the main file so a plain copy is complete.
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return BackupInfo{}, fmt.Errorf("checkpointing db: %w", err)
	}
	if err := copyFile(s.path, filepath.Join(dir, filepath.Base(s.path))); err != nil {
		return BackupInfo{}, fmt.Errorf("copying db: %w", err)
	}

	projects, err := s.LoadProjects()
	if err != nil {
		return BackupInfo{}, err
	}
	if err := WriteProjectsJSON(filepath.Join(dir, "projects.json"), projects); err != nil {
		return BackupInfo{}, err
	}

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return BackupInfo{}, err
	}
	if err := WriteTimeEntriesCSV(filepath.Join(dir, "time_entries.csv"), entries); err != nil {
		return BackupInfo{}, err
	}

	size, err := dirSize(dir)
	if err != nil {
		return BackupInfo{}, err
	}
	return BackupInfo{Name: name, Path: dir, CreatedAt: time.Now(), SizeBytes: size}, nil
}

// ListBackups returns backups under backupsDir, newest first.
func ListBackups(backupsDir string) ([]BackupInfo, error) {
	dirEntries, err := os.ReadDir(backupsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var backups []BackupInfo
	for _, de := range dirEntries {
		if !de.IsDir() || !strings.HasPrefix(de.Name(), backupPrefix) {
			continue
		}
		stamp := de.Name()[len(backupPrefix):]
		if len(stamp) > 15 {
			stamp = stamp[:15]
		}
		ts, err := time.Parse("20060102_150405", stamp)
		if err != nil {
			continue
		}
		path := filepath.Join(backupsDir, de.Name())
		size, err := dirSize(path)
		if err != nil {
			return nil, err
		}
		backups = append(backups, BackupInfo{Name: de.Name(), Path: path, CreatedAt: ts, SizeBytes: size})
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].CreatedAt.After(backups[j].CreatedAt) })
	return backups, nil
}

// Restore replaces the live database with the copy inside the named
// backup. A safety snapshot of the current state is taken first. The
// store must be reopened after a restore.
func (s *Store) Restore(backupsDir, name string) (BackupInfo, error) {
	src := filepath.Join(backupsDir, name, filepath.Base(s.path))
	if _, err := os.Stat(src); err != nil {
		return BackupInfo{}, fmt.Errorf("backup %q: %w", name, err)
	}

	snapshot, err := s.Backup(backupsDir)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("pre-restore snapshot: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return BackupInfo{}, err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		_ = os.Remove(s.path + suffix)
	}
	if err := copyFile(src, s.path); err != nil {
		return BackupInfo{}, fmt.Errorf("restoring db: %w", err)
	}
	return snapshot, nil
}

// WriteProjectsJSON writes projects as an indented JSON array.
func WriteProjectsJSON(path string, projects []model.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteTimeEntriesCSV writes time entries in spreadsheet-friendly form.
func WriteTimeEntriesCSV(path string, entries []model.TimeEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{"id", "project", "resource", "phase", "date", "hours", "description", "entry_time"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.ID, e.Project, e.Resource, string(e.Phase),
			e.Date.Format(dateLayout),
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			e.Description,
			e.EntryTime.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
