// Package schedule validates team bookings and finds allocation conflicts.
package schedule

import (
	"fmt"
	"time"

	"auditdesk/internal/model"
)

// Conflict is a pair of bookings for the same member with overlapping
// date ranges.
type Conflict struct {
	Member string
	A      model.ScheduleEntry
	B      model.ScheduleEntry
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s: %s (%s to %s) overlaps %s (%s to %s)",
		c.Member,
		c.A.Project, c.A.Start.Format("2006-01-02"), c.A.End.Format("2006-01-02"),
		c.B.Project, c.B.Start.Format("2006-01-02"), c.B.End.Format("2006-01-02"),
	)
}

// Validate rejects entries with inverted date ranges or non-positive
// daily hours.
func Validate(e model.ScheduleEntry) error {
	if e.TeamMember == "" {
		return fmt.Errorf("team member is required")
	}
	if e.Project == "" {
		return fmt.Errorf("project is required")
	}
	if e.Start.After(e.End) {
		return fmt.Errorf("start date %s is after end date %s",
			e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
	}
	if e.HoursPerDay <= 0 || e.HoursPerDay > 24 {
		return fmt.Errorf("hours per day must be in (0, 24], got %.1f", e.HoursPerDay)
	}
	if !e.Phase.Valid() {
		return fmt.Errorf("unknown phase %q", string(e.Phase))
	}
	return nil
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(a, b model.ScheduleEntry) bool {
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

// Conflicts scans all entries and returns every overlapping pair booked
// for the same member. Entries with different IDs only; an entry never
// conflicts with itself.
func Conflicts(entries []model.ScheduleEntry) []Conflict {
	var out []Conflict
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.TeamMember != b.TeamMember {
				continue
			}
			if Overlaps(a, b) {
				out = append(out, Conflict{Member: a.TeamMember, A: a, B: b})
			}
		}
	}
	return out
}

// ConflictsWith returns the existing entries that overlap a candidate
// booking for the same member.
func ConflictsWith(candidate model.ScheduleEntry, entries []model.ScheduleEntry) []model.ScheduleEntry {
	var out []model.ScheduleEntry
	for _, e := range entries {
		if e.ID == candidate.ID || e.TeamMember != candidate.TeamMember {
			continue
		}
		if Overlaps(candidate, e) {
			out = append(out, e)
		}
	}
	return out
}

// MemberLoad sums the booked hours for a member on a given day.
func MemberLoad(entries []model.ScheduleEntry, member string, day time.Time) float64 {
	var total float64
	for _, e := range entries {
		if e.TeamMember != member {
			continue
		}
		if day.Before(e.Start) || day.After(e.End) {
			continue
		}
		total += e.HoursPerDay
	}
	return total
}

// ScheduledHours returns the total hours an entry books: days in the
// inclusive range times hours per day.
func ScheduledHours(e model.ScheduleEntry) float64 {
	days := e.End.Sub(e.Start).Hours()/24 + 1
	if days < 1 {
		return 0
	}
	return days * e.HoursPerDay
}
