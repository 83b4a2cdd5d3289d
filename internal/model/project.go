package model

import "time"

// Project is a single audit engagement tracked by the tool.
type Project struct {
	Name                   string        `json:"name"`
	Client                 string        `json:"client_name"`
	Sector                 string        `json:"industry_sector"`
	Size                   string        `json:"project_size,omitempty"`
	StartDate              time.Time     `json:"start_date"`
	EndDate                time.Time     `json:"end_date"`
	TotalBudget            float64       `json:"total_budget"`
	CreationDate           time.Time     `json:"creation_date"`
	EngagementLetterSigned bool          `json:"engagement_letter_signed"`
	Approval               string        `json:"internal_approval,omitempty"`
	Notes                  string        `json:"notes,omitempty"`
	Budget                 *BudgetResult `json:"budget,omitempty"`
}

// TimeEntry records hours worked by a resource on a project phase.
type TimeEntry struct {
	ID          string    `json:"id"`
	Project     string    `json:"project"`
	Resource    string    `json:"resource"`
	Phase       Phase     `json:"phase"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	EntryTime   time.Time `json:"entry_time"`
}

// TeamMember is a staff member available for scheduling.
type TeamMember struct {
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	Skills            []string  `json:"skills,omitempty"`
	AvailabilityHours float64   `json:"availability_hours"`
	HourlyRate        float64   `json:"hourly_rate"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Notes             string    `json:"notes,omitempty"`
}

// Schedule entry statuses.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

// ScheduleEntry books a team member onto a project for a date range.
// Start and End are inclusive.
type ScheduleEntry struct {
	ID          string    `json:"id"`
	TeamMember  string    `json:"team_member"`
	Project     string    `json:"project"`
	Start       time.Time `json:"start_date"`
	End         time.Time `json:"end_date"`
	HoursPerDay float64   `json:"hours_per_day"`
	Phase       Phase     `json:"phase"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
