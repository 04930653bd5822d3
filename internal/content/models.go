package content

import (
	"strings"
	"time"
)

// Collection names are the wire contract with the document store; renderer and
// admin panel read and write the same collections.
const (
	CollectionSchedule     = "schedule"
	CollectionNews         = "news"
	CollectionFlyers       = "flyers"
	CollectionCompetitions = "competitions"
	CollectionSponsors     = "sponsors"

	// ScheduleDocID is the fixed key of the schedule singleton document.
	ScheduleDocID = "main"
)

// DateLayout is the calendar-date format used by competition documents.
const DateLayout = "2006-01-02"

// ClockLayout is the 24-hour time-of-day format used by schedule slots.
const ClockLayout = "15:04"

// ScheduleSlot is one weekly practice entry. Slots live inside the schedule
// singleton document, not in their own collection, so they carry their own
// generated IDs.
type ScheduleSlot struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
	Location  string `json:"location" bson:"location"`
	Order     int    `json:"order" bson:"order"`
	Featured  bool   `json:"featured" bson:"featured"`
}

// Schedule is the singleton document keyed ScheduleDocID.
type Schedule struct {
	ID    string         `json:"id" bson:"_id,omitempty"`
	Slots []ScheduleSlot `json:"slots" bson:"slots"`
}

type NewsPost struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	ImageURL  string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Published bool      `json:"published" bson:"published"`
	Date      time.Time `json:"date" bson:"date"`
}

type Flyer struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Published   bool      `json:"published" bson:"published"`
	Date        time.Time `json:"date" bson:"date"`
}

// CompetitionEvent dates are calendar-date strings (DateLayout); EndDate is
// optional and, when present, must not precede Date.
type CompetitionEvent struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Date      string `json:"date" bson:"date"`
	EndDate   string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
	Divisions string `json:"divisions,omitempty" bson:"divisions,omitempty"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`
	Link      string `json:"link,omitempty" bson:"link,omitempty"`
	Published bool   `json:"published" bson:"published"`
	Travel    bool   `json:"travel,omitempty" bson:"travel,omitempty"`
}

type Sponsor struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Name    string `json:"name" bson:"name"`
	LogoURL string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
	Order   int    `json:"order" bson:"order"`
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func validClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Validate checks the slot against the schedule schema. Title is optional.
func (s *ScheduleSlot) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	if !weekdays[s.Day] {
		return &ValidationError{Field: "day", Reason: "must be a weekday name"}
	}
	if !validClock(s.StartTime) {
		return &ValidationError{Field: "startTime", Reason: "must be HH:MM"}
	}
	if !validClock(s.EndTime) {
		return &ValidationError{Field: "endTime", Reason: "must be HH:MM"}
	}
	if strings.TrimSpace(s.Location) == "" {
		return &ValidationError{Field: "location", Reason: "required"}
	}
	return nil
}

func (s *Schedule) Validate() error {
	for i := range s.Slots {
		if err := s.Slots[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *NewsPost) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(p.Content) == "" {
		return &ValidationError{Field: "content", Reason: "required"}
	}
	return nil
}

func (f *Flyer) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		return &ValidationError{Field: "imageUrl", Reason: "required"}
	}
	return nil
}

func (e *CompetitionEvent) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if !validDate(e.Date) {
		return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if e.EndDate != "" {
		if !validDate(e.EndDate) {
			return &ValidationError{Field: "endDate", Reason: "must be YYYY-MM-DD"}
		}
		if e.EndDate < e.Date {
			return &ValidationError{Field: "endDate", Reason: "must not precede date"}
		}
	}
	return nil
}

func (s *Sponsor) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	return nil
}
