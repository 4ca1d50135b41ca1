package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sachify/internal/validators"
)

// Note is a single meeting note. The validate tags are the only
// definition of the field constraints; every layer that needs to check
// a note goes through Validate instead of re-stating the rules.
//
// Subject and AISummary may be empty strings, everything else is
// mandatory.
type Note struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	CompanyName  string    `gorm:"size:100;not null;index:idx_notes_company_date" json:"companyName" validate:"required,max=100"`
	Subject      string    `gorm:"size:200;not null" json:"subject" validate:"max=200"`
	Date         string    `gorm:"size:10;not null;index:idx_notes_company_date" json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string    `gorm:"size:5;not null" json:"startTime" validate:"required,hhmm"`
	EndTime      string    `gorm:"size:5;not null" json:"endTime" validate:"required,hhmm"`
	Participants string    `gorm:"type:text;not null" json:"participants" validate:"required,max=500"`
	AISummary    string    `gorm:"type:text;not null" json:"aiSummary" validate:"max=2000"`
	Notes        string    `gorm:"type:text;not null" json:"notes" validate:"required,max=5000"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Note) TableName() string {
	return "notes"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validators.Register(v)
	return v
}

// Validate checks the note against its field constraints. The returned
// error, when not nil, is a validator.ValidationErrors.
func (n *Note) Validate() error {
	return validate.Struct(n)
}

// Duration is the note's time window in minutes. It is derived on
// read and never persisted. When EndTime is before StartTime the
// result is negative; no day wrap is applied.
func (n *Note) Duration() int {
	return minuteOfDay(n.EndTime) - minuteOfDay(n.StartTime)
}

func minuteOfDay(hhmm string) int {
	h, m, _ := strings.Cut(hhmm, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// NoteFilter narrows listing and counting. Text fields match as
// case-insensitive substrings, Date matches exactly. Zero values mean
// "no constraint"; supplied constraints are combined with AND.
type NoteFilter struct {
	CompanyName  string
	Subject      string
	Date         string
	Participants string
}
