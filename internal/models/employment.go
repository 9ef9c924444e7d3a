package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for all calendar dates
const DateLayout = "2006-01-02"

// Employment represents one historical or ongoing tenure of a Person at a company.
// Company names are free text: two different spellings are two different companies.
type Employment struct {
	ID          string     `json:"id"`
	PersonID    string     `json:"person_id"`
	CompanyName string     `json:"company_name"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil means ongoing
	CreatedAt   time.Time  `json:"created_at"`
}

// NewEmployment creates a validated Employment record.
// An end date before the start date is rejected, not corrected.
func NewEmployment(personID, companyName, title string, startDate time.Time, endDate *time.Time) (*Employment, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, NewValidationError("company_name", "must not be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if startDate.IsZero() {
		return nil, NewValidationError("start_date", "must not be empty")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, NewValidationError("end_date", "must not be before start_date")
	}

	return &Employment{
		ID:          uuid.New().String(),
		PersonID:    personID,
		CompanyName: companyName,
		Title:       title,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now(),
	}, nil
}

// IsCurrent reports whether this employment is ongoing as of the given day:
// no end date, or an end date on or after it.
func (e *Employment) IsCurrent(today time.Time) bool {
	return e.EndDate == nil || !e.EndDate.Before(today)
}

// StartLabel renders the start date as YYYY-MM-DD
func (e *Employment) StartLabel() string {
	return e.StartDate.Format(DateLayout)
}

// EndLabel renders the end date as YYYY-MM-DD, or "Present" when ongoing
func (e *Employment) EndLabel() string {
	if e.EndDate == nil {
		return "Present"
	}
	return e.EndDate.Format(DateLayout)
}
