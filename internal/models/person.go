package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a tracked professional with identity and current-role summary
type Person struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CurrentTitle     string    `json:"current_title"`
	CurrentCompany   string    `json:"current_company"`
	Email            string    `json:"email,omitempty"`
	LinkedInURL      string    `json:"linkedin_url,omitempty"`
	ReferenceListURL string    `json:"reference_list_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewPerson creates a new Person with a generated UUID.
// Name, current title and current company are required.
func NewPerson(name, currentTitle, currentCompany string) (*Person, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(currentTitle) == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(currentCompany) == "" {
		return nil, NewValidationError("company", "must not be empty")
	}

	now := time.Now()
	return &Person{
		ID:             uuid.New().String(),
		Name:           name,
		CurrentTitle:   currentTitle,
		CurrentCompany: currentCompany,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// SetCurrentRole overwrites the current-role summary, last write wins
func (p *Person) SetCurrentRole(title, company string) {
	p.CurrentTitle = title
	p.CurrentCompany = company
	p.UpdatedAt = time.Now()
}
