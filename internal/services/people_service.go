package services

import (
	"time"

	"github.com/Paths06/TalentNetwork/internal/models"
	"github.com/Paths06/TalentNetwork/internal/store"
)

// PeopleService exposes the profile store operations to the handler layer,
// scoped to the calling session's workspace.
type PeopleService struct {
	registry *store.WorkspaceRegistry
}

// NewPeopleService creates a new people service
func NewPeopleService(registry *store.WorkspaceRegistry) *PeopleService {
	return &PeopleService{
		registry: registry,
	}
}

// CreatePerson creates a person together with their initial employment
func (s *PeopleService) CreatePerson(workspaceID string, input store.CreatePersonInput) (*models.Person, error) {
	return s.registry.Profiles(workspaceID).CreatePerson(input)
}

// AddEmployment appends an employment record to an existing person
func (s *PeopleService) AddEmployment(workspaceID, personID, companyName, title string, startDate time.Time, endDate *time.Time) (*models.Employment, error) {
	return s.registry.Profiles(workspaceID).AddEmployment(personID, companyName, title, startDate, endDate)
}

// GetPerson retrieves a person by ID
func (s *PeopleService) GetPerson(workspaceID, personID string) (*models.Person, error) {
	return s.registry.Profiles(workspaceID).GetPerson(personID)
}

// EmploymentsOf retrieves a person's employments in insertion order
func (s *PeopleService) EmploymentsOf(workspaceID, personID string) []*models.Employment {
	return s.registry.Profiles(workspaceID).EmploymentsOf(personID)
}

// ListPeople retrieves all people in insertion order
func (s *PeopleService) ListPeople(workspaceID string) []*models.Person {
	return s.registry.Profiles(workspaceID).AllPeople()
}
