package store

import (
	"strings"
	"time"

	"github.com/Paths06/TalentNetwork/internal/models"
)

// ProfileStore holds the people and employment records of one workspace.
// All state is in memory and lives only as long as the session that owns it.
// Operations are not interleaved within a workspace, so no locking here.
type ProfileStore struct {
	people      []*models.Person
	peopleByID  map[string]*models.Person
	employments map[string][]*models.Employment

	// now is swappable so tests can pin "today"
	now func() time.Time
}

// EmploymentInput carries the fields of a single employment record
type EmploymentInput struct {
	CompanyName string
	Title       string
	StartDate   time.Time
	EndDate     *time.Time
}

// CreatePersonInput carries the fields for person creation. Every person is
// created together with exactly one initial employment.
type CreatePersonInput struct {
	Name              string
	Title             string
	Company           string
	Email             string
	LinkedInURL       string
	ReferenceListURL  string
	InitialEmployment EmploymentInput
}

// NewProfileStore creates an empty store
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		peopleByID:  make(map[string]*models.Person),
		employments: make(map[string][]*models.Employment),
		now:         time.Now,
	}
}

// CreatePerson creates a Person and their initial Employment atomically.
// Validation failures leave the store untouched.
func (s *ProfileStore) CreatePerson(input CreatePersonInput) (*models.Person, error) {
	person, err := models.NewPerson(input.Name, input.Title, input.Company)
	if err != nil {
		return nil, err
	}
	person.Email = strings.TrimSpace(input.Email)
	person.LinkedInURL = strings.TrimSpace(input.LinkedInURL)
	person.ReferenceListURL = strings.TrimSpace(input.ReferenceListURL)

	employment, err := models.NewEmployment(
		person.ID,
		input.InitialEmployment.CompanyName,
		input.InitialEmployment.Title,
		input.InitialEmployment.StartDate,
		input.InitialEmployment.EndDate,
	)
	if err != nil {
		return nil, err
	}

	s.people = append(s.people, person)
	s.peopleByID[person.ID] = person
	s.employments[person.ID] = append(s.employments[person.ID], employment)

	return person, nil
}

// AddEmployment appends an Employment for an existing person. If the new
// employment is current as of today, the person's current role is overwritten
// with its title and company, last write wins.
func (s *ProfileStore) AddEmployment(personID, companyName, title string, startDate time.Time, endDate *time.Time) (*models.Employment, error) {
	person, ok := s.peopleByID[personID]
	if !ok {
		return nil, models.ErrPersonNotFound
	}

	employment, err := models.NewEmployment(personID, companyName, title, startDate, endDate)
	if err != nil {
		return nil, err
	}

	s.employments[personID] = append(s.employments[personID], employment)

	if employment.IsCurrent(s.today()) {
		person.SetCurrentRole(title, companyName)
	}

	return employment, nil
}

// GetPerson returns a person by ID or ErrPersonNotFound
func (s *ProfileStore) GetPerson(id string) (*models.Person, error) {
	person, ok := s.peopleByID[id]
	if !ok {
		return nil, models.ErrPersonNotFound
	}
	return person, nil
}

// EmploymentsOf returns a person's employments in insertion order.
// An unknown or employment-less person yields an empty slice.
func (s *ProfileStore) EmploymentsOf(personID string) []*models.Employment {
	return s.employments[personID]
}

// AllPeople returns every person in insertion order
func (s *ProfileStore) AllPeople() []*models.Person {
	return s.people
}

// Size returns the number of stored people
func (s *ProfileStore) Size() int {
	return len(s.people)
}

// today truncates the clock to a calendar day
func (s *ProfileStore) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
