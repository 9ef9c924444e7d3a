package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Paths06/TalentNetwork/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateptr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func validInput() CreatePersonInput {
	return CreatePersonInput{
		Name:    "Jane Doe",
		Title:   "Portfolio Manager",
		Company: "Acme Capital",
		Email:   "jane@example.com",
		InitialEmployment: EmploymentInput{
			CompanyName: "Acme Capital",
			Title:       "Portfolio Manager",
			StartDate:   date(2020, time.March, 1),
		},
	}
}

func TestCreatePerson(t *testing.T) {
	t.Run("Creates person with initial employment", func(t *testing.T) {
		s := NewProfileStore()

		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)
		assert.NotEmpty(t, person.ID)
		assert.Equal(t, "Jane Doe", person.Name)
		assert.Equal(t, "Portfolio Manager", person.CurrentTitle)
		assert.Equal(t, "Acme Capital", person.CurrentCompany)
		assert.Equal(t, "jane@example.com", person.Email)

		employments := s.EmploymentsOf(person.ID)
		assert.Len(t, employments, 1)
		assert.Equal(t, person.ID, employments[0].PersonID)
		assert.Equal(t, "Acme Capital", employments[0].CompanyName)
		assert.Nil(t, employments[0].EndDate)
	})

	t.Run("Rejects invalid input and leaves store unchanged", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*CreatePersonInput)
		}{
			{"Empty name", func(in *CreatePersonInput) { in.Name = "" }},
			{"Empty title", func(in *CreatePersonInput) { in.Title = "  " }},
			{"Empty company", func(in *CreatePersonInput) { in.Company = "" }},
			{"Empty employment company", func(in *CreatePersonInput) { in.InitialEmployment.CompanyName = "" }},
			{"Empty employment title", func(in *CreatePersonInput) { in.InitialEmployment.Title = "" }},
			{"Missing start date", func(in *CreatePersonInput) { in.InitialEmployment.StartDate = time.Time{} }},
			{"End date before start date", func(in *CreatePersonInput) {
				in.InitialEmployment.EndDate = dateptr(2019, time.January, 1)
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s := NewProfileStore()
				input := validInput()
				tc.mutate(&input)

				person, err := s.CreatePerson(input)
				assert.Error(t, err)
				assert.True(t, models.IsValidation(err), "expected a validation error")
				assert.Nil(t, person)
				assert.Equal(t, 0, s.Size(), "failed creation must not mutate the store")
				assert.Empty(t, s.AllPeople())
			})
		}
	})
}

func TestAddEmployment(t *testing.T) {
	t.Run("Unknown person", func(t *testing.T) {
		s := NewProfileStore()

		_, err := s.AddEmployment("no-such-id", "Acme Capital", "Analyst", date(2020, time.January, 1), nil)
		assert.ErrorIs(t, err, models.ErrPersonNotFound)
	})

	t.Run("End date before start date is rejected", func(t *testing.T) {
		s := NewProfileStore()
		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		_, err = s.AddEmployment(person.ID, "Beta Fund", "Analyst", date(2020, time.June, 1), dateptr(2020, time.January, 1))
		assert.Error(t, err)
		assert.True(t, models.IsValidation(err))
		assert.Len(t, s.EmploymentsOf(person.ID), 1, "rejected employment must not be appended")
	})

	t.Run("Current employment overwrites current role", func(t *testing.T) {
		s := NewProfileStore()
		s.now = func() time.Time { return date(2024, time.June, 15) }

		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		// No end date means ongoing
		_, err = s.AddEmployment(person.ID, "Beta Fund", "Head of Equities", date(2023, time.January, 1), nil)
		assert.NoError(t, err)
		assert.Equal(t, "Head of Equities", person.CurrentTitle)
		assert.Equal(t, "Beta Fund", person.CurrentCompany)

		// End date on or after today still counts as current
		_, err = s.AddEmployment(person.ID, "Gamma Partners", "Advisor", date(2024, time.January, 1), dateptr(2024, time.June, 15))
		assert.NoError(t, err)
		assert.Equal(t, "Advisor", person.CurrentTitle)
		assert.Equal(t, "Gamma Partners", person.CurrentCompany)
	})

	t.Run("Past employment does not touch current role", func(t *testing.T) {
		s := NewProfileStore()
		s.now = func() time.Time { return date(2024, time.June, 15) }

		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		_, err = s.AddEmployment(person.ID, "Old Firm", "Junior Analyst", date(2010, time.January, 1), dateptr(2012, time.January, 1))
		assert.NoError(t, err)
		assert.Equal(t, "Portfolio Manager", person.CurrentTitle)
		assert.Equal(t, "Acme Capital", person.CurrentCompany)
	})

	t.Run("Most recently added current employment wins", func(t *testing.T) {
		s := NewProfileStore()
		s.now = func() time.Time { return date(2024, time.June, 15) }

		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		_, err = s.AddEmployment(person.ID, "First Fund", "PM", date(2023, time.January, 1), nil)
		assert.NoError(t, err)
		_, err = s.AddEmployment(person.ID, "Second Fund", "CIO", date(2022, time.January, 1), nil)
		assert.NoError(t, err)

		assert.Equal(t, "CIO", person.CurrentTitle)
		assert.Equal(t, "Second Fund", person.CurrentCompany)
	})
}

func TestLookups(t *testing.T) {
	t.Run("GetPerson", func(t *testing.T) {
		s := NewProfileStore()
		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		got, err := s.GetPerson(person.ID)
		assert.NoError(t, err)
		assert.Equal(t, person.ID, got.ID)

		_, err = s.GetPerson("missing")
		assert.ErrorIs(t, err, models.ErrPersonNotFound)
	})

	t.Run("Insertion order is preserved", func(t *testing.T) {
		s := NewProfileStore()

		names := []string{"Alice", "Bob", "Carol"}
		for _, name := range names {
			input := validInput()
			input.Name = name
			_, err := s.CreatePerson(input)
			assert.NoError(t, err)
		}

		people := s.AllPeople()
		assert.Len(t, people, 3)
		for i, name := range names {
			assert.Equal(t, name, people[i].Name)
		}
	})

	t.Run("Employments keep insertion order", func(t *testing.T) {
		s := NewProfileStore()
		person, err := s.CreatePerson(validInput())
		assert.NoError(t, err)

		_, err = s.AddEmployment(person.ID, "Second Co", "Analyst", date(2010, time.January, 1), dateptr(2011, time.January, 1))
		assert.NoError(t, err)
		_, err = s.AddEmployment(person.ID, "Third Co", "Analyst", date(2012, time.January, 1), dateptr(2013, time.January, 1))
		assert.NoError(t, err)

		employments := s.EmploymentsOf(person.ID)
		assert.Len(t, employments, 3)
		assert.Equal(t, "Acme Capital", employments[0].CompanyName)
		assert.Equal(t, "Second Co", employments[1].CompanyName)
		assert.Equal(t, "Third Co", employments[2].CompanyName)
	})

	t.Run("EmploymentsOf unknown person is empty", func(t *testing.T) {
		s := NewProfileStore()
		assert.Empty(t, s.EmploymentsOf("missing"))
	})
}
