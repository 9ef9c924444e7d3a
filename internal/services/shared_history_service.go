package services

import (
	"math"
	"sort"
	"time"

	"github.com/Paths06/TalentNetwork/internal/models"
	"github.com/Paths06/TalentNetwork/internal/store"
)

// daysPerYear converts overlap day counts to fractional years. The constant
// absorbs leap years; the result is an approximation, not calendar arithmetic.
const daysPerYear = 365.25

// SharedHistoryService computes, for a target person, every other person who
// worked at the same company during an overlapping period, ranked by overlap
// duration. Pure reads over the profile store.
type SharedHistoryService struct {
	registry *store.WorkspaceRegistry

	// now is swappable so tests can pin "today" for ongoing employments
	now func() time.Time
}

// NewSharedHistoryService creates a new shared history service
func NewSharedHistoryService(registry *store.WorkspaceRegistry) *SharedHistoryService {
	return &SharedHistoryService{
		registry: registry,
		now:      time.Now,
	}
}

// SharedHistory returns the shared-work-history records for a target person.
//
// Company matching is an exact, case-sensitive string comparison. Results are
// deduplicated by (other person, company), keeping the first-encountered pair;
// later overlapping stints at the same company are discarded rather than
// summed. Records are sorted descending by overlap years with a stable sort,
// so ties keep store insertion order.
func (s *SharedHistoryService) SharedHistory(workspaceID, targetPersonID string) ([]*models.SharedTenure, error) {
	profiles := s.registry.Profiles(workspaceID)

	target, err := profiles.GetPerson(targetPersonID)
	if err != nil {
		return nil, err
	}
	targetEmployments := profiles.EmploymentsOf(target.ID)

	type dedupKey struct {
		personID string
		company  string
	}

	seen := make(map[dedupKey]bool)
	results := []*models.SharedTenure{}

	for _, other := range profiles.AllPeople() {
		if other.ID == target.ID {
			continue
		}
		otherEmployments := profiles.EmploymentsOf(other.ID)

		for _, t := range targetEmployments {
			for _, e := range otherEmployments {
				if t.CompanyName != e.CompanyName {
					continue
				}

				years := s.OverlapYears(t.StartDate, t.EndDate, e.StartDate, e.EndDate)
				if years <= 0 {
					continue
				}

				key := dedupKey{personID: other.ID, company: t.CompanyName}
				if seen[key] {
					continue
				}
				seen[key] = true

				results = append(results, &models.SharedTenure{
					PersonID:       other.ID,
					Name:           other.Name,
					Company:        t.CompanyName,
					CurrentCompany: other.CurrentCompany,
					OverlapYears:   years,
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverlapYears > results[j].OverlapYears
	})

	return results, nil
}

// OverlapYears computes the overlap between two date ranges in fractional
// years, rounded to two decimals. A nil end date means the employment is
// ongoing and is treated as ending today, re-evaluated on every call. Ranges
// that merely touch on a single day count as zero overlap.
func (s *SharedHistoryService) OverlapYears(start1 time.Time, end1 *time.Time, start2 time.Time, end2 *time.Time) float64 {
	effEnd1 := s.effectiveEnd(end1)
	effEnd2 := s.effectiveEnd(end2)

	latestStart := start1
	if start2.After(latestStart) {
		latestStart = start2
	}

	earliestEnd := effEnd1
	if effEnd2.Before(earliestEnd) {
		earliestEnd = effEnd2
	}

	overlapDays := earliestEnd.Sub(latestStart).Hours() / 24
	if overlapDays <= 0 {
		return 0
	}

	return math.Round(overlapDays/daysPerYear*100) / 100
}

func (s *SharedHistoryService) effectiveEnd(end *time.Time) time.Time {
	if end != nil {
		return *end
	}
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
