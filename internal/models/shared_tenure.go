package models

// SharedTenure is one shared-work-history result: another person who worked
// at the same company as the target during an overlapping period.
type SharedTenure struct {
	PersonID       string  `json:"person_id"`
	Name           string  `json:"name"`
	Company        string  `json:"company"`
	CurrentCompany string  `json:"current_company"`
	OverlapYears   float64 `json:"overlap_years"`
}
