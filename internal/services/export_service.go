package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Paths06/TalentNetwork/internal/store"
)

// exportHeader is the fixed column order of both export formats
var exportHeader = []string{
	"Name", "Email", "LinkedIn URL", "Reference List URL",
	"Current Title", "Current Company",
	"Company", "Title", "Start Date", "End Date",
}

// exportSheetName is the sheet holding the table in the XLSX export
const exportSheetName = "People"

// ExportService renders a workspace's people and employment records as
// downloadable tables: one row per employment, joined with its person.
// Ongoing employments render their end date as the literal "Present".
type ExportService struct {
	registry *store.WorkspaceRegistry
}

// NewExportService creates a new export service
func NewExportService(registry *store.WorkspaceRegistry) *ExportService {
	return &ExportService{
		registry: registry,
	}
}

// ExportCSV renders the workspace as CSV
func (s *ExportService) ExportCSV(workspaceID string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range s.rows(workspaceID) {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the workspace as a single-sheet XLSX workbook
func (s *ExportService) ExportXLSX(workspaceID string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	writeRow := func(rowIndex int, values []string) error {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIndex)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, exportHeader); err != nil {
		return nil, err
	}
	for i, row := range s.rows(workspaceID) {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// rows flattens people and their employments in insertion order
func (s *ExportService) rows(workspaceID string) [][]string {
	profiles := s.registry.Profiles(workspaceID)

	var out [][]string
	for _, person := range profiles.AllPeople() {
		for _, employment := range profiles.EmploymentsOf(person.ID) {
			out = append(out, []string{
				person.Name,
				person.Email,
				person.LinkedInURL,
				person.ReferenceListURL,
				person.CurrentTitle,
				person.CurrentCompany,
				employment.CompanyName,
				employment.Title,
				employment.StartLabel(),
				employment.EndLabel(),
			})
		}
	}
	return out
}
