package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paths06/TalentNetwork/internal/middleware"
	"github.com/Paths06/TalentNetwork/internal/models"
	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/internal/store"
)

type DashboardHandler struct {
	peopleService *services.PeopleService
	registry      *store.WorkspaceRegistry
}

func NewDashboardHandler(peopleService *services.PeopleService, registry *store.WorkspaceRegistry) *DashboardHandler {
	return &DashboardHandler{
		peopleService: peopleService,
		registry:      registry,
	}
}

// Index handles the dashboard page: people table, upload panel, entry form
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", h.dashboardData(c, "", nil))
}

// CreatePerson handles the profile-creation form. The person and their
// initial employment are created together or not at all.
func (h *DashboardHandler) CreatePerson(c *gin.Context) {
	workspaceID := middleware.GetWorkspaceID(c)

	form := map[string]string{
		"Name":             strings.TrimSpace(c.PostForm("name")),
		"Title":            strings.TrimSpace(c.PostForm("title")),
		"Company":          strings.TrimSpace(c.PostForm("company")),
		"Email":            strings.TrimSpace(c.PostForm("email")),
		"LinkedInURL":      strings.TrimSpace(c.PostForm("linkedin_url")),
		"ReferenceListURL": strings.TrimSpace(c.PostForm("reference_list_url")),
		"StartDate":        strings.TrimSpace(c.PostForm("start_date")),
		"EndDate":          strings.TrimSpace(c.PostForm("end_date")),
	}

	startDate, endDate, err := parseDateRange(form["StartDate"], form["EndDate"])
	if err != nil {
		c.HTML(http.StatusBadRequest, "index", h.dashboardData(c, err.Error(), form))
		return
	}

	input := store.CreatePersonInput{
		Name:             form["Name"],
		Title:            form["Title"],
		Company:          form["Company"],
		Email:            form["Email"],
		LinkedInURL:      form["LinkedInURL"],
		ReferenceListURL: form["ReferenceListURL"],
		InitialEmployment: store.EmploymentInput{
			CompanyName: form["Company"],
			Title:       form["Title"],
			StartDate:   startDate,
			EndDate:     endDate,
		},
	}

	if _, err := h.peopleService.CreatePerson(workspaceID, input); err != nil {
		c.HTML(http.StatusBadRequest, "index", h.dashboardData(c, err.Error(), form))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// dashboardData assembles the template payload for the dashboard page
func (h *DashboardHandler) dashboardData(c *gin.Context, errMsg string, form map[string]string) gin.H {
	workspaceID := middleware.GetWorkspaceID(c)
	extraction := h.registry.Extraction(workspaceID)

	if form == nil {
		// Pre-fill when an upload produced exactly one suggestion per label
		form = map[string]string{
			"Name":    extraction.SinglePerson(),
			"Company": extraction.SingleFirm(),
		}
	}

	return gin.H{
		"Title":      "Talent Network",
		"People":     h.peopleService.ListPeople(workspaceID),
		"Extraction": extraction,
		"Form":       form,
		"Error":      errMsg,
	}
}

// parseDateRange parses the required start and optional end date of a form.
// An empty end date means the employment is ongoing.
func parseDateRange(start, end string) (time.Time, *time.Time, error) {
	if start == "" {
		return time.Time{}, nil, models.NewValidationError("start_date", "must not be empty")
	}

	startDate, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("start_date", "must be a YYYY-MM-DD date")
	}

	if end == "" {
		return startDate, nil, nil
	}

	endDate, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return time.Time{}, nil, models.NewValidationError("end_date", "must be a YYYY-MM-DD date")
	}

	return startDate, &endDate, nil
}
