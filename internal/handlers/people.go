package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Paths06/TalentNetwork/internal/middleware"
	"github.com/Paths06/TalentNetwork/internal/models"
	"github.com/Paths06/TalentNetwork/internal/services"
)

type PersonHandler struct {
	peopleService        *services.PeopleService
	sharedHistoryService *services.SharedHistoryService
}

func NewPersonHandler(peopleService *services.PeopleService, sharedHistoryService *services.SharedHistoryService) *PersonHandler {
	return &PersonHandler{
		peopleService:        peopleService,
		sharedHistoryService: sharedHistoryService,
	}
}

// ViewPerson handles the person detail page: employment history plus the
// shared-work-history table
func (h *PersonHandler) ViewPerson(c *gin.Context) {
	h.renderPerson(c, http.StatusOK, "", nil)
}

// AddEmployment handles the add-employment form on the detail page
func (h *PersonHandler) AddEmployment(c *gin.Context) {
	workspaceID := middleware.GetWorkspaceID(c)
	personID := c.Param("id")

	form := map[string]string{
		"Company":   strings.TrimSpace(c.PostForm("company")),
		"Title":     strings.TrimSpace(c.PostForm("title")),
		"StartDate": strings.TrimSpace(c.PostForm("start_date")),
		"EndDate":   strings.TrimSpace(c.PostForm("end_date")),
	}

	startDate, endDate, err := parseDateRange(form["StartDate"], form["EndDate"])
	if err != nil {
		h.renderPerson(c, http.StatusBadRequest, err.Error(), form)
		return
	}

	_, err = h.peopleService.AddEmployment(workspaceID, personID, form["Company"], form["Title"], startDate, endDate)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			notFound(c)
			return
		}
		h.renderPerson(c, http.StatusBadRequest, err.Error(), form)
		return
	}

	c.Redirect(http.StatusFound, "/people/"+personID)
}

// renderPerson renders the detail page, recomputing the shared history view
func (h *PersonHandler) renderPerson(c *gin.Context, status int, errMsg string, form map[string]string) {
	workspaceID := middleware.GetWorkspaceID(c)
	personID := c.Param("id")

	person, err := h.peopleService.GetPerson(workspaceID, personID)
	if err != nil {
		notFound(c)
		return
	}

	shared, err := h.sharedHistoryService.SharedHistory(workspaceID, personID)
	if err != nil {
		notFound(c)
		return
	}

	if form == nil {
		form = map[string]string{}
	}

	c.HTML(status, "person", gin.H{
		"Title":       person.Name,
		"Person":      person,
		"Employments": h.peopleService.EmploymentsOf(workspaceID, personID),
		"Shared":      shared,
		"Form":        form,
		"Error":       errMsg,
	})
}
