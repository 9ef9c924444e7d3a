package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Paths06/TalentNetwork/internal/middleware"
	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/internal/store"
	"github.com/Paths06/TalentNetwork/internal/workers"
	"github.com/Paths06/TalentNetwork/pkg/logger"
)

// maxNewsletterBytes caps uploaded newsletter size
const maxNewsletterBytes = 2 << 20

type UploadHandler struct {
	manager  *workers.WorkerManager
	registry *store.WorkspaceRegistry
}

func NewUploadHandler(manager *workers.WorkerManager, registry *store.WorkspaceRegistry) *UploadHandler {
	return &UploadHandler{
		manager:  manager,
		registry: registry,
	}
}

// Upload accepts a newsletter file and queues it for entity extraction.
// The dashboard shows the latest completed result on the next page load.
func (h *UploadHandler) Upload(c *gin.Context) {
	workspaceID := middleware.GetWorkspaceID(c)

	fileHeader, err := c.FormFile("newsletter")
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".txt" && ext != ".html" && ext != ".htm" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.WithError(err).Error("Failed to open uploaded newsletter")
		c.Redirect(http.StatusFound, "/")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxNewsletterBytes))
	if err != nil {
		logger.WithError(err).Error("Failed to read uploaded newsletter")
		c.Redirect(http.StatusFound, "/")
		return
	}

	text, err := services.NewsletterText(fileHeader.Filename, raw)
	if err != nil {
		logger.WithError(err).WithField("file", fileHeader.Filename).Error("Failed to decode newsletter")
		c.Redirect(http.StatusFound, "/")
		return
	}

	queued := h.manager.Enqueue(workers.ExtractionJob{
		WorkspaceID: workspaceID,
		FileName:    fileHeader.Filename,
		Text:        text,
	})
	if !queued {
		logger.WithField("file", fileHeader.Filename).Warn("Extraction queue full, upload dropped")
	}

	c.Redirect(http.StatusFound, "/")
}

// Clear drops the workspace's newsletter state and suggestions
func (h *UploadHandler) Clear(c *gin.Context) {
	h.registry.ClearExtraction(middleware.GetWorkspaceID(c))
	c.Redirect(http.StatusFound, "/")
}
