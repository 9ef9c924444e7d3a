package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paths06/TalentNetwork/internal/middleware"
	"github.com/Paths06/TalentNetwork/internal/services"
	"github.com/Paths06/TalentNetwork/pkg/logger"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportCSV downloads the workspace's people and employments as CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	data, err := h.exportService.ExportCSV(middleware.GetWorkspaceID(c))
	if err != nil {
		logger.WithError(err).Error("CSV export failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="talent_network.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportXLSX downloads the workspace's people and employments as XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	data, err := h.exportService.ExportXLSX(middleware.GetWorkspaceID(c))
	if err != nil {
		logger.WithError(err).Error("XLSX export failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="talent_network.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
