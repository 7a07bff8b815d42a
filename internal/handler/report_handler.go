package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// ReportHandler exposes downloadable class reports for staff.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// ClassMarksCSV godoc
// @Summary Download a class mark sheet as CSV
// @Tags Reports
// @Produce text/csv
// @Param subject query string true "Subject name"
// @Param grade query string true "Grade"
// @Param major query string true "Major"
// @Param section query string true "Section"
// @Success 200 {file} file
// @Router /reports/classes/marks.csv [get]
func (h *ReportHandler) ClassMarksCSV(c *gin.Context) {
	h.render(c, service.ReportFormatCSV)
}

// ClassMarksPDF godoc
// @Summary Download a class mark sheet as PDF
// @Tags Reports
// @Produce application/pdf
// @Param subject query string true "Subject name"
// @Param grade query string true "Grade"
// @Param major query string true "Major"
// @Param section query string true "Section"
// @Success 200 {file} file
// @Router /reports/classes/marks.pdf [get]
func (h *ReportHandler) ClassMarksPDF(c *gin.Context) {
	h.render(c, service.ReportFormatPDF)
}

func (h *ReportHandler) render(c *gin.Context, format service.ReportFormat) {
	class := models.ClassRef{
		Grade:   c.Query("grade"),
		Major:   c.Query("major"),
		Section: c.Query("section"),
	}
	subject := c.Query("subject")
	if subject == "" || class.Grade == "" || class.Major == "" || class.Section == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "subject, grade, major and section are required"))
		return
	}

	payload, contentType, filename, err := h.reports.ClassMarkSheet(c.Request.Context(), class, subject, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, contentType, payload)
}
