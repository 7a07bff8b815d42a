package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// MarkHandler exposes mark recording endpoints.
type MarkHandler struct {
	marks   *service.MarkService
	metrics *service.MetricsService
}

// NewMarkHandler constructs handler.
func NewMarkHandler(marks *service.MarkService, metrics *service.MetricsService) *MarkHandler {
	return &MarkHandler{marks: marks, metrics: metrics}
}

// Submit godoc
// @Summary Submit a batch of mark updates
// @Description All items share the academic period resolved at submission time; the batch commits fully or not at all.
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body service.SubmitMarksRequest true "Mark batch"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "a composite key could not be resolved; batch aborted"
// @Router /marks [post]
func (h *MarkHandler) Submit(c *gin.Context) {
	var req service.SubmitMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.marks.SubmitBatch(c.Request.Context(), sessionFromContext(c), req)
	if h.metrics != nil {
		h.metrics.RecordBatchOutcome(err == nil)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// List godoc
// @Summary List marks for one of the caller's teaching assignments
// @Tags Marks
// @Produce json
// @Param subject query string true "Subject name"
// @Param grade query string true "Grade"
// @Param major query string true "Major"
// @Param section query string true "Section"
// @Success 200 {object} response.Envelope
// @Router /marks [get]
func (h *MarkHandler) List(c *gin.Context) {
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

	marks, err := h.marks.ListForAssignment(c.Request.Context(), sessionFromContext(c), subject, class)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, marks, nil)
}
