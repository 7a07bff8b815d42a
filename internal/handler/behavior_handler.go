package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// BehaviorHandler exposes staff endpoints for disciplinary notes.
type BehaviorHandler struct {
	behavior *service.BehaviorService
}

// NewBehaviorHandler constructs handler.
func NewBehaviorHandler(behavior *service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{behavior: behavior}
}

// Create godoc
// @Summary Record a disciplinary note for a student
// @Tags Discipline
// @Accept json
// @Produce json
// @Param payload body service.CreateBehaviorNoteRequest true "Behavior note"
// @Success 201 {object} response.Envelope
// @Router /behavior-notes [post]
func (h *BehaviorHandler) Create(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}

	var req service.CreateBehaviorNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	note, err := h.behavior.Create(c.Request.Context(), session.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, note)
}

// ListForStudent godoc
// @Summary List a student's disciplinary notes
// @Tags Discipline
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/behavior-notes [get]
func (h *BehaviorHandler) ListForStudent(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student id is required"))
		return
	}
	notes, err := h.behavior.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes, nil)
}
