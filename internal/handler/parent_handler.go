package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// ParentHandler exposes parent endpoints scoped to the linked child.
type ParentHandler struct {
	students *service.StudentService
}

// NewParentHandler constructs handler.
func NewParentHandler(students *service.StudentService) *ParentHandler {
	return &ParentHandler{students: students}
}

// Child godoc
// @Summary Return the linked child's dashboard for the current period
// @Tags Parents
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope "linked student not found"
// @Router /parents/me/child [get]
func (h *ParentHandler) Child(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Parent == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	dashboard, err := h.students.Dashboard(c.Request.Context(), session.Parent.StudentID, session.Parent.ChildName, session.Parent.Class)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// ChildMarks godoc
// @Summary Return the linked child's marks for the current period
// @Tags Parents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /parents/me/child/marks [get]
func (h *ParentHandler) ChildMarks(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Parent == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	marks, err := h.students.Marks(c.Request.Context(), session.Parent.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, marks, nil)
}
