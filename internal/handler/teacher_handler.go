package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/service"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// TeacherHandler exposes teacher self-service endpoints.
type TeacherHandler struct {
	teachers *service.TeacherService
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(teachers *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// Assignments godoc
// @Summary List the caller's teaching assignments
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers/me/assignments [get]
func (h *TeacherHandler) Assignments(c *gin.Context) {
	assignments, err := h.teachers.Assignments(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}
