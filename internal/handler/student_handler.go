package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sekolahku/akademik-api/internal/models"
	"github.com/sekolahku/akademik-api/internal/service"
	appErrors "github.com/sekolahku/akademik-api/pkg/errors"
	"github.com/sekolahku/akademik-api/pkg/response"
)

// StudentHandler exposes student self-service endpoints.
type StudentHandler struct {
	students   *service.StudentService
	attendance *service.AttendanceService
	behavior   *service.BehaviorService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(students *service.StudentService, attendance *service.AttendanceService, behavior *service.BehaviorService) *StudentHandler {
	return &StudentHandler{students: students, attendance: attendance, behavior: behavior}
}

// Me godoc
// @Summary Return the caller's student profile
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/me [get]
func (h *StudentHandler) Me(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Student == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	response.JSON(c, http.StatusOK, session.Student, nil)
}

// Dashboard godoc
// @Summary Return the caller's dashboard for the current period
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/me/dashboard [get]
func (h *StudentHandler) Dashboard(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Student == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	dashboard, err := h.students.Dashboard(c.Request.Context(), session.Student.StudentID, session.Student.FullName, session.Student.Class)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Marks godoc
// @Summary Return the caller's marks for the current period
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/me/marks [get]
func (h *StudentHandler) Marks(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Student == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	marks, err := h.students.Marks(c.Request.Context(), session.Student.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, marks, nil)
}

// Attendance godoc
// @Summary Return the caller's attendance records
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/me/attendance [get]
func (h *StudentHandler) Attendance(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Student == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	filter := models.AttendanceFilter{StudentID: session.Student.StudentID}
	records, pagination, err := h.attendance.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, pagination)
}

// Discipline godoc
// @Summary Return the caller's disciplinary notes and points
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/me/discipline [get]
func (h *StudentHandler) Discipline(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil || session.Student == nil {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	notes, err := h.behavior.ListForStudent(c.Request.Context(), session.Student.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.behavior.Summary(c.Request.Context(), session.Student.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"summary": summary, "notes": notes}, nil)
}
