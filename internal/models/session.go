package models

// RoleScope names the scope an endpoint requires from the caller.
type RoleScope string

const (
	ScopeStudent RoleScope = "student"
	ScopeTeacher RoleScope = "teacher"
	ScopeParent  RoleScope = "parent"
	// ScopeStaff accepts any member of StaffRoles.
	ScopeStaff RoleScope = "staff"
)

// Satisfies reports whether a role meets the scope's membership set.
func (s RoleScope) Satisfies(role UserRole) bool {
	switch s {
	case ScopeStudent:
		return role == RoleStudent
	case ScopeTeacher:
		return role == RoleTeacher
	case ScopeParent:
		return role == RoleParent
	case ScopeStaff:
		return role.IsStaff()
	default:
		return false
	}
}

// StudentScope binds a session to the student's own record and class.
type StudentScope struct {
	StudentID string   `json:"student_id"`
	FullName  string   `json:"full_name"`
	Class     ClassRef `json:"class"`
}

// TeacherScope binds a session to a teacher profile. Teaching assignments
// are resolved per-query, not carried on the session.
type TeacherScope struct {
	TeacherID string `json:"teacher_id"`
	FullName  string `json:"full_name"`
}

// ParentScope binds a session to the linked child's record and class.
type ParentScope struct {
	ParentID  string   `json:"parent_id"`
	StudentID string   `json:"student_id"`
	ChildName string   `json:"child_name"`
	Class     ClassRef `json:"class"`
}

// ScopedSession is the tagged, role-scoped view of an authenticated
// identity. Exactly one scope pointer matching Role is set (staff members
// other than teachers carry none). It lives for a single request.
type ScopedSession struct {
	UserID  string        `json:"user_id"`
	Role    UserRole      `json:"role"`
	Student *StudentScope `json:"student,omitempty"`
	Teacher *TeacherScope `json:"teacher,omitempty"`
	Parent  *ParentScope  `json:"parent,omitempty"`
}
