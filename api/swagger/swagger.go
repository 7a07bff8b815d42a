package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Akademik API",
        "description": "Role-scoped academic records service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and token lifecycle"},
        {"name": "Students", "description": "Student self-service"},
        {"name": "Parents", "description": "Parent view of the linked child"},
        {"name": "Teachers", "description": "Teacher self-service"},
        {"name": "Marks", "description": "Mark recording and review"},
        {"name": "Subjects", "description": "Subject catalog"},
        {"name": "Discipline", "description": "Disciplinary notes and points"},
        {"name": "Reports", "description": "Downloadable class reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the caller's refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "204": {"description": "Revoked"}
                }
            }
        },
        "/students/me": {
            "get": {
                "tags": ["Students"],
                "summary": "Return the caller's student profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/me/dashboard": {
            "get": {
                "tags": ["Students"],
                "summary": "Return the caller's dashboard for the current period",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/me/marks": {
            "get": {
                "tags": ["Students"],
                "summary": "Return the caller's marks for the current period",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/me/attendance": {
            "get": {
                "tags": ["Students"],
                "summary": "Return the caller's attendance records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/me/discipline": {
            "get": {
                "tags": ["Students"],
                "summary": "Return the caller's disciplinary notes and points",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/parents/me/child": {
            "get": {
                "tags": ["Parents"],
                "summary": "Return the linked child's dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Linked student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/parents/me/child/marks": {
            "get": {
                "tags": ["Parents"],
                "summary": "Return the linked child's marks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/me/assignments": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List the caller's teaching assignments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/marks": {
            "get": {
                "tags": ["Marks"],
                "summary": "List marks for one of the caller's teaching assignments",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "required": true},
                    {"name": "grade", "in": "query", "type": "string", "required": true},
                    {"name": "major", "in": "query", "type": "string", "required": true},
                    {"name": "section", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Marks"],
                "summary": "Submit a batch of mark updates",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitMarksRequest"}}
                ],
                "responses": {
                    "200": {"description": "Batch committed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Outside teaching scope", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "A record could not be resolved; batch aborted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List active subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/behavior-notes": {
            "post": {
                "tags": ["Discipline"],
                "summary": "Record a disciplinary note for a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBehaviorNoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/behavior-notes": {
            "get": {
                "tags": ["Discipline"],
                "summary": "List a student's disciplinary notes",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/classes/marks.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a class mark sheet as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "required": true},
                    {"name": "grade", "in": "query", "type": "string", "required": true},
                    {"name": "major", "in": "query", "type": "string", "required": true},
                    {"name": "section", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/reports/classes/marks.pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a class mark sheet as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "required": true},
                    {"name": "grade", "in": "query", "type": "string", "required": true},
                    {"name": "major", "in": "query", "type": "string", "required": true},
                    {"name": "section", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF payload"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RefreshTokenRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "MarkBatchItem": {
            "type": "object",
            "required": ["student_id", "subject_name", "score"],
            "properties": {
                "student_id": {"type": "string"},
                "subject_name": {"type": "string"},
                "score": {"type": "number", "minimum": 0, "maximum": 100}
            }
        },
        "SubmitMarksRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/MarkBatchItem"}}
            }
        },
        "CreateBehaviorNoteRequest": {
            "type": "object",
            "required": ["student_id", "date", "note_type", "description"],
            "properties": {
                "student_id": {"type": "string"},
                "date": {"type": "string", "format": "date-time"},
                "note_type": {"type": "string", "enum": ["+", "-", "0"]},
                "points": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
