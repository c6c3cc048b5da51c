// Package docs holds the hand-maintained swagger document served at /swagger.
// Keep it in step with the godoc annotations on the controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports service and datastore status",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/teachers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["teachers"],
                "summary": "Register a teacher",
                "parameters": [{"description": "profile", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/controller.CreateTeacherRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/teachers/by_email": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teachers"],
                "summary": "Find a teacher by exact email",
                "parameters": [{"type": "string", "description": "email", "name": "email", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teachers"],
                "summary": "Get a teacher",
                "parameters": [{"type": "string", "description": "teacher id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/teachers/{id}/sessions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teachers"],
                "summary": "List a teacher's sessions, newest first",
                "parameters": [
                    {"type": "string", "description": "teacher id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 20, "description": "page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Create a session, optionally with its first question",
                "parameters": [{"description": "session", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateSessionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/sessions/resolve/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Resolve a join code (or session id) to a session",
                "parameters": [{"type": "string", "description": "join code or session id", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get a session",
                "parameters": [{"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/name": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Rename a session",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"description": "new name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RenameSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/current_question": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get the session's current question (null when none)",
                "parameters": [{"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Point the session at one of its questions",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"description": "question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SetCurrentQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "List a session's questions in creation order",
                "parameters": [{"type": "string", "description": "session id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.QuestionView"}}}}
            }
        },
        "/sessions/{id}/answers_by_question": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "All answers of a session grouped by question",
                "parameters": [
                    {"type": "string", "description": "session id", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "default": false, "description": "include each answer's board document", "name": "include_json", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Add a question to a session",
                "parameters": [{"description": "question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateQuestionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Get a question",
                "parameters": [{"type": "string", "description": "question id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}/text": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Replace a question's content",
                "parameters": [
                    {"type": "string", "description": "question id", "name": "id", "in": "path", "required": true},
                    {"description": "content", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.QuestionContentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}/answers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List answer metadata for a question, oldest first",
                "parameters": [{"type": "string", "description": "question id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.AnswerView"}}}}
            }
        },
        "/questions/{id}/answers/shuffled": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Answer ids of a question in a fresh random order",
                "parameters": [{"type": "string", "description": "question id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/answers": {
            "post": {
                "description": "preview_url is null when no preview was sent or it could not be stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "Submit a student's board",
                "parameters": [{"description": "answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.SubmitAnswerRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/answers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["answers"],
                "summary": "Get one answer including its board document",
                "parameters": [{"type": "string", "description": "answer id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AnswerView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controller.CreateTeacherRequest": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "controller.CreateSessionRequest": {
            "type": "object",
            "required": ["teacher_id"],
            "properties": {
                "teacher_id": {"type": "string"},
                "session_name": {"type": "string"},
                "question_text": {"type": "string"},
                "question_body": {"type": "object"}
            }
        },
        "controller.RenameSessionRequest": {
            "type": "object",
            "properties": {
                "session_name": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "controller.SetCurrentQuestionRequest": {
            "type": "object",
            "required": ["question_id"],
            "properties": {
                "question_id": {"type": "string"}
            }
        },
        "controller.QuestionContentRequest": {
            "type": "object",
            "properties": {
                "question_text": {"type": "string"},
                "question_body": {"type": "object"}
            }
        },
        "controller.CreateQuestionRequest": {
            "type": "object",
            "required": ["session_id"],
            "properties": {
                "session_id": {"type": "string"},
                "question_text": {"type": "string"},
                "question_body": {"type": "object"}
            }
        },
        "controller.SubmitAnswerRequest": {
            "type": "object",
            "required": ["session_id", "board_json"],
            "properties": {
                "session_id": {"type": "string"},
                "question_id": {"type": "string"},
                "board_json": {"type": "object"},
                "preview_png_base64": {"type": "string"},
                "student_id": {"type": "string"}
            }
        },
        "service.QuestionView": {
            "type": "object",
            "properties": {
                "question_id": {"type": "string"},
                "session_id": {"type": "string"},
                "question_text": {"type": "string"},
                "question_body": {"type": "object"},
                "position": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "service.AnswerView": {
            "type": "object",
            "properties": {
                "answer_id": {"type": "string"},
                "question_id": {"type": "string"},
                "session_id": {"type": "string"},
                "student_id": {"type": "string"},
                "preview_url": {"type": "string"},
                "created_at": {"type": "string"},
                "board_json": {"type": "object"}
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "kind": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Answer Board API",
	Description:      "Backend for the classroom answer board: teachers run sessions, students submit drawn answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
