// Package docs registers the OpenAPI document served under /v1/swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/recruiters": {
            "post": {
                "tags": ["registration"],
                "summary": "Register recruiter",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "recruiter", "required": true, "schema": {"$ref": "#/definitions/domain.RecruiterCandidate"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Submission in progress", "schema": {"$ref": "#/definitions/response.Response"}},
                    "502": {"description": "Submission failure", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users": {
            "post": {
                "tags": ["registration"],
                "summary": "Register user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/domain.UserCandidate"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Submission in progress", "schema": {"$ref": "#/definitions/response.Response"}},
                    "502": {"description": "Submission failure", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/validate/recruiter": {
            "post": {
                "tags": ["validation"],
                "summary": "Validate recruiter form",
                "parameters": [
                    {"type": "string", "in": "query", "name": "touched"},
                    {"in": "body", "name": "recruiter", "required": true, "schema": {"$ref": "#/definitions/domain.RecruiterCandidate"}}
                ],
                "responses": {"200": {"description": "Verdict", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/validate/user": {
            "post": {
                "tags": ["validation"],
                "summary": "Validate user form",
                "parameters": [
                    {"type": "string", "in": "query", "name": "touched"},
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/domain.UserCandidate"}}
                ],
                "responses": {"200": {"description": "Verdict", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/jobs/{jobId}/applications/validate": {
            "post": {
                "tags": ["validation"],
                "summary": "Validate job application form",
                "parameters": [
                    {"type": "string", "in": "path", "name": "jobId", "required": true},
                    {"type": "string", "in": "query", "name": "touched"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.JobApplication"}}
                ],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Not logged in", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/jobs/{jobId}/applications": {
            "post": {
                "tags": ["applications"],
                "summary": "Apply to a job",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "jobId", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.JobApplication"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Not logged in", "schema": {"$ref": "#/definitions/response.Response"}},
                    "502": {"description": "Submission failure", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.RecruiterCandidate": {
            "type": "object",
            "properties": {
                "mobile": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "age": {"type": "string"},
                "linkedin": {"type": "string"},
                "student": {"type": "string", "enum": ["yes", "no"]},
                "college": {"type": "string"},
                "password": {"type": "string"},
                "confirmPassword": {"type": "string"}
            }
        },
        "domain.UserCandidate": {
            "type": "object",
            "properties": {
                "mobile": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "age": {"type": "string"},
                "linkedinLink": {"type": "string"},
                "student": {"type": "string", "enum": ["yes", "no"]},
                "college": {"type": "string"},
                "password": {"type": "string"},
                "confirmPassword": {"type": "string"}
            }
        },
        "domain.JobApplication": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "mobile": {"type": "string"},
                "age": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Job Portal Form Gateway API",
	Description:      "Validates recruiter, user and job application forms before forwarding them to the portal API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
