// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains token, token_type and expires_at", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Get the calendar",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "data contains the calendar", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Replace the calendar",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "calendar", "required": true, "schema": {"$ref": "#/definitions/domain.Calendar"}}
                ],
                "responses": {
                    "200": {"description": "data contains the stored calendar", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Search categories",
                "parameters": [{"type": "string", "name": "q", "in": "query"}],
                "responses": {
                    "200": {"description": "data contains categories and can_create", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/events": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Add events in bulk",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddEventsRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the number of events added and the category id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/campuses/{campusID}/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "List events of a campus",
                "parameters": [{"type": "string", "name": "campusID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "data contains the events", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/campuses/{campusID}/events/{eventID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Remove an event",
                "parameters": [
                    {"type": "string", "name": "campusID", "in": "path", "required": true},
                    {"type": "string", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/calendar/days/{date}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Day statistics",
                "parameters": [{"type": "string", "name": "date", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "data contains the day statistics", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/months/{year}/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Month heat map",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "name": "month", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the month grid", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/calendar/years/{year}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar"],
                "summary": "Year heat map",
                "parameters": [{"type": "integer", "name": "year", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "data contains twelve month grids", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/catalogue": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["catalogue"],
                "summary": "List the campus catalogue",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "institution", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains entries, institutions and pagination", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/overview": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["catalogue"],
                "summary": "Participation overview",
                "parameters": [{"type": "string", "name": "form_config_id", "in": "query"}],
                "responses": {
                    "200": {"description": "data contains the overview", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/config": {
            "get": {
                "tags": ["config"],
                "summary": "Get known institutions and campi",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "data contains icts and campi", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["config"],
                "summary": "Replace the institution base",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ReplaceConfigRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the stored configuration", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/config/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["config"],
                "summary": "Import the institution base from a spreadsheet",
                "description": "Rows of ACRONYM, INSTITUTION NAME, CAMPUS NAME as tab separated text, an .xlsx body, or the multipart field file.",
                "consumes": ["text/plain", "multipart/form-data"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "data contains the stored configuration", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/config/restore-default": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["config"],
                "summary": "Restore the default institution base",
                "responses": {
                    "200": {"description": "data contains the default configuration", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/forms": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms"],
                "summary": "List registration forms",
                "responses": {
                    "200": {"description": "data contains the forms, newest first", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms"],
                "summary": "Create a registration form",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateFormRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the created form", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/forms/active": {
            "get": {
                "tags": ["forms"],
                "summary": "Get the form to show",
                "parameters": [{"type": "string", "name": "id", "in": "query"}],
                "responses": {
                    "200": {"description": "data contains the form", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/forms/initialize": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms"],
                "summary": "Initialize forms from legacy data",
                "responses": {
                    "201": {"description": "data contains the form and the number of adopted submissions", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/forms/{formID}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms"],
                "summary": "Open or close a registration form",
                "parameters": [
                    {"type": "string", "name": "formID", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateFormRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["forms"],
                "summary": "Delete a registration form and its submissions",
                "parameters": [{"type": "string", "name": "formID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/submissions": {
            "post": {
                "tags": ["submissions"],
                "summary": "Submit a registration",
                "consumes": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SubmitRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the stored submission", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["submissions"],
                "summary": "List registrations",
                "parameters": [
                    {"type": "string", "name": "form_config_id", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains submissions and pagination", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AddEventsRequest": {
            "type": "object",
            "properties": {
                "scope": {"$ref": "#/definitions/domain.Scope"},
                "category_id": {"type": "string"},
                "category_name": {"type": "string"},
                "category_color": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}}
        },
        "controllers.CreateFormRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "edict_name": {"type": "string"}
            }
        },
        "controllers.UpdateFormRequest": {
            "type": "object",
            "properties": {"is_active": {"type": "boolean"}}
        },
        "controllers.ReplaceConfigRequest": {
            "type": "object",
            "properties": {
                "icts": {"type": "array", "items": {"type": "string"}},
                "campi": {"type": "array", "items": {"$ref": "#/definitions/domain.Campus"}}
            }
        },
        "controllers.SubmitRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "ict": {"type": "string"},
                "campi": {"type": "array", "items": {"$ref": "#/definitions/domain.Campus"}},
                "form_config_id": {"type": "string"}
            }
        },
        "domain.Campus": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "ictName": {"type": "string"}
            }
        },
        "domain.Calendar": {
            "type": "object",
            "properties": {
                "version": {"type": "integer"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}},
                "events": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
                }
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "categoryId": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"}
            }
        },
        "domain.Scope": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["campus", "institution", "global"]},
                "campus_id": {"type": "string"},
                "institution": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Campus Calendar API",
	Description:      "Registration and administration API for the inter-institutional academic calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
