package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SchoolOps Console API",
        "description": "Calendar and timetable backend for the school-operations console",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Calendar", "description": "Schedule screen: windows, grids, events"},
        {"name": "Timetable", "description": "Class timetable slot matrix"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/calendar/events": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List calendar events in a window",
                "parameters": [
                    {"name": "start", "in": "query", "type": "string", "required": true},
                    {"name": "end", "in": "query", "type": "string", "required": true},
                    {"name": "types", "in": "query", "type": "string"},
                    {"name": "statuses", "in": "query", "type": "string"},
                    {"name": "sorted", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "Events", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Schedule a calendar event",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/view": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Computed calendar view",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string", "enum": ["month", "week", "day"]},
                    {"name": "selected", "in": "query", "type": "string"},
                    {"name": "navigate", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "View model", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/classes/{id}/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Day-keyed timetable of a class",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "teacherId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Timetable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/timetable/catalogue": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Fixed weekday and time-slot catalogues",
                "responses": {
                    "200": {"description": "Catalogues", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/timetable/entries": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Place a timetable entry",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot occupied", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/timetable/entries/{id}": {
            "put": {
                "tags": ["Timetable"],
                "summary": "Update a timetable entry",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot occupied", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Timetable"],
                "summary": "Delete a timetable entry",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        }
    },
    "definitions": {
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
