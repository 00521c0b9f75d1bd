// Package docs holds the OpenAPI description of the JSON API, in the form
// produced by swag init from the handler annotations.
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
        "/donations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Track a donation",
                "parameters": [
                    {"type": "string", "description": "Donation ID (case-insensitive)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.trackingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Blood inventory",
                "parameters": [
                    {"type": "string", "description": "Blood type, e.g. O+", "name": "blood_type", "in": "query"},
                    {"type": "string", "description": "Available, Reserved, Used or Expired", "name": "status", "in": "query"},
                    {"type": "string", "description": "Unit or donor id substring", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.inventoryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/routes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Role route table",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.routesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.RouteEntry": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "page": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "domain.InventoryStats": {
            "type": "object",
            "properties": {
                "available": {"type": "integer"},
                "expired": {"type": "integer"},
                "expiring_soon": {"type": "integer"},
                "reserved": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handler.unitResponse": {
            "type": "object",
            "properties": {
                "blood_type": {"type": "string"},
                "days_until_expiry": {"type": "integer"},
                "donation_date": {"type": "string"},
                "donor_id": {"type": "string"},
                "expiring_soon": {"type": "boolean"},
                "expiry_date": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "status": {"type": "string"},
                "test_status": {"type": "string"}
            }
        },
        "handler.inventoryResponse": {
            "type": "object",
            "properties": {
                "stats": {"$ref": "#/definitions/domain.InventoryStats"},
                "units": {"type": "array", "items": {"$ref": "#/definitions/handler.unitResponse"}}
            }
        },
        "handler.routesResponse": {
            "type": "object",
            "properties": {
                "base": {"type": "string"},
                "role": {"type": "string"},
                "routes": {"type": "array", "items": {"$ref": "#/definitions/domain.RouteEntry"}}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "dashboard": {"type": "string"},
                "logged_in": {"type": "boolean"},
                "role": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "handler.trackingResponse": {
            "type": "object",
            "properties": {
                "donation": {"type": "object"},
                "progress": {"type": "integer"},
                "timeline": {"type": "array", "items": {"type": "object"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BloodChain Portal API",
	Description:      "Session, route table, inventory and tracking data of the BloodChain portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
