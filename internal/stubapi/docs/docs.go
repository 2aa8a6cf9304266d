// Package docs registers the OpenAPI description of the stand-in backend
// with swag so echo-swagger can serve it under /swagger/.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth": {
            "get": {
                "tags": ["auth"],
                "summary": "Verify a token",
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionCheck"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["auth"],
                "summary": "Register or log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "enum": ["register", "login"], "name": "action", "in": "query", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuthResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/bookings": {
            "get": {
                "tags": ["bookings"],
                "summary": "List bookings or fetch one by id",
                "security": [{"Bearer": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BookingList"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["bookings"],
                "summary": "Create a booking",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookingRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BookingConfirmation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["bookings"],
                "summary": "Update a booking (admin)",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "query", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookingUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BookingUpdateResult"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["bookings"],
                "summary": "Cancel a booking",
                "security": [{"Bearer": []}],
                "parameters": [{"type": "integer", "name": "id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/admin": {
            "get": {
                "tags": ["admin"],
                "summary": "Read stats, tariffs, vehicles or advertisements",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"type": "string", "enum": ["stats", "tariffs", "vehicles", "advertisements"], "name": "resource", "in": "query", "required": true},
                    {"type": "integer", "name": "id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "email": {"type": "string"}, "full_name": {"type": "string"},
            "phone": {"type": "string"}, "role": {"type": "string", "enum": ["client", "admin"]}}},
        "AuthResult": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/User"}}},
        "SessionCheck": {"type": "object", "properties": {"valid": {"type": "boolean"}, "user": {"$ref": "#/definitions/User"}}},
        "RegisterInput": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"},
            "full_name": {"type": "string"}, "phone": {"type": "string"}}},
        "BookingRequest": {"type": "object", "properties": {
            "guest_name": {"type": "string"}, "guest_phone": {"type": "string"}, "guest_email": {"type": "string"},
            "from_location": {"type": "string"}, "to_location": {"type": "string"},
            "travel_date": {"type": "string"}, "travel_time": {"type": "string"},
            "passengers": {"type": "integer"}, "tariff_id": {"type": "integer"},
            "payment_method": {"type": "string"}, "notes": {"type": "string"}}},
        "BookingConfirmation": {"type": "object", "properties": {
            "booking_id": {"type": "integer"}, "status": {"type": "string"},
            "total_price": {"type": "number"}, "message": {"type": "string"}}},
        "BookingUpdate": {"type": "object", "properties": {
            "status": {"type": "string"}, "payment_status": {"type": "string"},
            "vehicle_id": {"type": "integer"}, "notes": {"type": "string"}}},
        "BookingUpdateResult": {"type": "object", "properties": {
            "booking_id": {"type": "integer"}, "status": {"type": "string"}, "payment_status": {"type": "string"}}},
        "BookingList": {"type": "object", "properties": {"bookings": {"type": "array", "items": {"type": "object"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Transfer booking stand-in API",
	Description:      "Local backend for the transfer booking client: auth, bookings and admin endpoints.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
