// Package swagger регистрирует описание API для /swagger/*.
// Пересборка: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Состояние сервиса",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/maps/{variant}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Конфигурация карты",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "MAP_NOT_FOUND"},
                    "503": {"description": "MAP_UNAVAILABLE"}
                }
            }
        },
        "/api/v1/maps/{variant}/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Фильтрация мест",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "floor", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "INVALID_REQUEST"},
                    "404": {"description": "MAP_NOT_FOUND"},
                    "503": {"description": "MAP_UNAVAILABLE"}
                }
            }
        },
        "/api/v1/maps/{variant}/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Maps"],
                "summary": "Категории карты",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "MAP_NOT_FOUND"},
                    "503": {"description": "MAP_UNAVAILABLE"}
                }
            }
        },
        "/api/v1/maps/{variant}/sessions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Новая сессия",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true},
                    {"name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "INVALID_REQUEST"},
                    "404": {"description": "MAP_NOT_FOUND"},
                    "503": {"description": "MAP_UNAVAILABLE"}
                }
            }
        },
        "/api/v1/maps/{variant}/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Текущий рендер сессии",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "INVALID_SESSION_ID"},
                    "404": {"description": "SESSION_NOT_FOUND"}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Закрыть сессию",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "INVALID_SESSION_ID"},
                    "404": {"description": "SESSION_NOT_FOUND"}
                }
            }
        },
        "/api/v1/maps/{variant}/sessions/{id}/events": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Событие интерфейса",
                "parameters": [
                    {"enum": ["externo", "interno"], "type": "string", "name": "variant", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.EventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "INVALID_EVENT"},
                    "404": {"description": "SESSION_NOT_FOUND"}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "category": {"type": "string"},
                "floor": {"type": "string"}
            }
        },
        "dto.EventRequest": {
            "type": "object",
            "required": ["control"],
            "properties": {
                "control": {"type": "string", "enum": ["search", "category", "floor", "place", "sidebar", "switch-map"]},
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "POI Map Service API",
	Description:      "Сервис карт точек интереса: внешняя карта (externo) и внутренняя карта (interno) по этажам.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
