// Package docs Cafe Finder API.
//
// Поиск кафе из OpenStreetMap (Overpass API) внутри прямоугольной области.
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
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/cafes": {
            "get": {
                "description": "Возвращает кафе (amenity=cafe) из OpenStreetMap внутри bounding box. Размах области не больше 1.5 градуса по каждой оси, limit ограничивается диапазоном 1..200.",
                "produces": ["application/json"],
                "tags": ["Cafes"],
                "summary": "Поиск кафе в прямоугольной области",
                "parameters": [
                    {"type": "number", "description": "Широта юго-западного угла", "name": "swLat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота юго-западного угла", "name": "swLng", "in": "query", "required": true},
                    {"type": "number", "description": "Широта северо-восточного угла", "name": "neLat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота северо-восточного угла", "name": "neLng", "in": "query", "required": true},
                    {"type": "integer", "default": 50, "description": "Максимальное количество результатов", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Cafe"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Состояние сервиса и его зависимостей (Redis, если включена статистика)",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "description": "Возвращает накопленные счётчики поисков кафе",
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Статистика поисков",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.SearchStatistics"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Cafe": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "domain.SearchStatistics": {
            "type": "object",
            "properties": {
                "total_searches": {"type": "integer"},
                "successful_searches": {"type": "integer"},
                "invalid_area_rejections": {"type": "integer"},
                "upstream_failures": {"type": "integer"},
                "cafes_returned": {"type": "integer"},
                "last_search_at": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "time": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {}
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
	Title:            "Cafe Finder API",
	Description:      "Прокси к Overpass API для поиска кафе в bounding box.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
