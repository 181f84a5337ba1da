// Package docs содержит описание API в формате Swagger 2.0 для /docs.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Вход пользователя",
            "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
            "responses": {"200": {"description": "user, hasValidMembership, token"}, "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/ErrorResponse"}}, "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/auth/register": {"post": {"tags": ["Auth"], "summary": "Регистрация пользователя",
            "responses": {"200": {"description": "user"}, "400": {"description": "Invalid request data or duplicate", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/membership/request": {"post": {"tags": ["Membership"], "summary": "Подать заявку на членство",
            "responses": {"200": {"description": "created request"}, "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/membership/requests": {"get": {"tags": ["Membership"], "summary": "Список заявок", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "requests with users"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/membership/requests/{id}/status": {"patch": {"tags": ["Membership"], "summary": "Одобрить или отклонить заявку", "security": [{"BearerAuth": []}],
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
            "responses": {"200": {"description": "Status updated successfully"}, "400": {"description": "Invalid status"}, "404": {"description": "Not found"}, "409": {"description": "Not pending"}}}},
        "/membership/check/{userId}": {"get": {"tags": ["Membership"], "summary": "Проверить членство",
            "parameters": [{"in": "path", "name": "userId", "type": "integer", "required": true}],
            "responses": {"200": {"description": "hasValidMembership, membership"}}}},
        "/celebrities": {"get": {"tags": ["Catalog"], "summary": "Знаменитости", "responses": {"200": {"description": "array"}}}},
        "/celebrities/{id}": {"get": {"tags": ["Catalog"], "summary": "Знаменитость по ID", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "record"}, "404": {"description": "Celebrity not found"}}}},
        "/albums": {"get": {"tags": ["Catalog"], "summary": "Альбомы", "parameters": [{"in": "query", "name": "featured", "type": "boolean"}], "responses": {"200": {"description": "array"}}}},
        "/albums/{id}": {"get": {"tags": ["Catalog"], "summary": "Альбом по ID", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "record"}, "404": {"description": "Album not found"}}}},
        "/videos": {"get": {"tags": ["Catalog"], "summary": "Видео", "parameters": [{"in": "query", "name": "featured", "type": "boolean"}], "responses": {"200": {"description": "array"}}}},
        "/videos/{id}": {"get": {"tags": ["Catalog"], "summary": "Видео по ID", "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "record"}, "404": {"description": "Video not found"}}}},
        "/slideshow": {"get": {"tags": ["Catalog"], "summary": "Активные баннеры", "responses": {"200": {"description": "array"}}}},
        "/admin/celebrities": {"post": {"tags": ["Admin"], "summary": "Создать знаменитость", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "record"}, "400": {"description": "Invalid request data"}}}},
        "/admin/albums": {"post": {"tags": ["Admin"], "summary": "Создать альбом", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "record"}, "400": {"description": "Invalid request data"}}}},
        "/admin/videos": {"post": {"tags": ["Admin"], "summary": "Создать видео", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "record"}, "400": {"description": "Invalid request data"}}}},
        "/admin/slideshow": {"post": {"tags": ["Admin"], "summary": "Создать баннер", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "record"}, "400": {"description": "Invalid request data"}}}}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"status": {"type": "string", "example": "Error"}, "message": {"type": "string"}}},
        "LoginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}}
    }
}`

// SwaggerInfo содержит метаданные API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "My Secret Web API",
	Description:      "Членство и каталог сайта",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
