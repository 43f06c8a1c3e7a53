// Package docs registers the OpenAPI document served by the Swagger UI.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health check"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Info about the user based on auth token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "User not logged in", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account and start a session",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignUpRequest"}}],
                "responses": {
                    "201": {"description": "Sign-up successful", "schema": {"$ref": "#/definitions/Token"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ValidationError"}},
                    "409": {"description": "Email is already in use", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignInRequest"}}],
                "responses": {
                    "200": {"description": "Sign-in successful", "schema": {"$ref": "#/definitions/Token"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ValidationError"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Email not in use", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/signout": {
            "post": {
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "Sign-out successful", "schema": {"type": "string"}}}
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new token pair",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshRequest"}}],
                "responses": {
                    "200": {"description": "Tokens refreshed", "schema": {"$ref": "#/definitions/Token"}},
                    "401": {"description": "Invalid refresh token", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts, most recently updated first",
                "parameters": [
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "size", "type": "integer"}
                ],
                "responses": {"200": {"description": "Posts found", "schema": {"type": "array", "items": {"$ref": "#/definitions/Post"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create a post",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePostRequest"}}],
                "responses": {
                    "201": {"description": "Post created", "schema": {"$ref": "#/definitions/Post"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ValidationError"}},
                    "401": {"description": "User not logged in", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/posts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get a post",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Post found", "schema": {"$ref": "#/definitions/Post"}},
                    "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Update some fields of a post",
                "parameters": [
                    {"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePostRequest"}}
                ],
                "responses": {
                    "200": {"description": "Post updated", "schema": {"$ref": "#/definitions/Post"}},
                    "401": {"description": "User not logged in", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Delete a post",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Post deleted", "schema": {"$ref": "#/definitions/Post"}},
                    "401": {"description": "User not logged in", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/uploads/presigned-url": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["uploads"],
                "summary": "Create a presigned upload URL",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/PresignedURLRequest"}}],
                "responses": {
                    "201": {"description": "Presigned URL created", "schema": {"type": "string"}},
                    "401": {"description": "User not logged in", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Cannot generate pre-signed URL", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "ValidationError": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"}
            }
        },
        "Token": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "refreshToken": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "role": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        },
        "Post": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "content": {"type": "string"},
                "imageUrl": {"type": "string"},
                "tags": {"type": "string"},
                "creatorId": {"type": "string"}
            }
        },
        "SignUpRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string", "minLength": 3},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "SignInRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "RefreshRequest": {
            "type": "object",
            "required": ["refreshToken"],
            "properties": {"refreshToken": {"type": "string"}}
        },
        "CreatePostRequest": {
            "type": "object",
            "required": ["title", "content"],
            "properties": {
                "title": {"type": "string", "minLength": 3},
                "content": {"type": "string", "minLength": 10},
                "imageUrl": {"type": "string"},
                "tags": {"type": "string"}
            }
        },
        "UpdatePostRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "minLength": 3},
                "content": {"type": "string", "minLength": 10},
                "imageUrl": {"type": "string"},
                "tags": {"type": "string"}
            }
        },
        "PresignedURLRequest": {
            "type": "object",
            "required": ["filename"],
            "properties": {"filename": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "Users, posts and uploads",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
