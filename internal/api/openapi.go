package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// openapiDoc serves the API description. The document is maintained by
// hand; the surface is small enough that a generator would cost more than
// it saves.
func (a *API) openapiDoc(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, []byte(openapiSpec))
}

const openapiSpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "inkwell-backend",
    "description": "Posts API with bearer-token session authentication.",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "session": {"type": "http", "scheme": "bearer"}
    },
    "schemas": {
      "Post": {
        "type": "object",
        "properties": {
          "id": {"type": "integer", "format": "int64"},
          "user_id": {"type": "integer", "format": "int64"},
          "title": {"type": "string"},
          "content": {"type": "string"},
          "created_at": {"type": "string", "format": "date-time"}
        }
      },
      "CreatePostRequest": {
        "type": "object",
        "required": ["title", "content"],
        "properties": {
          "title": {"type": "string"},
          "content": {"type": "string"}
        }
      }
    }
  },
  "paths": {
    "/health": {
      "get": {"responses": {"200": {"description": "OK"}}}
    },
    "/posts": {
      "get": {
        "responses": {
          "200": {
            "description": "All posts, newest first",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Post"}}}}
          }
        }
      },
      "post": {
        "security": [{"session": []}],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CreatePostRequest"}}}
        },
        "responses": {
          "201": {
            "description": "Created post",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Post"}}}
          },
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/users/{id}/posts": {
      "get": {
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64"}}],
        "responses": {
          "200": {
            "description": "Posts by the user, newest first",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Post"}}}}
          }
        }
      }
    },
    "/auth/me": {
      "get": {
        "security": [{"session": []}],
        "responses": {
          "200": {"description": "The authenticated user and session expiry"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/auth/sessions": {
      "get": {
        "security": [{"session": []}],
        "responses": {
          "200": {"description": "The caller's sessions"},
          "401": {"description": "Unauthorized"}
        }
      }
    }
  }
}`
