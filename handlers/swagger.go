package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the user service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>userhub — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the user endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "userhub", "version": "v0.1.0" },
  "paths": {
    "/api/v1/users": {
      "post": {
        "summary": "Create a user record (name required, trimmed)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"role":{"type":"string"},"organization":{"type":"string"}}}}}},
        "responses": { "201": { "description": "user created" }, "400": { "description": "validation failure (field named in response)" } }
      },
      "get": { "summary": "List users", "responses": { "200": { "description": "user list" } } }
    },
    "/api/v1/users/{id}": {
      "get": { "summary": "Get a user by id", "responses": { "200": { "description": "user" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Rename a user (same name contract as create)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"}}}}}}, "responses": { "200": { "description": "renamed" }, "400": { "description": "validation failure" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a user", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/v1/users/{id}/avatar": {
      "post": { "summary": "Upload an avatar (multipart file part)", "responses": { "200": { "description": "stored" }, "503": { "description": "object storage not configured" } } },
      "get": { "summary": "Download an avatar (use ?presign=true for a URL)", "responses": { "200": { "description": "avatar" }, "404": { "description": "no avatar" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
