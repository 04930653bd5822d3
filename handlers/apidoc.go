package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>clubsite — Swagger</title>
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

// Minimal OpenAPI document describing the main endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "clubsite", "version": "v0.1.0" },
  "paths": {
    "/": { "get": { "summary": "Public club page", "responses": { "200": { "description": "rendered HTML" } } } },
    "/auth/login": {
      "post": {
        "summary": "Admin sign-in with email and password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token pair returned" }, "401": { "description": "incorrect email or password" }, "429": { "description": "too many attempts" } }
      }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/admin/dashboard": { "get": { "summary": "Snapshot of every collection for the panel", "responses": { "200": { "description": "snapshot" } } } },
    "/api/admin/schedule": { "get": { "summary": "List schedule slots", "responses": { "200": { "description": "slots" } } } },
    "/api/admin/schedule/slots": { "put": { "summary": "Create or replace a schedule slot", "responses": { "200": { "description": "saved slot" }, "400": { "description": "validation error" } } } },
    "/api/admin/news": { "get": { "summary": "List news posts including drafts" }, "post": { "summary": "Create a news post", "responses": { "201": { "description": "created" } } } },
    "/api/admin/flyers": { "get": { "summary": "List flyers including drafts" }, "post": { "summary": "Create a flyer", "responses": { "201": { "description": "created" } } } },
    "/api/admin/competitions": { "get": { "summary": "List competition events including drafts" }, "post": { "summary": "Create a competition event", "responses": { "201": { "description": "created" } } } },
    "/api/admin/sponsors": { "get": { "summary": "List sponsors" }, "post": { "summary": "Create a sponsor", "responses": { "201": { "description": "created" } } } },
    "/api/admin/uploads": { "post": { "summary": "Upload an image", "responses": { "201": { "description": "object key and URL" } } } },
    "/api/content/schedule": { "get": { "summary": "Published schedule slots" } },
    "/api/content/news": { "get": { "summary": "Published news posts" } },
    "/api/content/flyers": { "get": { "summary": "Published flyers" } },
    "/api/content/competitions": { "get": { "summary": "Published competitions split into upcoming and past" } },
    "/api/content/sponsors": { "get": { "summary": "Sponsor list in display order" } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
