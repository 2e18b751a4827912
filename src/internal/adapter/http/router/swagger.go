package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Saudi Banks Lookup API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Saudi Banks Lookup API",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    },
    "parameters": {
      "Lang": {
        "name": "lang",
        "in": "query",
        "required": false,
        "description": "BCP 47 tag selecting the localized name; falls back to Accept-Language",
        "schema": {"type": "string", "example": "ar"}
      }
    }
  },
  "paths": {
    "/get-banks": {
      "get": {
        "summary": "List every registered bank identifier",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {
            "name": "activeOnly",
            "in": "query",
            "required": false,
            "schema": {"type": "boolean", "default": false}
          },
          {"$ref": "#/components/parameters/Lang"}
        ],
        "responses": {
          "200": {"description": "Banks fetched"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/get-bank": {
      "get": {
        "summary": "Get a bank by its two-digit IBAN identifier",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {
            "name": "identifier",
            "in": "query",
            "required": true,
            "schema": {"type": "string", "pattern": "^[0-9]+$", "example": "05"}
          },
          {"$ref": "#/components/parameters/Lang"}
        ],
        "responses": {
          "200": {"description": "Bank fetched"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Bank not found"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/get-bank-by-iban": {
      "get": {
        "summary": "Resolve the issuing bank of a 24-character SA IBAN",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {
            "name": "iban",
            "in": "query",
            "required": true,
            "schema": {"type": "string", "example": "SA0380000000608010167519"}
          },
          {"$ref": "#/components/parameters/Lang"}
        ],
        "responses": {
          "200": {"description": "Bank fetched"},
          "400": {"description": "Validation error or malformed IBAN"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Bank not found"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/healthz": {
      "get": {
        "summary": "Liveness probe",
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`
