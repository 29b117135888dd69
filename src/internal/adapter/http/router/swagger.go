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
  <title>Time Deposit Registry API Docs</title>
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
    "title": "Time Deposit Registry API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/time-deposits": {
      "post": {
        "summary": "Register a time deposit",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "customerName", "amount", "interestRate", "termDays"],
                "properties": {
                  "accountNumber": {"type": "string", "pattern": "^[0-9]{8,20}$"},
                  "customerName": {"type": "string", "minLength": 2, "maxLength": 100},
                  "amount": {"type": "number", "minimum": 100.00},
                  "interestRate": {"type": "number", "minimum": 0.01, "maximum": 20.00},
                  "termDays": {"type": "integer", "minimum": 30, "maximum": 3650}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Deposit registered"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "409": {"description": "Account name conflict or duplicate deposit"},
          "500": {"description": "Server error"}
        }
      },
      "get": {
        "summary": "List all time deposits with customer details",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "responses": {
          "200": {"description": "Deposits fetched"},
          "401": {"description": "Unauthorized"},
          "500": {"description": "Server error"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
