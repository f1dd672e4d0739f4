// Package docs holds the swagger document for priced.
// Regenerate with `swag init -g cmd/priced/docs.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "priced maintainers"
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
        "/model": {
            "get": {
                "produces": ["application/json"],
                "summary": "Loaded model",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/types.ModelInfo"}
                    }
                }
            }
        },
        "/predict": {
            "post": {
                "description": "Runs the loaded model on one feature vector.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Predict a price",
                "parameters": [
                    {
                        "description": "Feature vector",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.PredictRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "error": {"type": "string", "example": "invalid JSON body"}
            }
        },
        "types.ModelInfo": {
            "type": "object",
            "properties": {
                "feature_names": {"type": "array", "items": {"type": "string"}},
                "kind": {"type": "string", "example": "forest"},
                "loaded_at": {"type": "integer", "example": 1700000000},
                "n_features": {"type": "integer", "example": 11},
                "source": {"type": "string", "example": "model.json"},
                "target": {"type": "string", "example": "selling_price"},
                "trees": {"type": "integer", "example": 100}
            }
        },
        "types.PredictRequest": {
            "type": "object",
            "properties": {
                "features": {"type": "array", "items": {"type": "number"}, "example": [4, 2014, 145500, 1, 1, 1, 1, 23.4, 1248, 74, 5]}
            }
        },
        "types.PredictResponse": {
            "type": "object",
            "properties": {
                "predicted_price": {"type": "number", "example": 452310.75}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "priced API",
	Description:      "HTTP API for single-model price prediction.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
