// Package docs регистрирует описание API для swag; держать в синхронизации с аннотациями хендлеров.
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
        "/analyses": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Сопоставляет навыки из текста резюме с вакансией (или со всем словарём, если вакансия пустая).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Анализ"],
                "summary": "Анализ текста резюме",
                "parameters": [
                    {
                        "description": "Текст резюме и вакансии",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.createAnalysisRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue access token",
                "parameters": [
                    {
                        "description": "client credentials",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.tokenRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.Token"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "auth is disabled", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/catalog/sections": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Каталог"],
                "summary": "Секции резюме и их заголовки",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/handlers.sectionDTO"}}
                        }
                    }
                }
            }
        },
        "/catalog/skills": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Каталог"],
                "summary": "Словарь навыков",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/handlers.skillDTO"}}
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}}
                }
            }
        },
        "/resume/analyze": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Принимает файл резюме (PDF, DOCX или TXT) и необязательный текст вакансии, возвращает оценку, навыки, секции и рекомендации.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Анализ резюме и рекомендации по улучшению",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Файл резюме (PDF, DOCX или TXT); допускается поле file",
                        "name": "resume_file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Текст вакансии",
                        "name": "job_description",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.analyzeUploadResponse"}},
                    "400": {"description": "Ошибка валидации или чтения файла", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервиса", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "analysis.Result": {
            "type": "object",
            "properties": {
                "categorizedSuggestions": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                },
                "matchedSkills": {"type": "array", "items": {"type": "string"}},
                "missingSkills": {"type": "array", "items": {"type": "string"}},
                "requiredSkills": {"type": "array", "items": {"type": "string"}},
                "requiredSource": {"type": "string"},
                "resumeSkills": {"type": "array", "items": {"type": "string"}},
                "score": {"type": "number"},
                "sectionOrder": {"type": "array", "items": {"type": "string"}},
                "sections": {"type": "object", "additionalProperties": {"type": "string"}},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "auth.Token": {
            "type": "object",
            "properties": {
                "expiresAt": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "handlers.analyzeUploadResponse": {
            "type": "object",
            "properties": {
                "documentId": {"type": "string"},
                "filename": {"type": "string"},
                "requestId": {"type": "string"},
                "result": {"$ref": "#/definitions/analysis.Result"},
                "sizeB": {"type": "integer"}
            }
        },
        "handlers.createAnalysisRequest": {
            "type": "object",
            "required": ["resumeText"],
            "properties": {
                "jobDescription": {"type": "string"},
                "resumeText": {"type": "string"}
            }
        },
        "handlers.sectionDTO": {
            "type": "object",
            "properties": {
                "aliases": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"}
            }
        },
        "handlers.skillDTO": {
            "type": "object",
            "properties": {
                "keywords": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"}
            }
        },
        "handlers.tokenRequest": {
            "type": "object",
            "required": ["clientId", "password"],
            "properties": {
                "clientId": {"type": "string", "maxLength": 128},
                "password": {"type": "string", "maxLength": 72}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "presenter.StatusResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Токен авторизации. Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resume-analyzer API",
	Description:      "Сервис оценки резюме: извлекает текст из PDF/DOCX/TXT, находит навыки по словарю, сравнивает их с вакансией и выдаёт рекомендации.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
