// Package docs is generated by swag from the handler annotations in
// internal/api. Regenerate with:
//
//	swag init -g main.go -d ./,./internal/api,./internal/siasisten,./internal/finance,./internal/overlap
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login ke SIASISTEN",
                "parameters": [
                    {"description": "Kredensial SSO", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.LoginFailure"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.LoginFailure"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.LoginFailure"}}
                }
            }
        },
        "/vacancies": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Daftar lowongan asisten",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/siasisten.Vacancy"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logs": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Semua log semester aktif beserta jadwal yang bertabrakan",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ActiveLogsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logs/overlaps": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Pasangan log yang waktunya bertabrakan",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/overlap.Pair"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logs/{id}": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Log sebuah lowongan",
                "parameters": [{"type": "string", "description": "LogID lowongan", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/siasisten.LogPage"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "put": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Ubah log",
                "parameters": [
                    {"type": "string", "description": "LogID", "name": "id", "in": "path", "required": true},
                    {"description": "Isi log", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/siasisten.LogForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Buat log baru",
                "parameters": [
                    {"type": "string", "description": "Create Log Link ID", "name": "id", "in": "path", "required": true},
                    {"description": "Isi log", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/siasisten.LogForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Log"],
                "summary": "Hapus log",
                "parameters": [{"type": "string", "description": "LogID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/finance": {
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Finance"],
                "summary": "Pembayaran satu bulan",
                "parameters": [{"description": "Tahun dan bulan", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.FinanceRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/siasisten.FinanceRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/finance/history": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Finance"],
                "summary": "Riwayat pembayaran beberapa bulan terakhir",
                "parameters": [{"type": "integer", "description": "Jumlah bulan (default 12, maks 24)", "name": "months", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/siasisten.FinanceRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/finance/stats": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Finance"],
                "summary": "Ringkasan pembayaran",
                "parameters": [{"type": "integer", "description": "Jumlah bulan (default 12, maks 24)", "name": "months", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/finance.Stats"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "api.LoginRequest": {"type": "object", "required": ["password", "username"], "properties": {"password": {"type": "string"}, "username": {"type": "string"}}},
        "api.LoginResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "user": {"$ref": "#/definitions/siasisten.Session"}}},
        "api.LoginFailure": {"type": "object", "properties": {"success": {"type": "boolean"}, "error": {"type": "string"}}},
        "api.FinanceRequest": {"type": "object", "required": ["month", "year"], "properties": {"month": {"type": "integer", "maximum": 12, "minimum": 1}, "username": {"type": "string"}, "year": {"type": "integer", "maximum": 2100, "minimum": 2000}}},
        "api.ActiveLogsResponse": {"type": "object", "properties": {
            "logs": {"type": "array", "items": {"$ref": "#/definitions/siasisten.ActivityLog"}},
            "overlaps": {"type": "array", "items": {"$ref": "#/definitions/overlap.Pair"}},
            "vacancies": {"type": "array", "items": {"$ref": "#/definitions/siasisten.ActiveVacancy"}}
        }},
        "finance.Stats": {"type": "object", "properties": {
            "averageMonthly": {"type": "number"}, "maxMonthly": {"type": "number"}, "minMonthly": {"type": "number"},
            "monthlyTotals": {"type": "object", "additionalProperties": {"type": "number"}},
            "statusTotals": {"type": "object", "additionalProperties": {"type": "number"}},
            "totalAmount": {"type": "number"}
        }},
        "overlap.Summary": {"type": "object", "properties": {"course": {"type": "string"}, "date": {"type": "string"}, "description": {"type": "string"}, "endTime": {"type": "string"}, "startTime": {"type": "string"}}},
        "overlap.Pair": {"type": "object", "properties": {"log1": {"$ref": "#/definitions/overlap.Summary"}, "log2": {"$ref": "#/definitions/overlap.Summary"}}},
        "siasisten.Session": {"type": "object", "properties": {"csrfToken": {"type": "string"}, "sessionId": {"type": "string"}, "username": {"type": "string"}}},
        "siasisten.Vacancy": {"type": "object", "properties": {
            "Dosen": {"type": "string"}, "Log Asisten Link": {"type": "string"}, "LogID": {"type": "string"},
            "Mata Kuliah": {"type": "string"}, "No": {"type": "string"}, "Semester": {"type": "string"}, "Tahun Ajaran": {"type": "string"}
        }},
        "siasisten.ActiveVacancy": {"type": "object", "properties": {
            "Dosen": {"type": "string"}, "Log Asisten Link": {"type": "string"}, "LogID": {"type": "string"},
            "Mata Kuliah": {"type": "string"}, "No": {"type": "string"}, "Semester": {"type": "string"}, "Tahun Ajaran": {"type": "string"},
            "Create Log Link": {"type": "string"}, "Create Log Link ID": {"type": "string"},
            "logs": {"type": "array", "items": {"$ref": "#/definitions/siasisten.ActivityLog"}}
        }},
        "siasisten.ActivityLog": {"type": "object", "properties": {
            "Deskripsi Tugas": {"type": "string"}, "Durasi (Menit)": {"type": "integer"}, "Jam Mulai": {"type": "string"},
            "Jam Selesai": {"type": "string"}, "Kategori": {"type": "string"}, "LogID": {"type": "string"},
            "Mata Kuliah": {"type": "string"}, "No": {"type": "string"}, "Operation": {"type": "string"},
            "Pesan Link": {"type": "string"}, "Status": {"type": "string"}, "Tanggal": {"type": "string"}
        }},
        "siasisten.LogPage": {"type": "object", "properties": {
            "createLogId": {"type": "string"}, "createLogLink": {"type": "string"},
            "logs": {"type": "array", "items": {"$ref": "#/definitions/siasisten.ActivityLog"}}
        }},
        "siasisten.Date": {"type": "object", "properties": {"day": {"type": "string", "example": "15"}, "month": {"type": "string", "example": "1"}, "year": {"type": "string", "example": "2024"}}},
        "siasisten.Clock": {"type": "object", "properties": {"hour": {"type": "string", "example": "8"}, "minute": {"type": "string", "example": "30"}}},
        "siasisten.LogForm": {"type": "object", "required": ["deskripsi", "kategori_log"], "properties": {
            "deskripsi": {"type": "string"}, "kategori_log": {"type": "string"},
            "tanggal": {"$ref": "#/definitions/siasisten.Date"},
            "waktu_mulai": {"$ref": "#/definitions/siasisten.Clock"},
            "waktu_selesai": {"$ref": "#/definitions/siasisten.Clock"}
        }},
        "siasisten.FinanceRecord": {"type": "object", "properties": {
            "Bulan": {"type": "string"}, "Honor_Per_Jam": {"type": "string"}, "Jumlah_Jam": {"type": "string"},
            "Jumlah_Pembayaran": {"type": "string"}, "Mata_Kuliah": {"type": "string"}, "NPM": {"type": "string"},
            "Nama": {"type": "string"}, "Status": {"type": "string"}
        }}
    },
    "securityDefinitions": {
        "SessionCookie": {"description": "sessionid=...; csrftoken=... (atau X-Session-Id + X-CSRFToken)", "type": "apiKey", "name": "Cookie", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SIASISTEN Dashboard API",
	Description:      "API yang membungkus SIASISTEN (login, lowongan, log, pembayaran).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
