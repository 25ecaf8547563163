// Package docs holds the Swagger description of the KonsultaBot API.
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
        "/v1/chat/": {
            "post": {
                "description": "Accepts {query|message, language, session_id} and answers {response, confidence, source, session_id}. An unknown session_id starts a chat under that id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Messages"],
                "summary": "Chat (backend-compatible)",
                "parameters": [
                    {"description": "User message", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LegacyChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.LegacyChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats": {
            "get": {
                "description": "Returns every chat, most recently updated first.",
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "List chats",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ChatSession"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Start a chat",
                "parameters": [
                    {"description": "Optional title", "name": "chat", "in": "body", "schema": {"$ref": "#/definitions/api.CreateChatRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.ChatSession"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}": {
            "get": {
                "description": "Returns the chat metadata and all of its messages.",
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Get a chat",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.FullChat"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the chat, its messages and its tracked context.",
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Delete a chat",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}/title": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Rename a chat",
                "parameters": [
                    {"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true},
                    {"description": "New title", "name": "title", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateTitleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}/messages": {
            "post": {
                "description": "Resolves a user message and returns both stored messages together with how the answer was produced.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Messages"],
                "summary": "Send a message",
                "parameters": [
                    {"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true},
                    {"description": "User message", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SendMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SendMessageResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}/reset": {
            "post": {
                "description": "Forgets the device, problem and pending question of a chat. Messages are kept.",
                "produces": ["application/json"],
                "tags": ["Context"],
                "summary": "Reset conversation context",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/convo.Context"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}/context": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Context"],
                "summary": "Get conversation context",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/convo.Context"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/remote": {
            "get": {
                "description": "Shows the backend in use and the Gemini models that will be tried.",
                "produces": ["application/json"],
                "tags": ["Remote"],
                "summary": "Remote status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/remote.Status"}}
                }
            }
        },
        "/v1/remote/discover": {
            "post": {
                "description": "Probes the configured backend candidates and switches to the first reachable one.",
                "produces": ["application/json"],
                "tags": ["Remote"],
                "summary": "Re-discover backend",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/remote.Status"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Settings"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "New settings", "name": "settings", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.Settings"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Settings"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.CreateChatRequest": {"type": "object", "properties": {"title": {"type": "string", "example": "Laptop problem"}}},
        "api.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "api.LegacyChatRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string", "example": "my wifi is slow"},
                "message": {"type": "string"},
                "language": {"type": "string", "example": "english"},
                "session_id": {"type": "string"}
            }
        },
        "api.LegacyChatResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "confidence": {"type": "number"},
                "source": {"type": "string"},
                "session_id": {"type": "string"}
            }
        },
        "api.SendMessageRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "My HP laptop won't turn on"},
                "language": {"type": "string", "example": "english"}
            }
        },
        "api.StatusResponse": {"type": "object", "properties": {"status": {"type": "string"}}},
        "api.UpdateTitleRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string", "maxLength": 100, "minLength": 1, "example": "Printer keeps jamming"}}
        },
        "convo.Context": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "language": {"type": "string"},
                "device_type": {"type": "string"},
                "device_brand": {"type": "string"},
                "os_type": {"type": "string"},
                "problem_category": {"type": "string"},
                "specific_issue": {"type": "string"},
                "details": {"type": "string"},
                "asked_questions": {"type": "array", "items": {"type": "string"}},
                "conversation_history": {"type": "array", "items": {"$ref": "#/definitions/convo.Turn"}},
                "last_question": {"$ref": "#/definitions/convo.PendingQuestion"},
                "user_emotion": {"type": "string"},
                "success_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "convo.PendingQuestion": {
            "type": "object",
            "properties": {"context_key": {"type": "string"}, "text": {"type": "string"}, "asked_at": {"type": "string"}}
        },
        "convo.Turn": {
            "type": "object",
            "properties": {"role": {"type": "string"}, "text": {"type": "string"}, "timestamp": {"type": "string"}}
        },
        "model.ChatSession": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}
        },
        "model.FullChat": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/model.Message"}}
            }
        },
        "model.Message": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "chat_id": {"type": "string"},
                "text": {"type": "string"},
                "sender": {"type": "string"},
                "timestamp": {"type": "string"},
                "confidence": {"type": "number"},
                "source": {"type": "string"}
            }
        },
        "remote.Status": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "backend_url": {"type": "string"},
                "has_token": {"type": "boolean"},
                "gemini_configured": {"type": "boolean"},
                "gemini_models": {"type": "array", "items": {"type": "string"}}
            }
        },
        "resolver.Response": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "source": {"type": "string"},
                "confidence": {"type": "number"},
                "kind": {"type": "string"},
                "steps": {"type": "array", "items": {"type": "string"}},
                "context_key": {"type": "string"},
                "issue_key": {"type": "string"},
                "model": {"type": "string"}
            }
        },
        "service.SendMessageResult": {
            "type": "object",
            "properties": {
                "chat_id": {"type": "string"},
                "user_message": {"$ref": "#/definitions/model.Message"},
                "bot_message": {"$ref": "#/definitions/model.Message"},
                "response": {"$ref": "#/definitions/resolver.Response"}
            }
        },
        "service.Settings": {
            "type": "object",
            "required": ["default_language"],
            "properties": {
                "default_language": {"type": "string"},
                "online_enabled": {"type": "boolean"},
                "preferred_model": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "KonsultaBot API",
	Description:      "Campus IT helpdesk assistant: device troubleshooting, campus information and chat history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
