// Package docs holds the swagger spec served at /swagger.
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
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"429": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"429": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/api/members": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "List members",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Member"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"members"
				],
				"summary": "Create a new member",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Member"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MemberRequest"
						}
					}
				]
			}
		},
		"/api/members/code/{code}": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "Get member by code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Member"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "code",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/members/{id}": {
			"get": {
				"tags": [
					"members"
				],
				"summary": "Get member details",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Member"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Member ID"
					}
				]
			},
			"put": {
				"tags": [
					"members"
				],
				"summary": "Update a member",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Member"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Member ID"
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.MemberRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"members"
				],
				"summary": "Delete a member",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Member ID"
					}
				]
			}
		},
		"/api/user_accounts": {
			"get": {
				"tags": [
					"user_accounts"
				],
				"summary": "List staff accounts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.UserAccountResponse"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"user_accounts"
				],
				"summary": "Create a staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserAccountResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateUserAccountRequest"
						}
					}
				]
			}
		},
		"/api/user_accounts/{id}": {
			"get": {
				"tags": [
					"user_accounts"
				],
				"summary": "Get staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserAccountResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "User account ID"
					}
				]
			},
			"put": {
				"tags": [
					"user_accounts"
				],
				"summary": "Update staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserAccountResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "User account ID"
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateUserAccountRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"user_accounts"
				],
				"summary": "Delete staff account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "User account ID"
					}
				]
			}
		},
		"/api/books": {
			"get": {
				"tags": [
					"books"
				],
				"summary": "List books",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Book"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"books"
				],
				"summary": "Create a book",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Book"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BookRequest"
						}
					}
				]
			}
		},
		"/api/books/pagination": {
			"get": {
				"tags": [
					"books"
				],
				"summary": "Paginated books",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PaginatedBooks"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"default": 1,
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 10,
						"name": "pageSize",
						"in": "query"
					}
				]
			}
		},
		"/api/books/isbn/{isbn}": {
			"get": {
				"tags": [
					"books"
				],
				"summary": "Get book by ISBN",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Book"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "isbn",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/books/{id}": {
			"get": {
				"tags": [
					"books"
				],
				"summary": "Get book",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Book"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book ID"
					}
				]
			},
			"put": {
				"tags": [
					"books"
				],
				"summary": "Update book",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Book"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book ID"
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.BookRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"books"
				],
				"summary": "Delete book",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book ID"
					}
				]
			}
		},
		"/api/book_issues": {
			"get": {
				"tags": [
					"book_issues"
				],
				"summary": "List book issues",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.BookIssueResponse"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"book_issues"
				],
				"summary": "Issue a book",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.BookIssue"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateBookIssueRequest"
						}
					}
				]
			}
		},
		"/api/book_issues/{id}": {
			"get": {
				"tags": [
					"book_issues"
				],
				"summary": "Get book issue",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BookIssueResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book issue ID"
					}
				]
			},
			"put": {
				"tags": [
					"book_issues"
				],
				"summary": "Update book issue",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.BookIssue"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book issue ID"
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateBookIssueRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"book_issues"
				],
				"summary": "Delete book issue",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Book issue ID"
					}
				]
			}
		},
		"/api/authors": {
			"get": {
				"tags": [
					"authors"
				],
				"summary": "List authors",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Author"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"authors"
				],
				"summary": "Create an author",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Author"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateAuthorRequest"
						}
					}
				]
			}
		},
		"/api/authors/{id}": {
			"get": {
				"tags": [
					"authors"
				],
				"summary": "Get author",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Author"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"format": "int64",
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Author ID"
					}
				]
			}
		},
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/ping": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Ping",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"details": {},
				"timestamp": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"dto.MessageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"dto.RegisterRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"userRoleId": {
					"type": "integer"
				}
			},
			"required": [
				"email",
				"password",
				"userRoleId",
				"username"
			]
		},
		"dto.AuthUser": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"userRoleId": {
					"type": "integer"
				},
				"active": {
					"type": "boolean"
				}
			}
		},
		"dto.AuthResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/dto.AuthUser"
				}
			}
		},
		"dto.MemberRequest": {
			"type": "object",
			"properties": {
				"fullname": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"expiry_date": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				}
			},
			"required": [
				"address",
				"date_of_birth",
				"email",
				"expiry_date",
				"fullname",
				"is_active",
				"phone_number",
				"start_date"
			]
		},
		"models.Member": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"member_code": {
					"type": "string"
				},
				"fullname": {
					"type": "string"
				},
				"date_of_birth": {
					"type": "string",
					"format": "date-time"
				},
				"address": {
					"type": "string"
				},
				"phone_number": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"start_date": {
					"type": "string",
					"format": "date-time"
				},
				"expiry_date": {
					"type": "string",
					"format": "date-time"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.CreateUserAccountRequest": {
			"type": "object",
			"properties": {
				"user_role_id": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"is_activated": {
					"type": "boolean"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateUserAccountRequest": {
			"type": "object",
			"properties": {
				"user_role_id": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"is_activated": {
					"type": "boolean"
				},
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"dto.UserRoleResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"user_role_name": {
					"type": "string"
				}
			}
		},
		"dto.UserAccountResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"email": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"is_activated": {
					"type": "boolean"
				},
				"is_active": {
					"type": "boolean"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				},
				"user_role": {
					"$ref": "#/definitions/dto.UserRoleResponse"
				}
			}
		},
		"dto.BookRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"authors": {
					"type": "string"
				},
				"isbn": {
					"type": "string"
				},
				"publisher": {
					"type": "string"
				},
				"publication_year": {
					"type": "integer"
				},
				"edition": {
					"type": "string"
				},
				"genre": {
					"type": "string"
				},
				"language": {
					"type": "string"
				},
				"number_of_pages": {
					"type": "integer"
				},
				"cover_image_url": {
					"type": "string"
				},
				"shelf_location": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"models.Book": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				},
				"authors": {
					"type": "string"
				},
				"isbn": {
					"type": "string"
				},
				"publisher": {
					"type": "string"
				},
				"publication_year": {
					"type": "integer"
				},
				"edition": {
					"type": "string"
				},
				"genre": {
					"type": "string"
				},
				"language": {
					"type": "string"
				},
				"number_of_pages": {
					"type": "integer"
				},
				"cover_image_url": {
					"type": "string"
				},
				"shelf_location": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"dto.PaginatedBooks": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Book"
					}
				},
				"totalCount": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"currentPage": {
					"type": "integer"
				}
			}
		},
		"models.Author": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				}
			}
		},
		"dto.CreateAuthorRequest": {
			"type": "object",
			"properties": {
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				}
			},
			"required": [
				"firstName",
				"lastName"
			]
		},
		"dto.CreateBookIssueRequest": {
			"type": "object",
			"properties": {
				"member_id": {
					"type": "integer"
				},
				"book_id": {
					"type": "integer"
				},
				"issue_date": {
					"type": "string"
				},
				"due_date": {
					"type": "string"
				},
				"return_date": {
					"type": "string"
				},
				"status_id": {
					"type": "integer"
				},
				"processed_by_id": {
					"type": "integer"
				}
			}
		},
		"dto.UpdateBookIssueRequest": {
			"type": "object",
			"properties": {
				"member_id": {
					"type": "integer"
				},
				"book_id": {
					"type": "integer"
				},
				"issue_date": {
					"type": "string"
				},
				"due_date": {
					"type": "string"
				},
				"return_date": {
					"type": "string"
				},
				"status_id": {
					"type": "integer"
				},
				"processed_by_id": {
					"type": "integer"
				}
			}
		},
		"models.BookIssue": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"transaction_code": {
					"type": "string"
				},
				"member_id": {
					"type": "integer"
				},
				"book_id": {
					"type": "integer"
				},
				"issue_date": {
					"type": "string",
					"format": "date-time"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				},
				"return_date": {
					"type": "string",
					"format": "date-time"
				},
				"status_id": {
					"type": "integer"
				},
				"processed_by_id": {
					"type": "integer"
				}
			}
		},
		"dto.BookIssueResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"transaction_code": {
					"type": "string"
				},
				"member_id": {
					"type": "integer"
				},
				"book_id": {
					"type": "integer"
				},
				"issue_date": {
					"type": "string",
					"format": "date-time"
				},
				"due_date": {
					"type": "string",
					"format": "date-time"
				},
				"return_date": {
					"type": "string",
					"format": "date-time"
				},
				"status_id": {
					"type": "integer"
				},
				"processed_by_id": {
					"type": "integer"
				},
				"book": {
					"type": "object",
					"properties": {
						"id": {
							"type": "integer"
						},
						"isbn": {
							"type": "string"
						},
						"title": {
							"type": "string"
						}
					}
				},
				"member": {
					"type": "object",
					"properties": {
						"id": {
							"type": "integer"
						},
						"member_code": {
							"type": "string"
						},
						"fullname": {
							"type": "string"
						},
						"is_active": {
							"type": "boolean"
						}
					}
				},
				"processed_by": {
					"type": "object",
					"properties": {
						"id": {
							"type": "integer"
						},
						"username": {
							"type": "string"
						},
						"email": {
							"type": "string"
						},
						"user_role_name": {
							"type": "string"
						}
					}
				},
				"status": {
					"type": "object",
					"properties": {
						"id": {
							"type": "integer"
						},
						"name": {
							"type": "string"
						}
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Bearer token: \"Bearer <token>\"",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:3000",
	BasePath:		 "/",
	Schemes:		  []string{"http", "https"},
	Title:			"Library Management API",
	Description:	  "REST backend for members, staff accounts, books, authors and book issues",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
