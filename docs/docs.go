// Package docs registers the swagger document served under /swagger.
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
        "/ping": {
            "get": {
                "summary": "Health check",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/orders": {
            "post": {
                "summary": "Create an order",
                "tags": [
                    "orders"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.OrderResponse"
                        }
                    }
                }
            },
            "get": {
                "summary": "List orders of a professional or a customer",
                "tags": [
                    "orders"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/response.OrderResponse"
                            }
                        }
                    }
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "summary": "Get an order",
                "tags": [
                    "orders"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.OrderResponse"
                        }
                    }
                }
            }
        },
        "/orders/{id}/transitions": {
            "post": {
                "summary": "Apply an event to an order",
                "tags": [
                    "orders"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.TransitionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.OrderResponse"
                        }
                    }
                }
            }
        },
        "/orders/{id}/summary": {
            "get": {
                "summary": "Payment summary of an order",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.PaymentSummaryResponse"
                        }
                    }
                }
            }
        },
        "/orders/{id}/payments": {
            "post": {
                "summary": "Record a payment",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.RecordPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.PaymentResponse"
                        }
                    }
                }
            },
            "get": {
                "summary": "List the payment ledger of an order",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/response.PaymentResponse"
                            }
                        }
                    }
                }
            }
        },
        "/orders/{id}/commission": {
            "get": {
                "summary": "Commission record of a completed order",
                "tags": [
                    "earnings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.CommissionResponse"
                        }
                    }
                }
            }
        },
        "/payments/{id}/confirm": {
            "patch": {
                "summary": "Confirm a pending payment",
                "tags": [
                    "payments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.PaymentResponse"
                        }
                    }
                }
            }
        },
        "/professionals/{id}/earnings": {
            "get": {
                "summary": "Earnings report",
                "tags": [
                    "earnings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.EarningsReportResponse"
                        }
                    }
                }
            }
        },
        "/professionals/{id}/earnings/export": {
            "get": {
                "summary": "Earnings table as plain text",
                "tags": [
                    "earnings"
                ],
                "produces": [
                    "text/plain"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/professionals/{id}/balance": {
            "get": {
                "summary": "Withdrawable balance",
                "tags": [
                    "withdrawals"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.BalanceResponse"
                        }
                    }
                }
            }
        },
        "/professionals/{id}/dashboard": {
            "get": {
                "summary": "Professional dashboard",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.ProfessionalDashboardResponse"
                        }
                    }
                }
            }
        },
        "/customers/{id}/dashboard": {
            "get": {
                "summary": "Customer dashboard",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.CustomerDashboardResponse"
                        }
                    }
                }
            }
        },
        "/withdrawals": {
            "post": {
                "summary": "Request a withdrawal",
                "tags": [
                    "withdrawals"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.WithdrawalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WithdrawalResponse"
                        }
                    }
                }
            }
        },
        "/withdrawals/{id}/settle": {
            "patch": {
                "summary": "Mark a withdrawal as paid out",
                "tags": [
                    "withdrawals"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.WithdrawalActionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.WithdrawalResponse"
                        }
                    }
                }
            }
        },
        "/settings/commission-rate": {
            "get": {
                "summary": "Current commission rate",
                "tags": [
                    "settings"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.CommissionRateResponse"
                        }
                    }
                }
            },
            "put": {
                "summary": "Update the commission rate",
                "tags": [
                    "settings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/request.CommissionRateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.CommissionRateResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "request.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "professional_id": {
                    "type": "string"
                },
                "total_price": {
                    "type": "number"
                },
                "quantity": {
                    "type": "integer"
                },
                "price_unit": {
                    "type": "string"
                },
                "quality_type": {
                    "type": "string"
                },
                "scheduled_at": {
                    "type": "string"
                },
                "order_notes": {
                    "type": "string"
                }
            }
        },
        "request.TransitionRequest": {
            "type": "object",
            "properties": {
                "event": {
                    "type": "string"
                },
                "new_price": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "request.RecordPaymentRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "method": {
                    "type": "string"
                },
                "recorded_by": {
                    "type": "string"
                },
                "payer_email": {
                    "type": "string"
                }
            }
        },
        "request.WithdrawalRequest": {
            "type": "object",
            "properties": {
                "professional_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "payout_method": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "request.WithdrawalActionRequest": {
            "type": "object",
            "properties": {
                "reference_id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "request.CommissionRateRequest": {
            "type": "object",
            "properties": {
                "rate": {
                    "type": "number"
                }
            }
        },
        "response.OrderResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "string"
                },
                "professional_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "total_price": {
                    "type": "number"
                },
                "total_paid_amount": {
                    "type": "number"
                },
                "quantity": {
                    "type": "integer"
                },
                "contact_revealed": {
                    "type": "boolean"
                },
                "order_date": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "response.PaymentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "order_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "method": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "recorded_by": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "response.PaymentSummaryResponse": {
            "type": "object",
            "properties": {
                "order_id": {
                    "type": "string"
                },
                "total_price": {
                    "type": "number"
                },
                "total_paid_amount": {
                    "type": "number"
                },
                "remaining_amount": {
                    "type": "number"
                },
                "payment_percentage": {
                    "type": "number"
                },
                "payment_status": {
                    "type": "string"
                }
            }
        },
        "response.CommissionResponse": {
            "type": "object",
            "properties": {
                "order_id": {
                    "type": "string"
                },
                "professional_id": {
                    "type": "string"
                },
                "order_total": {
                    "type": "number"
                },
                "rate_applied": {
                    "type": "number"
                },
                "commission_amount": {
                    "type": "number"
                },
                "net_earnings": {
                    "type": "number"
                },
                "completed_at": {
                    "type": "string"
                }
            }
        },
        "response.EarningsReportResponse": {
            "type": "object",
            "properties": {
                "professional_id": {
                    "type": "string"
                },
                "total_orders": {
                    "type": "integer"
                },
                "total_order_value": {
                    "type": "number"
                },
                "total_commission": {
                    "type": "number"
                },
                "total_earnings": {
                    "type": "number"
                },
                "average_rate": {
                    "type": "number"
                },
                "average_earnings_per_order": {
                    "type": "number"
                }
            }
        },
        "response.BalanceResponse": {
            "type": "object",
            "properties": {
                "professional_id": {
                    "type": "string"
                },
                "total_earnings": {
                    "type": "number"
                },
                "reserved": {
                    "type": "number"
                },
                "available": {
                    "type": "number"
                }
            }
        },
        "response.WithdrawalResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "professional_id": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "payout_method": {
                    "type": "string"
                },
                "reference_id": {
                    "type": "string"
                },
                "request_date": {
                    "type": "string"
                },
                "processed_at": {
                    "type": "string"
                }
            }
        },
        "response.ProfessionalDashboardResponse": {
            "type": "object",
            "properties": {
                "professional_id": {
                    "type": "string"
                },
                "orders": {
                    "type": "object"
                },
                "earnings": {
                    "type": "object"
                },
                "withdrawals": {
                    "type": "object"
                },
                "balance": {
                    "type": "object"
                }
            }
        },
        "response.CustomerDashboardResponse": {
            "type": "object",
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "orders": {
                    "type": "object"
                }
            }
        },
        "response.CommissionRateResponse": {
            "type": "object",
            "properties": {
                "rate": {
                    "type": "number"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Marketplace Billing API",
	Description:      "Order lifecycle, payments, commissions and withdrawals for the booking marketplace, backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
