package serverutils

import "github.com/gofiber/fiber/v2"

type ResponseEnvelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) *ResponseEnvelope {
	return &ResponseEnvelope{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Success: false,
		Code:    code,
		Message: message,
	}
}
