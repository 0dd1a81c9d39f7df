package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

type ServiceResult struct {
	StatusCode int    `json:"-"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

type RateLimitResponse struct {
	Limit      int    `json:"limit"`
	Window     string `json:"window"`
	RetryAfter string `json:"retry_after"`
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

// ToJSON renders the uniform response envelope: {success, message, data} on
// success, {success: false, error} on failure. Failure payloads (validation
// details) ride along in data when present.
func (result *ServiceResult) ToJSON() gin.H {
	if result.IsError() {
		body := gin.H{
			"success": false,
			"error":   result.Message,
		}
		if result.Data != nil {
			body["data"] = result.Data
		}
		return body
	}

	return gin.H{
		"success": true,
		"message": result.Message,
		"data":    result.Data,
	}
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}
