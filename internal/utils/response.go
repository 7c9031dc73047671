package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData is the JSON envelope every API endpoint answers with.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, body ResponseData) {
	body.Status = status
	c.JSON(status, body)
}

// Success answers 200 with data.
func Success(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, ResponseData{Message: message, Data: data})
}

// Created answers 201 with the stored resource.
func Created(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, ResponseData{Message: message, Data: data})
}

// HTML sends an already rendered HTML fragment.
func HTML(c *gin.Context, body []byte) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// Error answers statusCode with a failure envelope. The message field is
// fixed; callers describe the problem in errorMessage.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	respond(c, statusCode, ResponseData{Message: "An error occurred", Error: errorMessage})
}

func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// RequestEntityTooLarge is used when a body trips the upload limit.
func RequestEntityTooLarge(c *gin.Context, errorMessage string) {
	Error(c, http.StatusRequestEntityTooLarge, errorMessage)
}

func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
