package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope used by the metadata endpoints (strategies,
// health). The analyze and suggest payloads are exempt: their wire shape is
// fixed by the client contract and stays bare.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondOK writes a 200 envelope.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Data: data, Message: message})
}

// RespondWithError writes an error envelope, unwrapping RequestError
// statuses and hiding wrapped causes from the body.
func RespondWithError(c *gin.Context, err error) {
	if reqErr, ok := err.(*RequestError); ok {
		c.JSON(reqErr.StatusCode, ErrorResponse{Error: reqErr.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
