// Package httperr defines the JSON error envelope every endpoint returns.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope serialized on error. Status is carried for the
// error middleware but never rendered in the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError aborts the request with the envelope. The client sees msg;
// err itself is attached to the gin context so the logging and error
// middleware can record it. err must not be nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
