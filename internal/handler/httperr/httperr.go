package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable codes carried in Response.Detail.
const (
	CodeValidation       = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicateBooking = "DUPLICATE_BOOKING"
	CodeNoCapacity       = "NO_CAPACITY"
	CodeInvalidTicket    = "INVALID_TICKET"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternal         = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type Detail struct {
	Code string `json:"code"`
}

// preserves original error for future monitoring
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

func AbortWithCode(c *gin.Context, status int, err error, msg, code string) {
	AbortWithError(c, status, err, msg, Detail{Code: code})
}

// Abort responds without an underlying error, e.g. for auth failures.
func Abort(c *gin.Context, status int, msg, code string) {
	resp := Response{Status: status, Detail: Detail{Code: code}}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(status, resp)
}
