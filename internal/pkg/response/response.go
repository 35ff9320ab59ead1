// Package response renders the uniform JSON envelope used by every endpoint:
// {success, message, data, code?}. Error is the single place where service
// errors are classified into HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/solvex-capital/marketing-core/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    string      `json:"code,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// includeStack is enabled outside production so 500 responses carry a trace.
var includeStack = false

// SetIncludeStack toggles stack traces on internal-error responses. Call once
// at startup; never enable in production.
func SetIncludeStack(enabled bool) { includeStack = enabled }

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail sends an error envelope with the given status.
func Fail(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, Code: code})
}

// BadRequest sends a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message, apperror.CodeValidation)
}

// NotFound sends a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message, apperror.CodeNotFound)
}

// Unauthorized sends a 401 envelope.
func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "You are not authorized to access this resource", apperror.CodeUnauthorized)
}

// TooManyRequests sends a 429 envelope.
func TooManyRequests(c *gin.Context, message, code string) {
	if code == "" {
		code = apperror.CodeRateLimited
	}
	Fail(c, http.StatusTooManyRequests, message, code)
}

// Error classifies err and sends the matching envelope. This is the only
// status-mapping point; services re-throw storage errors untransformed.
func Error(c *gin.Context, err error) {
	status, envelope := Classify(err)
	if status == http.StatusInternalServerError && includeStack {
		envelope.Stack = string(debug.Stack())
	}
	c.AbortWithStatusJSON(status, envelope)
}

// Classify maps an error onto (status, envelope) without writing a response.
func Classify(err error) (int, Envelope) {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status, Envelope{Success: false, Message: appErr.Message, Code: appErr.Code}
	}

	var bindErrs validator.ValidationErrors
	if errors.As(err, &bindErrs) {
		return http.StatusBadRequest, Envelope{Success: false, Message: "Validation failed: " + err.Error(), Code: apperror.CodeValidation}
	}

	// Body decode failures from ShouldBindJSON are client errors, not ours.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return http.StatusBadRequest, Envelope{
			Success: false,
			Message: fmt.Sprintf("Invalid value for field %q: expected %s", typeErr.Field, typeErr.Type),
			Code:    apperror.CodeValidation,
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return http.StatusBadRequest, Envelope{Success: false, Message: "Malformed JSON in request body", Code: apperror.CodeValidation}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, Envelope{Success: false, Message: "Request body is required", Code: apperror.CodeValidation}
	}

	if isDuplicateKey(err) {
		return http.StatusConflict, Envelope{Success: false, Message: duplicateKeyMessage(err), Code: apperror.CodeDuplicateKey}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, Envelope{Success: false, Message: "Requested resource not found", Code: apperror.CodeNotFound}
	}

	return http.StatusInternalServerError, Envelope{Success: false, Message: "Internal server error", Code: apperror.CodeInternal}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// duplicateKeyMessage inspects the driver error text for the violated column
// so common conflicts read naturally instead of echoing SQL.
func duplicateKeyMessage(err error) string {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "slug"):
		return "A record with this slug already exists. Please choose a different slug."
	case strings.Contains(text, "name"):
		return "A record with this name already exists. Please choose a different name."
	case strings.Contains(text, "blog_id"):
		return "A blog with this ID already exists."
	case strings.Contains(text, "type_id"):
		return "A blog type with this ID already exists."
	case strings.Contains(text, "card_id"):
		return "An investment card with this ID already exists."
	default:
		return "Duplicate value. Please choose a different value."
	}
}
