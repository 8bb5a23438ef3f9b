package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

var businessStatus = map[string]int{
	CodeNotFound:            http.StatusNotFound,
	CodeDuplicate:           http.StatusConflict,
	CodeInvalidReference:    http.StatusUnprocessableEntity,
	CodeConstraintViolation: http.StatusUnprocessableEntity,
	CodeInvalidState:        http.StatusConflict,
	CodeInvalidDateOrTime:   http.StatusBadRequest,
}

var businessMessage = map[string]string{
	CodeNotFound:            "Record not found.",
	CodeDuplicate:           "A record with the same unique value already exists.",
	CodeInvalidReference:    "A referenced record does not exist.",
	CodeConstraintViolation: "The record violates a storage constraint.",
	CodeInvalidState:        "The appointment is not in a state that allows this change.",
	CodeInvalidDateOrTime:   "Invalid date or time.",
}

// Respond escreve o erro com o status correspondente ao código de negócio.
// Erros desconhecidos viram 500 com fallbackCode.
func Respond(c *gin.Context, err error, fallbackCode string) {
	code := CodeOf(FromDB(err))
	status, ok := businessStatus[code]
	if !ok {
		Internal(c, fallbackCode, "Internal error.")
		return
	}
	Write(c, status, code, businessMessage[code])
}
