package utils

import (
	"fmt"
	"net/http"
)

var messageError map[int]string

func LoadMessageError() {
	messageError = make(map[int]string)
	messageError[http.StatusOK] = "Successfully"
	messageError[http.StatusForbidden] = "Something when wrong, Your request has been rejected"
	messageError[http.StatusInternalServerError] = "Internal server error"
	messageError[http.StatusBadRequest] = "Something when wrong with your request"
	messageError[http.StatusUnauthorized] = "Unauthorized, Permission denied"
	messageError[http.StatusNotFound] = "Record not found, Please check your input"
	messageError[http.StatusCreated] = "Created successfully"
	messageError[http.StatusGatewayTimeout] = "Gateway time out"
	messageError[http.StatusConflict] = "Your input has been conflict with another data"
	messageError[http.StatusTooManyRequests] = "Too many request"
}

func MessageError() map[int]string {
	return messageError
}

// MissingColumnError is fatal for the whole batch: the source schema changed
// and guessing column names would silently corrupt every metric downstream.
type MissingColumnError struct {
	Source string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("source %s: missing required column %q", e.Source, e.Column)
}

// RowError records one excluded row. Rows are excluded rather than coerced so
// that a parse failure never turns into a NaN inside a revenue sum.
type RowError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: column %q value %q: %s", e.Row, e.Column, e.Value, e.Reason)
}

// FetchError wraps a remote source failure with the URL that failed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
