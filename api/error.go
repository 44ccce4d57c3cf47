package api

import "fmt"

type Error struct {
	Code        int32        `json:"code"` // should be a repeat of the http response status code
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%v (%v)", e.Message, e.Code)
}

type FieldError struct {
	FieldName string   `json:"fieldName"`
	Errors    []string `json:"errors"`
}
