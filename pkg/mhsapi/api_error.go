package mhsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var ErrAPI = errors.New("mhs api")

// ErrorDetail describes the JSON that the server responds with when a request fails.
type ErrorDetail struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *ErrorDetail) Error() string {
	return fmt.Sprintf("(HTTP Status: %d) %s", e.StatusCode, e.Detail)
}

func toErrorFromResponse(resp *resty.Response) error {
	errorDetail := &ErrorDetail{StatusCode: resp.StatusCode()}
	if err := json.Unmarshal(resp.Body(), errorDetail); err != nil {
		return errors.Join(ErrAPI, fmt.Errorf("(HTTP Status: %d)- unable to parse json error response: %s", resp.StatusCode(), err))
	}

	return errors.Join(ErrAPI, errorDetail)
}

// NotFound returns true when err is a server response with status 404.
func NotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// BadRequest returns true when err is a server response with status 400.
func BadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	var errorDetail *ErrorDetail
	if !errors.As(err, &errorDetail) {
		return false
	}

	return errorDetail.StatusCode == status
}
