// Package mhsapi is a Go client for the mhsapid REST API.
package mhsapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
)

type Client struct {
	baseURL string
	api     *resty.Client
}

// New creates a client for the server at baseURL, eg http://localhost:1380.
func New(baseURL string) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		baseURL: baseURL,
		api:     resty.New().SetBaseURL(baseURL),
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListActivities returns the activity directory keyed by activity name. The
// Name field on each returned activity is filled in from its key.
func (c *Client) ListActivities() (map[string]mhsmodel.Activity, error) {
	var directory map[string]mhsmodel.Activity

	resp, err := c.api.R().SetResult(&directory).Get("/activities")
	switch {
	case err != nil:
		return nil, err
	case resp.IsError():
		return nil, toErrorFromResponse(resp)
	}

	for name, activity := range directory {
		activity.Name = name
		directory[name] = activity
	}

	return directory, nil
}

// Signup registers email for the named activity and returns the server's
// confirmation message.
func (c *Client) Signup(activityName, email string) (string, error) {
	var result messageResponse

	resp, err := c.api.R().
		SetQueryParam("email", email).
		SetResult(&result).
		Post(activityPath(activityName, "signup"))
	switch {
	case err != nil:
		return "", err
	case resp.IsError():
		return "", toErrorFromResponse(resp)
	}

	return result.Message, nil
}

// Unregister removes email from the named activity and returns the server's
// confirmation message.
func (c *Client) Unregister(activityName, email string) (string, error) {
	var result messageResponse

	resp, err := c.api.R().
		SetQueryParam("email", email).
		SetResult(&result).
		Delete(activityPath(activityName, "unregister"))
	switch {
	case err != nil:
		return "", err
	case resp.IsError():
		return "", toErrorFromResponse(resp)
	}

	return result.Message, nil
}

func activityPath(activityName, action string) string {
	return fmt.Sprintf("/activities/%s/%s", url.PathEscape(activityName), action)
}
