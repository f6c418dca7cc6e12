// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

// apiClient calls the service as a single user. With authentication
// disabled the bearer token is taken verbatim as the user ID.
type apiClient struct {
	t       *testing.T
	baseURL string
	userID  string
	client  *http.Client
}

func newClient(t *testing.T, userID string) *apiClient {
	t.Helper()
	return &apiClient{
		t:       t,
		baseURL: testEnv.BaseURL,
		userID:  userID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs the request and decodes the data envelope into out when the
// status matches wantStatus. The response body is returned for error cases.
func (c *apiClient) do(method, path string, body any, wantStatus int, out any) string {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		c.t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.userID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("failed to read response body: %v", err)
	}

	if resp.StatusCode != wantStatus {
		c.t.Fatalf("%s %s: expected status %d, got %d: %s", method, path, wantStatus, resp.StatusCode, string(raw))
	}

	if out != nil {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			c.t.Fatalf("failed to unmarshal envelope: %v: %s", err, string(raw))
		}
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			c.t.Fatalf("failed to unmarshal data: %v: %s", err, string(envelope.Data))
		}
	}
	return string(raw)
}

func (c *apiClient) get(path string, wantStatus int, out any) string {
	return c.do(http.MethodGet, path, nil, wantStatus, out)
}

func (c *apiClient) post(path string, body any, wantStatus int, out any) string {
	return c.do(http.MethodPost, path, body, wantStatus, out)
}

func (c *apiClient) patch(path string, body any, wantStatus int, out any) string {
	return c.do(http.MethodPatch, path, body, wantStatus, out)
}

func (c *apiClient) delete(path string, wantStatus int) string {
	return c.do(http.MethodDelete, path, nil, wantStatus, nil)
}

// minimal response shapes, kept local so the suite only depends on the wire format

type organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type membership struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type board struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type list struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SortOrder int64  `json:"sort_order"`
	Cards     []card `json:"cards,omitempty"`
}

type card struct {
	ID        string `json:"id"`
	ListID    string `json:"list_id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	SortOrder int64  `json:"sort_order"`
}

type activityEntry struct {
	Action string  `json:"action"`
	Detail *string `json:"detail"`
}

type invite struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Token          string `json:"token"`
	Link           string `json:"link,omitempty"`
}

func boardPath(boardID string, parts ...string) string {
	p := "/api/v0/boards/" + boardID
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func orgPath(orgID string, parts ...string) string {
	p := "/api/v0/organizations/" + orgID
	for _, part := range parts {
		p += "/" + part
	}
	return p
}
