// Copyright 2025 Savor Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rtdb is a REST client for a hosted realtime document database.
// Data is addressed by slash-separated paths; a node is read or written as a
// single JSON document at "{base}/{path}.json".
package rtdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 // seconds

// Conf holds the document database connection configuration.
type Conf struct {
	BaseURL   string
	AuthToken string
	Timeout   int // per-request timeout in seconds
}

// Client is a stateless HTTP client for the document database. Construct it
// once at startup and pass it by reference; there is nothing to close.
type Client struct {
	conf Conf
	http *resty.Client
}

func NewClient(conf Conf) *Client {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(conf.BaseURL, "/")).
		SetTimeout(time.Duration(timeout) * time.Second)
	return &Client{
		conf: conf,
		http: httpClient,
	}
}

// Get reads the document at path into out. An absent node leaves out
// untouched: the store answers "null" for paths that do not exist, and an
// empty subtree is a valid state, not an error.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	resp, err := c.request(ctx).Get(c.url(path))
	if err != nil {
		return fmt.Errorf("rtdb: get %s: %w", path, err)
	}
	if err := checkStatus("get", path, resp); err != nil {
		return err
	}
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("rtdb: get %s: decode response: %w", path, err)
	}
	return nil
}

// Push writes body as a new child of the node at path and returns the key the
// store generated for it. The caller cannot choose the key.
func (c *Client) Push(ctx context.Context, path string, body any) (string, error) {
	resp, err := c.request(ctx).SetBody(body).Post(c.url(path))
	if err != nil {
		return "", fmt.Errorf("rtdb: push %s: %w", path, err)
	}
	if err := checkStatus("push", path, resp); err != nil {
		return "", err
	}
	var pushed struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp.Body(), &pushed); err != nil {
		return "", fmt.Errorf("rtdb: push %s: decode response: %w", path, err)
	}
	if pushed.Name == "" {
		return "", fmt.Errorf("rtdb: push %s: store returned no key", path)
	}
	return pushed.Name, nil
}

// Patch merges body into the document at path. Fields absent from body are
// left untouched.
func (c *Client) Patch(ctx context.Context, path string, body any) error {
	resp, err := c.request(ctx).SetBody(body).Patch(c.url(path))
	if err != nil {
		return fmt.Errorf("rtdb: patch %s: %w", path, err)
	}
	return checkStatus("patch", path, resp)
}

// Delete removes the document at path. Deleting an absent path succeeds; the
// store treats it as a no-op.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.request(ctx).Delete(c.url(path))
	if err != nil {
		return fmt.Errorf("rtdb: delete %s: %w", path, err)
	}
	return checkStatus("delete", path, resp)
}

// Ping performs a shallow read of the root to verify connectivity.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.request(ctx).SetQueryParam("shallow", "true").Get("/.json")
	if err != nil {
		return fmt.Errorf("rtdb: ping: %w", err)
	}
	return checkStatus("ping", "/", resp)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.conf.AuthToken != "" {
		req.SetQueryParam("auth", c.conf.AuthToken)
	}
	return req
}

func (c *Client) url(path string) string {
	return "/" + strings.Trim(path, "/") + ".json"
}

func checkStatus(op, path string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return fmt.Errorf("rtdb: %s %s: unexpected status %d: %s",
		op, path, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}
