// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package base

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"golang.org/x/oauth2"
	"gopkg.in/httprequest.v1"
)

var logger = loggo.GetLogger("forcekit.api.base")

const jsonMIME = "application/json"

// DefaultAPIVersion is the Tooling API version used when the org store
// does not record one.
const DefaultAPIVersion = "61.0"

// Transport performs the actual request.
type Transport interface {
	// Do performs the *http.Request and returns a *http.Response or an
	// error if the round trip fails.
	Do(*http.Request) (*http.Response, error)
}

// Config holds what is needed to reach one authenticated org.
type Config struct {
	// InstanceURL is the org's https base URL.
	InstanceURL string

	// AccessToken is the OAuth session token for the org. It is used
	// as a bearer token on every request.
	AccessToken string

	// APIVersion selects the REST API version; empty means
	// DefaultAPIVersion.
	APIVersion string

	// Transport overrides the HTTP transport, primarily for tests.
	// When nil a transport carrying AccessToken is constructed.
	Transport Transport
}

// Connection is an APICallCloser over an org's Tooling REST API.
type Connection struct {
	baseURL   string
	transport Transport
}

// NewConnection returns a connection to the org described by cfg.
func NewConnection(cfg Config) (*Connection, error) {
	if cfg.InstanceURL == "" {
		return nil, errors.NotValidf("empty instance URL")
	}
	parsed, err := url.Parse(cfg.InstanceURL)
	if err != nil {
		return nil, errors.Annotate(err, "parsing instance URL")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.NotValidf("instance URL %q", cfg.InstanceURL)
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	transport := cfg.Transport
	if transport == nil {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		})
		transport = oauth2.NewClient(context.Background(), source)
	}
	return &Connection{
		baseURL:   strings.TrimRight(parsed.String(), "/") + "/services/data/v" + apiVersion,
		transport: transport,
	}, nil
}

// Get implements Caller.
func (c *Connection) Get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/"+path, nil)
	if err != nil {
		return errors.Annotate(err, "cannot make new request")
	}
	req.Header.Set("Accept", jsonMIME)
	return errors.Trace(c.do(req, result))
}

// Post implements Caller.
func (c *Connection) Post(ctx context.Context, path string, body, result interface{}) error {
	buffer := new(bytes.Buffer)
	if err := json.NewEncoder(buffer).Encode(body); err != nil {
		return errors.Trace(err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/"+path, buffer)
	if err != nil {
		return errors.Annotate(err, "cannot make new request")
	}
	req.Header.Set("Accept", jsonMIME)
	req.Header.Set("Content-Type", jsonMIME)
	return errors.Trace(c.do(req, result))
}

// Query implements Caller.
func (c *Connection) Query(ctx context.Context, soql string, result interface{}) error {
	values := url.Values{}
	values.Set("q", soql)
	return errors.Trace(c.Get(ctx, "tooling/query?"+values.Encode(), result))
}

// Close implements APICallCloser.
func (c *Connection) Close() error {
	if client, ok := c.transport.(*http.Client); ok {
		client.CloseIdleConnections()
	}
	return nil
}

func (c *Connection) do(req *http.Request, result interface{}) error {
	if logger.IsTraceEnabled() {
		if data, err := httputil.DumpRequest(req, true); err == nil {
			logger.Tracef("%s request %s", req.Method, data)
		} else {
			logger.Tracef("%s request DumpRequest error %s", req.Method, err.Error())
		}
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if logger.IsTraceEnabled() {
		if data, err := httputil.DumpResponse(resp, true); err == nil {
			logger.Tracef("%s response %s", req.Method, data)
		} else {
			logger.Tracef("%s response DumpResponse error %s", req.Method, err.Error())
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Trace(unmarshalError(resp))
	}
	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := httprequest.UnmarshalJSONResponse(resp, result); err != nil {
		return errors.Annotate(err, "decoding response")
	}
	return nil
}
