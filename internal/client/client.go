// Package client is the session-authenticated API client for the transfer
// booking service. It wraps the auth, bookings and admin endpoints, attaches
// the persisted bearer token and turns every non-2xx response into an *Error.
//
// The client does no retries, timeouts or client-side authorization: the
// caller owns retry policy and the server owns access control.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/metrics"
)

// Endpoints holds the base URLs of the three remote services.
type Endpoints struct {
	Auth     string
	Bookings string
	Admin    string
}

// Client implements ports.TransferAPI.
type Client struct {
	endpoints Endpoints
	store     ports.SessionStore
	http      *http.Client
	validate  *validator.Validate
	log       zerolog.Logger
}

var _ ports.TransferAPI = (*Client)(nil)

// New creates a Client. A nil httpClient is replaced by a zero http.Client,
// which has no timeout.
func New(endpoints Endpoints, store ports.SessionStore, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoints: endpoints,
		store:     store,
		http:      httpClient,
		validate:  newValidate(),
		log:       log,
	}
}

// call describes one request against one endpoint.
type call struct {
	op       string
	kind     error
	method   string
	endpoint string
	query    url.Values
	body     any
	auth     bool
	fallback string
}

// errorEnvelope is the error body every endpoint is expected to return.
type errorEnvelope struct {
	Error string `json:"error"`
}

// send performs the request dispatch: build headers, issue the request,
// map failures to *Error and decode a success body into out.
func (c *Client) send(ctx context.Context, cl call, out any) error {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return c.fail(cl, 0, err.Error(), err, metrics.OutcomeTransportError)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ClientRequestDuration.WithLabelValues(cl.op).Observe(time.Since(start).Seconds())
	if err != nil {
		return c.fail(cl, 0, err.Error(), err, metrics.OutcomeTransportError)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(cl, resp.StatusCode, err.Error(), err, metrics.OutcomeTransportError)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(cl, resp.StatusCode, errorMessage(body, cl.fallback), nil, metrics.OutcomeHTTPError)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return c.fail(cl, resp.StatusCode, cl.fallback+": unexpected response body",
				fmt.Errorf("%w: %v", domain.ErrDecode, err), metrics.OutcomeDecodeError)
		}
		if err := validate(c.validate, out); err != nil {
			return c.fail(cl, resp.StatusCode, cl.fallback+": unexpected response body",
				fmt.Errorf("%w: %v", domain.ErrDecode, err), metrics.OutcomeDecodeError)
		}
	}

	metrics.ClientRequestsTotal.WithLabelValues(cl.op, metrics.OutcomeOK).Inc()
	c.log.Debug().
		Str("op", cl.op).
		Str("method", cl.method).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api call")
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u, err := url.Parse(cl.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if len(cl.query) > 0 {
		q := u.Query()
		for k, vs := range cl.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if cl.auth {
		if s := c.session(ctx); s != nil {
			req.Header.Set("Authorization", "Bearer "+s.Token)
		}
	}
	return req, nil
}

func (c *Client) fail(cl call, status int, msg string, cause error, outcome string) error {
	metrics.ClientRequestsTotal.WithLabelValues(cl.op, outcome).Inc()
	e := &Error{
		Kind:       cl.kind,
		Op:         cl.op,
		StatusCode: status,
		Message:    msg,
		Err:        cause,
	}
	c.log.Warn().
		Str("op", cl.op).
		Int("status", status).
		Str("outcome", outcome).
		Err(cause).
		Msg(msg)
	return e
}

// checkInput validates caller input before any request is made.
func (c *Client) checkInput(cl call, in any) error {
	if err := validate(c.validate, in); err != nil {
		return c.fail(cl, 0, err.Error(), fmt.Errorf("%w: %v", domain.ErrValidation, err), metrics.OutcomeInvalidInput)
	}
	return nil
}

// errorMessage extracts the error field of an error envelope. A body that is
// not JSON, has no error field or a non-string one yields fallback.
func errorMessage(body []byte, fallback string) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == "" {
		return fallback
	}
	return env.Error
}

// idQuery builds the ?id= query; extra key/value pairs may follow.
func idQuery(id int64, kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	q.Set("id", fmt.Sprint(id))
	return q
}
