// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/rpc/v2/json2"
)

const requestTimeout = 30 * time.Second

var (
	ErrRequestFailed = errors.New("request failed")

	httpClient = &http.Client{Timeout: requestTimeout}
)

// ServerError is an error the remote service returned for the call, as
// opposed to a failure to reach it.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// CloseBody drains [body] before closing it so the connection can be reused.
func CloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// SendJSONRequest posts a JSON-RPC 2.0 call of [method] to [uri] and decodes
// the result into [reply].
func SendJSONRequest(
	ctx context.Context,
	uri *url.URL,
	method string,
	params interface{},
	reply interface{},
	options ...Option,
) error {
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode %s params: %w", method, err)
	}

	ops := NewOptions(options)
	target := *uri
	target.RawQuery = ops.QueryParams().Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header = ops.Headers()
	request.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call %s on %s: %w", method, target.Redacted(), err)
	}
	defer CloseBody(resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, method, resp.StatusCode)
	}

	err = json2.DecodeClientResponse(resp.Body, reply)
	var rpcErr *json2.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &rpcErr):
		return &ServerError{
			Code:    int(rpcErr.Code),
			Message: rpcErr.Message,
		}
	default:
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
}
