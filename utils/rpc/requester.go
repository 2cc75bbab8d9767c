// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

var _ EndpointRequester = (*endpointRequester)(nil)

type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}, options ...Option) error
}

type endpointRequester struct {
	uri    string
	method string
}

// NewEndpointRequester sends "<service>.<method>" calls to [uri].
func NewEndpointRequester(uri, service string) EndpointRequester {
	return &endpointRequester{
		uri:    strings.TrimSuffix(uri, "/"),
		method: service,
	}
}

func (e *endpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
	options ...Option,
) error {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return err
	}
	return SendJSONRequest(
		ctx,
		uri,
		fmt.Sprintf("%s.%s", e.method, method),
		params,
		reply,
		options...,
	)
}
