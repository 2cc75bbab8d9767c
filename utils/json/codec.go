// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// Null is the string representation of a null value
const Null = "null"

var (
	_ rpc.Codec        = lowercase{}
	_ rpc.CodecRequest = (*request)(nil)
)

// NewCodec returns a json2 codec that lets clients call exported service
// methods by their lowerCamelCase name, as in "registry.issueTx".
func NewCodec() rpc.Codec {
	return lowercase{json2.NewCodec()}
}

type lowercase struct{ *json2.Codec }

func (lc lowercase) NewRequest(r *http.Request) rpc.CodecRequest {
	return &request{lc.Codec.NewRequest(r)}
}

type request struct{ rpc.CodecRequest }

func (r *request) Method() (string, error) {
	method, err := r.CodecRequest.Method()
	service, function, found := strings.Cut(method, ".")
	if err != nil || !found {
		return method, err
	}
	firstRune, runeLen := utf8.DecodeRuneInString(function)
	if firstRune == utf8.RuneError {
		return method, nil
	}
	return fmt.Sprintf("%s.%c%s", service, unicode.ToUpper(firstRune), function[runeLen:]), nil
}
