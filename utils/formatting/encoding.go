// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"

	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
)

const (
	hexPrefix    = "0x"
	checksumLen  = 4
	maxBase58Len = 16 * 1024 // 16 KB
)

var (
	errInvalidEncoding  = errors.New("invalid encoding")
	errMissingHexPrefix = errors.New("missing 0x prefix to hex encoding")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
)

// Encoding defines how bytes are converted to a string and vice versa
type Encoding uint8

const (
	// Hex specifies a hex plus 4 byte checksum encoding format
	Hex Encoding = iota
	// HexNC specifies a hex encoding format without a checksum
	HexNC
	// Base58 specifies the plain base58 format used by wallets for keys and
	// account data
	Base58
	// Base64 specifies the standard base64 format
	Base64
)

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return "hex"
	case HexNC:
		return "hexnc"
	case Base58:
		return "base58"
	case Base64:
		return "base64"
	default:
		return errInvalidEncoding.Error()
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Hex, HexNC, Base58, Base64:
		return true
	}
	return false
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	if !enc.valid() {
		return nil, errInvalidEncoding
	}
	return []byte(`"` + enc.String() + `"`), nil
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	switch strings.ToLower(str) {
	case `"hex"`:
		*enc = Hex
	case `"hexnc"`:
		*enc = HexNC
	case `"base58"`:
		*enc = Base58
	case `"base64"`:
		*enc = Base64
	default:
		return errInvalidEncoding
	}
	return nil
}

// ParseEncoding is the inverse of Encoding.String()
func ParseEncoding(str string) (Encoding, error) {
	var enc Encoding
	err := enc.UnmarshalJSON([]byte(`"` + str + `"`))
	return enc, err
}

// Encode [bytes] to a string using the given encoding format
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		bytes = append(bytes[:len(bytes):len(bytes)], hashing.Checksum(bytes, checksumLen)...)
		fallthrough
	case HexNC:
		return hexPrefix + hex.EncodeToString(bytes), nil
	case Base58:
		if len(bytes) > maxBase58Len {
			return "", fmt.Errorf("byte slice length (%d) > maximum for base58 (%d)", len(bytes), maxBase58Len)
		}
		return base58.Encode(bytes), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(bytes), nil
	default:
		return "", errInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding
// If [str] is the empty string, returns a nil byte slice
func Decode(encoding Encoding, str string) ([]byte, error) {
	if !encoding.valid() {
		return nil, errInvalidEncoding
	} else if len(str) == 0 {
		return nil, nil
	}

	switch encoding {
	case Hex, HexNC:
		if !strings.HasPrefix(str, hexPrefix) {
			return nil, errMissingHexPrefix
		}
		decoded, err := hex.DecodeString(str[len(hexPrefix):])
		if err != nil {
			return nil, err
		}
		if encoding == HexNC {
			return decoded, nil
		}
		if len(decoded) < checksumLen {
			return nil, errMissingChecksum
		}
		rawBytes := decoded[:len(decoded)-checksumLen]
		checksum := decoded[len(decoded)-checksumLen:]
		if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
			return nil, errBadChecksum
		}
		return rawBytes, nil
	case Base58:
		return base58.Decode(str)
	default:
		return base64.StdEncoding.DecodeString(str)
	}
}
