// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package errs defines the failure kinds shared by the hashing, signing and
// address codecs. Every error returned by those packages wraps exactly one of
// the sentinels below, so callers can branch with errors.Is instead of
// matching message text.
package errs

import "errors"

var (
	// ErrInvalidArgument is returned for wrong-length or out-of-range input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDecode is returned when text contains a symbol outside the alphabet.
	ErrDecode = errors.New("decode error")
	// ErrFormat is returned when decoded bytes are too short to be parsed.
	ErrFormat = errors.New("format error")
	// ErrChecksumMismatch is returned when a recomputed checksum disagrees
	// with the one carried by the input.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrUnsupportedFormat is returned for well-formed input using a layout
	// this module does not implement.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrCapacity is returned when a result would not fit in the caller's
	// bounded buffer.
	ErrCapacity = errors.New("capacity exceeded")
)

// Kind classifies an error by the sentinel it wraps.
type Kind uint8

const (
	Unknown Kind = iota
	InvalidArgument
	Decode
	Format
	ChecksumMismatch
	UnsupportedFormat
	Capacity
)

var kinds = []struct {
	kind Kind
	err  error
}{
	{InvalidArgument, ErrInvalidArgument},
	{Decode, ErrDecode},
	{Format, ErrFormat},
	{ChecksumMismatch, ErrChecksumMismatch},
	{UnsupportedFormat, ErrUnsupportedFormat},
	{Capacity, ErrCapacity},
}

// KindOf returns the kind of [err]. A nil error, or one that wraps none of
// the sentinels, is Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return Unknown
}

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case Decode:
		return "DecodeError"
	case Format:
		return "FormatError"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case Capacity:
		return "CapacityError"
	default:
		return "Unknown"
	}
}
