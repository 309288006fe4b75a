// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package extrinsic encodes version 4 Substrate transactions offline.
package extrinsic

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/crypto/keychain"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

const (
	Version = 4

	signedFlag = 0x80

	// MaxUnhashedPayloadLen is the longest payload that is signed as is.
	// Longer payloads are signed through their blake2b-256 digest.
	MaxUnhashedPayloadLen = 256

	// MultiAddress::Id
	multiAddressID = 0x00
	// MultiSignature::Ed25519
	multiSignatureEd25519 = 0x00
)

// Call identifies a runtime function and carries its already encoded
// arguments.
type Call struct {
	PalletIndex uint8  `json:"palletIndex"`
	CallIndex   uint8  `json:"callIndex"`
	Args        []byte `json:"args"`
}

func (c Call) AppendTo(dst []byte) []byte {
	dst = append(dst, c.PalletIndex, c.CallIndex)
	return append(dst, c.Args...)
}

// Extra holds the signed fields that travel with the transaction.
type Extra struct {
	Era   Era
	Nonce uint32
	// Tip is added to the fee. nil means no tip.
	Tip *big.Int
}

func (e Extra) appendTo(dst []byte) ([]byte, error) {
	dst = e.Era.AppendTo(dst)
	dst = AppendCompact(dst, uint64(e.Nonce))
	return AppendCompactBig(dst, e.Tip)
}

// Payload is everything a signature commits to.
type Payload struct {
	Call  Call
	Extra Extra

	SpecVersion        uint32
	TransactionVersion uint32
	GenesisHash        hashing.Hash256
	// BlockHash is the hash of the era's birth block. Immortal transactions
	// use the genesis hash.
	BlockHash hashing.Hash256
}

// Bytes returns the encoded payload before any hashing.
func (p *Payload) Bytes() ([]byte, error) {
	b := p.Call.AppendTo(nil)
	b, err := p.Extra.appendTo(b)
	if err != nil {
		return nil, err
	}
	b = binary.LittleEndian.AppendUint32(b, p.SpecVersion)
	b = binary.LittleEndian.AppendUint32(b, p.TransactionVersion)
	b = append(b, p.GenesisHash[:]...)
	return append(b, p.BlockHash[:]...), nil
}

// SigningPayload returns the message to sign for [p]: its encoding, or the
// blake2b-256 of the encoding when that exceeds MaxUnhashedPayloadLen.
func SigningPayload(p *Payload) ([]byte, error) {
	b, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > MaxUnhashedPayloadLen {
		return hashing.ComputeHash256(b), nil
	}
	return b, nil
}

// EncodeUnsigned returns the length prefixed unsigned transaction of [call].
func EncodeUnsigned(call Call) []byte {
	body := make([]byte, 0, 1+2+len(call.Args))
	body = append(body, Version)
	body = call.AppendTo(body)
	return withLength(body)
}

// EncodeSigned returns the length prefixed transaction of [call] signed by
// [signer] with an ed25519 [signature] over the signing payload.
func EncodeSigned(call Call, signer ids.AccountID, signature []byte, extra Extra) ([]byte, error) {
	if len(signature) != crypto.SignatureLen {
		return nil, fmt.Errorf("%w: signature must be %d bytes but got %d",
			errs.ErrInvalidArgument, crypto.SignatureLen, len(signature))
	}

	body := make([]byte, 0, 1+1+ids.AccountIDLen+1+crypto.SignatureLen+16+2+len(call.Args))
	body = append(body, signedFlag|Version)
	body = append(body, multiAddressID)
	body = append(body, signer[:]...)
	body = append(body, multiSignatureEd25519)
	body = append(body, signature...)
	body, err := extra.appendTo(body)
	if err != nil {
		return nil, err
	}
	body = call.AppendTo(body)
	return withLength(body), nil
}

// Sign signs [p] with [signer] and returns the encoded transaction.
func Sign(signer keychain.Signer, p *Payload) ([]byte, error) {
	msg, err := SigningPayload(p)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, err
	}
	return EncodeSigned(p.Call, signer.PublicKey().AccountID(), sig, p.Extra)
}

func withLength(body []byte) []byte {
	out := AppendCompact(make([]byte, 0, 5+len(body)), uint64(len(body)))
	return append(out, body...)
}
