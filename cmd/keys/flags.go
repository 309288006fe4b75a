// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MontaQLabs/sublua/config"
	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/extrinsic"
	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/hashing"
	"github.com/MontaQLabs/sublua/utils/wrappers"
)

const (
	SeedKey      = "seed"
	MessageKey   = "message"
	TextKey      = "text"
	PublicKeyKey = "public-key"
	SignatureKey = "signature"

	PalletIndexKey        = "pallet-index"
	CallIndexKey          = "call-index"
	ArgsKey               = "args"
	NonceKey              = "nonce"
	TipKey                = "tip"
	EraPeriodKey          = "era-period"
	BlockNumberKey        = "block-number"
	SpecVersionKey        = "spec-version"
	TransactionVersionKey = "transaction-version"
	GenesisHashKey        = "genesis-hash"
	BlockHashKey          = "block-hash"
)

var (
	errBlockHashRequired = fmt.Errorf("%w: --%s is required for a mortal era", errs.ErrInvalidArgument, BlockHashKey)
	errInvalidTip        = fmt.Errorf("%w: --%s must be a decimal integer", errs.ErrInvalidArgument, TipKey)
)

func AddDeriveFlags(flags *pflag.FlagSet) {
	flags.StringSlice(SeedKey, nil, "Hex encoded 32 byte seed. May be repeated")
}

func AddSignFlags(flags *pflag.FlagSet) {
	flags.String(SeedKey, "", "Hex encoded 32 byte seed")
	addMessageFlags(flags)
}

func AddVerifyFlags(flags *pflag.FlagSet) {
	flags.String(PublicKeyKey, "", "Hex encoded public key or an SS58 address")
	flags.String(SignatureKey, "", "Hex encoded 64 byte signature")
	addMessageFlags(flags)
}

func AddSignExtrinsicFlags(flags *pflag.FlagSet) {
	flags.String(SeedKey, "", "Hex encoded 32 byte seed")
	flags.Uint8(PalletIndexKey, 0, "Index of the pallet in the runtime")
	flags.Uint8(CallIndexKey, 0, "Index of the call within the pallet")
	flags.String(ArgsKey, "", "Hex encoded call arguments")
	flags.Uint32(NonceKey, 0, "Account nonce")
	flags.String(TipKey, "0", "Tip added to the fee, as a decimal integer")
	flags.Uint64(EraPeriodKey, 0, "Validity period in blocks. 0 makes the transaction immortal")
	flags.Uint64(BlockNumberKey, 0, "Current block number, used to place a mortal era")
	flags.Uint32(SpecVersionKey, 0, "Runtime spec version")
	flags.Uint32(TransactionVersionKey, 0, "Runtime transaction version")
	flags.String(GenesisHashKey, "", "Hex encoded genesis hash")
	flags.String(BlockHashKey, "", "Hex encoded hash of the era's birth block. Defaults to the genesis hash for immortal transactions")
}

func addMessageFlags(flags *pflag.FlagSet) {
	flags.String(MessageKey, "", "Hex encoded message")
	flags.Bool(TextKey, false, "Treat the message as UTF-8 text instead of hex")
}

type DeriveConfig struct {
	config.Config
	Seeds [][]byte
}

type SignConfig struct {
	config.Config
	Seed    []byte
	Message []byte
}

type SignExtrinsicConfig struct {
	config.Config
	Seed    []byte
	Payload *extrinsic.Payload
}

type VerifyConfig struct {
	config.Config
	PublicKey []byte
	Message   []byte
	Signature []byte
}

func ParseDeriveFlags(flags *pflag.FlagSet, args []string) (*DeriveConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	seedStrs, err := flags.GetStringSlice(SeedKey)
	if err != nil {
		return nil, err
	}

	seeds := make([][]byte, len(seedStrs))
	for i, seedStr := range seedStrs {
		seeds[i], err = formatting.DecodeHexLen(seedStr, crypto.SeedLen)
		if err != nil {
			return nil, err
		}
	}

	return &DeriveConfig{
		Config: shared,
		Seeds:  seeds,
	}, nil
}

func ParseSignFlags(flags *pflag.FlagSet, args []string) (*SignConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	seedStr, err := flags.GetString(SeedKey)
	if err != nil {
		return nil, err
	}

	seed, err := formatting.DecodeHexLen(seedStr, crypto.SeedLen)
	if err != nil {
		return nil, err
	}

	msg, err := getMessage(flags)
	if err != nil {
		return nil, err
	}

	return &SignConfig{
		Config:  shared,
		Seed:    seed,
		Message: msg,
	}, nil
}

func ParseVerifyFlags(flags *pflag.FlagSet, args []string) (*VerifyConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	pkStr, err := flags.GetString(PublicKeyKey)
	if err != nil {
		return nil, err
	}

	pk, err := parsePublicKey(pkStr)
	if err != nil {
		return nil, err
	}

	sigStr, err := flags.GetString(SignatureKey)
	if err != nil {
		return nil, err
	}

	sig, err := formatting.DecodeHex(sigStr)
	if err != nil {
		return nil, err
	}

	msg, err := getMessage(flags)
	if err != nil {
		return nil, err
	}

	return &VerifyConfig{
		Config:    shared,
		PublicKey: pk,
		Message:   msg,
		Signature: sig,
	}, nil
}

func ParseSignExtrinsicFlags(flags *pflag.FlagSet, args []string) (*SignExtrinsicConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	seedStr, err := flags.GetString(SeedKey)
	if err != nil {
		return nil, err
	}

	seed, err := formatting.DecodeHexLen(seedStr, crypto.SeedLen)
	if err != nil {
		return nil, err
	}

	payload, err := getPayload(flags)
	if err != nil {
		clear(seed)
		return nil, err
	}

	return &SignExtrinsicConfig{
		Config:  shared,
		Seed:    seed,
		Payload: payload,
	}, nil
}

func getPayload(flags *pflag.FlagSet) (*extrinsic.Payload, error) {
	var errs wrappers.Errs

	palletIndex, err := flags.GetUint8(PalletIndexKey)
	errs.Add(err)
	callIndex, err := flags.GetUint8(CallIndexKey)
	errs.Add(err)
	argsStr, err := flags.GetString(ArgsKey)
	errs.Add(err)
	nonce, err := flags.GetUint32(NonceKey)
	errs.Add(err)
	tipStr, err := flags.GetString(TipKey)
	errs.Add(err)
	eraPeriod, err := flags.GetUint64(EraPeriodKey)
	errs.Add(err)
	blockNumber, err := flags.GetUint64(BlockNumberKey)
	errs.Add(err)
	specVersion, err := flags.GetUint32(SpecVersionKey)
	errs.Add(err)
	txVersion, err := flags.GetUint32(TransactionVersionKey)
	errs.Add(err)
	genesisHashStr, err := flags.GetString(GenesisHashKey)
	errs.Add(err)
	blockHashStr, err := flags.GetString(BlockHashKey)
	errs.Add(err)
	if errs.Errored() {
		return nil, errs.Err
	}

	callArgs, err := formatting.DecodeHex(argsStr)
	if err != nil {
		return nil, err
	}

	tip, ok := new(big.Int).SetString(tipStr, 10)
	if !ok {
		return nil, errInvalidTip
	}

	genesisHash, err := parseHash(genesisHashStr)
	if err != nil {
		return nil, err
	}

	era := extrinsic.ImmortalEra()
	blockHash := genesisHash
	if eraPeriod != 0 {
		era = extrinsic.MortalEra(eraPeriod, blockNumber)
		if blockHashStr == "" {
			return nil, errBlockHashRequired
		}
	}
	if blockHashStr != "" {
		blockHash, err = parseHash(blockHashStr)
		if err != nil {
			return nil, err
		}
	}

	return &extrinsic.Payload{
		Call: extrinsic.Call{
			PalletIndex: palletIndex,
			CallIndex:   callIndex,
			Args:        callArgs,
		},
		Extra: extrinsic.Extra{
			Era:   era,
			Nonce: nonce,
			Tip:   tip,
		},
		SpecVersion:        specVersion,
		TransactionVersion: txVersion,
		GenesisHash:        genesisHash,
		BlockHash:          blockHash,
	}, nil
}

func parseHash(s string) (hashing.Hash256, error) {
	b, err := formatting.DecodeHexLen(s, hashing.HashLen)
	if err != nil {
		return hashing.Hash256{}, err
	}
	return hashing.ToHash256(b)
}

func getMessage(flags *pflag.FlagSet) ([]byte, error) {
	msgStr, err := flags.GetString(MessageKey)
	if err != nil {
		return nil, err
	}

	text, err := flags.GetBool(TextKey)
	if err != nil {
		return nil, err
	}
	if text {
		return []byte(msgStr), nil
	}
	return formatting.DecodeHex(msgStr)
}

// parsePublicKey accepts hex, with or without a 0x prefix, or an SS58 address
// of any network. SS58 addresses of 32 byte keys are never 64 characters long,
// so the two forms cannot be confused.
func parsePublicKey(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || len(s) == 2*crypto.PublicKeyLen {
		return formatting.DecodeHexLen(s, crypto.PublicKeyLen)
	}
	id, err := ids.AccountIDFromString(s)
	if err != nil {
		return nil, err
	}
	return id.Bytes(), nil
}
