// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extrinsic

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/MontaQLabs/sublua/utils/errs"
)

const (
	MinEraPeriod = 4
	MaxEraPeriod = 1 << 16

	immortalEra = 0x00

	// phases of long periods are stored in units of period/4096
	eraQuantizeShift = 12
)

// Era is the range of blocks in which a transaction is valid. The zero value
// is the immortal era.
type Era struct {
	period uint64
	phase  uint64
}

func ImmortalEra() Era {
	return Era{}
}

// MortalEra returns the era of roughly [period] blocks that contains block
// [current]. The period is rounded up to a power of two within
// [MinEraPeriod, MaxEraPeriod].
func MortalEra(period, current uint64) Era {
	switch {
	case period <= MinEraPeriod:
		period = MinEraPeriod
	case period >= MaxEraPeriod:
		period = MaxEraPeriod
	default:
		period = 1 << bits.Len64(period-1)
	}

	quantizeFactor := max(period>>eraQuantizeShift, 1)
	phase := current % period / quantizeFactor * quantizeFactor
	return Era{
		period: period,
		phase:  phase,
	}
}

func (e Era) Immortal() bool {
	return e.period == 0
}

func (e Era) Period() uint64 {
	return e.period
}

func (e Era) Phase() uint64 {
	return e.phase
}

// Birth returns the first block of the instance of this era that contains
// [current]. Mortal transactions commit to the hash of that block.
func (e Era) Birth(current uint64) uint64 {
	if e.Immortal() {
		return 0
	}
	return (max(current, e.phase)-e.phase)/e.period*e.period + e.phase
}

func (e Era) String() string {
	if e.Immortal() {
		return "immortal"
	}
	return fmt.Sprintf("mortal(period=%d, phase=%d)", e.period, e.phase)
}

// AppendTo appends the one byte immortal or two byte mortal encoding.
func (e Era) AppendTo(dst []byte) []byte {
	if e.Immortal() {
		return append(dst, immortalEra)
	}
	quantizeFactor := max(e.period>>eraQuantizeShift, 1)
	low := min(max(bits.TrailingZeros64(e.period)-1, 1), 15)
	encoded := uint16(low) | uint16(e.phase/quantizeFactor)<<4
	return binary.LittleEndian.AppendUint16(dst, encoded)
}

// DecodeEra parses an era from the front of [b] and returns it with the
// number of bytes read.
func DecodeEra(b []byte) (Era, int, error) {
	if len(b) == 0 {
		return Era{}, 0, fmt.Errorf("%w: empty era", errs.ErrFormat)
	}
	if b[0] == immortalEra {
		return Era{}, 1, nil
	}
	if len(b) < 2 {
		return Era{}, 0, fmt.Errorf("%w: mortal era needs 2 bytes", errs.ErrFormat)
	}

	encoded := uint64(binary.LittleEndian.Uint16(b))
	period := uint64(2) << (encoded % 16)
	quantizeFactor := max(period>>eraQuantizeShift, 1)
	phase := (encoded >> 4) * quantizeFactor
	if period < MinEraPeriod || phase >= period {
		return Era{}, 0, fmt.Errorf("%w: invalid mortal era %#04x", errs.ErrFormat, encoded)
	}
	return Era{
		period: period,
		phase:  phase,
	}, 2, nil
}
