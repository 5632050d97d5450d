/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tryfix/errors"
)

const (
	magicByte       byte = 0
	maxCodecTypeLen      = 255
	// magic byte, schema id and codec type length
	fixedHeaderLen = 6
)

// EncodingInfo describes how a payload was written: the registry id of the writer schema
// and the codec type the serialized bytes were encoded with
type EncodingInfo struct {
	SchemaID  int
	CodecType string
}

// Encode returns payload prefixed with the encoding descriptor
//
//	╔════════════════════╤════════════════════╤═══════════════════════╤════════════╤═════════╗
//	║ magic byte(1 byte) │ schema id(4 bytes) │ codec type len(1 byte)│ codec type │ payload ║
//	╚════════════════════╧════════════════════╧═══════════════════════╧════════════╧═════════╝
func (e EncodingInfo) Encode(payload []byte) ([]byte, error) {
	if e.SchemaID < 0 || int64(e.SchemaID) > math.MaxUint32 {
		return nil, errors.New(fmt.Sprintf(`schema id [%d] does not fit in 4 bytes`, e.SchemaID))
	}

	if len(e.CodecType) > maxCodecTypeLen {
		return nil, errors.New(fmt.Sprintf(`codec type [%s] exceeds %d bytes`, e.CodecType, maxCodecTypeLen))
	}

	byt := make([]byte, fixedHeaderLen+len(e.CodecType), fixedHeaderLen+len(e.CodecType)+len(payload))
	byt[0] = magicByte
	binary.BigEndian.PutUint32(byt[1:5], uint32(e.SchemaID))
	byt[5] = byte(len(e.CodecType))
	copy(byt[fixedHeaderLen:], e.CodecType)

	return append(byt, payload...), nil
}

// ParseEncodingInfo reads the encoding descriptor in front of data and returns it with the remaining payload
func ParseEncodingInfo(data []byte) (EncodingInfo, []byte, error) {
	if len(data) < fixedHeaderLen {
		return EncodingInfo{}, nil, errors.New(fmt.Sprintf(`message length [%d] is shorter than the header`, len(data)))
	}

	if data[0] != magicByte {
		return EncodingInfo{}, nil, errors.New(fmt.Sprintf(`unknown magic byte [%d]`, data[0]))
	}

	codecLen := int(data[5])
	if len(data) < fixedHeaderLen+codecLen {
		return EncodingInfo{}, nil, errors.New(`message is shorter than its codec type`)
	}

	info := EncodingInfo{
		SchemaID:  int(binary.BigEndian.Uint32(data[1:5])),
		CodecType: string(data[fixedHeaderLen : fixedHeaderLen+codecLen]),
	}

	return info, data[fixedHeaderLen+codecLen:], nil
}
