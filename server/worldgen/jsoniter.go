// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package worldgen

import (
	"github.com/SoftbearStudios/terragen/server/terrain"
	jsoniter "github.com/json-iterator/go"
	"reflect"
	"unsafe"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	// Colors are written as hex strings everywhere, including by other packages
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(terrain.ColorVec{}).String(), encodeColorVec, emptyColorVec)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(terrain.ColorVec{}).String(), decodeColorVec)

	return jsoniter.Config{
		IndentionStep:                 2,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         true,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

// JSON is the API that config files and the preview hub share.
func JSON() jsoniter.API {
	return json
}

func encodeColorVec(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	vec := *(*terrain.ColorVec)(ptr)
	stream.WriteString(vec.Hex())
}

func emptyColorVec(ptr unsafe.Pointer) bool {
	return false
}

// decodeColorVec accepts "#rrggbb", "#rrggbbaa" or an array of up to 4 floats in [0, 1].
func decodeColorVec(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	vec := (*terrain.ColorVec)(ptr)

	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		parsed, err := terrain.ParseHex(iter.ReadString())
		if err != nil {
			iter.ReportError("decode color", err.Error())
			return
		}
		*vec = parsed
	case jsoniter.ArrayValue:
		*vec = terrain.ColorVec{0, 0, 0, 1}
		i := 0
		for iter.ReadArray() {
			if i >= len(vec) {
				iter.ReportError("decode color", "too many components")
				return
			}
			vec[i] = iter.ReadFloat32()
			i++
		}
	default:
		iter.ReportError("decode color", "expected string or array")
	}
}
