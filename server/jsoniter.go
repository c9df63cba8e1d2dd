// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"github.com/SoftbearStudios/terragen/server/worldgen"
	jsoniter "github.com/json-iterator/go"
	"reflect"
	"sync"
	"unsafe"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	// Colors are registered by worldgen
	_ = worldgen.JSON()

	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         false,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

// JSON encodes and decodes Messages.
func JSON() jsoniter.API {
	return json
}

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// Buffers large enough to hold most inbounds
var decodeMessagePool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// decodeMessage reads {"type": ..., "data": ...} in either field order.
func decodeMessage(ptr unsafe.Pointer, topLevelIter *jsoniter.Iterator) {
	bufPtr := decodeMessagePool.Get().(*[]byte)

	// Read bytes so can read twice
	messageBytes := topLevelIter.SkipAndAppendBytes(*bufPtr)

	pool := topLevelIter.Pool()
	iter := pool.BorrowIterator(messageBytes)
	defer pool.ReturnIterator(iter)

	// Interface of *inbound
	var in interface{}
	found := false

	// At most two passes: the first finds the type (and data if it follows), the second reads data
	for pass := 0; pass < 2 && !found; pass++ {
		iter.ResetBytes(messageBytes)
		iter.ReadObjectCB(func(i *jsoniter.Iterator, field string) bool {
			switch field {
			case "type":
				if in != nil {
					i.Skip()
					return true
				}
				mType := messageType(i.ReadString())
				inboundType, ok := inboundMessageTypes[mType]
				if !ok {
					in = &InvalidInbound{messageType: mType}
				} else {
					in = reflect.New(inboundType).Interface()
				}
			case "data":
				if in == nil {
					i.Skip()
					return true
				}
				if _, invalid := in.(*InvalidInbound); invalid {
					i.Skip()
				} else {
					i.ReadVal(in)
				}
				found = true
				return false
			default:
				i.Skip()
			}
			return true
		})

		if err := iter.Error; err != nil {
			topLevelIter.Error = err
			return
		}

		if in == nil {
			topLevelIter.Error = errors.New("no inbound message type")
			return
		}
	}

	// Messages without data use the zero value
	*bufPtr = messageBytes[:0]
	decodeMessagePool.Put(bufPtr)

	message := (*Message)(ptr)
	message.Data = reflect.Indirect(reflect.ValueOf(in)).Interface()
}
