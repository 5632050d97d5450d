/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"fmt"

	"github.com/tryfix/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

type ProtoUnmarshaler struct {
	data []byte
}

// ProtoMarshaller wraps messages in anypb.Any so the message type travels with the payload
type ProtoMarshaller struct{}

func NewProtoMarshaller() Marshaller {
	return &ProtoMarshaller{}
}

func (s *ProtoMarshaller) Init() error {
	return nil
}

func (s *ProtoMarshaller) NewUnmarshaler(data []byte) Unmarshaler {
	return &ProtoUnmarshaler{
		data: data,
	}
}

// Unmarshal decodes into a proto.Message, or into a *interface{} using the global type registry
func (s *ProtoUnmarshaler) Unmarshal(in interface{}) error {
	wrapper := &anypb.Any{}
	if err := proto.Unmarshal(s.data, wrapper); err != nil {
		return errors.WithPrevious(err, `failed to unmarshal anypb wrapper`)
	}

	switch v := in.(type) {
	case proto.Message:
		if err := anypb.UnmarshalTo(wrapper, v, proto.UnmarshalOptions{}); err != nil {
			return errors.WithPrevious(err, `failed to unmarshal anypb`)
		}
	case *interface{}:
		msg, err := anypb.UnmarshalNew(wrapper, proto.UnmarshalOptions{})
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`failed to resolve message type [%s]`, wrapper.GetTypeUrl()))
		}
		*v = msg
	default:
		return errors.New(fmt.Sprintf(`cannot unmarshal protobuf into %T`, in))
	}

	return nil
}

func (s *ProtoMarshaller) Marshall(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`%T is not a proto.Message`, v))
	}

	anyPB, err := anypb.New(msg)
	if err != nil {
		return nil, errors.WithPrevious(err, `failed to add message into anypb`)
	}

	value, err := proto.Marshal(anyPB)
	if err != nil {
		return nil, errors.WithPrevious(err, `failed to marshal message into anypb`)
	}

	return value, nil
}
