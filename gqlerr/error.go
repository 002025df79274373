/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package gqlerr

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "registry.Get".
type Op string

// TypeName is given to NewError to record the name of the GraphQL type that an error is about.
type TypeName string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther                       ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindCantResolveArgument                        // No middleware in the Argument pipeline accepted the input.
	ErrKindCantResolveObjectField                     // No middleware in the ObjectField pipeline accepted the input.
	ErrKindCantResolveInputObjectField                // No middleware in the InputObjectField pipeline accepted the input.
	ErrKindCantResolveGraphQLType                     // Type pipeline exhausted or a type reference has an unsupported shape.
	ErrKindNotFound                                   // Registry lookup miss.
	ErrKindNextHandlerIsEmpty                         // A continuation was invoked more than once.
	ErrKindSealed                                     // Registry mutation after assembly completed.
	ErrKindInvalidMetadata                            // Malformed marker, struct tag or declaration document.
	ErrKindInternal                                   // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCantResolveArgument:
		return "can't resolve argument"
	case ErrKindCantResolveObjectField:
		return "can't resolve object field"
	case ErrKindCantResolveInputObjectField:
		return "can't resolve input object field"
	case ErrKindCantResolveGraphQLType:
		return "can't resolve GraphQL type"
	case ErrKindNotFound:
		return "not found"
	case ErrKindNextHandlerIsEmpty:
		return "next handler is empty"
	case ErrKindSealed:
		return "registry sealed"
	case ErrKindInvalidMetadata:
		return "invalid metadata"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// An Error describes a failure raised while assembling a schema. None of them is recoverable at the
// point it is raised: they surface to the caller of the schema assembly, optionally wrapped by
// intermediate functions that add Op or message context.
//
// The design follows upspin.io/errors [0]: an Error carries the operation being performed, the
// class of the error and the underlying error that triggered it. Printing an Error prints the whole
// chain, suppressing the kind when the next error in the chain already printed it.
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Name is the GraphQL type name that the error is about. It is always set for errors of
	// ErrKindNotFound.
	Name string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Each argument is placed by its type: an error
// becomes the underlying error, an Op the operation, an ErrKind the kind and a TypeName the name.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		case TypeName:
			e.Name = string(arg)

		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind and name from underlying error.
	if prev, ok := e.Err.(*Error); ok {
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
		if len(e.Name) == 0 {
			e.Name = prev.Name
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// KindOf returns the kind of the first Error in err's chain that has a kind other than
// ErrKindOther.
func KindOf(err error) ErrKind {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind != ErrKindOther {
			return e.Kind
		}
		err = errors.Unwrap(err)
	}
	return ErrKindOther
}

// IsKind returns true if any Error in err's chain is of the given kind.
func IsKind(err error, kind ErrKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Error())

	if err.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(err.Kind.String())
	}

	if len(err.Op) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("op")
		stream.WriteString(string(err.Op))
	}

	if len(err.Name) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("name")
		stream.WriteString(err.Name)
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("gqlerr.Error", errorMarshaller{})
}
