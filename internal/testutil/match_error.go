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

package testutil

import (
	"github.com/botobag/gqlreflect/gqlerr"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageContainSubstring matches message in a gqlerr.Error to contain the specified string.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// KindIs matches the kind in the error to be the same as the given one.
func KindIs(errKind gqlerr.ErrKind) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Kind"] = gomega.Equal(errKind)
	}
}

// NameIs matches the type name recorded in the error.
func NameIs(name string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Name"] = gomega.Equal(name)
	}
}

// OpIs matches the operation recorded in the error.
func OpIs(op gqlerr.Op) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Op"] = gomega.Equal(op)
	}
}

// MatchError matches a *gqlerr.Error with given fields.
//
// The following example matches a gqlerr.Error including "Unknown type" in the message and the
// error kind should match gqlerr.ErrKindNotFound.
//
//	Expect(err).Should(MatchError(
//		MessageContainSubstring("Unknown type"),
//		KindIs(gqlerr.ErrKindNotFound),
//	))
func MatchError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}

// HaveErrKind succeeds if any error in the chain of actual has the given kind. Use it when the
// error may have been wrapped by intermediate layers.
func HaveErrKind(kind gqlerr.ErrKind) types.GomegaMatcher {
	return gomega.WithTransform(func(err error) bool {
		return gqlerr.IsKind(err, kind)
	}, gomega.BeTrue())
}
