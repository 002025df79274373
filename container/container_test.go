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

package container_test

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/container"
	"github.com/botobag/gqlreflect/gqlerr"
	"github.com/botobag/gqlreflect/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type Clock struct {
	Zone string
}

type Calendar struct {
	Clock *Clock
}

var _ = Describe("Default", func() {
	var c *container.Default

	BeforeEach(func() {
		c = container.New()
	})

	It("allocates zero values of concrete types once", func() {
		instance, err := c.Get(reflect.TypeOf(Clock{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(instance).Should(Equal(&Clock{}))

		again, err := c.Get(reflect.TypeOf(&Clock{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(again).Should(BeIdenticalTo(instance))
	})

	It("calls providers", func() {
		calls := 0
		c.Provide(reflect.TypeOf(Clock{}), func() (interface{}, error) {
			calls++
			return &Clock{Zone: "UTC"}, nil
		})

		for i := 0; i < 2; i++ {
			instance, err := c.Get(reflect.TypeOf(Clock{}))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(instance).Should(Equal(&Clock{Zone: "UTC"}))
		}
		Expect(calls).Should(Equal(1))
	})

	It("lets providers get their dependencies from the container", func() {
		c.Provide(reflect.TypeOf(Clock{}), func() (interface{}, error) {
			return &Clock{Zone: "UTC"}, nil
		})
		c.Provide(reflect.TypeOf(Calendar{}), func() (interface{}, error) {
			clock, err := c.Get(reflect.TypeOf(Clock{}))
			if err != nil {
				return nil, err
			}
			return &Calendar{Clock: clock.(*Clock)}, nil
		})

		result := make(chan interface{}, 1)
		go func() {
			defer GinkgoRecover()
			instance, err := c.Get(reflect.TypeOf(Calendar{}))
			Expect(err).ShouldNot(HaveOccurred())
			result <- instance
		}()

		var calendar interface{}
		Eventually(result).Should(Receive(&calendar))
		Expect(calendar).Should(Equal(&Calendar{Clock: &Clock{Zone: "UTC"}}))

		clock, err := c.Get(reflect.TypeOf(Clock{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(calendar.(*Calendar).Clock).Should(BeIdenticalTo(clock))
	})

	It("returns registered instances", func() {
		clock := &Clock{Zone: "CET"}
		c.Set(reflect.TypeOf(Clock{}), clock)
		Expect(c.Get(reflect.TypeOf(Clock{}))).Should(BeIdenticalTo(clock))
	})

	It("wraps provider failures", func() {
		c.Provide(reflect.TypeOf(Clock{}), func() (interface{}, error) {
			return nil, errors.New("no time")
		})
		_, err := c.Get(reflect.TypeOf(Clock{}))
		Expect(err).Should(testutil.MatchError(
			testutil.OpIs("container.Get"),
			testutil.MessageContainSubstring("cannot instantiate container_test.Clock"),
		))
		Expect(err.Error()).Should(ContainSubstring("provider of container_test.Clock: no time"))
	})

	It("cannot instantiate interfaces without provider", func() {
		_, err := c.Get(reflect.TypeOf((*fmt.Stringer)(nil)).Elem())
		Expect(err).Should(testutil.MatchError(
			testutil.KindIs(gqlerr.ErrKindNotFound),
			testutil.NameIs("fmt.Stringer"),
		))
	})
})
