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

// Package container defines how middlewares obtain instances of Go types: definition objects
// referenced by their type and receivers for capability hooks.
package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/botobag/gqlreflect/gqlerr"

	"github.com/pkg/errors"
)

// Container materializes an instance of a Go type.
type Container interface {
	// Get returns an instance of t. For a struct or other concrete type the instance is a pointer
	// to a value of t.
	Get(t reflect.Type) (interface{}, error)
}

// Provider creates an instance.
type Provider func() (interface{}, error)

// Default is a Container that calls the registered providers and falls back to allocating a zero
// value for concrete types. Instances are created once and shared.
type Default struct {
	mutex     sync.Mutex
	providers map[reflect.Type]Provider
	instances map[reflect.Type]interface{}
}

var _ Container = (*Default)(nil)

// New creates an empty Default container.
func New() *Default {
	return &Default{
		providers: map[reflect.Type]Provider{},
		instances: map[reflect.Type]interface{}{},
	}
}

func key(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Provide registers the provider for t. It replaces a previously created instance.
func (c *Default) Provide(t reflect.Type, provider Provider) *Default {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	k := key(t)
	c.providers[k] = provider
	delete(c.instances, k)
	return c
}

// Set registers an existing instance for t.
func (c *Default) Set(t reflect.Type, instance interface{}) *Default {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.instances[key(t)] = instance
	return c
}

// Get implements Container.
func (c *Default) Get(t reflect.Type) (interface{}, error) {
	const op = gqlerr.Op("container.Get")

	if t == nil {
		return nil, gqlerr.NewError("cannot instantiate nil type", op, gqlerr.ErrKindInternal)
	}

	k := key(t)

	c.mutex.Lock()
	instance, ok := c.instances[k]
	provider, hasProvider := c.providers[k]
	c.mutex.Unlock()
	if ok {
		return instance, nil
	}

	// The lock is not held while the provider runs so that it can get its own dependencies from the
	// container.
	if hasProvider {
		var err error
		instance, err = provider()
		if err != nil {
			return nil, gqlerr.NewError(fmt.Sprintf("cannot instantiate %s", k), op,
				errors.Wrapf(err, "provider of %s", k))
		}
	} else {
		switch k.Kind() {
		case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return nil, gqlerr.NewError(fmt.Sprintf("no provider for %s", k), op, gqlerr.ErrKindNotFound,
				gqlerr.TypeName(k.String()))
		}
		instance = reflect.New(k).Interface()
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	// Keep the instance stored first when the provider ran concurrently.
	if existing, ok := c.instances[k]; ok {
		return existing, nil
	}
	c.instances[k] = instance
	return instance, nil
}
