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

package reflection

import (
	"context"
	"fmt"
	"reflect"

	"github.com/botobag/gqlreflect/gqlerr"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Method is a handle to an exported method of a Go type.
type Method struct {
	// Owner is the type the method is declared on with pointers removed.
	Owner reflect.Type

	// Method is the method from the method set of *Owner, or of Owner if Owner is an interface.
	Method reflect.Method
}

// Methods returns the exported methods callable on a *T for a struct or named type T, or the
// methods of T for an interface type. Methods are ordered by name.
func Methods(t reflect.Type) []Method {
	owner := Indirect(t)
	set := owner
	if owner.Kind() != reflect.Interface {
		set = reflect.PtrTo(owner)
	}

	methods := make([]Method, 0, set.NumMethod())
	for i := 0; i < set.NumMethod(); i++ {
		m := set.Method(i)
		if len(m.PkgPath) > 0 {
			continue
		}
		methods = append(methods, Method{
			Owner:  owner,
			Method: m,
		})
	}
	return methods
}

// MethodOf returns the exported method with the given name.
func MethodOf(t reflect.Type, name string) (Method, bool) {
	owner := Indirect(t)
	set := owner
	if owner.Kind() != reflect.Interface {
		set = reflect.PtrTo(owner)
	}

	m, ok := set.MethodByName(name)
	if !ok || len(m.PkgPath) > 0 {
		return Method{}, false
	}
	return Method{
		Owner:  owner,
		Method: m,
	}, true
}

// Name returns the method name.
func (m Method) Name() string {
	return m.Method.Name
}

// String returns the owner and the method name, for example "model.User.Posts".
func (m Method) String() string {
	return fmt.Sprintf("%s.%s", m.Owner, m.Method.Name)
}

// in returns the parameter types of the method without the receiver.
func (m Method) in() []reflect.Type {
	t := m.Method.Type
	offset := 1
	if m.Owner.Kind() == reflect.Interface {
		offset = 0
	}

	in := make([]reflect.Type, 0, t.NumIn()-offset)
	for i := offset; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	return in
}

// TakesContext returns true if the first parameter of the method is a context.Context.
func (m Method) TakesContext() bool {
	in := m.in()
	return len(in) > 0 && in[0] == contextType
}

// ReturnsError returns true if the last result of the method is an error.
func (m Method) ReturnsError() bool {
	t := m.Method.Type
	return t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType
}

// ResultType returns the type of the value the method produces, that is the first result unless it
// is the trailing error. It returns nil for a method producing no value.
func (m Method) ResultType() reflect.Type {
	t := m.Method.Type
	n := t.NumOut()
	if m.ReturnsError() {
		n--
	}
	if n == 0 {
		return nil
	}
	return t.Out(0)
}

// Parameters returns the parameters of the method that receive GraphQL input, which excludes the
// receiver and a leading context.Context. The names are assigned in order.
func (m Method) Parameters(names ...string) []Parameter {
	in := m.in()
	if m.TakesContext() {
		in = in[1:]
	}

	params := make([]Parameter, len(in))
	for i, t := range in {
		name := fmt.Sprintf("arg%d", i)
		if i < len(names) && len(names[i]) > 0 {
			name = names[i]
		}
		params[i] = Parameter{
			Method: m,
			Index:  i,
			Name:   name,
			Type:   t,
		}
	}
	return params
}

// Call invokes the method on source with the given arguments, passing ctx first when the method
// takes a context. A trailing error result is returned as the error.
func (m Method) Call(ctx context.Context, source interface{}, args []reflect.Value) (interface{}, error) {
	fn := Receiver(source).MethodByName(m.Method.Name)
	if !fn.IsValid() {
		return nil, gqlerr.NewError(fmt.Sprintf("cannot call %s on value of type %T", m, source),
			gqlerr.Op("reflection.Call"), gqlerr.ErrKindInternal)
	}

	in := args
	if m.TakesContext() {
		if ctx == nil {
			ctx = context.Background()
		}
		in = make([]reflect.Value, 0, len(args)+1)
		in = append(in, reflect.ValueOf(ctx))
		in = append(in, args...)
	}

	out := fn.Call(in)

	var err error
	if m.ReturnsError() {
		last := out[len(out)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return nil, err
	}
	return out[0].Interface(), err
}

// Receiver returns a value whose method set includes the pointer methods of source. A non-pointer
// source is copied into a new addressable value.
func Receiver(source interface{}) reflect.Value {
	v := reflect.ValueOf(source)
	if !v.IsValid() || v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		return v
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// Indirect removes every level of pointer from t.
func Indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
