/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package walk

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sap/go-generics/slices"
)

// WalkFunc is called for every node visited by Walk.
// Node is a pointer to the visited value whenever the value is addressable (struct fields, slice items);
// map values are passed by value. Path names the node by json field names, map keys and slice indices;
// tag is the struct tag of the innermost struct field on that path.
type WalkFunc func(node any, path []string, tag reflect.StructTag) error

// Error is the error returned by a WalkFunc, annotated with the path of the node.
type Error struct {
	Path []string
	err  error
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.err)
}

func (e Error) Unwrap() error {
	return e.err
}

func (e Error) Cause() error {
	return e.err
}

// Walk traverses x (which must be a non-nil pointer) depth first, and calls f for every node.
// Structs are traversed by their exported fields (skipping fields tagged json:"-"; embedded structs without
// json name are flattened), slices and arrays by index, maps in order of their (stringified) keys.
// Nil pointers and interfaces are visited, but not descended into. Channels, functions and other
// unsupported kinds cause a panic.
// Errors returned by f do not stop the traversal; they are collected (as Error) into a *multierror.Error.
func Walk(x any, f WalkFunc) error {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic("non-nil pointer expected")
	}
	w := &walker{f: f}
	w.walk(v, nil, "")
	if len(w.errs) > 0 {
		return multierror.Append(nil, w.errs...)
	}
	return nil
}

type walker struct {
	f    WalkFunc
	errs []error
}

func (w *walker) visit(v reflect.Value, path []string, tag reflect.StructTag) {
	node := v.Interface()
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		node = v.Addr().Interface()
	}
	if err := w.f(node, path, tag); err != nil {
		w.errs = append(w.errs, Error{Path: path, err: err})
	}
}

func (w *walker) walk(v reflect.Value, path []string, tag reflect.StructTag) {
	switch kind := v.Kind(); {
	case isScalar(kind):
		w.visit(v, path, tag)
	case kind == reflect.Slice || kind == reflect.Array:
		w.visit(v, path, tag)
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i), extend(path, strconv.Itoa(i)), tag)
		}
	case kind == reflect.Map:
		w.visit(v, path, tag)
		keys := slices.SortBy(v.MapKeys(), func(x, y reflect.Value) bool { return fmt.Sprint(x.Interface()) > fmt.Sprint(y.Interface()) })
		for _, key := range keys {
			w.walk(v.MapIndex(key), extend(path, fmt.Sprint(key.Interface())), tag)
		}
	case kind == reflect.Struct:
		w.visit(v, path, tag)
		w.walkFields(v, path)
	case kind == reflect.Pointer || kind == reflect.Interface:
		if v.IsNil() {
			w.visit(v, path, tag)
		} else {
			w.walk(v.Elem(), path, tag)
		}
	default:
		panic(Error{Path: path, err: fmt.Errorf("unsupported kind: %s", kind)})
	}
}

func (w *walker) walkFields(v reflect.Value, path []string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		fieldPath := path
		if name, _, _ := strings.Cut(jsonTag, ","); name != "" {
			fieldPath = extend(path, name)
		} else if !field.Anonymous {
			fieldPath = extend(path, field.Name)
		}
		w.walk(v.Field(i), fieldPath, field.Tag)
	}
}

func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// sibling paths must not share their backing array
func extend(path []string, segment string) []string {
	result := make([]string, len(path), len(path)+1)
	copy(result, path)
	return append(result, segment)
}
