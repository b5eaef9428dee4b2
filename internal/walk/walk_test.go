/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package walk_test

import (
	"errors"
	"reflect"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sap/manifest-decoration-runtime/internal/walk"
)

type meta struct {
	Name string `json:"name" required:"true"`
}

type record struct {
	Inline   meta              `json:"inline"`
	Tags     []string          `json:"tags"`
	Labels   map[string]string `json:"labels"`
	Ignored  string            `json:"-"`
	Optional *string           `json:"optional,omitempty"`
	hidden   string
}

var _ = Describe("testing: walk.go", func() {
	It("should visit all nodes with their json paths", func() {
		x := &record{
			Inline: meta{Name: "b"},
			Tags:   []string{"x", "y"},
			Labels: map[string]string{"z": "1", "a": "2"},
		}
		var paths []string
		Expect(walk.Walk(x, func(_ any, path []string, _ reflect.StructTag) error {
			paths = append(paths, strings.Join(path, "."))
			return nil
		})).To(Succeed())
		Expect(paths).To(Equal([]string{
			"",
			"inline",
			"inline.name",
			"tags",
			"tags.0",
			"tags.1",
			"labels",
			"labels.a",
			"labels.z",
			"optional",
		}))
	})

	It("should pass struct tags and addressable nodes", func() {
		x := &record{Inline: meta{Name: "b"}}
		Expect(walk.Walk(x, func(node any, path []string, tag reflect.StructTag) error {
			if strings.Join(path, ".") == "inline.name" {
				Expect(tag.Get("required")).To(Equal("true"))
				*node.(*string) = "changed"
			}
			return nil
		})).To(Succeed())
		Expect(x.Inline.Name).To(Equal("changed"))
	})

	It("should collect all callback errors, with paths", func() {
		x := &record{Tags: []string{"", "y", ""}}
		err := walk.Walk(x, func(node any, path []string, _ reflect.StructTag) error {
			if s, ok := node.(*string); ok && len(path) == 2 && path[0] == "tags" && *s == "" {
				return errors.New("empty tag")
			}
			return nil
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("tags.0: empty tag"))
		Expect(err.Error()).To(ContainSubstring("tags.2: empty tag"))
	})

	It("should panic on non-pointer input", func() {
		Expect(func() { walk.Walk(record{}, func(any, []string, reflect.StructTag) error { return nil }) }).To(Panic())
	})
})
