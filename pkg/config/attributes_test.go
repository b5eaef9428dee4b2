/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
)

var _ = Describe("testing: attributes.go", func() {
	var c *config.Config

	BeforeEach(func() {
		c = &config.Config{}
	})

	It("should distinguish absent attributes from present nil attributes", func() {
		key := config.NewStringKey("RUNTIME_TYPE")
		Expect(key.Has(c)).To(BeFalse())
		_, ok := key.Get(c)
		Expect(ok).To(BeFalse())

		c.Attributes = config.Attributes{"RUNTIME_TYPE": nil}
		Expect(key.Has(c)).To(BeTrue())
		value, ok := key.Get(c)
		Expect(ok).To(BeTrue())
		Expect(value).To(BeEmpty())
	})

	It("should return values set through the key", func() {
		key := config.NewStringSliceKey("PROFILES")
		key.Set(c, []string{"a", "b"})
		value, ok := key.Get(c)
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal([]string{"a", "b"}))
	})

	DescribeTable("testing: conversion of raw values",
		func(key config.AttributeKey, raw any, expected any) {
			c.Attributes = config.Attributes{key.Name(): raw}
			switch k := key.(type) {
			case config.ConfigKey[int]:
				value, ok := k.Get(c)
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(expected))
			case config.ConfigKey[bool]:
				value, ok := k.Get(c)
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(expected))
			case config.ConfigKey[map[string]string]:
				value, ok := k.Get(c)
				Expect(ok).To(BeTrue())
				Expect(value).To(Equal(expected))
			default:
				Fail("unexpected key type")
			}
		},
		Entry("int from string", config.NewIntKey("X"), "42", 42),
		Entry("int from float", config.NewIntKey("X"), float64(7), 7),
		Entry("bool from string", config.NewBoolKey("X"), "true", true),
		Entry("string map from any map", config.NewStringMapKey("X"), map[string]any{"a": "b"}, map[string]string{"a": "b"}),
	)
})
