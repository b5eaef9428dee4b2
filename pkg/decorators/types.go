/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/sap/go-generics/slices"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Tier is the coarse ordering phase of a decorator.
type Tier int

const (
	TierCreate Tier = iota
	TierModify
	TierRemove
)

// Tiers in application order.
var Tiers = []Tier{TierCreate, TierModify, TierRemove}

func (t Tier) String() string {
	switch t {
	case TierCreate:
		return "create"
	case TierModify:
		return "modify"
	case TierRemove:
		return "remove"
	default:
		return "invalid"
	}
}

// Family is the tag of a decorator family.
type Family string

const (
	FamilyCreateResource Family = "CreateResource"
	FamilyAddElement     Family = "AddElement"
	FamilyReplaceField   Family = "ReplaceField"
	FamilyRemoveElement  Family = "RemoveElement"
	FamilyConditional    Family = "Conditional"
)

// Decorator is a single mutation of a resource group.
type Decorator interface {
	// Family tag; used to dispatch the decorator to its apply function.
	Family() Family
	// Ordering tier.
	Tier() Tier
	// Documents affected by the decorator.
	Selector() Selector
	// Stable identity of the decorator's effect (e.g. for logging).
	Key() string
}

// Selector selects documents by kind and name.
// The zero value selects all documents.
type Selector struct {
	kinds   []string
	pattern string
	name    glob.Glob
}

// Create a selector matching documents of one of the given kinds (any kind, if none are given)
// whose name matches namePattern (a glob pattern; empty or "*" matches any name).
func NewSelector(namePattern string, kinds ...string) Selector {
	s := Selector{kinds: kinds, pattern: namePattern}
	if namePattern != "" && namePattern != "*" {
		s.name = glob.MustCompile(namePattern)
	}
	return s
}

// Return true if the given document is selected.
func (s Selector) Matches(document *unstructured.Unstructured) bool {
	if len(s.kinds) > 0 && !slices.Contains(s.kinds, document.GetKind()) {
		return false
	}
	if s.name != nil && !s.name.Match(document.GetName()) {
		return false
	}
	return true
}

func (s Selector) String() string {
	kinds := "*"
	if len(s.kinds) > 0 {
		kinds = strings.Join(s.kinds, "|")
	}
	pattern := s.pattern
	if pattern == "" {
		pattern = "*"
	}
	return kinds + "/" + pattern
}

// Result describes the outcome of applying a decorator to a group.
type Result struct {
	// Number of documents selected by the decorator.
	Matched int
	// Number of documents actually changed.
	Changed int
	// True if the decorator was not applied because its condition did not hold.
	Disabled bool
}
