/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/manifest-decoration-runtime/internal/metrics"
	"github.com/sap/manifest-decoration-runtime/pkg/decorators"
	"github.com/sap/manifest-decoration-runtime/pkg/resources"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

const (
	stateOpen    = "Open"
	stateApplied = "Applied"
)

type entry struct {
	decorator decorators.Decorator
	sequence  int
}

type groupState struct {
	group   *resources.Group
	entries []entry
}

// Registry holds the resource groups of one generation run.
type Registry struct {
	groups    map[string]*groupState
	order     []string
	generated []string
	sequence  int
	applied   bool
}

// GroupHandle is a reference to an ensured group.
type GroupHandle struct {
	registry *Registry
	name     string
}

// Create a new (empty) Registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string]*groupState),
	}
}

// Ensure that a group with the given name exists; calling this multiple times for the same name is fine.
func (r *Registry) EnsureGroup(name string) *GroupHandle {
	if _, ok := r.groups[name]; !ok {
		r.groups[name] = &groupState{group: resources.NewGroup(name)}
		r.order = append(r.order, name)
	}
	return &GroupHandle{registry: r, name: name}
}

// Check whether a group with the given name was ensured.
func (r *Registry) HasGroup(name string) bool {
	_, ok := r.groups[name]
	return ok
}

// Return the names of all groups, in the order they were ensured.
func (r *Registry) Groups() []string {
	return append([]string(nil), r.order...)
}

// Register a decorator against the given group. The group must have been ensured before.
func (r *Registry) Decorate(group string, decorator decorators.Decorator) error {
	if r.applied {
		return types.NewInvalidStateError(stateApplied, "register decorator")
	}
	state, ok := r.groups[group]
	if !ok {
		return types.NewUnknownGroupError(group)
	}
	if err := decorators.Validate(decorator); err != nil {
		return errors.Wrapf(err, "error registering decorator for group %s", group)
	}
	state.entries = append(state.entries, entry{decorator: decorator, sequence: r.sequence})
	r.sequence++
	return nil
}

// Record that the given generator populated the given group. Returns false if this was already recorded,
// that is, if the generator ran against the group before in this run.
func (r *Registry) MarkGenerated(group string, generator string) bool {
	marker := group + "/" + generator
	if slices.Contains(r.generated, marker) {
		return false
	}
	r.generated = append(r.generated, marker)
	return true
}

// Return the decorators pending for the given group, in application order.
func (r *Registry) Pending(group string) ([]decorators.Decorator, error) {
	state, ok := r.groups[group]
	if !ok {
		return nil, types.NewUnknownGroupError(group)
	}
	return slices.Collect(inApplicationOrder(state.entries), func(e entry) decorators.Decorator { return e.decorator }), nil
}

// Apply all registered decorators, and return the finalized document lists per group.
// Returned documents are deep copies; the registry cannot be used afterwards.
func (r *Registry) Apply(ctx context.Context) (map[string][]client.Object, error) {
	log := log.FromContext(ctx)

	if r.applied {
		return nil, types.NewInvalidStateError(stateApplied, "apply registry")
	}
	r.applied = true

	result := make(map[string][]client.Object, len(r.groups))
	for _, name := range r.order {
		state := r.groups[name]
		log.V(1).Info("applying decorators", "group", name, "count", len(state.entries))
		for _, e := range inApplicationOrder(state.entries) {
			decorator := e.decorator
			tier := decorator.Tier().String()
			res, err := decorators.Apply(state.group, decorator)
			if err != nil {
				return nil, errors.Wrapf(err, "error decorating group %s", name)
			}
			switch {
			case res.Disabled:
				log.V(2).Info("skipping disabled decorator", "group", name, "tier", tier, "decorator", decorator.Key())
				metrics.DecoratorsSkipped.WithLabelValues(name, tier, "disabled").Inc()
			case res.Matched == 0:
				log.V(1).Info("skipping decorator without target", "group", name, "tier", tier, "decorator", decorator.Key(), "selector", decorator.Selector().String())
				metrics.DecoratorsSkipped.WithLabelValues(name, tier, "unresolved").Inc()
			default:
				log.V(2).Info("applied decorator", "group", name, "tier", tier, "decorator", decorator.Key(), "matched", res.Matched, "changed", res.Changed)
				metrics.DecoratorsApplied.WithLabelValues(name, tier).Inc()
			}
		}
		result[name] = state.group.Documents()
		for _, object := range result[name] {
			log.V(2).Info("finalized document", "group", name, "document", types.ObjectKeyToString(object))
		}
		metrics.Documents.WithLabelValues(name).Set(float64(len(result[name])))
	}

	return result, nil
}

// Return the name of the group this handle refers to.
func (h *GroupHandle) Name() string {
	return h.name
}

// Register decorators against the group this handle refers to.
func (h *GroupHandle) Decorate(ds ...decorators.Decorator) error {
	for _, decorator := range ds {
		if err := h.registry.Decorate(h.name, decorator); err != nil {
			return err
		}
	}
	return nil
}

func inApplicationOrder(entries []entry) []entry {
	var result []entry
	for _, tier := range decorators.Tiers {
		result = append(result, slices.Select(entries, func(e entry) bool { return e.decorator.Tier() == tier })...)
	}
	return result
}
