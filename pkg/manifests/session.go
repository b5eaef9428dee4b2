/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/manifest-decoration-runtime/internal/metrics"
	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/registry"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// State of a session.
type State string

const (
	StateIdle                  State = "Idle"
	StateComposingConfig       State = "ComposingConfig"
	StateRegisteringDecorators State = "RegisteringDecorators"
	StateApplying              State = "Applying"
	StateFinalized             State = "Finalized"
	StateFailed                State = "Failed"
)

// Session orchestrates one generation run. Sessions are single use; states only advance
// (Idle, ComposingConfig, RegisteringDecorators, Applying, Finalized); any error moves the session to Failed.
type Session struct {
	project    *project.Project
	vcsOptions VcsOptions
	generators []Generator
	state      State
}

// Create a new Session for the given project (which may be nil, if no project facts are known).
func NewSession(p *project.Project, vcsOptions VcsOptions) *Session {
	return &Session{
		project:    p,
		vcsOptions: vcsOptions,
		state:      StateIdle,
	}
}

// Return the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Register a generator. Generators can only be registered before the session is run;
// an AmbiguousGeneratorError is returned if a registered generator already accepts one of the
// configuration types accepted by the given generator.
func (s *Session) Register(generator Generator) error {
	if s.state != StateIdle {
		return types.NewInvalidStateError(string(s.state), "register generator")
	}
	for _, existing := range s.generators {
		if existing.Key() == generator.Key() {
			return fmt.Errorf("generator %s is already registered", generator.Key())
		}
		for _, configType := range config.Types {
			if existing.Accepts(configType) && generator.Accepts(configType) {
				return AmbiguousGeneratorError{configType: configType, generators: []string{existing.Key(), generator.Key()}}
			}
		}
	}
	s.generators = slices.SortBy(append(s.generators, generator), func(x, y Generator) bool {
		return x.Order() > y.Order() || x.Order() == y.Order() && x.Key() > y.Key()
	})
	return nil
}

// Run the session for the given targets, and return the finalized resource groups.
// Generators run in ascending order; targets handled by the same generator are processed in the given order
// (where a repeated target for the same generator is a no-op). No partial result is returned on error.
func (s *Session) Run(ctx context.Context, targets ...Target) (result *Result, err error) {
	if s.state != StateIdle {
		return nil, types.NewInvalidStateError(string(s.state), "run session")
	}

	log := log.FromContext(ctx)
	ctx = NewContextWithProject(ctx, s.project)
	ctx = NewContextWithVcsOptions(ctx, s.vcsOptions)

	defer func() {
		if err != nil {
			s.state = StateFailed
			result = nil
		}
	}()

	s.state = StateComposingConfig
	configurations := make([]config.Configuration, len(targets))
	for i, target := range targets {
		generator, err := s.generatorFor(target.Type)
		if err != nil {
			return nil, err
		}
		log.V(1).Info("composing configuration", "type", target.Type, "generator", generator.Key(), "fragments", len(target.Fragments))
		configuration, err := config.Compose(generator.FallbackConfiguration(s.project), target.Fragments...)
		if err != nil {
			return nil, errors.Wrapf(err, "error composing configuration for target %d (type %s)", i, target.Type)
		}
		configurations[i] = configuration
	}

	s.state = StateRegisteringDecorators
	r := registry.NewRegistry()
	for _, generator := range s.generators {
		for _, configuration := range configurations {
			if !generator.Accepts(configuration.GetType()) {
				continue
			}
			log.V(1).Info("running generator", "generator", generator.Key(), "type", configuration.GetType())
			if err := generator.Generate(ctx, r, configuration); err != nil {
				metrics.Generations.WithLabelValues(generator.Key(), "error").Inc()
				return nil, errors.Wrapf(err, "error running generator %s", generator.Key())
			}
			metrics.Generations.WithLabelValues(generator.Key(), "success").Inc()
		}
	}

	s.state = StateApplying
	groups, err := r.Apply(ctx)
	if err != nil {
		return nil, err
	}

	s.state = StateFinalized
	log.V(1).Info("generation finished", "groups", r.Groups())
	return &Result{Groups: groups, GroupOrder: r.Groups()}, nil
}

func (s *Session) generatorFor(configType config.Type) (Generator, error) {
	generators := slices.Select(s.generators, func(generator Generator) bool { return generator.Accepts(configType) })
	switch len(generators) {
	case 0:
		return nil, NoGeneratorError{configType: configType}
	case 1:
		return generators[0], nil
	default:
		return nil, AmbiguousGeneratorError{configType: configType, generators: slices.Collect(generators, func(generator Generator) string { return generator.Key() })}
	}
}
