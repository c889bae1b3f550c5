// Package projector writes resolved token groups onto a dom.Target. Each
// group is isolated so a failure in one never prevents the rest from landing.
package projector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/tmtheme/internal/cssvars"
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/statematrix"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// Environment switches development-only contract checks.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Options configures a Projector.
type Options struct {
	Environment Environment
	Logger      *logger.Logger
	// Groups overrides the colour groups; nil uses cssvars.Groups().
	Groups []cssvars.Group
}

// Projector projects colour groups and the state matrix onto a target.
type Projector struct {
	env    Environment
	log    *logger.Logger
	groups []cssvars.Group
}

// New constructs a Projector. The zero Options value yields a production projector.
func New(opts Options) *Projector {
	env := opts.Environment
	if env == "" {
		env = Production
	}
	groups := opts.Groups
	if groups == nil {
		groups = cssvars.Groups()
	}
	return &Projector{
		env:    env,
		log:    opts.Logger.With("component", "projector"),
		groups: groups,
	}
}

// Environment reports the configured environment.
func (p *Projector) Environment() Environment {
	return p.env
}

// GroupResult is the outcome of projecting one group.
type GroupResult struct {
	Group   string
	Written int
	Err     error
}

// Report aggregates group outcomes for one projection call.
type Report struct {
	Mode   tokens.Mode
	Groups []GroupResult
}

// Failed returns the groups that did not project cleanly.
func (r Report) Failed() []GroupResult {
	var failed []GroupResult
	for _, g := range r.Groups {
		if g.Err != nil {
			failed = append(failed, g)
		}
	}
	return failed
}

// Err joins every group error, or returns nil when all groups succeeded.
func (r Report) Err() error {
	var errs []error
	for _, g := range r.Failed() {
		errs = append(errs, g.Err)
	}
	return errors.Join(errs...)
}

// Written totals the variables written across groups.
func (r Report) Written() int {
	total := 0
	for _, g := range r.Groups {
		total += g.Written
	}
	return total
}

// UpdateCSSVariablesFromTokens writes every colour, scale and static token
// group for mode. In development builds the tm group is checked against
// cssvars.RequiredThemeTokens right after it is written; a violation stops
// projection and returns a *errors.RequiredTokensError.
func (p *Projector) UpdateCSSVariablesFromTokens(target dom.Target, mode tokens.Mode, merged tokens.Merged) (Report, error) {
	report := Report{Mode: mode}

	for _, group := range p.groups {
		values, result := p.runGroup(target, mode, group.Name, func() cssvars.Values {
			return group.Build(mode, merged)
		})
		report.Groups = append(report.Groups, result)

		if group.Name == cssvars.GroupTM && p.env == Development {
			if missing, empty := cssvars.CheckRequired(values); len(missing) > 0 || len(empty) > 0 {
				return report, themeerrors.NewRequiredTokensError(string(mode), missing, empty)
			}
		}
	}

	return report, nil
}

// UpdateStateMatrixFromTokens writes the flattened state matrix, one group
// per component.
func (p *Projector) UpdateStateMatrixFromTokens(target dom.Target, mode tokens.Mode, merged tokens.Merged) (Report, error) {
	report := Report{Mode: mode}
	src := statematrix.SourceFor(mode, merged)

	for _, contract := range statematrix.Contracts(mode, src) {
		_, result := p.runGroup(target, mode, "state:"+contract.Component, func() cssvars.Values {
			return cssvars.Values(statematrix.Flatten(contract.Matrix))
		})
		report.Groups = append(report.Groups, result)
	}

	return report, nil
}

// runGroup builds and writes one group, converting build panics and write
// errors into a ProjectionError on the result.
func (p *Projector) runGroup(target dom.Target, mode tokens.Mode, name string, build func() cssvars.Values) (values cssvars.Values, result GroupResult) {
	result.Group = name

	defer func() {
		if r := recover(); r != nil {
			result.Err = themeerrors.NewProjectionError(name, string(mode), fmt.Errorf("panic: %v", r))
		}
		if result.Err != nil {
			p.log.WithFields(map[string]any{"group": name, "mode": string(mode)}).Error(result.Err, "token group projection failed")
		}
	}()

	values = build()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := target.SetProperty(key, values[key]); err != nil {
			result.Err = themeerrors.NewProjectionError(name, string(mode), fmt.Errorf("set %s: %w", key, err))
			return values, result
		}
		result.Written++
	}

	return values, result
}
