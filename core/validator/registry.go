package validator

import (
	"cmp"
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/apicore/core/logger"
	"github.com/dmitrymomot/apicore/core/strategy"
)

// Registry holds validation rules and caches their per-type ordering.
// It is safe for concurrent use.
type Registry struct {
	rules  []Rule
	tags   strategy.Strategy[any]
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[reflect.Type][]Rule

	populations atomic.Int64
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report cache population.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRules appends rules to the registry.
func WithRules(rules ...Rule) Option {
	return func(r *Registry) {
		for _, rule := range rules {
			if rule != nil && rule.Target() != nil {
				r.rules = append(r.rules, rule)
			}
		}
	}
}

// WithStructTags enables `validate` struct tag checks ahead of the registered rules.
// Violations are rejected with a domain error of the given code; 0 uses DefaultTagCode.
func WithStructTags(code int) Option {
	return func(r *Registry) {
		r.tags = TagUnit(code)
	}
}

// New creates a registry holding the given rules.
func New(rules ...Rule) *Registry {
	return NewWithOptions(WithRules(rules...))
}

// NewWithOptions creates a registry from options.
func NewWithOptions(opts ...Option) *Registry {
	r := &Registry{
		cache:  make(map[reflect.Type][]Rule),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// For returns the rules targeting t in ascending priority order.
// The ordering is computed once per type; the returned slice is a copy.
func (r *Registry) For(t reflect.Type) []Rule {
	t = indirect(t)

	r.mu.RLock()
	rules, ok := r.cache[t]
	r.mu.RUnlock()
	if ok {
		return slices.Clone(rules)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have populated the entry while we waited for the lock
	if rules, ok := r.cache[t]; ok {
		return slices.Clone(rules)
	}

	rules = r.populate(t)
	r.cache[t] = rules
	return slices.Clone(rules)
}

// ForValue returns the rules targeting the runtime type of entity.
func (r *Registry) ForValue(entity any) []Rule {
	if entity == nil {
		return nil
	}
	return r.For(reflect.TypeOf(entity))
}

// Chain builds a strategy chain of the rules targeting t, preceded by the
// struct tag unit when WithStructTags is set.
func (r *Registry) Chain(t reflect.Type) *strategy.Chain[any] {
	rules := r.For(t)
	units := make([]strategy.Strategy[any], 0, len(rules)+1)
	if r.tags != nil {
		units = append(units, r.tags)
	}
	for _, rule := range rules {
		units = append(units, unit{rule: rule})
	}
	return strategy.NewChain(units...)
}

// Validate runs every rule targeting the entity's type. The first failing rule stops
// validation and its error is returned unchanged.
func (r *Registry) Validate(ctx context.Context, entity any) (strategy.Statistic[any], error) {
	if entity == nil {
		return strategy.Statistic[any]{}, ErrNilEntity
	}

	t := reflect.TypeOf(entity)
	stat, err := r.Chain(t).Run(ctx, entity)
	if err != nil {
		return stat, err
	}

	r.logger.DebugContext(ctx, "entity validated",
		logger.Component("validator"),
		logger.Type(t.String()),
		logger.Strings("rules", stat.AppliedNames()))

	return stat, nil
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// populate must be called with the write lock held.
func (r *Registry) populate(t reflect.Type) []Rule {
	var rules []Rule
	for _, rule := range r.rules {
		if indirect(rule.Target()) == t {
			rules = append(rules, rule)
		}
	}
	slices.SortStableFunc(rules, func(a, b Rule) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	r.populations.Add(1)
	r.logger.Debug("validator rules cached",
		logger.Component("validator"),
		logger.Type(t.String()),
		logger.Count("rules", len(rules)))

	return rules
}
