// Package strategy provides an ordered chain of pluggable processing units.
//
// Each unit first decides whether it applies to the current subject (Check) and then,
// when applicable, transforms it (Process). Validation, sanitization and similar
// per-request steps are all expressed as chains of such units.
//
// # Core Concepts
//
//   - Strategy[T]: a unit with Check and Process.
//   - Config[T]: the immutable decision returned by Check. It says whether the unit
//     applies, which subject it saw, the continuation Mode and optional parameters.
//   - Chain[T]: an immutable, ordered list of units.
//   - Statistic[T]: the outcome of a run, holding the final subject and the types of
//     the units that processed it.
//
// # Execution Rules
//
// The chain runs units strictly in registration order:
//
//   - a unit whose Check reports not applicable is skipped and does not count as applied;
//   - an applicable unit is processed, its result becomes the working subject, and its
//     concrete type is recorded;
//   - a unit whose Config carries ModeTerminateAfter stops the chain right after it runs;
//   - a Process error aborts the run, and the statistic gathered up to that point is
//     returned with it.
//
// Parameters passed to Run reach every Check call. A unit decides what to hand on to
// Process through the Config it returns.
//
// # Writing Units
//
// A unit is any type with the two methods:
//
//	type trimName struct{}
//
//	func (trimName) Check(u *User, _ ...any) strategy.Config[*User] {
//		if u.Name == strings.TrimSpace(u.Name) {
//			return strategy.Skip(u)
//		}
//		return strategy.Applicable(u)
//	}
//
//	func (trimName) Process(_ context.Context, u *User, _ strategy.Config[*User]) (*User, error) {
//		u.Name = strings.TrimSpace(u.Name)
//		return u, nil
//	}
//
//	chain := strategy.NewChain[*User](trimName{}, lowercaseEmail{})
//	stat, err := chain.Run(ctx, user)
//	// stat.Subject is the processed user, stat.Applied lists the units that ran
//
// One-off units can be built from functions with Func:
//
//	stop := strategy.Func[*User]{
//		CheckFn: func(u *User, _ ...any) strategy.Config[*User] {
//			if u.Banned {
//				return strategy.Terminal(u)
//			}
//			return strategy.Skip(u)
//		},
//	}
//
// A Func without ProcessFn returns the subject unchanged.
//
// # Statistics
//
// Statistic.Applied records the concrete type of every processed unit, so callers can
// tell exactly which steps ran. Adapters that wrap another value implement Typed to
// report the wrapped type instead of their own:
//
//	func (u ruleUnit) UnitType() reflect.Type { return reflect.TypeOf(u.rule) }
//
// Statistic.AppliedNames renders the same list as type names for logging.
//
// # Concurrency
//
// Chains are immutable and safe for concurrent use as long as the units are. Every Run
// works on its own subject and statistic.
package strategy
