// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr: transform one side of the result
// - Or/And: pick between chains
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Every chain carries a trace id and logs its steps at debug level through
// the logger found in its context (see core.WithLogger).
package tiny
