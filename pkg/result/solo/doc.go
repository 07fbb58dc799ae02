// Package solo contains single-value, synchronous railway primitives that
// operate on result.Result. They take a context so that they compose with
// the chain and pipeline packages, but none of them block.
//
// Highlights:
// - Validate/AndValidate/ValidateAll: turn predicates into failures
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/DoubleMap: transform the success side, or both sides
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
