// Package result provides Result[T, E], a value that holds either a success
// payload of type T or a failure payload of type E, never both.
//
// Results are built from wrappers or direct constructors:
// - Succeed/Fail: wrap a payload, then FromSuccess/FromFailure
// - Ok/Err: build a Result directly
// - the zero Result[T, E] is Ok with the zero T
//
// Inspection never fails (IsOk, IsErr, Kind, Ok, Err). The trusting
// accessors TryOk, TryErr, Unwrap and Expect terminate the process when
// asked for the wrong variant; that is a programming error, not a failure
// to recover from.
//
// Combinators (Map, MapErr, And, AndThen, Or, OrElse) always return a new
// Result and leave the receiver untouched.
package result
