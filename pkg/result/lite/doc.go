// Package lite provides channel-lifted stages over result.Result for
// concurrent pipelines. It is designed for simple fan-out/fan-in flows.
//
// Common usage:
// - Run/Turnout: drive a stage over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map/Tee: build stages from solo operations
// - Finally: map Result[In, E] to Out on completion
//
// Output order is not preserved when lines > 1.
package lite
