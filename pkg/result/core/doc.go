// Package core contains pipeline plumbing for Results: channel helpers,
// worker and logger configuration via context, and the locomotive that
// drives a stage. It does not define business logic; packages like lite
// build stages on top of it.
package core
