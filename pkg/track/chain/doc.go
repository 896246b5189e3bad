// Package chain provides a fluent wrapper around Result[T] for building
// synchronous two-track pipelines using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapError/Recover: transform values and causes, or rejoin the success track
// - Validate/Ensure/EnsureErr: validation and side effects
// - Or/And/While/RepeatUntil: combine and loop chains
// - Switch/MapTo/TryTo: move the chain to a new value type
// - Finally: collapse the chain into a final value via handlers
package chain
