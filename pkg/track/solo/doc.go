// Package solo contains single-value, synchronous two-track primitives that
// operate on Result[T]. These functions form the core building blocks for
// error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/MapError/DoubleMap: transform success values and failure causes
// - Recover: let a handler move the error track back to success
// - Try: call a function (Out, error) and convert error to failure
// - Catch/CatchOnly and the *Try helpers: turn panics into failures
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
