// Package maybe mirrors the solo package for Option[T]: single-value,
// synchronous primitives over presence and absence instead of success and
// failure.
//
// Highlights:
// - Just/Nothing: construct Option[T]
// - Switch: move from Option[In] to Option[Out]
// - Map/Filter: transform or drop present values
// - Try: call a function (Out, error) and collapse the error to None
// - Catch/CatchOnly and the *Try helpers: turn panics into absence
// - Tee/DoubleTee/OnSomeTry: side-effect helpers
// - Finally: reduce to a concrete value via some/none handlers
package maybe
