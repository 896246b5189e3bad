// Package async defers the two families behind one-shot futures. A
// Future[T] resolves to a Result[T], an OptFuture[T] resolves to an
// Option[T]. Combinators await their input exactly once and then apply
// the matching solo or maybe primitive, so a pipeline step suspends at
// most once and already resolved inputs are transformed in place.
//
// Then and ThenOpt sequence continuations that are themselves futures.
// There is no fan-out here: each combinator consumes one future and
// produces one future.
package async
