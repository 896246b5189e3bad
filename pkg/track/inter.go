package track

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome defines an interface for types that hold either a value or an error
type Outcome[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// OutcomeWithCancel extends Outcome with cancellation support
type OutcomeWithCancel[T any] interface {
	Outcome[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// Presence is the positive-only view of an optional value
type Presence[T any] interface {
	// Get returns the value and whether it is present
	Get() (T, bool)
	// IsSome returns true if a value is present
	IsSome() bool
}

var (
	_ OutcomeWithCancel[struct{}] = Result[struct{}]{}
	_ Presence[struct{}]          = Option[struct{}]{}
)
