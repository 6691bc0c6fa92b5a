package types

import "time"

// Result is the envelope delivered by asynchronous execution
type Result[T any] struct {
	// Value is the execution result
	Value T

	// Err is the execution error
	Err error

	// Elapsed is the total execution time including retry delays
	Elapsed time.Duration
}
