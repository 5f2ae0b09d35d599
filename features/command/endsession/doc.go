// Package endsession implements the End Session use case. Ending an empty slot is a no-op.
package endsession
