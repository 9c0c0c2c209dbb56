// Package store defines the persistence interfaces and shared storage
// errors used by the rest of the application. Concrete implementations
// live under internal/platform.
package store
