// Package mocks provides hand-written test doubles for the application's
// service and store interfaces. Each mock exposes function fields so test
// cases can override individual behaviors, with sensible defaults when a
// field is left nil.
package mocks
