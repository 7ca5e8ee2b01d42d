// Package profile defines the single-row about and contact records.
package profile
