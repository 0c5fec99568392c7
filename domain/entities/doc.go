// Package entities provides the core domain entities for policy generation.
// These are pure data types shared by the canonizer, validator, and
// comparator. Nothing in this package performs I/O or holds mutable state;
// every value is immutable once constructed.
package entities
