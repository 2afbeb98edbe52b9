// Package kernel contains shared value objects used across domain aggregates:
// identifiers, order numbers, and guest phone numbers. All types are immutable
// and validate themselves on construction.
package kernel
