// Package services contains domain services that coordinate behavior
// spanning more than one aggregate.
package services
