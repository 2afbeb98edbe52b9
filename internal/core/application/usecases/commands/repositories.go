// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ghostkitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// KitchenRepoFactory provides access to the kitchen repository within a transaction.
	KitchenRepoFactory interface {
		KitchenRepository() ports.KitchenRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CuisineRepoFactory provides access to the cuisine repository within a transaction.
	CuisineRepoFactory interface {
		CuisineRepository() ports.CuisineRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OTPRepoFactory provides access to the one-time-code repository within a transaction.
	OTPRepoFactory interface {
		OTPRepository() ports.OTPRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// status advances, cancellations, ETA updates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for order placement, which reads the
	// restaurant and its menu before writing the order.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		ProductRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// SignupUoW manages transactions for kitchen signup, which creates the
	// kitchen and its owning user account together.
	SignupUoW interface {
		TxManager
		UserRepoFactory
		KitchenRepoFactory
	}

	// SignupUoWFactory creates new signup unit of work instances.
	SignupUoWFactory interface {
		Create() SignupUoW
	}

	// RestaurantUoW manages transactions for restaurant creation, which
	// validates cuisine tags against the catalog.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		CuisineRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// ProductUoW manages transactions for menu edits, which check the owning
	// restaurant before touching products.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		RestaurantRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OTPUoW manages transactions for one-time-code operations.
	OTPUoW interface {
		TxManager
		OTPRepoFactory
	}

	// OTPUoWFactory creates new one-time-code unit of work instances.
	OTPUoWFactory interface {
		Create() OTPUoW
	}
)
