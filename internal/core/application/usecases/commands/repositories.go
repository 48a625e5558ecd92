// Package commands holds the write side: order placement and its status
// transitions, stock administration and customer sign-in. Each handler runs
// in one unit of work.
package commands

import (
	"context"

	"campusdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Every repository obtained from one unit of work shares its transaction.
type (
	// TxManager is the transaction half of every unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// InventoryUoW manages transactions for stock administration.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// CustomerUoW reads customer data for sign-in.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW manages transactions that span orders, stock and the directories.
	// Used by every order lifecycle command.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   inventoryRepo := uow.InventoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		RiderRepoFactory
		CustomerRepoFactory
	}

	// UoWFactory creates new unit of work instances for order lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
