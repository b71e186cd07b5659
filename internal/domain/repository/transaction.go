package repository

import "context"

// TransactionManager runs multi-step cart and order work atomically.
//
// Execute commits when fn returns nil and rolls back otherwise. Begin and
// commit failures, serialization failures and deadlocks come back as
// ErrTransactionFailed; usecases retry those by calling Execute again, so fn
// must not have side effects outside the factory's repositories.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one open transaction.
// Stock locks taken through CatalogRepo are held until Execute returns.
type RepositoryFactory interface {
	CatalogRepo() CatalogRepository
	CartRepo() CartRepository
	OrderRepo() OrderRepository
}
