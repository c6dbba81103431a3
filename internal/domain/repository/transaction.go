package repository

import "context"

// TransactionManager runs multi-step account and session writes atomically. fn receives
// repositories bound to the transaction; returning an error rolls everything back.
//
// OTP challenges are deliberately absent from the factory: they may live in Redis, which does
// not take part in the SQL transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	DeviceSessionRepo() DeviceSessionRepository
}
