package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every operation inside a checkout or delivery response shares the same
// all-or-nothing unit.
type RepositoryFactory interface {
	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// PaymentRepo returns a PaymentRepository bound to the current transaction.
	PaymentRepo() PaymentRepository

	// PointsRepo returns a PointsRepository bound to the current transaction.
	PointsRepo() PointsRepository

	// NotificationRepo returns a NotificationRepository bound to the current transaction.
	NotificationRepo() NotificationRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
