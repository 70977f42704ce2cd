package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so multi-step operations (registration, like-then-match) read
// and write through a single database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// PhotoRepo returns a PhotoRepository bound to the current transaction.
	PhotoRepo() PhotoRepository

	// LikeRepo returns a LikeRepository bound to the current transaction.
	LikeRepo() LikeRepository

	// MatchRepo returns a MatchRepository bound to the current transaction.
	MatchRepo() MatchRepository

	// MessageRepo returns a MessageRepository bound to the current transaction.
	MessageRepo() MessageRepository
}
