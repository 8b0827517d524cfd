package session

import "errors"

// Low-level database operation errors. Returned (or wrapped) by store
// methods when a SQL-level operation fails. Callers match them with
// [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// session database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
