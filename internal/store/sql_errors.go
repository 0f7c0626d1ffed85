package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories which domain sentinel,
// if any, a failed statement corresponds to.
type ErrorClassification int

const (
	// Unclassified covers every error without a domain meaning. Repositories
	// wrap it into a generic execution error.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a unique index rejected the row.
	UniqueViolation

	// ForeignKeyViolation indicates that a referenced row does not exist.
	ForeignKeyViolation

	// Transient indicates a failure that may succeed if attempted again
	// (lost connection, serialization failure, deadlock).
	Transient
)

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
