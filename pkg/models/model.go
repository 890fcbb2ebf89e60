package models

// Model is implemented by all records kept in a data source.
//
// Records are plain values. WithID returns a copy carrying the identifier the
// data source assigned, the receiver is never modified.
type Model[T any] interface {
	Identifier() int
	WithID(id int) T
	TableName() string
}
