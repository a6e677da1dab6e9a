package models

// Operation tells validators and hooks which write phase they run in.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
)
