// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice errors
	CodeDiceInvalidNotation Code = "DICE_INVALID_NOTATION"

	// World-state errors
	CodeEntityNotFound   Code = "ENTITY_NOT_FOUND"
	CodePathNotFound     Code = "PATH_NOT_FOUND"
	CodePathInvalidValue Code = "PATH_INVALID_VALUE"

	// Combat errors
	CodeNoValidCombatants Code = "NO_VALID_COMBATANTS"
	CodeCombatNotActive   Code = "COMBAT_NOT_ACTIVE"
	CodeUnknownArchetype  Code = "UNKNOWN_ARCHETYPE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceInvalidNotation,
		CodePathInvalidValue,
		CodeUnknownArchetype:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeNoValidCombatants,
		CodeCombatNotActive:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeEntityNotFound,
		CodePathNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
