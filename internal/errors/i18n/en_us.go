package i18n

import "golang.org/x/text/language"

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown             = "UNKNOWN"
	CodeDiceInvalidNotation = "DICE_INVALID_NOTATION"
	CodeEntityNotFound      = "ENTITY_NOT_FOUND"
	CodePathNotFound        = "PATH_NOT_FOUND"
	CodePathInvalidValue    = "PATH_INVALID_VALUE"
	CodeNoValidCombatants   = "NO_VALID_COMBATANTS"
	CodeCombatNotActive     = "COMBAT_NOT_ACTIVE"
	CodeUnknownArchetype    = "UNKNOWN_ARCHETYPE"
	CodeNotFound            = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	tag:    language.AmericanEnglish,
	messages: map[Code]string{
		CodeUnknown: "An unexpected error occurred",

		// Dice errors
		CodeDiceInvalidNotation: "Invalid dice notation: {{.Notation}}",

		// World-state errors
		CodeEntityNotFound:   "Entity not found: {{.EntityID}}",
		CodePathNotFound:     "Path not found: {{.Path}}",
		CodePathInvalidValue: "Cannot set {{.Path}}: expected {{.Want}} value",

		// Combat errors
		CodeNoValidCombatants: "No valid combatants found",
		CodeCombatNotActive:   "Combat is not active",
		CodeUnknownArchetype:  "Unknown enemy archetype: {{.Archetype}}",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}
