package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
)

// Notation is a parsed dice expression of the form NdM, NdM+K, or NdM-K.
type Notation struct {
	Count    int
	Sides    int
	Modifier int
}

// notationPattern matches NdM with an optional signed modifier. The grammar is
// fixed-form: no multiple dice groups, no keep-highest expressions.
var notationPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseNotation parses standard dice notation like "1d20", "2d6+3", or
// "1d8-1". Input is case-insensitive and surrounding whitespace is ignored.
// Malformed notation returns a DICE_INVALID_NOTATION error carrying the
// offending string; it is never coerced to a default.
func ParseNotation(notation string) (Notation, error) {
	cleaned := strings.ToLower(strings.TrimSpace(notation))

	match := notationPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return Notation{}, invalidNotation(notation)
	}

	count, err := strconv.Atoi(match[1])
	if err != nil {
		return Notation{}, invalidNotation(notation)
	}
	sides, err := strconv.Atoi(match[2])
	if err != nil {
		return Notation{}, invalidNotation(notation)
	}

	modifier := 0
	if match[3] != "" {
		modifier, err = strconv.Atoi(match[3])
		if err != nil {
			return Notation{}, invalidNotation(notation)
		}
	}

	if count < 1 || sides < 1 {
		return Notation{}, invalidNotation(notation)
	}

	return Notation{Count: count, Sides: sides, Modifier: modifier}, nil
}

// String renders the notation back into its canonical NdM±K form.
func (n Notation) String() string {
	if n.Modifier > 0 {
		return fmt.Sprintf("%dd%d+%d", n.Count, n.Sides, n.Modifier)
	}
	if n.Modifier < 0 {
		return fmt.Sprintf("%dd%d%d", n.Count, n.Sides, n.Modifier)
	}
	return fmt.Sprintf("%dd%d", n.Count, n.Sides)
}

func invalidNotation(notation string) *errors.Error {
	return errors.New(errors.CodeDiceInvalidNotation, "invalid dice notation").
		WithMeta("Notation", notation)
}
