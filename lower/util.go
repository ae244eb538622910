package lower

import (
	"fmt"
	"math"
	"strconv"
)

func float64Bits(v float64) uint64 { return math.Float64bits(v) }

func parseBoolLiteral(lexeme string) (bool, error) {
	v, err := strconv.ParseBool(lexeme)
	if err != nil {
		return false, fmt.Errorf("not a valid boolean literal: %w", err)
	}
	return v, nil
}

func parseByteLiteral(lexeme string) (uint8, error) {
	v, err := strconv.ParseUint(lexeme, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("not a valid byte literal: %w", err)
	}
	return uint8(v), nil
}

func parseCharLiteral(lexeme string) (rune, error) {
	if len([]rune(lexeme)) == 1 {
		return []rune(lexeme)[0], nil
	}
	v, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a valid char literal: %w", err)
	}
	return rune(v), nil
}
