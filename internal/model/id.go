package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// idRegex matches business IDs like 7, #7, #007
	idRegex = regexp.MustCompile(`^\s*#?(\d+)\s*$`)
)

// ParseID parses a business ID string.
// Accepts various formats: 7, #7, #007 all parse to 7.
// Returns ErrInvalidID if the format is invalid or the number is not positive.
func ParseID(s string) (int, error) {
	matches := idRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid business ID", ErrInvalidID, s)
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return id, nil
}

// FormatID formats a business ID for display (e.g. #7).
func FormatID(id int) string {
	return "#" + strconv.Itoa(id)
}

// MaxID returns the highest ID in records, or 0 if there are none.
func MaxID(records []Business) int {
	highest := 0
	for i := range records {
		if records[i].ID > highest {
			highest = records[i].ID
		}
	}
	return highest
}
