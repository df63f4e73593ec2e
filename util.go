package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var diceRe = regexp.MustCompile(`^(\d*)\s*[dD]\s*(\d+)$`)

// parseDiceNotation turns "2d6" (or "d8") into a die count and side count.
func parseDiceNotation(input string) (int, int, error) {
	matches := diceRe.FindStringSubmatch(strings.TrimSpace(input))
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid dice notation %q", input)
	}

	count := 1
	if matches[1] != "" {
		count, _ = strconv.Atoi(matches[1])
	}
	sides, _ := strconv.Atoi(matches[2])
	return count, sides, nil
}
