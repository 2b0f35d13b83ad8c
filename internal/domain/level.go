package domain

import (
	"fmt"
	"strings"
)

// TestLevel groups ERCx property tests by how strict they are.
type TestLevel string

const (
	LevelABI         TestLevel = "abi"
	LevelMinimal     TestLevel = "minimal"
	LevelRecommended TestLevel = "recommended"
	LevelDesirable   TestLevel = "desirable"
	LevelAddon       TestLevel = "addon"
	LevelFingerprint TestLevel = "fingerprint"
	LevelAll         TestLevel = "all"
)

func ParseTestLevel(raw string) (TestLevel, error) {
	level := TestLevel(strings.ToLower(strings.TrimSpace(raw)))
	switch level {
	case LevelABI, LevelMinimal, LevelRecommended, LevelDesirable, LevelAddon, LevelFingerprint, LevelAll:
		return level, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTestLevel, raw)
}

func (l TestLevel) String() string {
	return string(l)
}
