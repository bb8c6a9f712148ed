package maze

import (
	"fmt"
	"strings"
)

// Direction is a compass heading. The numeric order North, East, South, West
// is the cyclic order used for turn arithmetic.
type Direction uint8

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount is the number of compass directions.
const DirectionCount = 4

// Directions returns all valid directions in cyclic order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % DirectionCount
}

// Delta returns the column and row offsets for this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// TurnDistance returns the minimum number of 90° rotations needed to turn
// from a to b: 0 for the same direction, 1 for adjacent, 2 for opposite.
// It is symmetric.
func TurnDistance(a, b Direction) int {
	diff := (int(b) - int(a) + DirectionCount) % DirectionCount
	if diff > DirectionCount/2 {
		return DirectionCount - diff
	}
	return diff
}

// ParseDirection accepts "N", "E", "S", "W" or the full names, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
