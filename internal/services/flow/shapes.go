package flow

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// ShapeNames is the fixed set a client-chosen shape is drawn from.
var ShapeNames = []string{"circle", "rectangle", "square", "triangle"}

// ErrNoShape is returned when a server-shape payload carries no shape.
var ErrNoShape = errors.New("response carries no shape")

// RandomShape picks uniformly from ShapeNames.
func RandomShape() string { return ShapeNames[rand.IntN(len(ShapeNames))] }

// Picker returns a uniform picker backed by r.
func Picker(r *rand.Rand) func() string {
	return func() string { return ShapeNames[r.IntN(len(ShapeNames))] }
}

func normalizeShape(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
