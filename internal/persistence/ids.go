package persistence

import "github.com/google/uuid"

// IDGenerator hands out unique, prefixed identifiers
type IDGenerator interface {
	NewID(prefix string) string
}

// IDGeneratorFunc adapts a function to IDGenerator
type IDGeneratorFunc func(prefix string) string

// NewID implements IDGenerator
func (f IDGeneratorFunc) NewID(prefix string) string {
	return f(prefix)
}

// RandomIDs generates ids with GenerateID
var RandomIDs IDGenerator = IDGeneratorFunc(GenerateID)

// GenerateID returns "<prefix>-<uuid v4>". The uuid is drawn from
// crypto/rand, so collisions are not a practical concern.
func GenerateID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
