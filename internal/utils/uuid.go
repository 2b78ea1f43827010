package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for users, projects, todos and notes.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 strings so that ids sort
// roughly by creation time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// SequenceGenerator returns ids from a fixed list and is meant for tests.
type SequenceGenerator struct {
	IDs  []string
	next int
}

func (g *SequenceGenerator) Generate() string {
	if g.next >= len(g.IDs) {
		return uuid.NewString()
	}
	id := g.IDs[g.next]
	g.next++
	return id
}
