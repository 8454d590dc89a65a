// Package uuid mints random UUIDv4 ids.
package uuid

import (
	"context"

	"github.com/google/uuid"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
