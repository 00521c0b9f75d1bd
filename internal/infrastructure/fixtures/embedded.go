// Package fixtures ships the portal's seed data inside the binary.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bloodchain/portal/internal/core/domain"
)

//go:embed fixtures.yaml
var seed []byte

// Parse decodes a fixtures document.
func Parse(data []byte) (domain.Fixtures, error) {
	var f domain.Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return f, nil
}

// Embedded serves the compiled-in fixtures. The document is decoded once;
// every Load returns a fresh copy.
type Embedded struct {
	once sync.Once
	f    domain.Fixtures
	err  error
}

func NewEmbedded() *Embedded { return &Embedded{} }

func (e *Embedded) Load(context.Context) (domain.Fixtures, error) {
	e.once.Do(func() { e.f, e.err = Parse(seed) })
	if e.err != nil {
		return domain.Fixtures{}, e.err
	}
	return e.f.Clone(), nil
}
