// Package catalog loads the fixed destination table from YAML or JSON, either
// compiled into the binary or read from disk.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

//go:embed destinations.yaml
var embeddedCatalog []byte

type Repository struct {
	data   []byte
	source string
}

// NewEmbeddedRepo serves the catalog shipped with the binary.
func NewEmbeddedRepo() *Repository {
	return &Repository{data: embeddedCatalog, source: "embedded catalog"}
}

// NewFileRepo reads path once. YAML and JSON are both accepted.
func NewFileRepo(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return &Repository{data: data, source: path}, nil
}

func (r *Repository) ListAll(_ context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	if err := yaml.Unmarshal(r.data, &destinations); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.source, err)
	}
	for i := range destinations {
		if destinations[i].Activities == nil {
			destinations[i].Activities = []string{}
		}
	}
	return destinations, nil
}

var _ ports.DestinationRepository = (*Repository)(nil)
