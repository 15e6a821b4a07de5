package memory

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Categories []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Types []struct {
			ID   string `yaml:"id"`
			Name string `yaml:"name"`
		} `yaml:"types"`
	} `yaml:"categories"`
	Filters []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"filters"`
}

// NewSeededStore crea un almacén con las categorías, tipos y filtros predefinidos de arranque.
func NewSeededStore() (*Store, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("memory: seed: %w", err)
	}
	categories := make([]entity.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		cat := entity.Category{ID: c.ID, Name: c.Name}
		for _, t := range c.Types {
			cat.Types = append(cat.Types, entity.ProductType{ID: t.ID, Name: t.Name})
		}
		categories = append(categories, cat)
	}
	filters := make([]entity.Filter, 0, len(f.Filters))
	for _, fl := range f.Filters {
		filters = append(filters, entity.Filter{ID: fl.ID, Name: fl.Name, TypeID: fl.Type, Predefined: true})
	}
	return NewStore(categories, filters), nil
}
