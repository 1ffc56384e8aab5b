package framework

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed frameworks.yaml
var frameworksYAML []byte

// Type keys of the built-in frameworks.
const (
	TypeDanielson = "danielson"
	TypeMarshall  = "marshall"
)

type Element struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

type Domain struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Elements []Element `yaml:"elements" json:"elements"`
}

type Framework struct {
	Name    string   `yaml:"name" json:"name"`
	Type    string   `yaml:"type" json:"type"`
	Domains []Domain `yaml:"domains" json:"domains"`
}

type catalog struct {
	Frameworks []Framework `yaml:"frameworks"`
}

var (
	loadOnce sync.Once
	loaded   catalog
	loadErr  error
)

func load() (catalog, error) {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(frameworksYAML, &loaded)
	})
	return loaded, loadErr
}

// All returns every built-in rubric framework.
func All() ([]Framework, error) {
	c, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load framework catalog: %w", err)
	}
	return c.Frameworks, nil
}

// ByType looks a framework up by its type key (danielson, marshall).
func ByType(t string) (Framework, error) {
	frameworks, err := All()
	if err != nil {
		return Framework{}, err
	}
	for _, f := range frameworks {
		if f.Type == t {
			return f, nil
		}
	}
	return Framework{}, fmt.Errorf("unknown framework type %q", t)
}

// ElementIDs flattens a framework to its element ids in catalog order.
func (f Framework) ElementIDs() []string {
	var ids []string
	for _, d := range f.Domains {
		for _, e := range d.Elements {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// ElementName resolves an element id to its display name; falls back to
// the id itself when unknown.
func (f Framework) ElementName(id string) string {
	for _, d := range f.Domains {
		for _, e := range d.Elements {
			if e.ID == id {
				return e.Name
			}
		}
	}
	return id
}
