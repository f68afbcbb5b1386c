// Package bootstrap prepares a fresh environment: DynamoDB tables, workflow
// templates, the vehicle catalog and an optional first admin.
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"oficina_jobs/internal/domain/entities"
)

// seedNamespace scopes the name-based ids of seeded records.
var seedNamespace = uuid.MustParse("6f1c2a7e-3b9d-4e58-9a0c-5d2f8b7e4a11")

type Seed struct {
	Stages        []StageSeed     `yaml:"stages"`
	PhotoTypes    []PhotoTypeSeed `yaml:"photo_types"`
	VehicleTypes  []string        `yaml:"vehicle_types"`
	VehicleBrands []BrandSeed     `yaml:"vehicle_brands"`
}

type StageSeed struct {
	Code  string     `yaml:"code"`
	Name  string     `yaml:"name"`
	Steps []StepSeed `yaml:"steps"`
}

type StepSeed struct {
	Name      string `yaml:"name"`
	Skippable bool   `yaml:"skippable"`
}

type PhotoTypeSeed struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
}

type BrandSeed struct {
	Name   string   `yaml:"name"`
	Models []string `yaml:"models"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(b)
}

func ParseSeed(b []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Validate requires at least one stage, unique stage and photo codes, and
// unique step names inside each stage.
func (s Seed) Validate() error {
	if len(s.Stages) == 0 {
		return errors.New("seed: at least one stage is required")
	}
	stageCodes := map[string]bool{}
	for _, st := range s.Stages {
		code := normalizeCode(st.Code)
		if code == "" || strings.TrimSpace(st.Name) == "" {
			return errors.New("seed: stage code and name are required")
		}
		if stageCodes[code] {
			return fmt.Errorf("seed: duplicate stage %q", code)
		}
		stageCodes[code] = true

		steps := map[string]bool{}
		for _, step := range st.Steps {
			name := strings.TrimSpace(step.Name)
			if name == "" {
				return fmt.Errorf("seed: stage %q has a step without name", code)
			}
			if steps[strings.ToLower(name)] {
				return fmt.Errorf("seed: duplicate step %q in stage %q", name, code)
			}
			steps[strings.ToLower(name)] = true
		}
	}

	photoCodes := map[string]bool{}
	for _, pt := range s.PhotoTypes {
		code := normalizeCode(pt.Code)
		if code == "" {
			return errors.New("seed: photo type code is required")
		}
		if photoCodes[code] {
			return fmt.Errorf("seed: duplicate photo type %q", code)
		}
		photoCodes[code] = true
	}
	return nil
}

// WorkflowCatalog converts the seed into templates with deterministic ids.
// Order indexes are 1-based and follow the file order.
func (s Seed) WorkflowCatalog() entities.WorkflowCatalog {
	var c entities.WorkflowCatalog
	for i, st := range s.Stages {
		code := normalizeCode(st.Code)
		stage := entities.Stage{
			ID:         seedID("stage", code),
			Code:       code,
			Name:       strings.TrimSpace(st.Name),
			OrderIndex: i + 1,
		}
		c.Stages = append(c.Stages, stage)

		for j, step := range st.Steps {
			name := strings.TrimSpace(step.Name)
			c.StepTemplates = append(c.StepTemplates, entities.StepTemplate{
				ID:          seedID("step", code, strings.ToLower(name)),
				StageID:     stage.ID,
				Name:        name,
				OrderIndex:  j + 1,
				IsSkippable: step.Skippable,
			})
		}
	}
	for i, pt := range s.PhotoTypes {
		code := normalizeCode(pt.Code)
		c.PhotoTypes = append(c.PhotoTypes, entities.PhotoType{
			ID:         seedID("photo_type", code),
			Code:       code,
			Name:       strings.TrimSpace(pt.Name),
			OrderIndex: i + 1,
			IsRequired: pt.Required,
		})
	}
	return c
}

func (s Seed) VehicleCatalog() entities.VehicleCatalog {
	var c entities.VehicleCatalog
	for _, b := range s.VehicleBrands {
		name := strings.TrimSpace(b.Name)
		brand := entities.VehicleBrand{ID: seedID("brand", strings.ToLower(name)), Name: name}
		c.Brands = append(c.Brands, brand)
		for _, m := range b.Models {
			model := strings.TrimSpace(m)
			c.Models = append(c.Models, entities.VehicleModel{
				ID:      seedID("model", strings.ToLower(name), strings.ToLower(model)),
				BrandID: brand.ID,
				Name:    model,
			})
		}
	}
	for _, t := range s.VehicleTypes {
		name := strings.TrimSpace(t)
		c.Types = append(c.Types, entities.VehicleType{ID: seedID("type", strings.ToLower(name)), Name: name})
	}
	return c
}

func seedID(parts ...string) string {
	return uuid.NewSHA1(seedNamespace, []byte(strings.Join(parts, "/"))).String()
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
