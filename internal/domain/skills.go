package domain

import (
	"fmt"
	"math"
)

// Skill layer constants, fixed six layers
const (
	LayerFrontend = "frontend"
	LayerBackend  = "backend"
	LayerDatabase = "database"
	LayerCloud    = "cloud"
	LayerDevops   = "devops"
	LayerOthers   = "others"
)

// WeightTolerance is the allowed deviation when a weight set must sum to 1.0.
const WeightTolerance = 0.001

// SkillFormat tags which shape of skill data a bid carries
const (
	SkillFormatLegacy  = "legacy"  // flat list of skill names
	SkillFormatLayered = "layered" // per-layer weighted skills
)

// WeightedSkill is one skill with its relative importance inside a layer
type WeightedSkill struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight"`
}

// LayerSkills holds the per-layer weighted skill lists. Empty layers are
// allowed; the weights of every non-empty layer must sum to 1.0.
type LayerSkills struct {
	Frontend []WeightedSkill `json:"frontend"`
	Backend  []WeightedSkill `json:"backend"`
	Database []WeightedSkill `json:"database"`
	Cloud    []WeightedSkill `json:"cloud"`
	Devops   []WeightedSkill `json:"devops"`
	Others   []WeightedSkill `json:"others"`
}

// ByLayer returns the layers in their fixed order
func (ls *LayerSkills) ByLayer() map[string][]WeightedSkill {
	return map[string][]WeightedSkill{
		LayerFrontend: ls.Frontend,
		LayerBackend:  ls.Backend,
		LayerDatabase: ls.Database,
		LayerCloud:    ls.Cloud,
		LayerDevops:   ls.Devops,
		LayerOthers:   ls.Others,
	}
}

func (ls *LayerSkills) Validate() error {
	for layer, skills := range ls.ByLayer() {
		if len(skills) == 0 {
			continue
		}
		var sum float64
		for _, s := range skills {
			if s.Skill == "" {
				return &ValidationError{Field: layer, Message: "skill name must not be empty"}
			}
			sum += s.Weight
		}
		if math.Abs(sum-1.0) > WeightTolerance {
			return &ValidationError{
				Field:   layer,
				Message: fmt.Sprintf("skill weights must sum to 1.0, got %.4f", sum),
			}
		}
	}
	return nil
}

// LayerWeights is the relative importance of each layer for a bid. The six
// values must sum to 1.0.
type LayerWeights struct {
	Frontend float64 `json:"frontend"`
	Backend  float64 `json:"backend"`
	Database float64 `json:"database"`
	Cloud    float64 `json:"cloud"`
	Devops   float64 `json:"devops"`
	Others   float64 `json:"others"`
}

func (lw *LayerWeights) Validate() error {
	sum := lw.Frontend + lw.Backend + lw.Database + lw.Cloud + lw.Devops + lw.Others
	if math.Abs(sum-1.0) > WeightTolerance {
		return &ValidationError{
			Field:   "layer_weights",
			Message: fmt.Sprintf("layer weights must sum to 1.0, got %.4f", sum),
		}
	}
	return nil
}

// SkillData is the tagged union of the two skill shapes a bid may carry:
// the legacy flat list or the six-layer weighted structure. Exactly one
// shape is populated, selected by Format.
type SkillData struct {
	Format     string       `json:"format"` // legacy | layered
	MainStacks []string     `json:"main_stacks,omitempty"`
	Layers     *LayerSkills `json:"layers,omitempty"`
}

// LegacySkills builds a flat-list skill data value
func LegacySkills(stacks []string) SkillData {
	return SkillData{Format: SkillFormatLegacy, MainStacks: stacks}
}

// LayeredSkills builds a layered skill data value
func LayeredSkills(layers *LayerSkills) SkillData {
	return SkillData{Format: SkillFormatLayered, Layers: layers}
}

func (s SkillData) Validate() error {
	switch s.Format {
	case SkillFormatLegacy:
		if s.Layers != nil {
			return &ValidationError{Field: "skills", Message: "legacy skill data must not carry layers"}
		}
		if len(s.MainStacks) == 0 {
			return &ValidationError{Field: "skills", Message: "at least one skill is required"}
		}
		for _, stack := range s.MainStacks {
			if stack == "" {
				return &ValidationError{Field: "skills", Message: "skill name must not be empty"}
			}
		}
		return nil
	case SkillFormatLayered:
		if s.MainStacks != nil {
			return &ValidationError{Field: "skills", Message: "layered skill data must not carry a flat list"}
		}
		if s.Layers == nil {
			return &ValidationError{Field: "skills", Message: "layered skill data requires layers"}
		}
		return s.Layers.Validate()
	default:
		return &ValidationError{Field: "skills", Message: fmt.Sprintf("unknown skill format %q", s.Format)}
	}
}
