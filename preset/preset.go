package preset

import(
  "fmt"
  "os"
  "gopkg.in/yaml.v3"
  "gosfx/synth"
)

const DefaultVariantName = "default"

// name given to variants that leave it out
const unnamedVariant = "variant"

type Output struct {
  Directory string `yaml:"directory"`
  BaseFilename string `yaml:"base_filename"`
  Format string `yaml:"format"`
}

type Variant struct {
  Name *string `yaml:"name"`
  Seed *int64 `yaml:"seed"`
  Overrides synth.Config `yaml:"overrides"`
}

// Preset is one preset document. JSON presets are valid YAML, so both load
// through the same decoder.
type Preset struct {
  Name string `yaml:"name"`
  Description string `yaml:"description"`
  Output Output `yaml:"output"`
  Parameters synth.Config `yaml:"parameters"`
  Variants []Variant `yaml:"variants"`
}

func Load(filePath string) (*Preset, error) {
  data, err := os.ReadFile(filePath)

  if err != nil {
    return nil, err
  }

  return Parse(data)
}

func Parse(data []byte) (*Preset, error) {
  p := &Preset{}

  if err := yaml.Unmarshal(data, p); err != nil {
    return nil, fmt.Errorf("parsing preset: %w", err)
  }

  return p, nil
}

func (v Variant) VariantName() string {
  if v.Name == nil {
    return unnamedVariant
  }
  return *v.Name
}

// EnsureVariants returns the preset's variants, or a single unseeded
// default variant when it declares none.
func (p *Preset) EnsureVariants() []Variant {
  if len(p.Variants) == 0 {
    name := DefaultVariantName
    return []Variant{{Name: &name}}
  }

  return p.Variants
}

// Select keeps the variants whose names are listed, in preset order. An
// empty list keeps every variant.
func Select(variants []Variant, names []string) []Variant {
  if len(names) == 0 {
    return variants
  }

  allowed := make(map[string]bool, len(names))
  for _, name := range names {
    allowed[name] = true
  }

  selected := []Variant{}
  for _, variant := range variants {
    if allowed[variant.VariantName()] {
      selected = append(selected, variant)
    }
  }

  return selected
}

// Missing lists requested names that no variant carries.
func Missing(variants []Variant, names []string) []string {
  known := make(map[string]bool, len(variants))
  for _, variant := range variants {
    known[variant.VariantName()] = true
  }

  missing := []string{}
  for _, name := range names {
    if !known[name] {
      missing = append(missing, name)
    }
  }

  return missing
}

// Config merges the variant's overrides onto the preset parameters.
func (p *Preset) Config(v Variant) synth.Config {
  return synth.Merge(p.Parameters, v.Overrides)
}
