package preset

import(
  "encoding/json"
  "errors"
  "os"
  "path/filepath"
  "testing"
  "gosfx/synth"
  . "gosfx/testing_utilities"
)

const yamlPreset = `
name: laser
description: short zap
output:
  directory: out/laser
  format: WAV
parameters:
  duration: 0.3
  sample_rate: 22050
  frequency:
    start: 1500
    decay: 8
  harmonics:
    - ratio: 1
      amplitude: 0.8
    - ratio: 2
      amplitude: 0.3
variants:
  - name: soft
    seed: 7
    overrides:
      frequency:
        start: 900
  - name: bare
    overrides:
      harmonics: []
  - seed: 3
`

const jsonPreset = `{
  "name": "coin",
  "parameters": {"duration": 0.2, "noise": {"amplitude": 0.1}},
  "variants": [{"name": "a", "seed": null}]
}`

func TestParseYAML(t *testing.T) {
  p, err := Parse([]byte(yamlPreset))
  Ok(t, err)

  Equals(t, "laser", p.Name)
  Equals(t, "short zap", p.Description)
  Equals(t, "out/laser", p.Output.Directory)
  Equals(t, 0.3, *p.Parameters.Duration)
  Equals(t, 22050, *p.Parameters.SampleRate)
  Equals(t, 2, len(p.Parameters.Harmonics))
  Equals(t, 3, len(p.Variants))

  Equals(t, "soft", p.Variants[0].VariantName())
  Equals(t, int64(7), *p.Variants[0].Seed)
  Assert(t, p.Variants[1].Seed == nil, "missing seed should decode as nil")
  Equals(t, "variant", p.Variants[2].VariantName())
}

func TestParseJSON(t *testing.T) {
  p, err := Parse([]byte(jsonPreset))
  Ok(t, err)

  Equals(t, "coin", p.Name)
  Equals(t, 0.1, *p.Parameters.Noise.Amplitude)
  Assert(t, p.Variants[0].Seed == nil, "null seed should decode as nil")
}

func TestParseInvalid(t *testing.T) {
  _, err := Parse([]byte("parameters: [1, 2"))
  Assert(t, err != nil, "expected a parse error")

  _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
  Assert(t, errors.Is(err, os.ErrNotExist), "expected not-exist, got %v", err)
}

func TestPresetConfig(t *testing.T) {
  p, err := Parse([]byte(yamlPreset))
  Ok(t, err)

  soft := p.Config(p.Variants[0])
  Equals(t, 900.0, *soft.Frequency.Start)
  Equals(t, 8.0, *soft.Frequency.Decay)
  Equals(t, 2, len(soft.Harmonics))

  bare := p.Config(p.Variants[1])
  Assert(t, bare.Harmonics != nil, "explicit empty harmonics should survive")
  Equals(t, 0, len(bare.Harmonics))

  // the base parameters stay untouched
  Equals(t, 1500.0, *p.Parameters.Frequency.Start)
}

func TestEnsureVariants(t *testing.T) {
  p := &Preset{Name: "empty"}
  variants := p.EnsureVariants()

  Equals(t, 1, len(variants))
  Equals(t, DefaultVariantName, variants[0].VariantName())
  Assert(t, variants[0].Seed == nil, "default variant is unseeded")
  Equals(t, synth.Config{}, variants[0].Overrides)
}

func TestSelect(t *testing.T) {
  p, err := Parse([]byte(yamlPreset))
  Ok(t, err)
  variants := p.EnsureVariants()

  Equals(t, 3, len(Select(variants, nil)))

  selected := Select(variants, []string{"variant", "soft", "nope"})
  Equals(t, 2, len(selected))
  // preset order, not request order
  Equals(t, "soft", selected[0].VariantName())
  Equals(t, "variant", selected[1].VariantName())

  Equals(t, []string{"nope"}, Missing(variants, []string{"variant", "soft", "nope"}))
  Equals(t, 0, len(Select(variants, []string{"nope"})))
}

func TestResolveOutput(t *testing.T) {
  root := t.TempDir()

  tests := map[string]struct{
    preset Preset
    overrideDir string
    directory string
    base string
    format string
  }{
    "defaults from name": {
      preset: Preset{Name: "blip"},
      directory: filepath.Join(root, "assets/sounds/generated/blip"),
      base: "blip",
      format: "wav",
    },
    "unnamed": {
      preset: Preset{},
      directory: filepath.Join(root, "assets/sounds/generated/unnamed"),
      base: "sound",
      format: "wav",
    },
    "explicit output, format lowercased": {
      preset: Preset{Name: "blip", Output: Output{Directory: "sfx", BaseFilename: "ui", Format: "PCM"}},
      directory: filepath.Join(root, "sfx"),
      base: "ui",
      format: "pcm",
    },
    "override directory": {
      preset: Preset{Name: "blip", Output: Output{Directory: "sfx"}},
      overrideDir: "elsewhere",
      directory: filepath.Join(root, "elsewhere"),
      base: "blip",
      format: "wav",
    },
    "absolute directory": {
      preset: Preset{Name: "blip", Output: Output{Directory: filepath.Join(root, "abs")}},
      directory: filepath.Join(root, "abs"),
      base: "blip",
      format: "wav",
    },
  }

  for name, test := range tests {
    t.Run(name, func(t *testing.T){
      layout, err := ResolveOutput(&test.preset, root, test.overrideDir)
      Ok(t, err)

      Equals(t, test.directory, layout.Directory)
      Equals(t, test.base, layout.BaseFilename)
      Equals(t, test.format, layout.Format)

      info, err := os.Stat(layout.Directory)
      Ok(t, err)
      Assert(t, info.IsDir(), "output directory should exist")
    })
  }
}

func TestResolveOutputUnsupportedFormat(t *testing.T) {
  root := t.TempDir()
  p := &Preset{Name: "blip", Output: Output{Format: "mp3"}}

  layout, err := ResolveOutput(p, root, "")
  Assert(t, layout == nil, "layout should be nil")
  Assert(t, errors.Is(err, ErrUnsupportedFormat), "expected ErrUnsupportedFormat, got %v", err)

  // nothing gets created for a rejected preset
  _, err = os.Stat(filepath.Join(root, "assets"))
  Assert(t, errors.Is(err, os.ErrNotExist), "no directory should be created")
}

func TestLayoutFilename(t *testing.T) {
  layout := &Layout{Directory: "/tmp/x", BaseFilename: "laser", Format: "wav"}

  Equals(t, "laser_soft.wav", layout.Filename("soft"))
  Equals(t, "laser.wav", layout.Filename(""))
  Equals(t, filepath.Join("/tmp/x", "laser_default.wav"), layout.Path("default"))
}

func TestRelative(t *testing.T) {
  Equals(t, filepath.Join("a", "b.wav"), Relative("/root/game", "/root/game/a/b.wav"))
  Equals(t, "/elsewhere/b.wav", Relative("/root/game", "/elsewhere/b.wav"))
}

func TestWriteManifest(t *testing.T) {
  dir := t.TempDir()
  seed := int64(42)

  manifest := &Manifest{
    Preset: "laser",
    Description: "short zap",
    Source: "presets/laser.yaml",
    Variants: []Entry{
      {
        Path: "out/laser_soft.wav",
        Duration: 0.3,
        SampleRate: 22050,
        Seed: &seed,
        Parameters: synth.Config{Duration: synth.Float(0.3)},
        Variant: "soft",
        Filename: "laser_soft.wav",
      },
      {
        Path: "out/laser_loud.wav",
        Duration: 0.3,
        SampleRate: 22050,
        Variant: "loud",
        Filename: "laser_loud.wav",
      },
    },
  }

  manifestPath, err := WriteManifest(dir, manifest)
  Ok(t, err)
  Equals(t, filepath.Join(dir, ManifestFilename), manifestPath)

  data, err := os.ReadFile(manifestPath)
  Ok(t, err)
  Equals(t, byte('\n'), data[len(data) - 1])
  Assert(t, string(data[:4]) == "{\n  ", "manifest should be indented by two spaces")

  decoded := map[string]interface{}{}
  Ok(t, json.Unmarshal(data, &decoded))
  Equals(t, "laser", decoded["preset"])

  variants := decoded["variants"].([]interface{})
  Equals(t, 2, len(variants))

  first := variants[0].(map[string]interface{})
  Equals(t, 42.0, first["seed"])
  Equals(t, 22050.0, first["sample_rate"])
  Equals(t, map[string]interface{}{"duration": 0.3}, first["parameters"])

  second := variants[1].(map[string]interface{})
  seedValue, present := second["seed"]
  Assert(t, present && seedValue == nil, "unseeded variants record a null seed")
}

func TestWriteManifestEmptyVariants(t *testing.T) {
  dir := t.TempDir()

  manifestPath, err := WriteManifest(dir, &Manifest{Preset: "none"})
  Ok(t, err)

  data, err := os.ReadFile(manifestPath)
  Ok(t, err)

  decoded := map[string]interface{}{}
  Ok(t, json.Unmarshal(data, &decoded))
  Equals(t, []interface{}{}, decoded["variants"])
}
