package preset

import(
  "encoding/json"
  "os"
  "path/filepath"
  "gosfx/synth"
)

const ManifestFilename = "manifest.json"

type Entry struct {
  Path string `json:"path"`
  Duration float64 `json:"duration"`
  SampleRate int `json:"sample_rate"`
  Seed *int64 `json:"seed"`
  Parameters synth.Config `json:"parameters"`
  Variant string `json:"variant"`
  Filename string `json:"filename"`
}

type Manifest struct {
  Preset string `json:"preset"`
  Description string `json:"description"`
  Source string `json:"source"`
  Variants []Entry `json:"variants"`
}

// WriteManifest writes manifest.json into directory and returns its path.
func WriteManifest(directory string, manifest *Manifest) (string, error) {
  if manifest.Variants == nil {
    manifest.Variants = []Entry{}
  }

  data, err := json.MarshalIndent(manifest, "", "  ")

  if err != nil {
    return "", err
  }

  manifestPath := filepath.Join(directory, ManifestFilename)

  if err := os.WriteFile(manifestPath, append(data, '\n'), 0644); err != nil {
    return "", err
  }

  return manifestPath, nil
}
