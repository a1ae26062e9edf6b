package preset

import(
  "errors"
  "fmt"
  "os"
  "path/filepath"
  "strings"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

var SupportedFormats = map[string]bool {
  "pcm": true,
  "wav": true,
}

const DefaultFormat = "wav"

type Layout struct {
  Directory string
  BaseFilename string
  Format string
}

func resolvePath(root, path string) string {
  if filepath.IsAbs(path) {
    return path
  }
  return filepath.Join(root, path)
}

// ResolveOutput works out where a preset renders to and creates the
// directory. overrideDir replaces the preset's directory when set; relative
// paths resolve against root.
func ResolveOutput(p *Preset, root string, overrideDir string) (*Layout, error) {
  name := p.Name
  if name == "" {
    name = "unnamed"
  }

  directory := p.Output.Directory
  if directory == "" {
    directory = "assets/sounds/generated/" + name
  }

  baseFilename := p.Output.BaseFilename
  if baseFilename == "" {
    baseFilename = p.Name
  }
  if baseFilename == "" {
    baseFilename = "sound"
  }

  format := strings.ToLower(p.Output.Format)
  if format == "" {
    format = DefaultFormat
  }

  if !SupportedFormats[format] {
    return nil, fmt.Errorf("%w '%s', only pcm and wav are supported", ErrUnsupportedFormat, format)
  }

  if overrideDir != "" {
    directory = overrideDir
  }

  directory = resolvePath(root, directory)

  if err := os.MkdirAll(directory, 0755); err != nil {
    return nil, err
  }

  return &Layout{
    Directory: directory,
    BaseFilename: baseFilename,
    Format: format,
  }, nil
}

// Filename is <base>_<variant>.<format>, without the suffix for an empty
// variant name.
func (l *Layout) Filename(variantName string) string {
  suffix := ""
  if variantName != "" {
    suffix = "_" + variantName
  }

  return fmt.Sprintf("%s%s.%s", l.BaseFilename, suffix, l.Format)
}

func (l *Layout) Path(variantName string) string {
  return filepath.Join(l.Directory, l.Filename(variantName))
}

// Relative reports path relative to root when it lies below it.
func Relative(root, path string) string {
  rel, err := filepath.Rel(root, path)

  if err != nil || rel == ".." || strings.HasPrefix(rel, ".." + string(filepath.Separator)) {
    return path
  }

  return rel
}
