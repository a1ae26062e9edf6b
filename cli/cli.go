package cli

import(
  "bytes"
  "flag"
  "fmt"
  "os"
  "path/filepath"
  "runtime"
  "strings"
)

type Arguments struct {
  PresetPath string
  OutputDir string
  Variants []string
  Root string
  Workers int
  Chart bool
  Play bool
  Quiet bool
  ShowVersion bool
}

// variantList collects repeated -variant flags.
type variantList []string

func (v *variantList) String() string {
  return strings.Join(*v, ",")
}

func (v *variantList) Set(value string) error {
  for _, name := range strings.Split(value, ",") {
    if name = strings.TrimSpace(name); name != "" {
      *v = append(*v, name)
    }
  }
  return nil
}

func resolvePath(root, path string) string {
  if path == "" || filepath.IsAbs(path) {
    return path
  }
  return filepath.Join(root, path)
}

func ParseFlags(args []string, version string) (*Arguments, error) {
  if len(args) < 1 {
    return nil, fmt.Errorf("usage: gosfx -preset <path to preset> [options]")
  }

  usage := &bytes.Buffer{}

  cmd := flag.NewFlagSet("gosfx", flag.ContinueOnError)
  cmd.SetOutput(usage)

  presetPath := cmd.String("preset", "", "preset file: path to a JSON or YAML preset, relative to the root")
  outputDir := cmd.String("o", "", "output directory: overrides the preset's output directory")
  root := cmd.String("root", "", "project root: base for relative paths, defaults to the working directory")
  workers := cmd.Int("j", runtime.NumCPU(), "workers: number of variants rendered in parallel")
  chart := cmd.Bool("chart", false, "chart flag: write a waveform and spectrum html chart next to each sound")
  play := cmd.Bool("play", false, "play flag: audition each rendered variant after the batch")
  quiet := cmd.Bool("q", false, "quiet flag: suppress informational output")
  showVersion := cmd.Bool("version", false, "print the version and exit")

  variants := variantList{}
  cmd.Var(&variants, "variant", "variant name to render, repeatable. All variants are rendered when omitted")

  if err := cmd.Parse(args[1:]); err != nil {
    return nil, fmt.Errorf("%w\n\nusage of gosfx (%s):\n\n%s", err, versionOr(version), usage.String())
  }

  parsedArgs := &Arguments{
    Variants: variants,
    Workers: *workers,
    Chart: *chart,
    Play: *play,
    Quiet: *quiet,
    ShowVersion: *showVersion,
  }

  if parsedArgs.ShowVersion {
    return parsedArgs, nil
  }

  if cmd.NArg() > 0 {
    return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args(), " "))
  }

  if len(*presetPath) == 0 {
    return nil, fmt.Errorf("Required argument missing:\n\n-preset <path to preset file> is required, for help:\n\ngosfx -h\n\n")
  }

  if parsedArgs.Workers < 1 {
    return nil, fmt.Errorf("-j must be at least 1, got %d", parsedArgs.Workers)
  }

  parsedArgs.Root = *root
  if parsedArgs.Root == "" {
    wd, err := os.Getwd()

    if err != nil {
      return nil, err
    }

    parsedArgs.Root = wd
  }

  var err error
  if parsedArgs.Root, err = filepath.Abs(parsedArgs.Root); err != nil {
    return nil, err
  }

  parsedArgs.PresetPath = resolvePath(parsedArgs.Root, *presetPath)
  parsedArgs.OutputDir = resolvePath(parsedArgs.Root, *outputDir)

  return parsedArgs, nil
}

func versionOr(version string) string {
  if version == "" {
    return "dev"
  }
  return version
}
