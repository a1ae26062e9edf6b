package batch

import(
  "context"
  "fmt"
  "path/filepath"
  "runtime"
  "strings"
  "sync"
  "github.com/google/uuid"
  "github.com/sirupsen/logrus"
  "golang.org/x/sync/errgroup"
  "gosfx/audioio"
  "gosfx/charter"
  "gosfx/preset"
  "gosfx/synth"
)

// Runner renders the variants of one preset and records them in a manifest.
type Runner struct {
  Root string
  // replaces the preset's output directory when set
  OutputDir string
  // variant names to render; empty renders all of them
  Variants []string
  Workers int
  Chart bool
  Logger *logrus.Logger
  // called after every finished variant, serialized
  Progress func(done, total int)
}

type Rendered struct {
  Entry preset.Entry
  OutputPath string
  Result *synth.Result
}

type Report struct {
  RunID string
  Manifest *preset.Manifest
  ManifestPath string
  Rendered []Rendered
}

func (r *Runner) logger() *logrus.Logger {
  if r.Logger == nil {
    return logrus.StandardLogger()
  }
  return r.Logger
}

func (r *Runner) workers() int {
  if r.Workers < 1 {
    return runtime.NumCPU()
  }
  return r.Workers
}

// Run renders every selected variant of p on a bounded worker pool, writes
// each to the preset's output layout and finishes with manifest.json. The
// first failing variant cancels the variants not yet started.
func (r *Runner) Run(ctx context.Context, presetPath string, p *preset.Preset) (*Report, error) {
  runID := uuid.NewString()
  log := r.logger().WithField("run", runID)

  layout, err := preset.ResolveOutput(p, r.Root, r.OutputDir)

  if err != nil {
    return nil, err
  }

  all := p.EnsureVariants()
  for _, name := range preset.Missing(all, r.Variants) {
    log.WithField("variant", name).Warn("Requested variant not found in preset")
  }

  variants := preset.Select(all, r.Variants)
  rendered := make([]Rendered, len(variants))

  var mu sync.Mutex
  done := 0

  g, gctx := errgroup.WithContext(ctx)
  g.SetLimit(r.workers())

  for i, variant := range variants {
    g.Go(func() error {
      if err := gctx.Err(); err != nil {
        return err
      }

      item, err := r.renderVariant(p, layout, variant)

      if err != nil {
        return err
      }

      rendered[i] = *item

      log.WithFields(logrus.Fields{
        "variant": item.Entry.Variant,
        "seed": seedField(item.Entry.Seed),
        "samples": len(item.Result.Samples),
      }).Infof("Generated %s", item.Entry.Path)

      if r.Progress != nil {
        mu.Lock()
        done++
        r.Progress(done, len(variants))
        mu.Unlock()
      }

      return nil
    })
  }

  if err := g.Wait(); err != nil {
    return nil, err
  }

  manifest := &preset.Manifest{
    Preset: p.Name,
    Description: p.Description,
    Source: preset.Relative(r.Root, presetPath),
    Variants: make([]preset.Entry, 0, len(rendered)),
  }

  for _, item := range rendered {
    manifest.Variants = append(manifest.Variants, item.Entry)
  }

  manifestPath, err := preset.WriteManifest(layout.Directory, manifest)

  if err != nil {
    return nil, fmt.Errorf("writing manifest: %w", err)
  }

  log.Infof("Wrote manifest to %s", preset.Relative(r.Root, manifestPath))

  return &Report{
    RunID: runID,
    Manifest: manifest,
    ManifestPath: manifestPath,
    Rendered: rendered,
  }, nil
}

func (r *Runner) renderVariant(p *preset.Preset, layout *preset.Layout, variant preset.Variant) (*Rendered, error) {
  name := variant.VariantName()
  config := p.Config(variant)

  params, err := config.Resolve()

  if err != nil {
    return nil, fmt.Errorf("variant %s: %w", name, err)
  }

  result, err := synth.Render(synth.Request{Parameters: params, Seed: variant.Seed})

  if err != nil {
    return nil, fmt.Errorf("variant %s: %w", name, err)
  }

  outputPath := layout.Path(name)

  if err := audioio.WriteFile(outputPath, result.SampleRate, result.Samples); err != nil {
    return nil, fmt.Errorf("variant %s: %w", name, err)
  }

  if r.Chart {
    chartPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
    title := fmt.Sprintf("%s: %s", p.Name, name)

    if err := charter.MakeChart(chartPath, title, result.Samples, result.SampleRate); err != nil {
      return nil, fmt.Errorf("variant %s chart: %w", name, err)
    }
  }

  return &Rendered{
    Entry: preset.Entry{
      Path: preset.Relative(r.Root, outputPath),
      Duration: result.DurationSeconds,
      SampleRate: result.SampleRate,
      Seed: result.Seed,
      Parameters: config,
      Variant: name,
      Filename: layout.Filename(name),
    },
    OutputPath: outputPath,
    Result: result,
  }, nil
}

func seedField(seed *int64) interface{} {
  if seed == nil {
    return nil
  }
  return *seed
}
