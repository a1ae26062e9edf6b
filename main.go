package main

import (
  "context"
  "fmt"
  "os"
  "os/signal"
  "gosfx/batch"
  "gosfx/cli"
  "gosfx/preset"
  "gosfx/preview"
  "gosfx/synth"
  "github.com/schollz/progressbar/v3"
  "github.com/sirupsen/logrus"
)

var Version = ""

func main() {
  // parse cli flags/arguments
  parsedArgs, err := cli.ParseFlags(os.Args, Version)

  if err != nil {
    fmt.Fprintln(os.Stderr, err)
    os.Exit(1)
  }

  if parsedArgs.ShowVersion {
    fmt.Println("gosfx", Version)
    return
  }

  // check if preset file exists
  if _, err := os.Stat(parsedArgs.PresetPath); err != nil {
    fmt.Fprintln(os.Stderr, "File does not exist:", parsedArgs.PresetPath)
    os.Exit(1)
  }

  document, err := preset.Load(parsedArgs.PresetPath)

  if err != nil {
    fmt.Fprintln(os.Stderr, "Could not load preset:", err)
    os.Exit(1)
  }

  logger := logrus.New()
  if parsedArgs.Quiet {
    logger.SetLevel(logrus.WarnLevel)
  }

  variants := preset.Select(document.EnsureVariants(), parsedArgs.Variants)

  if !parsedArgs.Quiet {
    fmt.Printf("%24s   %s\n", "Preset:", document.Name)
    fmt.Printf("%24s   %d\n", "Variants:", len(variants))
    fmt.Printf("%24s   %d\n", "Workers:", parsedArgs.Workers)

    // variants may still override an invalid base, so only show a valid one
    if params, err := document.Parameters.Resolve(); err == nil {
      fmt.Print(params.String())
    }
  }

  bar := progressbar.NewOptions(
    len(variants),
    progressbar.OptionEnableColorCodes(true),
    progressbar.OptionSetDescription("rendering..."),
    progressbar.OptionFullWidth(),
    progressbar.OptionSetTheme(progressbar.Theme{
      Saucer:        "[green]=[reset]",
      SaucerHead:    "[green]=[reset]",
      SaucerPadding: " ",
      BarStart:      "[",
      BarEnd:        "]",
    }),
  )

  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
  defer stop()

  runner := &batch.Runner{
    Root: parsedArgs.Root,
    OutputDir: parsedArgs.OutputDir,
    Variants: parsedArgs.Variants,
    Workers: parsedArgs.Workers,
    Chart: parsedArgs.Chart,
    Logger: logger,
    Progress: func(done, total int) {
      if !parsedArgs.Quiet {
        bar.Set(done)
      }
    },
  }

  report, err := runner.Run(ctx, parsedArgs.PresetPath, document)

  if err != nil {
    fmt.Fprintln(os.Stderr, "\n >>> Rendering error:", err, "<<<")
    stop()
    os.Exit(1)
  }

  if parsedArgs.Play && len(report.Rendered) > 0 {
    if err := audition(ctx, report); err != nil {
      fmt.Fprintln(os.Stderr, "Playback error:", err)
    }
  }

  if !parsedArgs.Quiet {
    fmt.Println("\n\nDone!")
  }
}

func audition(ctx context.Context, report *batch.Report) error {
  player, err := preview.NewPlayer(report.Rendered[0].Result.SampleRate)

  if err != nil {
    return err
  }

  results := make([]*synth.Result, 0, len(report.Rendered))
  for _, item := range report.Rendered {
    results = append(results, item.Result)
  }

  return preview.PlayAll(ctx, player, results)
}
