package charter

import(
  "fmt"
  "math"
  "os"
  "github.com/go-echarts/go-echarts/v2/charts"
  "github.com/go-echarts/go-echarts/v2/components"
  "github.com/go-echarts/go-echarts/v2/opts"
  "github.com/go-echarts/go-echarts/v2/types"
  "gosfx/spectrum"
)

// MaxPoints caps how many points a waveform series carries
const MaxPoints = 2000

const SpectrumBands = 1024
const SpectrumWindow = "vonhann"

// quietest level drawn on the spectrum, in dBFS
const floorDecibels = -120.0

// decimate keeps the largest magnitude sample of each bucket so transients
// survive the reduction.
func decimate(samples []int16, maxPoints int) (values []float64, indexes []int) {
  bucket := 1
  if len(samples) > maxPoints {
    bucket = int(math.Ceil(float64(len(samples)) / float64(maxPoints)))
  }

  for start := 0; start < len(samples); start += bucket {
    end := start + bucket
    if end > len(samples) {
      end = len(samples)
    }

    peak := start
    for i := start; i < end; i++ {
      if math.Abs(float64(samples[i])) > math.Abs(float64(samples[peak])) {
        peak = i
      }
    }

    values = append(values, float64(samples[peak]) / 32767.0)
    indexes = append(indexes, peak)
  }

  return values, indexes
}

func WaveformChart(title string, samples []int16, sampleRate int) *charts.Line {
  values, indexes := decimate(samples, MaxPoints)

  items := make([]opts.LineData, len(values), len(values))
  xLabels := make([]string, len(values), len(values))

  for i := range values {
    items[i] = opts.LineData{
      Value: values[i],
    }
    xLabels[i] = fmt.Sprintf("%.1f", float64(indexes[i]) * 1000.0 / float64(sampleRate))
  }

  line := charts.NewLine()
  line.SetGlobalOptions(
    charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
    charts.WithTitleOpts(opts.Title{
      Title: title,
      Subtitle: fmt.Sprintf("%d samples at %d Hz", len(samples), sampleRate),
    }),
    charts.WithXAxisOpts(opts.XAxis{Name: "ms"}),
    charts.WithYAxisOpts(opts.YAxis{Name: "amplitude"}),
    charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
  )

  line.SetXAxis(xLabels).
    AddSeries("Waveform", items).
    SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: false}))

  return line
}

func SpectrumChart(title string, result *spectrum.Spectrum) *charts.Line {
  items := make([]opts.LineData, len(result.Magnitudes), len(result.Magnitudes))
  xLabels := make([]string, len(result.Magnitudes), len(result.Magnitudes))

  for bin, magnitude := range result.Magnitudes {
    decibels := floorDecibels
    if magnitude > 0 {
      decibels = math.Max(floorDecibels, 20 * math.Log10(magnitude))
    }

    items[bin] = opts.LineData{
      Value: decibels,
    }
    xLabels[bin] = fmt.Sprintf("%.0f", result.BinFrequency(bin))
  }

  peakFrequency, _ := result.Peak()

  line := charts.NewLine()
  line.SetGlobalOptions(
    charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
    charts.WithTitleOpts(opts.Title{
      Title: title + " spectrum",
      Subtitle: fmt.Sprintf("peak %.0f Hz over %d frames", peakFrequency, result.Frames),
    }),
    charts.WithXAxisOpts(opts.XAxis{Name: "Hz"}),
    charts.WithYAxisOpts(opts.YAxis{Name: "dBFS"}),
  )

  line.SetXAxis(xLabels).
    AddSeries("Magnitude", items).
    SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: false}))

  return line
}

// MakeChart writes an html page with the waveform and average spectrum of
// a rendered sound to filePath.
func MakeChart(filePath string, title string, samples []int16, sampleRate int) error {
  analysis, err := spectrum.Analyze(samples, sampleRate, SpectrumBands, SpectrumWindow)

  if err != nil {
    return err
  }

  page := components.NewPage()
  page.AddCharts(
    WaveformChart(title, samples, sampleRate),
    SpectrumChart(title, analysis),
  )

  f, err := os.Create(filePath)

  if err != nil {
    return err
  }

  if err = page.Render(f); err != nil {
    f.Close()
    return err
  }

  return f.Close()
}
