package synth

import(
  "fmt"
  "math"
  "strings"
)

const DefaultSampleRate = 44100
const DefaultDuration = 0.4
const DefaultAttack = 0.01
const DefaultRelease = 0.1
const DefaultDecay = 4.0

const DefaultFrequencyStart = 900.0
const DefaultFrequencyFloor = 180.0
const DefaultJitterFrequency = 60.0
const DefaultHarmonicRatio = 1.0
const DefaultBurstFrequency = 12.0
const DefaultTremoloFrequency = 5.0
const DefaultSubRatio = 0.5

type FrequencyParams struct {
  Start float64
  Decay float64
  Floor float64
  JitterAmplitude float64
  JitterFrequency float64
}

type Harmonic struct {
  Ratio float64
  Amplitude float64
  PhaseOffset float64
}

// Frequency <= 0 bypasses the gate
type BurstParams struct {
  Frequency float64
}

type TremoloParams struct {
  Depth float64
  Frequency float64
  Floor float64
}

type SubParams struct {
  Ratio float64
  Amplitude float64
}

type NoiseParams struct {
  Amplitude float64
  Decay float64
}

type EnvelopeParams struct {
  Attack float64
  Decay float64
  Release float64
}

// Parameters is the fully resolved parameter record for one render. Build it
// with Config.Resolve so every default is applied once, up front.
type Parameters struct {
  DurationSeconds float64
  SampleRate int
  Frequency FrequencyParams
  Harmonics []Harmonic
  Burst BurstParams
  Tremolo TremoloParams
  Sub SubParams
  Noise NoiseParams
  Envelope EnvelopeParams
}

// TotalSamples is max(1, round(sampleRate * duration))
func TotalSamples(sampleRate int, durationSeconds float64) int {
  total := int(math.Round(float64(sampleRate) * durationSeconds))

  if total < 1 {
    return 1
  }

  return total
}

func (p Parameters) TotalSamples() int {
  return TotalSamples(p.SampleRate, p.DurationSeconds)
}

func (p Parameters) Validate() error {
  if p.SampleRate <= 0 {
    return &ConfigurationError{
      Field: "sample_rate",
      Value: p.SampleRate,
      Reason: "must be greater than 0",
    }
  }

  if math.IsNaN(p.DurationSeconds) || math.IsInf(p.DurationSeconds, 0) {
    return &ConfigurationError{
      Field: "duration",
      Value: p.DurationSeconds,
      Reason: "must be a finite number",
    }
  }

  if p.DurationSeconds <= 0 {
    return &ConfigurationError{
      Field: "duration",
      Value: p.DurationSeconds,
      Reason: "must be greater than 0",
    }
  }

  return nil
}

func (p Parameters) String() (output string) {
  output += fmt.Sprintf("%24s   %.3f s\n", "Duration:", p.DurationSeconds)
  output += fmt.Sprintf("%24s   %d\n", "Sample Rate:", p.SampleRate)
  output += fmt.Sprintf("%24s   %d\n", "Total Samples:", p.TotalSamples())
  output += fmt.Sprintf(
    "%24s   %.2f Hz, decay %.2f, floor %.2f Hz\n",
    "Frequency:",
    p.Frequency.Start,
    p.Frequency.Decay,
    p.Frequency.Floor,
  )

  if p.Frequency.JitterAmplitude != 0 {
    output += fmt.Sprintf(
      "%24s   %.3f at %.2f Hz\n",
      "Jitter:",
      p.Frequency.JitterAmplitude,
      p.Frequency.JitterFrequency,
    )
  }

  ratios := make([]string, len(p.Harmonics), len(p.Harmonics))
  for i, harmonic := range p.Harmonics {
    ratios[i] = fmt.Sprintf("%gx%g", harmonic.Ratio, harmonic.Amplitude)
  }
  output += fmt.Sprintf("%24s   [%s]\n", "Harmonics:", strings.Join(ratios, " "))

  if p.Burst.Frequency > 0 {
    output += fmt.Sprintf("%24s   %.2f Hz\n", "Burst Gate:", p.Burst.Frequency)
  } else {
    output += fmt.Sprintf("%24s   off\n", "Burst Gate:")
  }

  output += fmt.Sprintf(
    "%24s   depth %.2f at %.2f Hz, floor %.2f\n",
    "Tremolo:",
    p.Tremolo.Depth,
    p.Tremolo.Frequency,
    p.Tremolo.Floor,
  )
  output += fmt.Sprintf("%24s   %.2f at ratio %.2f\n", "Sub:", p.Sub.Amplitude, p.Sub.Ratio)
  output += fmt.Sprintf("%24s   %.2f, decay %.2f\n", "Noise:", p.Noise.Amplitude, p.Noise.Decay)
  output += fmt.Sprintf(
    "%24s   attack %.3f s, decay %.2f, release %.3f s\n",
    "Envelope:",
    p.Envelope.Attack,
    p.Envelope.Decay,
    p.Envelope.Release,
  )

  return
}
