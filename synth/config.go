package synth

// Config is the declarative form of Parameters as it appears in a preset.
// A nil field is absent and takes its default during Resolve; a nil
// Harmonics slice is absent, a non-nil empty one is an explicit empty bank.
type Config struct {
  Duration *float64 `yaml:"duration,omitempty" json:"duration,omitempty"`
  SampleRate *int `yaml:"sample_rate,omitempty" json:"sample_rate,omitempty"`
  Frequency *FrequencyConfig `yaml:"frequency,omitempty" json:"frequency,omitempty"`
  Harmonics []HarmonicConfig `yaml:"harmonics,omitempty" json:"harmonics,omitempty"`
  Burst *BurstConfig `yaml:"burst,omitempty" json:"burst,omitempty"`
  Tremolo *TremoloConfig `yaml:"tremolo,omitempty" json:"tremolo,omitempty"`
  Sub *SubConfig `yaml:"sub,omitempty" json:"sub,omitempty"`
  Noise *NoiseConfig `yaml:"noise,omitempty" json:"noise,omitempty"`
  Envelope *EnvelopeConfig `yaml:"envelope,omitempty" json:"envelope,omitempty"`
}

type FrequencyConfig struct {
  Start *float64 `yaml:"start,omitempty" json:"start,omitempty"`
  Decay *float64 `yaml:"decay,omitempty" json:"decay,omitempty"`
  Floor *float64 `yaml:"floor,omitempty" json:"floor,omitempty"`
  JitterAmplitude *float64 `yaml:"jitter_amplitude,omitempty" json:"jitter_amplitude,omitempty"`
  JitterFrequency *float64 `yaml:"jitter_frequency,omitempty" json:"jitter_frequency,omitempty"`
}

type HarmonicConfig struct {
  Ratio *float64 `yaml:"ratio,omitempty" json:"ratio,omitempty"`
  Amplitude *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
  Phase *float64 `yaml:"phase,omitempty" json:"phase,omitempty"`
}

type BurstConfig struct {
  Frequency *float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`
}

type TremoloConfig struct {
  Depth *float64 `yaml:"depth,omitempty" json:"depth,omitempty"`
  Frequency *float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`
  Floor *float64 `yaml:"floor,omitempty" json:"floor,omitempty"`
}

type SubConfig struct {
  Ratio *float64 `yaml:"ratio,omitempty" json:"ratio,omitempty"`
  Amplitude *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
}

type NoiseConfig struct {
  Amplitude *float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
  Decay *float64 `yaml:"decay,omitempty" json:"decay,omitempty"`
}

type EnvelopeConfig struct {
  Attack *float64 `yaml:"attack,omitempty" json:"attack,omitempty"`
  Decay *float64 `yaml:"decay,omitempty" json:"decay,omitempty"`
  Release *float64 `yaml:"release,omitempty" json:"release,omitempty"`
}

// Float and Int return pointers to v, for building a Config in code.
func Float(v float64) *float64 {
  return &v
}

func Int(v int) *int {
  return &v
}

func floatOr(v *float64, fallback float64) float64 {
  if v == nil {
    return fallback
  }
  return *v
}

// Resolve applies the documented defaults and validates the result.
func (c Config) Resolve() (Parameters, error) {
  p := Parameters{
    DurationSeconds: floatOr(c.Duration, DefaultDuration),
    SampleRate: DefaultSampleRate,
  }

  if c.SampleRate != nil {
    p.SampleRate = *c.SampleRate
  }

  frequency := FrequencyConfig{}
  if c.Frequency != nil {
    frequency = *c.Frequency
  }
  p.Frequency = FrequencyParams{
    Start: floatOr(frequency.Start, DefaultFrequencyStart),
    Decay: floatOr(frequency.Decay, DefaultDecay),
    Floor: floatOr(frequency.Floor, DefaultFrequencyFloor),
    JitterAmplitude: floatOr(frequency.JitterAmplitude, 0),
    JitterFrequency: floatOr(frequency.JitterFrequency, DefaultJitterFrequency),
  }

  p.Harmonics = make([]Harmonic, len(c.Harmonics), len(c.Harmonics))
  for i, harmonic := range c.Harmonics {
    p.Harmonics[i] = Harmonic{
      Ratio: floatOr(harmonic.Ratio, DefaultHarmonicRatio),
      Amplitude: floatOr(harmonic.Amplitude, 0),
      PhaseOffset: floatOr(harmonic.Phase, 0),
    }
  }

  burst := BurstConfig{}
  if c.Burst != nil {
    burst = *c.Burst
  }
  p.Burst = BurstParams{
    Frequency: floatOr(burst.Frequency, DefaultBurstFrequency),
  }

  tremolo := TremoloConfig{}
  if c.Tremolo != nil {
    tremolo = *c.Tremolo
  }
  depth := floatOr(tremolo.Depth, 0)
  p.Tremolo = TremoloParams{
    Depth: depth,
    Frequency: floatOr(tremolo.Frequency, DefaultTremoloFrequency),
    Floor: floatOr(tremolo.Floor, 1.0 - depth),
  }

  sub := SubConfig{}
  if c.Sub != nil {
    sub = *c.Sub
  }
  p.Sub = SubParams{
    Ratio: floatOr(sub.Ratio, DefaultSubRatio),
    Amplitude: floatOr(sub.Amplitude, 0),
  }

  envelope := EnvelopeConfig{}
  if c.Envelope != nil {
    envelope = *c.Envelope
  }
  p.Envelope = EnvelopeParams{
    Attack: floatOr(envelope.Attack, DefaultAttack),
    Decay: floatOr(envelope.Decay, DefaultDecay),
    Release: floatOr(envelope.Release, DefaultRelease),
  }

  // noise decay follows the amplitude envelope unless given
  noise := NoiseConfig{}
  if c.Noise != nil {
    noise = *c.Noise
  }
  p.Noise = NoiseParams{
    Amplitude: floatOr(noise.Amplitude, 0),
    Decay: floatOr(noise.Decay, p.Envelope.Decay),
  }

  if err := p.Validate(); err != nil {
    return Parameters{}, err
  }

  return p, nil
}
