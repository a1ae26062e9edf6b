package synth

import(
  "math"
  "testing"
  . "gosfx/testing_utilities"
)

func TestFrequencyAt(t *testing.T) {
  p := FrequencyParams{Start: 900, Decay: 4, Floor: 180, JitterFrequency: 60}

  Equals(t, 1080.0, frequencyAt(p, 0))
  InDelta(t, 900 * math.Exp(-0.4) + 180, frequencyAt(p, 0.1), 1e-6)
  InDelta(t, 783.2880, frequencyAt(p, 0.1), 1e-3)

  // decay 0 holds the contour flat
  flat := FrequencyParams{Start: 440, Decay: 0, Floor: 0}
  Equals(t, 440.0, frequencyAt(flat, 0))
  Equals(t, 440.0, frequencyAt(flat, 0.3))

  // negative contours are allowed
  negative := FrequencyParams{Start: -200, Decay: 0, Floor: 50}
  Equals(t, -150.0, frequencyAt(negative, 0.2))
}

func TestFrequencyAtJitter(t *testing.T) {
  p := FrequencyParams{Start: 900, Decay: 4, Floor: 180, JitterAmplitude: 0.1, JitterFrequency: 60}
  tm := 0.01

  expected := (900 * math.Exp(-4 * tm) + 180) * (1 + 0.1 * math.Sin(2 * math.Pi * 60 * tm))
  InDelta(t, expected, frequencyAt(p, tm), 1e-9)

  // jitter has no effect at t = 0
  Equals(t, 1080.0, frequencyAt(p, 0))
}

func TestHarmonicSum(t *testing.T) {
  Equals(t, 0.0, harmonicSum(nil, 1.234))
  Equals(t, 0.0, harmonicSum([]Harmonic{}, 98.7))

  harmonics := []Harmonic{
    {Ratio: 1, Amplitude: 1, PhaseOffset: 0},
    {Ratio: 2, Amplitude: 0.5, PhaseOffset: math.Pi / 2},
  }
  phase := 0.3

  expected := math.Sin(phase) + 0.5 * math.Sin(phase * 2 + math.Pi / 2)
  InDelta(t, expected, harmonicSum(harmonics, phase), 1e-12)
}

func TestBurstGate(t *testing.T) {
  Equals(t, 1.0, burstGate(BurstParams{Frequency: 0}, 0.37))
  Equals(t, 1.0, burstGate(BurstParams{Frequency: -3}, 0.37))

  gate := BurstParams{Frequency: 12}
  Equals(t, 0.0, burstGate(gate, 0))
  // peak at a quarter period
  InDelta(t, 1.0, burstGate(gate, 1.0 / 48.0), 1e-12)
}

func TestTremoloAt(t *testing.T) {
  p := TremoloParams{Depth: 0.5, Frequency: 5, Floor: 0.5}

  Equals(t, 0.5, tremoloAt(p, 0))
  InDelta(t, 1.0, tremoloAt(p, 0.05), 1e-12)
  InDelta(t, 0.0, tremoloAt(p, 0.15), 1e-12)

  off := TremoloParams{Depth: 0, Frequency: 5, Floor: 1}
  Equals(t, 1.0, tremoloAt(off, 0.123))
}

func TestEnvelopeAt(t *testing.T) {
  tests := map[string]struct{
    params EnvelopeParams
    duration float64
    time float64
    expected float64
  }{
    "zero attack at start is bypassed": {
      params: EnvelopeParams{Attack: 0, Decay: 0, Release: 0},
      duration: 1,
      time: 0,
      expected: 1,
    },
    "zero release at the end is bypassed": {
      params: EnvelopeParams{Attack: 0, Decay: 0, Release: 0},
      duration: 1,
      time: 0.99999,
      expected: 1,
    },
    "attack ramp": {
      params: EnvelopeParams{Attack: 0.1, Decay: 0, Release: 0},
      duration: 1,
      time: 0.025,
      expected: 0.25,
    },
    "attack ramp starts silent": {
      params: EnvelopeParams{Attack: 0.1, Decay: 0, Release: 0},
      duration: 1,
      time: 0,
      expected: 0,
    },
    "release ramp": {
      params: EnvelopeParams{Attack: 0, Decay: 0, Release: 0.2},
      duration: 1,
      time: 0.9,
      expected: 0.5,
    },
    "release past the end clamps to zero": {
      params: EnvelopeParams{Attack: 0, Decay: 0, Release: 0.2},
      duration: 1,
      time: 1.5,
      expected: 0,
    },
    "exponential decay": {
      params: EnvelopeParams{Attack: 0, Decay: 4, Release: 0},
      duration: 1,
      time: 0.25,
      expected: math.Exp(-1),
    },
  }

  for name, test := range tests {
    t.Run(name, func(t *testing.T){
      result := envelopeAt(test.params, test.duration, test.time)

      Assert(t, !math.IsNaN(result) && !math.IsInf(result, 0), "envelope must be finite, got %f", result)
      InDelta(t, test.expected, result, 1e-12)
    })
  }
}

func TestClampAndQuantize(t *testing.T) {
  Equals(t, 0.999, clamp(5))
  Equals(t, -0.999, clamp(-5))
  Equals(t, 0.25, clamp(0.25))

  Equals(t, int16(32734), quantize(0.999))
  Equals(t, int16(-32734), quantize(-0.999))

  // truncation toward zero, never rounding
  Equals(t, int16(16383), quantize(0.5))
  Equals(t, int16(-16383), quantize(-0.5))
  Equals(t, int16(0), quantize(0.00003))
  Equals(t, int16(0), quantize(-0.00003))
  Equals(t, int16(0), quantize(math.NaN()))
}

func TestHissAt(t *testing.T) {
  p := NoiseParams{Amplitude: 0.5, Decay: 2}

  Equals(t, 0.0, hissAt(NoiseParams{Amplitude: 0, Decay: 2}, 0.7, 0.1))
  InDelta(t, -0.5, hissAt(p, -1, 0), 1e-12)
  InDelta(t, 0.25 * 0.5 * math.Exp(-0.2), hissAt(p, 0.25, 0.1), 1e-12)
}

func TestSampleAtPureSine(t *testing.T) {
  params, err := Config{
    Duration: Float(0.2),
    SampleRate: Int(8000),
    Frequency: &FrequencyConfig{Start: Float(900), Decay: Float(4), Floor: Float(180)},
    Harmonics: []HarmonicConfig{{Ratio: Float(1), Amplitude: Float(1), Phase: Float(0)}},
    Burst: &BurstConfig{Frequency: Float(0)},
    Tremolo: &TremoloConfig{Depth: Float(0)},
    Sub: &SubConfig{Amplitude: Float(0)},
    Noise: &NoiseConfig{Amplitude: Float(0)},
    Envelope: &EnvelopeConfig{Attack: Float(0), Decay: Float(0), Release: Float(0)},
  }.Resolve()
  Ok(t, err)

  for n := 0; n < 1600; n += 37 {
    tm := float64(n) / 8000.0
    freq := 900 * math.Exp(-4 * tm) + 180
    expected := clamp(math.Sin(2 * math.Pi * freq * tm))

    InDelta(t, expected, sampleAt(&params, tm, 0.3), 1e-12)
  }
}
