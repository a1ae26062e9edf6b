package synth

import(
  "math"
)

const twoPi float64 = math.Pi * 2

// output is limited to this magnitude before quantizing
const clipLimit = 0.999
const int16Scale = 32767.0

// Explicit float64 conversions round each product before the following
// addition, so no FMA is fused and output matches on every architecture.

// instantaneous pitch contour, may go negative
func frequencyAt(p FrequencyParams, t float64) float64 {
  freq := float64(p.Start * math.Exp(-p.Decay * t)) + p.Floor

  if p.JitterAmplitude != 0 {
    freq *= 1 + float64(p.JitterAmplitude * math.Sin(twoPi * p.JitterFrequency * t))
  }

  return freq
}

// phase is the literal product 2*pi*f(t)*t, not the integral of f(t)
func phaseAt(freq, t float64) float64 {
  return twoPi * freq * t
}

// summed strictly in list order
func harmonicSum(harmonics []Harmonic, phase float64) float64 {
  sum := 0.0

  for _, harmonic := range harmonics {
    sum += float64(harmonic.Amplitude * math.Sin(float64(phase * harmonic.Ratio) + harmonic.PhaseOffset))
  }

  return sum
}

func burstGate(p BurstParams, t float64) float64 {
  if p.Frequency <= 0 {
    return 1.0
  }

  s := math.Sin(twoPi * p.Frequency * t)
  return s * s
}

func tremoloAt(p TremoloParams, t float64) float64 {
  return p.Floor + float64(p.Depth * math.Sin(twoPi * p.Frequency * t))
}

func subAt(p SubParams, freq, t float64) float64 {
  return p.Amplitude * math.Sin(twoPi * freq * p.Ratio * t)
}

// u is one uniform draw on [-1, 1)
func hissAt(p NoiseParams, u, t float64) float64 {
  return u * p.Amplitude * math.Exp(-p.Decay * t)
}

func envelopeAt(p EnvelopeParams, duration, t float64) float64 {
  envelope := math.Exp(-p.Decay * t)

  if t < p.Attack && p.Attack > 0 {
    envelope *= t / p.Attack
  }

  remaining := duration - t
  if remaining < p.Release && p.Release > 0 {
    envelope *= math.Max(0.0, remaining / p.Release)
  }

  return envelope
}

func clamp(x float64) float64 {
  if x > clipLimit {
    return clipLimit
  }
  if x < -clipLimit {
    return -clipLimit
  }
  return x
}

// truncates toward zero, not round-to-nearest
func quantize(x float64) int16 {
  if math.IsNaN(x) {
    return 0
  }
  return int16(x * int16Scale)
}

// sampleAt runs every stage for one instant and returns the clamped,
// pre-quantization value.
func sampleAt(p *Parameters, t, u float64) float64 {
  freq := frequencyAt(p.Frequency, t)
  sum := harmonicSum(p.Harmonics, phaseAt(freq, t))

  core := float64(float64(sum * burstGate(p.Burst, t)) * tremoloAt(p.Tremolo, t))
  core = core + subAt(p.Sub, freq, t) + hissAt(p.Noise, u, t)

  return clamp(core * envelopeAt(p.Envelope, p.DurationSeconds, t))
}
