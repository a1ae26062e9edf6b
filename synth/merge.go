package synth

// Merge layers override onto base and returns a new Config. Nested records
// are merged field by field; scalars and the harmonic list are replaced
// wholesale when present in override. Neither argument is modified.
func Merge(base, override Config) Config {
  return Config{
    Duration: mergeFloat(base.Duration, override.Duration),
    SampleRate: mergeInt(base.SampleRate, override.SampleRate),
    Frequency: mergeFrequency(base.Frequency, override.Frequency),
    Harmonics: mergeHarmonics(base.Harmonics, override.Harmonics),
    Burst: mergeBurst(base.Burst, override.Burst),
    Tremolo: mergeTremolo(base.Tremolo, override.Tremolo),
    Sub: mergeSub(base.Sub, override.Sub),
    Noise: mergeNoise(base.Noise, override.Noise),
    Envelope: mergeEnvelope(base.Envelope, override.Envelope),
  }
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
  return Merge(c, Config{})
}

func mergeFloat(base, override *float64) *float64 {
  if override != nil {
    return Float(*override)
  }
  if base != nil {
    return Float(*base)
  }
  return nil
}

func mergeInt(base, override *int) *int {
  if override != nil {
    return Int(*override)
  }
  if base != nil {
    return Int(*base)
  }
  return nil
}

func mergeHarmonics(base, override []HarmonicConfig) []HarmonicConfig {
  source := base
  if override != nil {
    source = override
  }

  if source == nil {
    return nil
  }

  harmonics := make([]HarmonicConfig, len(source), len(source))
  for i, harmonic := range source {
    harmonics[i] = HarmonicConfig{
      Ratio: mergeFloat(harmonic.Ratio, nil),
      Amplitude: mergeFloat(harmonic.Amplitude, nil),
      Phase: mergeFloat(harmonic.Phase, nil),
    }
  }

  return harmonics
}

func mergeFrequency(base, override *FrequencyConfig) *FrequencyConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := FrequencyConfig{}, FrequencyConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &FrequencyConfig{
    Start: mergeFloat(b.Start, o.Start),
    Decay: mergeFloat(b.Decay, o.Decay),
    Floor: mergeFloat(b.Floor, o.Floor),
    JitterAmplitude: mergeFloat(b.JitterAmplitude, o.JitterAmplitude),
    JitterFrequency: mergeFloat(b.JitterFrequency, o.JitterFrequency),
  }
}

func mergeBurst(base, override *BurstConfig) *BurstConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := BurstConfig{}, BurstConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &BurstConfig{
    Frequency: mergeFloat(b.Frequency, o.Frequency),
  }
}

func mergeTremolo(base, override *TremoloConfig) *TremoloConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := TremoloConfig{}, TremoloConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &TremoloConfig{
    Depth: mergeFloat(b.Depth, o.Depth),
    Frequency: mergeFloat(b.Frequency, o.Frequency),
    Floor: mergeFloat(b.Floor, o.Floor),
  }
}

func mergeSub(base, override *SubConfig) *SubConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := SubConfig{}, SubConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &SubConfig{
    Ratio: mergeFloat(b.Ratio, o.Ratio),
    Amplitude: mergeFloat(b.Amplitude, o.Amplitude),
  }
}

func mergeNoise(base, override *NoiseConfig) *NoiseConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := NoiseConfig{}, NoiseConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &NoiseConfig{
    Amplitude: mergeFloat(b.Amplitude, o.Amplitude),
    Decay: mergeFloat(b.Decay, o.Decay),
  }
}

func mergeEnvelope(base, override *EnvelopeConfig) *EnvelopeConfig {
  if base == nil && override == nil {
    return nil
  }

  b, o := EnvelopeConfig{}, EnvelopeConfig{}
  if base != nil {
    b = *base
  }
  if override != nil {
    o = *override
  }

  return &EnvelopeConfig{
    Attack: mergeFloat(b.Attack, o.Attack),
    Decay: mergeFloat(b.Decay, o.Decay),
    Release: mergeFloat(b.Release, o.Release),
  }
}
