package spectrum

import(
  "fmt"
)

const fullScale = 32767.0

// Spectrum is the average magnitude spectrum of a rendered sound, with
// magnitudes normalized so a full-scale sine on a bin centre reads about 1.
type Spectrum struct {
  SampleRate int
  Bands int
  Frames int
  Magnitudes []float64
}

// Analyze averages windowed FFT frames of 2 * bands points, hopping half a
// frame at a time. Sounds shorter than a frame are zero padded.
func Analyze(samples []int16, sampleRate int, bands int, windowName string) (*Spectrum, error) {
  if bands > 4096 || bands < 2 || (bands & (bands - 1)) != 0 {
    return nil, fmt.Errorf("bands must be a power of 2 between 2 and 4096, got %d", bands)
  }

  if sampleRate <= 0 {
    return nil, fmt.Errorf("sample rate must be greater than 0, got %d", sampleRate)
  }

  windowFunction := WindowFunctions[windowName]

  if windowFunction == nil {
    return nil, fmt.Errorf("Invalid window function (%s), valid options are: %s", windowName, WindowNamesString())
  }

  points := bands * 2
  hop := points / 2
  window := windowFunction(points)

  windowSum := 0.0
  for _, w := range window {
    windowSum += w
  }

  frame := NewSlidingBuffer(points)
  chunk := make([]float64, hop, hop)
  work := make([]float64, points, points)
  bins := make([]float64, bands + 1, bands + 1)

  result := &Spectrum{
    SampleRate: sampleRate,
    Bands: bands,
    Magnitudes: make([]float64, bands + 1, bands + 1),
  }

  position := 0
  for {
    valid := 0
    for ; valid < hop && position < len(samples); valid, position = valid + 1, position + 1 {
      chunk[valid] = float64(samples[position])
    }

    var err error
    if valid > 0 {
      err = frame.ShiftIn(chunk, valid)
    } else {
      err = frame.ShiftOver(hop)
    }

    if err != nil {
      return nil, err
    }

    if !frame.HasValidSamples() {
      break
    }

    for i := range work {
      work[i] = frame.Data[i] * window[i]
    }

    realFFT(work)
    magnitudes(work, bins)

    for i, magnitude := range bins {
      result.Magnitudes[i] += magnitude
    }
    result.Frames++
  }

  if result.Frames == 0 {
    return result, nil
  }

  norm := float64(result.Frames) * fullScale * windowSum / 2.0
  if norm == 0 {
    return result, nil
  }

  for i := range result.Magnitudes {
    result.Magnitudes[i] /= norm
  }

  return result, nil
}

// BinFrequency returns the centre frequency of bin in Hz.
func (s *Spectrum) BinFrequency(bin int) float64 {
  return float64(bin) * float64(s.SampleRate) / float64(s.Bands * 2)
}

// Peak returns the frequency and magnitude of the loudest bin above DC.
func (s *Spectrum) Peak() (frequency float64, magnitude float64) {
  peakBin := 0

  for bin := 1; bin < len(s.Magnitudes); bin++ {
    if s.Magnitudes[bin] > magnitude {
      magnitude = s.Magnitudes[bin]
      peakBin = bin
    }
  }

  return s.BinFrequency(peakBin), magnitude
}
