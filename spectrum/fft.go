package spectrum

import(
  "math"
)

// twiddle increments for each butterfly stage, stage n spans 2<<n values
var stageSin []float64 = make([]float64, 31, 31)
var stageCos []float64 = make([]float64, 31, 31)

func init() {
  var span uint32 = 2

  for i := range stageSin {
    n := float64(span)
    stageSin[i] = math.Sin(twoPi / n)
    stageCos[i] = -2 * math.Sin(math.Pi / n) * math.Sin(math.Pi / n)

    span <<= 1
  }
}

// reorders interleaved (real, imag) pairs into bit-reversed pair order
func bitReverse(data []float64) {
  var m int

  for i, j := 0, 0; i < len(data); i, j = i + 2, j + m {
    if j > i {
      data[j], data[i] = data[i], data[j]
      data[j + 1], data[i + 1] = data[i + 1], data[j + 1]
    }

    for m = len(data) / 2; m >= 2 && j >= m; m /= 2 {
      j -= m
    }
  }
}

// complexFFT is an in-place forward radix-2 transform of interleaved pairs
func complexFFT(data []float64) {
  bitReverse(data)

  size := len(data)
  stage := 0

  for span := 2; span < size; span *= 2 {
    step := span * 2
    wpr := stageCos[stage]
    wpi := stageSin[stage]
    stage++

    wr := 1.0
    wi := 0.0

    for m := 0; m < span; m += 2 {
      for i := m; i < size; i += step {
        j := i + span
        tr := wr * data[j] - wi * data[j + 1]
        ti := wr * data[j + 1] + wi * data[j]
        data[j] = data[i] - tr
        data[j + 1] = data[i + 1] - ti
        data[i] += tr
        data[i + 1] += ti
      }
      tmp := wr
      wr = wr * wpr - wi * wpi + wr
      wi = wi * wpr + tmp * wpi + wi
    }
  }
}

// realFFT transforms len(data) real samples in place. Afterwards data[0] is
// the DC term, data[1] the Nyquist term and every following pair is the
// (real, imag) value of bins 1 .. len(data)/2 - 1.
func realFFT(data []float64) {
  points := len(data)
  halfPoints := points / 2
  theta := math.Pi / float64(halfPoints)

  complexFFT(data)

  xr := data[0]
  xi := data[1]

  temp := math.Sin(0.5 * theta)
  wpr := -2.0 * temp * temp
  wpi := math.Sin(theta)
  wr := 1.0
  wi := 0.0

  for i := 0; i <= halfPoints / 2; i++ {
    i1 := i * 2
    i2 := i1 + 1
    i3 := points + 1 - i2
    i4 := i3 + 1

    if i == 0 {
      h1r := 0.5 * (data[i1] + xr)
      h1i := 0.5 * (data[i2] - xi)
      h2r := 0.5 * (data[i2] + xi)
      h2i := -0.5 * (data[i1] - xr)
      data[i1] = h1r + wr * h2r - wi * h2i
      data[i2] = h1i + wr * h2i + wi * h2r
      xr = h1r - wr * h2r + wi * h2i
    } else {
      h1r := 0.5 * (data[i1] + data[i3])
      h1i := 0.5 * (data[i2] - data[i4])
      h2r := 0.5 * (data[i2] + data[i4])
      h2i := -0.5 * (data[i1] - data[i3])
      data[i1] = h1r + wr * h2r - wi * h2i
      data[i2] = h1i + wr * h2i + wi * h2r
      data[i3] = h1r - wr * h2r + wi * h2i
      data[i4] = -h1i + wr * h2i + wi * h2r
    }

    temp = wr
    wr = wr * wpr - wi * wpi + wr
    wi = wi * wpr + temp * wpi + wi
  }

  data[1] = xr
}

// magnitudes unpacks a realFFT result into halfPoints + 1 bin magnitudes
func magnitudes(spectrum, out []float64) {
  halfPoints := len(spectrum) / 2

  out[0] = math.Abs(spectrum[0])
  out[halfPoints] = math.Abs(spectrum[1])

  for bin := 1; bin < halfPoints; bin++ {
    out[bin] = math.Hypot(spectrum[bin * 2], spectrum[bin * 2 + 1])
  }
}
