package spectrum

import(
  "math"
  "sort"
  "strings"
)

const twoPi float64 = math.Pi * 2

type windowFunction func(int) []float64

var WindowFunctions = map[string]windowFunction {
  "hamming": HammingWindow,
  "vonhann": VonHannWindow,
  "kaiser": KaiserWindow,
  "triangle": TriangleWindow,
  "rectangle": RectangleWindow,
}

func WindowNames() []string {
  windowNames := make([]string, 0, len(WindowFunctions))

  for windowName := range WindowFunctions {
    windowNames = append(windowNames, windowName)
  }
  sort.Strings(windowNames)

  return windowNames
}

func WindowNamesString() string {
  return strings.Join(WindowNames(), ", ")
}

// raised cosine family, b = 1 - a
func cosineWindow(windowSize int, a float64) []float64 {
  b := 1 - a
  window := make([]float64, windowSize, windowSize)

  if windowSize == 1 {
    window[0] = 1
    return window
  }

  for i := range window {
    window[i] = a - b * math.Cos((twoPi * float64(i)) / float64(windowSize - 1))
  }

  return window
}

func HammingWindow(windowSize int) []float64 {
  return cosineWindow(windowSize, 0.54)
}

func VonHannWindow(windowSize int) []float64 {
  return cosineWindow(windowSize, 0.5)
}

// beta 6.8, same shape the phase vocoder used
func KaiserWindow(windowSize int) []float64 {
  window := make([]float64, windowSize, windowSize)

  halfSize := windowSize / 2
  norm := besseli(6.8)
  span := float64((windowSize - 1) * (windowSize - 1))

  for i := 0; i < halfSize; i++ {
    x := float64(i)
    x = math.Sqrt(1.0 - 4.0 * x * x / span)
    window[i + halfSize] = besseli(6.8 * x) / norm
    window[halfSize - i] = window[i + halfSize]
  }
  window[windowSize - 1] = 0
  window[0] = 0

  return window
}

func TriangleWindow(windowSize int) []float64 {
  window := make([]float64, windowSize, windowSize)
  half := float64(windowSize) / 2.0

  for i := range window {
    window[i] = 1.0 - math.Abs(float64(i) - half) / half
  }

  return window
}

func RectangleWindow(windowSize int) []float64 {
  window := make([]float64, windowSize, windowSize)

  for i := range window {
    window[i] = 1.0
  }

  return window
}

// modified bessel function of the first kind, order 0
func besseli(x float64) float64 {
  y := x / 2.0
  e := 1.0
  de := 1.0

  for i := 1; i <= 25; i++ {
    de = de * y / float64(i)
    sde := de * de
    e += sde
    if e * 1.e-08 > sde {
      break
    }
  }

  return e
}
