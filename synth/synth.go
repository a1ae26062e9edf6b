package synth

import(
  "encoding/binary"
  "math/rand/v2"
)

// fixed PCG stream selector; only the request seed varies between streams
const streamSequence uint64 = 0x9e3779b97f4a7c15

type Request struct {
  Parameters Parameters
  // nil renders from a non-deterministic stream
  Seed *int64
}

type Result struct {
  Samples []int16
  SampleRate int
  DurationSeconds float64
  Seed *int64
  Parameters Parameters
}

// Renderer is a finite, restartable sequence of quantized samples. It owns
// its pseudorandom stream and must not be shared between goroutines.
type Renderer struct {
  params Parameters
  seed *int64
  total int
  n int
  stream *rand.Rand
}

func newStream(seed *int64) *rand.Rand {
  if seed == nil {
    return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
  }
  return rand.New(rand.NewPCG(uint64(*seed), streamSequence))
}

func copySeed(seed *int64) *int64 {
  if seed == nil {
    return nil
  }
  s := *seed
  return &s
}

func NewRenderer(req Request) (*Renderer, error) {
  if err := req.Parameters.Validate(); err != nil {
    return nil, err
  }

  params := req.Parameters
  params.Harmonics = append([]Harmonic(nil), req.Parameters.Harmonics...)

  seed := copySeed(req.Seed)

  return &Renderer{
    params: params,
    seed: seed,
    total: params.TotalSamples(),
    stream: newStream(seed),
  }, nil
}

func (r *Renderer) Len() int {
  return r.total
}

func (r *Renderer) Parameters() Parameters {
  return r.params
}

// Next returns the next sample, or false once every sample was produced.
// Exactly one noise draw is consumed per sample, in index order.
func (r *Renderer) Next() (int16, bool) {
  if r.n >= r.total {
    return 0, false
  }

  t := float64(r.n) / float64(r.params.SampleRate)
  u := float64(r.stream.Float64() * 2) - 1
  r.n++

  return quantize(sampleAt(&r.params, t, u)), true
}

// Reset rewinds to the first sample with a fresh stream. Seeded renderers
// replay identical output; unseeded ones draw new noise.
func (r *Renderer) Reset() {
  r.n = 0
  r.stream = newStream(r.seed)
}

// Render produces the complete sample buffer for req.
func Render(req Request) (*Result, error) {
  renderer, err := NewRenderer(req)

  if err != nil {
    return nil, err
  }

  samples := make([]int16, renderer.Len(), renderer.Len())
  for i := range samples {
    samples[i], _ = renderer.Next()
  }

  return &Result{
    Samples: samples,
    SampleRate: renderer.params.SampleRate,
    DurationSeconds: renderer.params.DurationSeconds,
    Seed: copySeed(renderer.seed),
    Parameters: renderer.params,
  }, nil
}

// PCM encodes the samples as mono signed 16-bit little-endian bytes.
func (r *Result) PCM() []byte {
  data := make([]byte, len(r.Samples) * 2, len(r.Samples) * 2)

  for i, sample := range r.Samples {
    binary.LittleEndian.PutUint16(data[i * 2:], uint16(sample))
  }

  return data
}
