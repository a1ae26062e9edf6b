//go:build headless

package preview

import(
  "context"
)

// Player discards audio in headless builds.
type Player struct {
  sampleRate int
}

func NewPlayer(sampleRate int) (*Player, error) {
  return &Player{sampleRate: sampleRate}, nil
}

func (p *Player) SampleRate() int {
  return p.sampleRate
}

func (p *Player) Play(ctx context.Context, pcm []byte) error {
  return ctx.Err()
}
