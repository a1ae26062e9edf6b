//go:build !headless

package preview

import(
  "bytes"
  "context"
  "time"
  "github.com/ebitengine/oto/v3"
)

const pollInterval = 10 * time.Millisecond

// Player owns the process-wide oto context. Only one may be created.
type Player struct {
  ctx *oto.Context
  sampleRate int
}

func NewPlayer(sampleRate int) (*Player, error) {
  op := &oto.NewContextOptions{
    SampleRate: sampleRate,
    ChannelCount: 1,
    Format: oto.FormatSignedInt16LE,
  }

  ctx, ready, err := oto.NewContext(op)

  if err != nil {
    return nil, err
  }

  <-ready

  return &Player{
    ctx: ctx,
    sampleRate: sampleRate,
  }, nil
}

func (p *Player) SampleRate() int {
  return p.sampleRate
}

// Play blocks until pcm has been played or ctx is done.
func (p *Player) Play(ctx context.Context, pcm []byte) error {
  player := p.ctx.NewPlayer(bytes.NewReader(pcm))
  player.Play()

  ticker := time.NewTicker(pollInterval)
  defer ticker.Stop()

  for player.IsPlaying() {
    select {
    case <-ctx.Done():
      player.Pause()
      player.Close()
      return ctx.Err()
    case <-ticker.C:
    }
  }

  return player.Close()
}
