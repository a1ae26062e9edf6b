package preview

import(
  "context"
  "errors"
  "fmt"
  "gosfx/synth"
)

var ErrSampleRate = errors.New("sample rate does not match the playback device")

// Device plays mono signed 16-bit little-endian PCM at a fixed sample rate.
type Device interface {
  SampleRate() int
  Play(ctx context.Context, pcm []byte) error
}

// PlayAll plays results one after another. Results at a different sample
// rate than the device are skipped and reported in the returned error.
func PlayAll(ctx context.Context, device Device, results []*synth.Result) error {
  var skipped []error

  for i, result := range results {
    if err := ctx.Err(); err != nil {
      return err
    }

    if result.SampleRate != device.SampleRate() {
      skipped = append(skipped, fmt.Errorf("sound %d at %d Hz: %w", i, result.SampleRate, ErrSampleRate))
      continue
    }

    if err := device.Play(ctx, result.PCM()); err != nil {
      return err
    }
  }

  return errors.Join(skipped...)
}
