package spectrum

import(
  "fmt"
)

// SlidingBuffer holds one analysis frame. New data enters at the end and
// older data slides toward index 0.
type SlidingBuffer struct {
  Data []float64
  lastValidSample int
  hasReceivedData bool
}

func NewSlidingBuffer(length int) *SlidingBuffer {
  return &SlidingBuffer{
    Data: make([]float64, length, length),
    lastValidSample: -1,
  }
}

func (sb *SlidingBuffer) HasValidSamples() bool {
  return sb.lastValidSample >= 0
}

// ShiftIn slides len(data) samples in, of which the first validSamples are
// real signal; the rest are zeroed.
func (sb *SlidingBuffer) ShiftIn(data []float64, validSamples int) error {
  dataLen := len(data)

  if validSamples > dataLen {
    return fmt.Errorf("validSamples %d cannot be more than buffer data length %d", validSamples, dataLen)
  }

  if dataLen > len(sb.Data) {
    return fmt.Errorf("Attempted to ShiftIn %d samples, but buffer can only hold %d samples", dataLen, len(sb.Data))
  }

  copy(sb.Data, sb.Data[dataLen:])
  tail := sb.Data[len(sb.Data) - dataLen:]
  copy(tail, data[:validSamples])

  for i := validSamples; i < dataLen; i++ {
    tail[i] = 0
  }

  if !sb.hasReceivedData {
    sb.lastValidSample = len(sb.Data) - dataLen + validSamples - 1
  } else {
    sb.lastValidSample = sb.lastValidSample - dataLen + validSamples
  }
  sb.hasReceivedData = true

  return nil
}

// ShiftOver slides dataLen zeros in
func (sb *SlidingBuffer) ShiftOver(dataLen int) error {
  if dataLen > len(sb.Data) {
    return fmt.Errorf("Attempted to ShiftOver %d samples, but buffer can only hold %d samples", dataLen, len(sb.Data))
  }

  copy(sb.Data, sb.Data[dataLen:])

  for i := len(sb.Data) - dataLen; i < len(sb.Data); i++ {
    sb.Data[i] = 0
  }

  if !sb.hasReceivedData {
    sb.lastValidSample = len(sb.Data) - dataLen - 1
  } else {
    sb.lastValidSample = sb.lastValidSample - dataLen
  }
  sb.hasReceivedData = true

  return nil
}
