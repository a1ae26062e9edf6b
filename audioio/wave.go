package audioio

import(
  "errors"
  "fmt"
  "os"
  "github.com/go-audio/wav"
  "github.com/go-audio/audio"
)

type WaveWriter struct {
  AudioFile
  WriteBuffer *audio.IntBuffer
  encoder *wav.Encoder
  maxSampleValue int
  fileIo *os.File
}

func (wr *WaveWriter) Create() error {
  var err error

  wr.maxSampleValue = IntMaxSignedValue[wr.BitDepth]

  if wr.maxSampleValue == 0 {
    return fmt.Errorf("BitDepth %d returned invalid integer max signed value of 0", wr.BitDepth)
  }

  wr.fileIo, err = os.Create(wr.Filepath)

  if err != nil {
    return err
  }

  wr.encoder = wav.NewEncoder(
    wr.fileIo,
    wr.SampleRate,
    wr.BitDepth,
    wr.NumChans,
    1, // Linear PCM
  )

  wr.WriteBuffer = &audio.IntBuffer{
    Format: &audio.Format{
      NumChannels: wr.NumChans,
      SampleRate: wr.SampleRate,
    },
    SourceBitDepth: wr.BitDepth,
  }

  return nil
}

func (wr *WaveWriter) Close() error {
  if wr.fileIo == nil {
    return nil
  }

  encodeErr := wr.encoder.Close()
  closeErr := wr.fileIo.Close()
  wr.fileIo = nil

  if encodeErr != nil {
    return encodeErr
  }
  return closeErr
}

func (wr *WaveWriter) Write(samples []int16) error {
  if wr.encoder == nil {
    return errors.New("WaveWriter.Write called before Create")
  }

  if cap(wr.WriteBuffer.Data) < len(samples) {
    wr.WriteBuffer.Data = make([]int, len(samples), len(samples))
  }
  wr.WriteBuffer.Data = wr.WriteBuffer.Data[:len(samples)]

  // clip guard: keep every sample inside the symmetric range of the bit depth
  for i, sample := range samples {
    value := int(sample)

    if value > wr.maxSampleValue {
      value = wr.maxSampleValue
    } else if value < -wr.maxSampleValue {
      value = -wr.maxSampleValue
    }

    wr.WriteBuffer.Data[i] = value
  }

  return wr.encoder.Write(wr.WriteBuffer)
}

// ReadWave decodes a whole wav file, used to inspect rendered output.
func ReadWave(filePath string) (*audio.IntBuffer, error) {
  file, err := os.Open(filePath)

  if err != nil {
    return nil, err
  }

  defer file.Close()

  decoder := wav.NewDecoder(file)

  if !decoder.IsValidFile() {
    return nil, fmt.Errorf("%s is not a valid wav file", filePath)
  }

  return decoder.FullPCMBuffer()
}
