package audioio

import(
  "bufio"
  "encoding/binary"
  "errors"
  "fmt"
  "os"
)

// PcmWriter writes headerless mono signed 16 bit little-endian samples.
type PcmWriter struct {
  AudioFile
  buffer *bufio.Writer
  fileIo *os.File
}

func (pw *PcmWriter) Create() error {
  var err error

  pw.fileIo, err = os.Create(pw.Filepath)

  if err != nil {
    return err
  }

  pw.buffer = bufio.NewWriter(pw.fileIo)

  return nil
}

func (pw *PcmWriter) Write(samples []int16) error {
  if pw.buffer == nil {
    return errors.New("PcmWriter.Write called before Create")
  }

  return binary.Write(pw.buffer, binary.LittleEndian, samples)
}

func (pw *PcmWriter) Close() error {
  if pw.fileIo == nil {
    return nil
  }

  flushErr := pw.buffer.Flush()
  closeErr := pw.fileIo.Close()
  pw.fileIo = nil

  if flushErr != nil {
    return flushErr
  }
  return closeErr
}

// ReadPCM reads a headerless little-endian 16 bit file back into samples.
func ReadPCM(filePath string) ([]int16, error) {
  data, err := os.ReadFile(filePath)

  if err != nil {
    return nil, err
  }

  if len(data) % 2 != 0 {
    return nil, fmt.Errorf("%s has an odd byte count (%d) for 16 bit samples", filePath, len(data))
  }

  samples := make([]int16, len(data) / 2, len(data) / 2)
  for i := range samples {
    samples[i] = int16(binary.LittleEndian.Uint16(data[i * 2:]))
  }

  return samples, nil
}

// ReadSamples reads back either container by sniffing the file.
func ReadSamples(filePath string) ([]int16, error) {
  fileType, err := returnFileType(filePath)

  if err != nil {
    return nil, err
  }

  if fileType == TYPE_PCM {
    return ReadPCM(filePath)
  }

  buffer, err := ReadWave(filePath)

  if err != nil {
    return nil, err
  }

  samples := make([]int16, len(buffer.Data), len(buffer.Data))
  for i, value := range buffer.Data {
    samples[i] = int16(value)
  }

  return samples, nil
}
