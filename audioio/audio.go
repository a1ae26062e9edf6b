package audioio

import(
  "bytes"
  "errors"
  "fmt"
  "os"
  "path/filepath"
  "strings"
)

var IntMaxSignedValue = map[int]int {
  8: 127,
  16: 32767,
  24: 8388607,
  32: 2147483647,
}

const TYPE_INVALID = -1
const TYPE_PCM = 1
const TYPE_WAVE = 2

const DefaultBitDepth = 16

var ErrInvalidFileType = errors.New("Invalid File Type")

type Writer interface {
  Create() error
  Write(samples []int16) error
  Close() error
}

type AudioFile struct {
  Filepath string
  NumChans int
  BitDepth int
  SampleRate int
}

type AudioWriter struct {
  Writer Writer
  fileType int
}

// determines a filetype based on the given file extension, the file does not have to exist
func returnFileTypeFromExtension(filePath string) (int, error) {
  extension := strings.ToLower(filepath.Ext(filePath))

  switch extension {
  case ".pcm":
    return TYPE_PCM, nil
  case ".raw":
    return TYPE_PCM, nil
  case ".wave":
    return TYPE_WAVE, nil
  case ".wav":
    return TYPE_WAVE, nil
  }

  return TYPE_INVALID, ErrInvalidFileType
}

// Reads the magic bytes of the given file and returns the file type const.
// Raw PCM has no header, so anything that is not RIFF/WAVE falls back to
// the extension. File must exist on disk
func returnFileType(filePath string) (int, error) {
  file, err := os.Open(filePath)

  if err != nil {
    return TYPE_INVALID, err
  }

  defer file.Close()

  headerBytes := make([]byte, 12)
  n, _ := file.Read(headerBytes)

  if n == 12 {
    headerBytes8 := []byte{}
    headerBytes8 = append(headerBytes8, headerBytes[:4]...)
    headerBytes8 = append(headerBytes8, headerBytes[8:]...)

    if bytes.Equal(headerBytes8, []byte("RIFFWAVE")) {
      return TYPE_WAVE, nil
    }
  }

  fileType, err := returnFileTypeFromExtension(filePath)
  if err != nil || fileType != TYPE_PCM {
    return TYPE_INVALID, ErrInvalidFileType
  }

  return TYPE_PCM, nil
}

func NewAudioWriter(audioFile AudioFile) (aw *AudioWriter, err error) {
  aw = &AudioWriter{}

  if audioFile.NumChans == 0 {
    audioFile.NumChans = 1
  }

  if audioFile.BitDepth == 0 {
    audioFile.BitDepth = DefaultBitDepth
  }

  if audioFile.BitDepth != DefaultBitDepth {
    return nil, fmt.Errorf("only %d bit samples are supported, got %d", DefaultBitDepth, audioFile.BitDepth)
  }

  if audioFile.SampleRate <= 0 {
    return nil, fmt.Errorf("SampleRate must be greater than 0, got %d", audioFile.SampleRate)
  }

  // get file type
  fileType, err := returnFileTypeFromExtension(audioFile.Filepath)

  if err != nil {
    return nil, err
  }

  switch fileType {
  case TYPE_PCM:
    aw.Writer = &PcmWriter{AudioFile: audioFile}
    aw.fileType = TYPE_PCM
  case TYPE_WAVE:
    aw.Writer = &WaveWriter{AudioFile: audioFile}
    aw.fileType = TYPE_WAVE
  default:
    return nil, fmt.Errorf("AudioWriter doesn't implement filetype %d", fileType)
  }

  return aw, nil
}

// delegate to Writer
func (aw *AudioWriter) Create() error {
  return aw.Writer.Create()
}

func (aw *AudioWriter) Close() error {
  return aw.Writer.Close()
}

func (aw *AudioWriter) Write(samples []int16) error {
  return aw.Writer.Write(samples)
}

func (aw *AudioWriter) FileType() int {
  return aw.fileType
}

// WriteFile writes mono 16 bit samples to filePath, choosing the container
// from the extension. The file is closed on every return path.
func WriteFile(filePath string, sampleRate int, samples []int16) (err error) {
  writer, err := NewAudioWriter(AudioFile{
    Filepath: filePath,
    NumChans: 1,
    BitDepth: DefaultBitDepth,
    SampleRate: sampleRate,
  })

  if err != nil {
    return err
  }

  if err = writer.Create(); err != nil {
    return err
  }

  defer func() {
    if closeErr := writer.Close(); closeErr != nil && err == nil {
      err = closeErr
    }
  }()

  return writer.Write(samples)
}
