package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/user-none/crtfx/crt"
	"gopkg.in/yaml.v2"
)

// Format is an options file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unsupported options file: %s", path)
}

// DecodeOptions parses a partial options record. Keys absent from the data
// stay nil so they take the defaults when merged.
func DecodeOptions(data []byte, format Format) (*crt.Options, error) {
	opts := &crt.Options{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, opts)
	case FormatYAML:
		err = yaml.Unmarshal(data, opts)
	case FormatTOML:
		err = toml.Unmarshal(data, opts)
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	return opts, nil
}

// EncodeOptions serializes opts. Nil fields are omitted.
func EncodeOptions(opts *crt.Options, format Format) ([]byte, error) {
	if opts == nil {
		opts = &crt.Options{}
	}
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(opts, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(opts)
	case FormatTOML:
		data, err = toml.Marshal(opts)
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}
	return data, nil
}

// LoadOptions reads a partial options file. The format follows the file
// extension.
func LoadOptions(path string) (*crt.Options, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return DecodeOptions(data, format)
}

// LoadOptionsOrDefault is LoadOptions that returns an empty record when the
// file does not exist.
func LoadOptionsOrDefault(path string) (*crt.Options, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &crt.Options{}, nil
	}
	return LoadOptions(path)
}

// SaveOptions writes opts atomically. The format follows the file
// extension.
func SaveOptions(path string, opts *crt.Options) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := EncodeOptions(opts, format)
	if err != nil {
		return err
	}

	return AtomicWriteFile(path, data)
}
