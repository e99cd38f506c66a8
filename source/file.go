package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inikit/inikit/errs"
	"github.com/inikit/inikit/format"
)

// DetectCompression maps a file path to the compression type implied by its
// extension. Unknown extensions mean plain text.
func DetectCompression(path string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// ReadFile loads the file at path and returns its decompressed contents
// together with a display name for diagnostics (the file's base name). The
// codec is chosen from the extension via DetectCompression.
//
// Failures to open or read the file are reported as ErrSourceUnavailable;
// codec failures keep their own error identity.
func ReadFile(path string) ([]byte, string, error) {
	name := filepath.Base(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", errs.ErrSourceUnavailable, path, err)
	}

	codec, err := GetCodec(DetectCompression(path))
	if err != nil {
		return nil, "", err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decompress %s: %w", path, err)
	}

	return data, name, nil
}

// ReadAll drains r and returns its contents, paired with name for
// diagnostics. No decompression is applied; readers deliver plain text.
func ReadAll(r io.Reader, name string) ([]byte, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", errs.ErrSourceUnavailable, name, err)
	}

	return data, name, nil
}

// WriteFile compresses data with the codec implied by path's extension and
// writes it with permissions perm. The counterpart of ReadFile for producing
// snapshot files.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	codec, err := GetCodec(DetectCompression(path))
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	if err := os.WriteFile(path, compressed, perm); err != nil {
		return fmt.Errorf("%w: %s: %v", errs.ErrSourceUnavailable, path, err)
	}

	return nil
}
