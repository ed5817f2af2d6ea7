package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader analyzes the input and returns an appropriate loader based on type inference.
// It supports the following input types:
//   - string: file:// URLs and paths ending in ".expr" load from disk, anything else is inline source
//   - []byte: Returns FromBytes loader
//   - io.Reader: Returns FromIoReader loader
//   - Loader: Returns as-is
//
// Returns an error if the input type is unsupported or if loader creation fails.
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case Loader:
		return v, nil
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	if parsed, err := url.Parse(input); err == nil && parsed.Scheme == "file" {
		return diskFromPath(parsed.Path)
	}

	if strings.HasSuffix(input, ".expr") && !strings.ContainsAny(input, " \t\n;") {
		return diskFromPath(input)
	}

	return NewFromString(input)
}

func diskFromPath(path string) (Loader, error) {
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve relative path %q: %w", path, err)
		}
		path = absPath
	}
	return NewFromDisk(path)
}
