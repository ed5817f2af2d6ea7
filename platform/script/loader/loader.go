package loader

import (
	"io"
	"net/url"
)

// Loader yields the source text of an expr program. GetReader may be called
// more than once and each call starts from the beginning of the program.
// GetSourceURL names the program; the engines use it as the unit ID.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
