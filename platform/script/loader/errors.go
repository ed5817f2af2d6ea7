package loader

import "errors"

// ErrSchemeUnsupported is returned when a source location uses a scheme the loaders cannot read.
var ErrSchemeUnsupported = errors.New("unsupported scheme")

// ErrScriptNotAvailable is returned when there is no script to return.
var ErrScriptNotAvailable = errors.New("script not available")
