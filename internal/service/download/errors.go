package download

import "errors"

// ErrIncompleteDownload indicates that fewer or more bytes arrived than announced.
var ErrIncompleteDownload = errors.New("incomplete download")
