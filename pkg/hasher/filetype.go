package hasher

import (
	"github.com/h2non/filetype"
)

// UnknownFileType marks content the sniffer does not recognise.
const UnknownFileType = "unknown"

// DetectType returns the MIME type of the given file header.
// An empty header or a sniffer error yields an empty string.
func DetectType(head []byte) string {
	if len(head) == 0 {
		return ""
	}

	kind, err := filetype.Match(head)
	if err != nil {
		return ""
	}

	if kind == filetype.Unknown {
		return UnknownFileType
	}

	return kind.MIME.Value
}
