package internal

const (
	// AppName names the binary and its config directories.
	AppName = "filehasher"

	// DefaultWorkers is the size of the hashing pool.
	DefaultWorkers = 2

	// DefaultLanguage is used for console and report captions.
	DefaultLanguage = "en"
)
