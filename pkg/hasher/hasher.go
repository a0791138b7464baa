package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// HeaderSize is how many leading bytes are captured for type sniffing.
const HeaderSize = 2048

// Algorithm names a content digest.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	MD5    Algorithm = "md5"
	XXHash Algorithm = "xxhash"
	BLAKE3 Algorithm = "blake3"
)

// DefaultAlgorithm is used when none is configured.
const DefaultAlgorithm = SHA1

// Algorithms lists the accepted names in help order.
var Algorithms = []Algorithm{SHA1, MD5, XXHash, BLAKE3}

// ParseAlgorithm accepts an algorithm name case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case SHA1, MD5, XXHash, BLAKE3:
		return alg, nil
	case "":
		return DefaultAlgorithm, nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", name)
	}
}

// New returns a fresh digest for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case XXHash:
		return xxhash.New()
	case BLAKE3:
		return blake3.New()
	default:
		return sha1.New()
	}
}

// BlockSize is the read size used when streaming a file: the digest's internal
// block size times 1024.
func (a Algorithm) BlockSize() int {
	return a.New().BlockSize() * 1024
}

// Sum is the outcome of one content pass.
type Sum struct {
	Hash     string
	FileType string
}

// Processor hashes a file and optionally sniffs its type in a single read.
type Processor struct {
	Algorithm  Algorithm
	DetectType bool
}

// NewProcessor creates a processor for the given algorithm.
func NewProcessor(alg Algorithm, detectType bool) *Processor {
	return &Processor{Algorithm: alg, DetectType: detectType}
}

// Process opens path once, sniffs the first HeaderSize bytes when type detection
// is enabled, and streams the whole content through the digest.
func (p *Processor) Process(fs afero.Fs, path string) (Sum, error) {
	file, err := fs.Open(path)
	if err != nil {
		return Sum{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	h := p.Algorithm.New()

	head := make([]byte, HeaderSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Sum{}, fmt.Errorf("read header %s: %w", path, err)
	}
	head = head[:n]

	var sum Sum
	if p.DetectType {
		sum.FileType = DetectType(head)
	}

	h.Write(head)

	if n == HeaderSize {
		if err := streamBlocks(h, file, p.Algorithm.BlockSize()); err != nil {
			return Sum{}, fmt.Errorf("hash %s: %w", path, err)
		}
	}

	sum.Hash = hex.EncodeToString(h.Sum(nil))
	return sum, nil
}

// streamBlocks feeds r into h in blockSize reads.
func streamBlocks(h hash.Hash, r io.Reader, blockSize int) error {
	buf := make([]byte, blockSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
