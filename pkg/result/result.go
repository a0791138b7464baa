// Package result classifies hashed files into originals and duplicates and keeps
// the running totals of a scan.
//
// Only one duplicate per hash is retained: when a third file with the same hash
// arrives it replaces the previous duplicate in the map, while totals keep
// counting every file. Reports therefore list at most one duplicate per original.
package result

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/moyu-x/filehasher/pkg/file"
	"github.com/moyu-x/filehasher/pkg/units"
)

const (
	DefaultIters = 1000
	MinIters     = 10
	MaxIters     = 10000

	// DefaultTopN is how many of the biggest duplicates the report lists.
	DefaultTopN = 9
)

// ClampIters bounds the progress interval to [MinIters, MaxIters].
// Zero or negative values select DefaultIters.
func ClampIters(iters int) int {
	switch {
	case iters <= 0:
		return DefaultIters
	case iters < MinIters:
		return MinIters
	case iters > MaxIters:
		return MaxIters
	default:
		return iters
	}
}

// Snapshot is a consistent copy of the counters taken under the result lock.
type Snapshot struct {
	TotalFiles      int64
	TotalSize       int64
	RedundancyFiles int
	RedundancySize  int64
	Elapsed         time.Duration
}

func (s Snapshot) HRTotalSize() string { return units.HumanSize(s.TotalSize) }
func (s Snapshot) HRRedundancySize() string { return units.HumanSize(s.RedundancySize) }
func (s Snapshot) HRElapsed() string { return units.HumanDuration(s.Elapsed) }

func (s Snapshot) RedundancyPercent() string {
	return redundancyPercent(s.RedundancySize, s.TotalSize)
}

// Sink receives periodic snapshots. It is called outside the lock and must not block.
type Sink func(Snapshot)

// TypeCount is one row of the duplicate file type histogram.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type Result struct {
	mu         sync.Mutex
	originals  map[string]*file.File
	duplicates map[string]*file.File
	totalFiles int64
	totalSize  int64

	iters   int
	sink    Sink
	started time.Time
}

// New creates an empty result. sink may be nil.
func New(iters int, sink Sink) *Result {
	return &Result{
		originals:  make(map[string]*file.File),
		duplicates: make(map[string]*file.File),
		iters:      ClampIters(iters),
		sink:       sink,
		started:    time.Now(),
	}
}

// AddFile counts f and classifies it against the current original for its hash.
// Safe for concurrent use.
func (r *Result) AddFile(f *file.File) {
	r.mu.Lock()

	r.totalFiles++
	r.totalSize += f.Size
	r.classify(f)

	var (
		snap   Snapshot
		notify bool
	)
	if r.sink != nil && r.totalFiles%int64(r.iters) == 0 {
		snap = r.snapshotLocked()
		notify = true
	}

	r.mu.Unlock()

	if notify {
		r.sink(snap)
	}
}

// classify must be called with r.mu held.
func (r *Result) classify(f *file.File) {
	incumbent, ok := r.originals[f.Hash]
	if !ok {
		r.originals[f.Hash] = f
		return
	}

	if f.OlderThan(incumbent) {
		r.duplicates[f.Hash] = incumbent
		r.originals[f.Hash] = f
		return
	}

	r.duplicates[f.Hash] = f
}

func (r *Result) redundancySizeLocked() int64 {
	var size int64
	for _, f := range r.duplicates {
		size += f.Size
	}
	return size
}

func (r *Result) snapshotLocked() Snapshot {
	return Snapshot{
		TotalFiles:      r.totalFiles,
		TotalSize:       r.totalSize,
		RedundancyFiles: len(r.duplicates),
		RedundancySize:  r.redundancySizeLocked(),
		Elapsed:         time.Since(r.started),
	}
}

// Snapshot returns the current counters.
func (r *Result) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Result) TotalFiles() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalFiles
}

func (r *Result) TotalSize() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totalSize
}

func (r *Result) HRTotalSize() string {
	return units.HumanSize(r.TotalSize())
}

// RedundancyFiles is the number of duplicate entries, one per hash at most.
func (r *Result) RedundancyFiles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.duplicates)
}

func (r *Result) RedundancySize() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redundancySizeLocked()
}

func (r *Result) HRRedundancySize() string {
	return units.HumanSize(r.RedundancySize())
}

// RedundancyPercent is the share of the total size taken by duplicates, e.g. "12.5 %".
func (r *Result) RedundancyPercent() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return redundancyPercent(r.redundancySizeLocked(), r.totalSize)
}

func redundancyPercent(redundancy, total int64) string {
	if total == 0 {
		return "0 %"
	}
	return fmt.Sprintf("%.1f %%", 100.0*float64(redundancy)/float64(total))
}

// Duplicates returns the duplicate entries sorted by path.
func (r *Result) Duplicates() []*file.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedByPath(r.duplicates)
}

// Originals returns the original entries sorted by path.
func (r *Result) Originals() []*file.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedByPath(r.originals)
}

func sortedByPath(m map[string]*file.File) []*file.File {
	files := make([]*file.File, 0, len(m))
	for _, f := range m {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// OriginalPath returns the path of the current original for hash.
func (r *Result) OriginalPath(hash string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.originals[hash]
	if !ok {
		return "", false
	}
	return f.Path, true
}

// TopDuplicates returns up to n duplicates, largest first. Equal sizes keep path order.
func (r *Result) TopDuplicates(n int) []*file.File {
	files := r.Duplicates()
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Size > files[j].Size
	})
	if n >= 0 && len(files) > n {
		files = files[:n]
	}
	return files
}

// TopSize is the human readable size of TopDuplicates(n).
func (r *Result) TopSize(n int) string {
	var size int64
	for _, f := range r.TopDuplicates(n) {
		size += f.Size
	}
	return units.HumanSize(size)
}

// FileTypes counts duplicate entries per file type, most frequent first.
func (r *Result) FileTypes() []TypeCount {
	r.mu.Lock()
	counts := make(map[string]int)
	for _, f := range r.duplicates {
		counts[f.FileType]++
	}
	r.mu.Unlock()

	types := make([]TypeCount, 0, len(counts))
	for t, c := range counts {
		types = append(types, TypeCount{Type: t, Count: c})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Type < types[j].Type
	})
	return types
}
