package result

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyu-x/filehasher/pkg/file"
)

func newFile(path, hash string, size int64) *file.File {
	return &file.File{Path: path, Hash: hash, Size: size}
}

func newTimedFile(path, hash string, size int64, ctime time.Time) *file.File {
	f := newFile(path, hash, size)
	f.CTime = ctime
	f.HasCTime = true
	return f
}

func TestClampIters(t *testing.T) {
	assert.Equal(t, DefaultIters, ClampIters(0))
	assert.Equal(t, DefaultIters, ClampIters(-5))
	assert.Equal(t, MinIters, ClampIters(3))
	assert.Equal(t, MaxIters, ClampIters(50000))
	assert.Equal(t, 250, ClampIters(250))
}

func TestAddFile_TotalFilesCountsEveryCall(t *testing.T) {
	r := New(DefaultIters, nil)

	r.AddFile(newFile("/a", "h1", 10))
	r.AddFile(newFile("/b", "h1", 10))
	r.AddFile(newFile("/c", "h1", 10))
	r.AddFile(newFile("/d", "h2", 5))

	assert.EqualValues(t, 4, r.TotalFiles())
	assert.EqualValues(t, 35, r.TotalSize())
	// three files share h1 but only the latest duplicate is retained
	assert.Equal(t, 1, r.RedundancyFiles())
	assert.Len(t, r.Originals(), 2)
}

func TestAddFile_OlderFileBecomesOriginal(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	for _, order := range [][2]string{{"old", "new"}, {"new", "old"}} {
		r := New(DefaultIters, nil)
		files := map[string]*file.File{
			"old": newTimedFile("/old.txt", "h", 100, t1),
			"new": newTimedFile("/new.txt", "h", 100, t2),
		}

		r.AddFile(files[order[0]])
		r.AddFile(files[order[1]])

		path, ok := r.OriginalPath("h")
		require.True(t, ok)
		assert.Equal(t, "/old.txt", path, "order %v", order)

		dups := r.Duplicates()
		require.Len(t, dups, 1)
		assert.Equal(t, "/new.txt", dups[0].Path)
		assert.Equal(t, 1, r.RedundancyFiles())
	}
}

func TestAddFile_UnknownCreationTimeNeverPromotes(t *testing.T) {
	older := newTimedFile("/older.txt", "h", 10, time.Unix(0, 0))
	first := newFile("/first.txt", "h", 10)

	r := New(DefaultIters, nil)
	r.AddFile(first)
	r.AddFile(older)

	path, _ := r.OriginalPath("h")
	assert.Equal(t, "/first.txt", path)
	assert.Equal(t, "/older.txt", r.Duplicates()[0].Path)

	r = New(DefaultIters, nil)
	r.AddFile(newTimedFile("/timed.txt", "h", 10, time.Now()))
	r.AddFile(newFile("/untimed.txt", "h", 10))

	path, _ = r.OriginalPath("h")
	assert.Equal(t, "/timed.txt", path)
	assert.Equal(t, "/untimed.txt", r.Duplicates()[0].Path)
}

func TestAddFile_EqualCreationTimeKeepsIncumbent(t *testing.T) {
	ts := time.Now()
	r := New(DefaultIters, nil)
	r.AddFile(newTimedFile("/a", "h", 1, ts))
	r.AddFile(newTimedFile("/b", "h", 1, ts))

	path, _ := r.OriginalPath("h")
	assert.Equal(t, "/a", path)
}

func TestRedundancyPercent(t *testing.T) {
	r := New(DefaultIters, nil)
	assert.Equal(t, "0 %", r.RedundancyPercent())

	r.AddFile(newFile("/a", "h1", 300))
	assert.Equal(t, "0.0 %", r.RedundancyPercent())

	r.AddFile(newFile("/b", "h1", 300))
	r.AddFile(newFile("/c", "h2", 400))
	assert.Equal(t, "30.0 %", r.RedundancyPercent())
	assert.EqualValues(t, 300, r.RedundancySize())
	assert.Equal(t, "300 B", r.HRRedundancySize())
	assert.Equal(t, "1000 B", r.HRTotalSize())
}

func TestTopDuplicates(t *testing.T) {
	r := New(DefaultIters, nil)
	for i := 0; i < 12; i++ {
		hash := fmt.Sprintf("h%d", i)
		size := int64((i%6 + 1) * 100)
		r.AddFile(newFile(fmt.Sprintf("/orig/%02d", i), hash, size))
		r.AddFile(newFile(fmt.Sprintf("/dup/%02d", i), hash, size))
	}

	top := r.TopDuplicates(DefaultTopN)
	require.Len(t, top, 9)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Size, top[i].Size)
	}
	assert.EqualValues(t, 600, top[0].Size)
	assert.Equal(t, "/dup/05", top[0].Path)
	assert.Equal(t, "/dup/11", top[1].Path)

	few := New(DefaultIters, nil)
	few.AddFile(newFile("/a", "h", 10))
	few.AddFile(newFile("/b", "h", 10))
	assert.Len(t, few.TopDuplicates(9), 1)
	assert.Empty(t, New(DefaultIters, nil).TopDuplicates(9))
}

func TestTopSize(t *testing.T) {
	r := New(DefaultIters, nil)
	r.AddFile(newFile("/a", "h1", 1024))
	r.AddFile(newFile("/b", "h1", 1024))
	r.AddFile(newFile("/c", "h2", 1024))
	r.AddFile(newFile("/d", "h2", 1024))

	assert.Equal(t, "2.0 kB", r.TopSize(9))
	assert.Equal(t, "1.0 kB", r.TopSize(1))
}

func TestFileTypes(t *testing.T) {
	r := New(DefaultIters, nil)
	add := func(path, hash, ftype string) {
		f := newFile(path, hash, 1)
		f.FileType = ftype
		r.AddFile(f)
	}

	add("/o1", "h1", "image/png")
	add("/d1", "h1", "image/png")
	add("/o2", "h2", "image/png")
	add("/d2", "h2", "image/png")
	add("/o3", "h3", "application/pdf")
	add("/d3", "h3", "application/pdf")
	add("/o4", "h4", "image/jpeg")
	add("/d4", "h4", "image/jpeg")
	add("/o5", "h5", "text/unique")

	assert.Equal(t, []TypeCount{
		{Type: "image/png", Count: 2},
		{Type: "application/pdf", Count: 1},
		{Type: "image/jpeg", Count: 1},
	}, r.FileTypes())
}

func TestUniqueFilesHaveNoRedundancy(t *testing.T) {
	r := New(DefaultIters, nil)
	for i := 0; i < 1000; i++ {
		r.AddFile(newFile(fmt.Sprintf("/f%d", i), fmt.Sprintf("h%d", i), 1024))
	}

	assert.EqualValues(t, 1000, r.TotalFiles())
	assert.EqualValues(t, 0, r.RedundancySize())
	assert.Equal(t, "0.0 %", r.RedundancyPercent())
}

func TestSinkEveryIters(t *testing.T) {
	var calls []Snapshot
	r := New(10, func(s Snapshot) { calls = append(calls, s) })

	for i := 0; i < 35; i++ {
		r.AddFile(newFile(fmt.Sprintf("/f%d", i), "h", 2))
	}

	require.Len(t, calls, 3)
	assert.EqualValues(t, 10, calls[0].TotalFiles)
	assert.EqualValues(t, 30, calls[2].TotalFiles)
	assert.EqualValues(t, 60, calls[2].TotalSize)
	assert.Equal(t, 1, calls[2].RedundancyFiles)
	assert.Equal(t, "3.3 %", calls[2].RedundancyPercent())
}

func TestAddFile_Concurrent(t *testing.T) {
	var notified atomic.Int64
	r := New(10, func(Snapshot) { notified.Add(1) })

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				r.AddFile(newFile(fmt.Sprintf("/w%d/f%d", w, i), fmt.Sprintf("h%d", i%50), 1))
			}
		}(w)
	}
	wg.Wait()

	assert.EqualValues(t, workers*perWorker, r.TotalFiles())
	assert.Len(t, r.Originals(), 50)
	assert.Equal(t, 50, r.RedundancyFiles())
	assert.EqualValues(t, workers*perWorker/10, notified.Load())
}

func TestSnapshot(t *testing.T) {
	r := New(DefaultIters, nil)
	r.AddFile(newFile("/a", "h", 2048))
	r.AddFile(newFile("/b", "h", 2048))

	s := r.Snapshot()
	assert.EqualValues(t, 2, s.TotalFiles)
	assert.Equal(t, "4.0 kB", s.HRTotalSize())
	assert.Equal(t, "2.0 kB", s.HRRedundancySize())
	assert.Equal(t, "50.0 %", s.RedundancyPercent())
	assert.NotEmpty(t, s.HRElapsed())
}
