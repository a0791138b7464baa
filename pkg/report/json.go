package report

import (
	"encoding/json"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/result"
)

type jsonSummary struct {
	TotalFiles        int64   `json:"total_files"`
	TotalSize         int64   `json:"total_size"`
	HRTotalSize       string  `json:"hr_total_size"`
	RedundancyFiles   int     `json:"redundancy_files"`
	RedundancySize    int64   `json:"redundancy_size"`
	HRRedundancySize  string  `json:"hr_redundancy_size"`
	RedundancyPercent string  `json:"redundancy_percent"`
	ElapsedSeconds    float64 `json:"elapsed_seconds"`
}

type jsonTop struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	HRSize string `json:"hr_size"`
}

type jsonReport struct {
	Roots      []string           `json:"roots"`
	Algorithm  string             `json:"algorithm"`
	Summary    jsonSummary        `json:"summary"`
	Duplicates []Entry            `json:"duplicates"`
	Top        []jsonTop          `json:"top"`
	TopSize    string             `json:"top_size"`
	FileTypes  []result.TypeCount `json:"file_types,omitempty"`
}

func writeJSON(fs afero.Fs, path string, src Source, opts Options) error {
	snap := src.Snapshot()
	n := opts.topN()

	rep := jsonReport{
		Roots:     opts.Roots,
		Algorithm: opts.Algorithm,
		Summary: jsonSummary{
			TotalFiles:        snap.TotalFiles,
			TotalSize:         snap.TotalSize,
			HRTotalSize:       snap.HRTotalSize(),
			RedundancyFiles:   snap.RedundancyFiles,
			RedundancySize:    snap.RedundancySize,
			HRRedundancySize:  snap.HRRedundancySize(),
			RedundancyPercent: snap.RedundancyPercent(),
			ElapsedSeconds:    snap.Elapsed.Seconds(),
		},
		Duplicates: entries(src, opts.DetectType),
		Top:        []jsonTop{},
		TopSize:    src.TopSize(n),
	}
	for _, dup := range src.TopDuplicates(n) {
		rep.Top = append(rep.Top, jsonTop{Path: dup.Path, Size: dup.Size, HRSize: dup.HRSize()})
	}
	if opts.DetectType {
		rep.FileTypes = src.FileTypes()
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, append(data, '\n'), 0644)
}
