package report

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/moyu-x/filehasher/pkg/locale"
)

const (
	colorPurple = "D2D2FF"
	colorPink   = "FFCECE"
)

type xlsxStyles struct {
	caption       int
	captionLeft   int
	dataCenter    int
	dataLight     int
	dataLeft      int
	totalLightBox int
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newStyles(f *excelize.File) (xlsxStyles, error) {
	dotted := []excelize.Border{{Type: "bottom", Color: "000000", Style: 4}}

	var s xlsxStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.caption, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      fill(colorPurple),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		}},
		{&s.captionLeft, &excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Fill:   fill(colorPurple),
			Border: dotted,
		}},
		{&s.dataCenter, &excelize.Style{
			Fill:      fill(colorPurple),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    dotted,
		}},
		{&s.dataLight, &excelize.Style{
			Fill:      fill(colorPink),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    dotted,
		}},
		{&s.dataLeft, &excelize.Style{
			Fill:   fill(colorPurple),
			Border: dotted,
		}},
		{&s.totalLightBox, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      fill(colorPink),
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Border:    []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

type colWidth struct {
	col   string
	width float64
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	ref := cell(col, row)
	if err := f.SetCellValue(sheet, ref, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, ref, ref, style)
}

func writeXLSX(fs afero.Fs, path string, src Source, text locale.Text, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	detailed := text.Report.Get("ws_detailed")
	summary := text.Report.Get("ws_summary")

	if err := f.SetSheetName(f.GetSheetName(0), detailed); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summary); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := writeDetailed(f, detailed, src, text, opts, styles); err != nil {
		return fmt.Errorf("detailed sheet: %w", err)
	}
	if err := writeSummary(f, summary, src, text, opts, styles); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	f.SetActiveSheet(0)

	out, err := fs.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeDetailed(f *excelize.File, sheet string, src Source, text locale.Text, opts Options, st xlsxStyles) error {
	captions := []any{
		text.Report.Get("cap1_A1"),
		text.Report.Get("cap1_B1"),
		text.Report.Get("cap1_C1"),
		text.Report.Get("cap1_D1"),
	}
	if opts.DetectType {
		captions = append(captions, text.Report.Get("cap1_E1"))
	}
	lastCol := len(captions)

	if err := f.SetSheetRow(sheet, "A1", &captions); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", cell(lastCol, 1), st.caption); err != nil {
		return err
	}

	for i, e := range entries(src, opts.DetectType) {
		row := []any{e.Original, e.Duplicate, e.HRSize, e.Hash}
		if opts.DetectType {
			row = append(row, e.FileType)
		}
		if err := f.SetSheetRow(sheet, cell(1, i+2), &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 60); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "C", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "D", "D", 44); err != nil {
		return err
	}
	if opts.DetectType {
		if err := f.SetColWidth(sheet, "E", "E", 50); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.AutoFilter(sheet, "A1:"+cell(lastCol, 1), nil)
}

func writeSummary(f *excelize.File, sheet string, src Source, text locale.Text, opts Options, st xlsxStyles) error {
	snap := src.Snapshot()

	totals := []struct {
		key   string
		value any
		style int
	}{
		{"cap2_A1", snap.TotalFiles, st.dataCenter},
		{"cap2_A2", snap.HRTotalSize(), st.dataCenter},
		{"cap2_A3", snap.RedundancyFiles, st.dataLight},
		{"cap2_A4", snap.HRRedundancySize(), st.dataLight},
		{"cap2_A5", snap.RedundancyPercent(), st.dataLight},
	}
	for i, t := range totals {
		if err := setCell(f, sheet, 1, i+1, text.Report.Get(t.key), st.captionLeft); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, i+1, t.value, t.style); err != nil {
			return err
		}
	}

	if err := setCell(f, sheet, 4, 1, text.Report.Get("cap3_D1"), st.caption); err != nil {
		return err
	}
	if err := setCell(f, sheet, 5, 1, text.Report.Get("cap3_E1"), st.caption); err != nil {
		return err
	}

	n := opts.topN()
	row := 2
	for _, dup := range src.TopDuplicates(n) {
		if err := setCell(f, sheet, 4, row, dup.Path, st.dataLeft); err != nil {
			return err
		}
		if err := setCell(f, sheet, 5, row, dup.HRSize(), st.dataCenter); err != nil {
			return err
		}
		row++
	}
	if err := setCell(f, sheet, 5, row, src.TopSize(n), st.totalLightBox); err != nil {
		return err
	}

	if opts.DetectType {
		if err := setCell(f, sheet, 7, 1, text.Report.Get("cap4_G1"), st.caption); err != nil {
			return err
		}
		if err := setCell(f, sheet, 8, 1, text.Report.Get("cap4_H1"), st.caption); err != nil {
			return err
		}
		for i, tc := range src.FileTypes() {
			if err := setCell(f, sheet, 7, i+2, tc.Type, st.dataLeft); err != nil {
				return err
			}
			if err := setCell(f, sheet, 8, i+2, tc.Count, st.dataCenter); err != nil {
				return err
			}
		}
	}

	widths := []colWidth{
		{"A", 26}, {"B", 14}, {"C", 2}, {"D", 60}, {"E", 12}, {"F", 2},
	}
	if opts.DetectType {
		widths = append(widths, colWidth{"G", 50})
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}
	return nil
}
