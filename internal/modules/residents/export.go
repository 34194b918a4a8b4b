package residents

import (
	"errors"
	"fmt"
	"time"

	"desaadmin/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ErrNoData signals the export was requested on an empty list; the handler
// turns it into a user notice instead of an empty file.
var ErrNoData = errors.New("no residents to export")

const exportSheet = "Data Penduduk"

var exportHeader = []any{
	"No", "NIK", "NoKK", "Nama Lengkap", "Tempat Lahir", "Tanggal Lahir",
	"Jenis Kelamin", "Agama", "Status Perkawinan", "Dusun", "Pendidikan",
}

// BuildWorkbook turns the loaded resident list into a single-sheet XLSX
// document. Pure transform, no queries.
func BuildWorkbook(items []domain.Resident) (*excelize.File, error) {
	if len(items) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := []any{
			i + 1,
			item.NIK,
			item.NoKK,
			item.NamaLengkap,
			item.TempatLahir,
			item.TanggalLahir,
			item.JenisKelamin,
			item.Agama,
			item.StatusPerkawinan,
			item.Dusun,
			item.Pendidikan,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ExportFilename names the download with the current date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("data-penduduk-%s.xlsx", now.Format("2006-01-02"))
}
