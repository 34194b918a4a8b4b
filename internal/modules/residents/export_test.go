package residents

import (
	"testing"
	"time"

	"desaadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbook(t *testing.T) {
	items := []domain.Resident{
		{
			NIK: "3404010001", NoKK: "3404019990", NamaLengkap: "Budi Santoso",
			TempatLahir: "Sleman", TanggalLahir: "1988-01-25", JenisKelamin: "Laki-laki",
			Agama: "Islam", StatusPerkawinan: "Kawin", Dusun: "Krajan", Pendidikan: "SMA",
		},
		{
			NIK: "3404010002", NoKK: "3404019991", NamaLengkap: "Siti Aminah",
			TempatLahir: "Bantul", TanggalLahir: "1992-07-03", JenisKelamin: "Perempuan",
			Agama: "Islam", StatusPerkawinan: "Belum Kawin", Dusun: "Ngemplak", Pendidikan: "S1",
		},
		{
			NIK: "3404010003", NoKK: "3404019992", NamaLengkap: "Wagiman",
			TempatLahir: "Sleman", TanggalLahir: "1955-11-12", JenisKelamin: "Laki-laki",
			Agama: "Islam", StatusPerkawinan: "Cerai Mati", Dusun: "Krajan", Pendidikan: "SD",
		},
	}

	f, err := BuildWorkbook(items)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Data Penduduk")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"No", "NIK", "NoKK", "Nama Lengkap", "Tempat Lahir", "Tanggal Lahir",
		"Jenis Kelamin", "Agama", "Status Perkawinan", "Dusun", "Pendidikan",
	}, rows[0])

	assert.Equal(t, []string{
		"1", "3404010001", "3404019990", "Budi Santoso", "Sleman", "1988-01-25",
		"Laki-laki", "Islam", "Kawin", "Krajan", "SMA",
	}, rows[1])

	// Row numbering follows the given order.
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Siti Aminah", rows[2][3])
	assert.Equal(t, "3", rows[3][0])
	assert.Equal(t, "Wagiman", rows[3][3])
}

func TestBuildWorkbookEmptyList(t *testing.T) {
	_, err := BuildWorkbook(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2025, 3, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "data-penduduk-2025-03-09.xlsx", ExportFilename(at))
}

func TestResidentRequestUpdateOmitsIdentityNumbers(t *testing.T) {
	req := ResidentRequest{NIK: "3404010001", NoKK: "3404019990", NamaLengkap: "Budi"}

	fields := req.UpdateFields()
	assert.NotContains(t, fields, "nik")
	assert.NotContains(t, fields, "no_kk")
	assert.Equal(t, "Budi", fields["nama_lengkap"])
}
