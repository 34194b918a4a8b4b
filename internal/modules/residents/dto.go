package residents

import "desaadmin/internal/domain"

// ResidentRequest is the create/update form. On update, NIK and NoKK are
// accepted but never written: they are immutable natural keys.
type ResidentRequest struct {
	NIK              string `form:"nik" json:"nik" binding:"required"`
	NoKK             string `form:"no_kk" json:"no_kk"`
	NamaLengkap      string `form:"nama_lengkap" json:"nama_lengkap" binding:"required"`
	TempatLahir      string `form:"tempat_lahir" json:"tempat_lahir"`
	TanggalLahir     string `form:"tanggal_lahir" json:"tanggal_lahir"`
	JenisKelamin     string `form:"jenis_kelamin" json:"jenis_kelamin"`
	Agama            string `form:"agama" json:"agama"`
	StatusPerkawinan string `form:"status_perkawinan" json:"status_perkawinan"`
	Dusun            string `form:"dusun" json:"dusun"`
	Pendidikan       string `form:"pendidikan" json:"pendidikan"`
}

func (r ResidentRequest) Model() *domain.Resident {
	return &domain.Resident{
		NIK:              r.NIK,
		NoKK:             r.NoKK,
		NamaLengkap:      r.NamaLengkap,
		TempatLahir:      r.TempatLahir,
		TanggalLahir:     r.TanggalLahir,
		JenisKelamin:     r.JenisKelamin,
		Agama:            r.Agama,
		StatusPerkawinan: r.StatusPerkawinan,
		Dusun:            r.Dusun,
		Pendidikan:       r.Pendidikan,
	}
}

// UpdateFields is the column set an edit may rewrite. NIK and NoKK are
// deliberately absent.
func (r ResidentRequest) UpdateFields() map[string]any {
	return map[string]any{
		"nama_lengkap":      r.NamaLengkap,
		"tempat_lahir":      r.TempatLahir,
		"tanggal_lahir":     r.TanggalLahir,
		"jenis_kelamin":     r.JenisKelamin,
		"agama":             r.Agama,
		"status_perkawinan": r.StatusPerkawinan,
		"dusun":             r.Dusun,
		"pendidikan":        r.Pendidikan,
	}
}
