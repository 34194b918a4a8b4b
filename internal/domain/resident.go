package domain

import "time"

// Resident is one row of the village population registry. NIK and NoKK are
// the national identity numbers; both are immutable once the row exists.
type Resident struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	NIK              string    `gorm:"column:nik;uniqueIndex" json:"nik"`
	NoKK             string    `gorm:"column:no_kk" json:"no_kk"`
	NamaLengkap      string    `gorm:"column:nama_lengkap" json:"nama_lengkap"`
	TempatLahir      string    `gorm:"column:tempat_lahir" json:"tempat_lahir"`
	TanggalLahir     string    `gorm:"column:tanggal_lahir" json:"tanggal_lahir"`
	JenisKelamin     string    `gorm:"column:jenis_kelamin" json:"jenis_kelamin"`
	Agama            string    `gorm:"column:agama" json:"agama"`
	StatusPerkawinan string    `gorm:"column:status_perkawinan" json:"status_perkawinan"`
	Dusun            string    `gorm:"column:dusun" json:"dusun"`
	Pendidikan       string    `gorm:"column:pendidikan" json:"pendidikan"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Resident) TableName() string { return "residents" }
