package main

import (
	"log"
	"os"

	"desaadmin/internal/database"
	"desaadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "desa.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.AdminUser{},
		&domain.Session{},
		&domain.Resident{},
		&domain.News{},
		&domain.Product{},
		&domain.TourismSite{},
		&domain.Guide{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM residents")
	db.Exec("DELETE FROM news")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM tourism_sites")
	db.Exec("DELETE FROM guides")
	db.Exec("DELETE FROM admin_users")

	// ================== ADMIN ==================
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@desa.id"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator Desa",
	}
	db.Create(&admin)
	log.Printf("Admin created: %s / %s", email, password)

	// ================== SAMPLE RECORDS ==================
	log.Println("Creating sample records...")

	residents := []domain.Resident{
		{NIK: "3404012501880001", NoKK: "3404010101880001", NamaLengkap: "Budi Santoso", TempatLahir: "Sleman", TanggalLahir: "1988-01-25", JenisKelamin: "Laki-laki", Agama: "Islam", StatusPerkawinan: "Kawin", Dusun: "Krajan", Pendidikan: "SMA"},
		{NIK: "3404015505920002", NoKK: "3404010101920002", NamaLengkap: "Siti Aminah", TempatLahir: "Bantul", TanggalLahir: "1992-05-15", JenisKelamin: "Perempuan", Agama: "Islam", StatusPerkawinan: "Kawin", Dusun: "Ngemplak", Pendidikan: "S1"},
		{NIK: "3404011009700003", NoKK: "3404010101700003", NamaLengkap: "Wagiman", TempatLahir: "Sleman", TanggalLahir: "1970-09-10", JenisKelamin: "Laki-laki", Agama: "Islam", StatusPerkawinan: "Kawin", Dusun: "Krajan", Pendidikan: "SD"},
	}
	for i := range residents {
		db.Create(&residents[i])
	}

	db.Create(&domain.News{
		Title:       "Kerja Bakti Minggu Pagi",
		Description: "Kerja bakti membersihkan saluran irigasi",
		Content:     "Warga diharapkan berkumpul di balai desa pukul 07.00.",
		Views:       0,
	})

	db.Create(&domain.Product{
		Name:           "Keripik Singkong Bu Siti",
		Description:    "Keripik singkong renyah berbagai rasa",
		OperatingHours: "08.00 - 17.00",
		Address:        "Dusun Ngemplak RT 02",
		Contact:        "081234567890",
		Rating:         4.8,
	})

	db.Create(&domain.TourismSite{
		Name:           "Air Terjun Kedung Pedut",
		Description:    "Air terjun dengan kolam alami",
		OperatingHours: "08.00 - 16.00",
		Address:        "Dusun Krajan",
		Contact:        "081298765432",
		Rating:         4.6,
	})

	db.Create(&domain.Guide{
		Title:       "Pengurusan Surat Keterangan Domisili",
		Description: "Panduan mengurus surat keterangan domisili",
		Content:     "Surat keterangan domisili diterbitkan oleh kantor desa.",
		Steps: domain.StringList{
			"Datang ke RT setempat",
			"Isi formulir permohonan",
			"Serahkan berkas ke kantor desa",
		},
		Requirements: domain.StringList{"KTP", "KK", "Surat pengantar RT"},
	})

	log.Println("Seed completed")
}
