package seeds

import (
	"log"

	"gorm.io/gorm"

	ktModel "sitani_backend/internals/features/kelompok_tani/model"
	pModel "sitani_backend/internals/features/petani/model"
	"sitani_backend/internals/helpers/dbtime"
)

// RunAllSeeds mengisi data contoh untuk dashboard. Hanya berjalan sekali:
// dilewati bila tabel kelompok_tani sudah berisi data.
func RunAllSeeds(db *gorm.DB) {
	var cnt int64
	if err := db.Model(&ktModel.KelompokTaniModel{}).Count(&cnt).Error; err != nil {
		log.Printf("seed: gagal cek data: %v", err)
		return
	}
	if cnt > 0 {
		log.Println("seed: data sudah ada, dilewati")
		return
	}

	seedKelompokTani(db)
	seedPetani(db)
	log.Println("✅ Seed selesai.")
}

func ptr[T any](v T) *T { return &v }

func mustDate(s string) dbtime.Date {
	d, err := dbtime.ParseDate(s)
	if err != nil {
		log.Fatalf("seed: tanggal tidak valid %q: %v", s, err)
	}
	return d
}

func seedKelompokTani(db *gorm.DB) {
	groups := []ktModel.KelompokTaniModel{
		{
			KodeKelompok:       "KT-001",
			NamaKelompok:       "Tani Makmur",
			NamaKetua:          "Sutrisno",
			TanggalPembentukan: mustDate("2015-03-10"),
			Alamat:             "Jl. Raya Pertanian No. 1",
			Kelurahan:          "Sukamaju",
			Kecamatan:          "Cibadak",
			KotaKabupaten:      "Sukabumi",
			Provinsi:           "Jawa Barat",
			NoTelepon:          "0266123456",
			KomoditasUtama:     "Padi",
			StatusLegalitas:    ktModel.LegalitasTerdaftar,
			NomorSKLegalitas:   ptr("SK/001/2015"),
			Status:             ktModel.StatusAktifAktif,
			TanggalPendaftaran: mustDate("2015-04-01"),
		},
		{
			KodeKelompok:       "KT-002",
			NamaKelompok:       "Harapan Jaya",
			NamaKetua:          "Siti Aminah",
			TanggalPembentukan: mustDate("2018-07-22"),
			Alamat:             "Kampung Tengah RT 03",
			Kelurahan:          "Mekarsari",
			Kecamatan:          "Cicurug",
			KotaKabupaten:      "Sukabumi",
			Provinsi:           "Jawa Barat",
			NoTelepon:          "0266765432",
			KomoditasUtama:     "Sayuran",
			StatusLegalitas:    ktModel.LegalitasDalamProses,
			Status:             ktModel.StatusAktifAktif,
			TanggalPendaftaran: mustDate("2018-08-01"),
		},
	}
	if err := db.Create(&groups).Error; err != nil {
		log.Printf("seed kelompok_tani: %v", err)
	}
}

func seedPetani(db *gorm.DB) {
	var kt ktModel.KelompokTaniModel
	if err := db.First(&kt, "kode_kelompok = ?", "KT-001").Error; err != nil {
		log.Printf("seed petani: kelompok tidak ditemukan: %v", err)
		return
	}

	farmers := []pModel.PetaniModel{
		{
			NIK:            "3202011234560001",
			NamaLengkap:    "Budi Santoso",
			TanggalLahir:   mustDate("1980-01-01"),
			JenisKelamin:   pModel.JenisKelaminLaki,
			Alamat:         "Jl. Sawah No. 2",
			Kelurahan:      "Sukamaju",
			Kecamatan:      "Cibadak",
			KotaKabupaten:  "Sukabumi",
			Provinsi:       "Jawa Barat",
			NoTelepon:      "08123456789",
			KelompokTaniID: &kt.ID,
			LuasLahan:      1.5,
			Status:         pModel.StatusAktifAktif,
		},
		{
			NIK:            "3202011234560002",
			NamaLengkap:    "Wati Rahayu",
			TanggalLahir:   mustDate("1985-06-15"),
			JenisKelamin:   pModel.JenisKelaminPerempuan,
			Alamat:         "Kampung Tengah RT 05",
			Kelurahan:      "Mekarsari",
			Kecamatan:      "Cicurug",
			KotaKabupaten:  "Sukabumi",
			Provinsi:       "Jawa Barat",
			NoTelepon:      "08129876543",
			KelompokTaniID: &kt.ID,
			LuasLahan:      0.75,
			Status:         pModel.StatusAktifAktif,
		},
	}
	if err := db.Create(&farmers).Error; err != nil {
		log.Printf("seed petani: %v", err)
	}
}
