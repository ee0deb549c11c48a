// internals/features/kelompok_tani/model/kelompok_tani_model.go
package model

import (
	"time"

	"sitani_backend/internals/helpers/dbtime"
)

/*
Enum sesuai skema DB:
- status_legalitas: "Terdaftar" | "Belum Terdaftar" | "Dalam Proses"
- status: "aktif" | "nonaktif"
*/
type StatusLegalitas string

const (
	LegalitasTerdaftar      StatusLegalitas = "Terdaftar"
	LegalitasBelumTerdaftar StatusLegalitas = "Belum Terdaftar"
	LegalitasDalamProses    StatusLegalitas = "Dalam Proses"
)

type StatusAktif string

const (
	StatusAktifAktif    StatusAktif = "aktif"
	StatusAktifNonaktif StatusAktif = "nonaktif"
)

type KelompokTaniModel struct {
	// PK
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Identitas kelompok
	KodeKelompok       string      `gorm:"type:varchar(50);not null;uniqueIndex:idx_kelompok_kode;column:kode_kelompok" json:"kode_kelompok"`
	NamaKelompok       string      `gorm:"type:varchar(200);not null;index:idx_kelompok_nama;column:nama_kelompok" json:"nama_kelompok"`
	NamaKetua          string      `gorm:"type:varchar(200);not null;column:nama_ketua" json:"nama_ketua"`
	TanggalPembentukan dbtime.Date `gorm:"type:date;not null;column:tanggal_pembentukan" json:"tanggal_pembentukan"`

	// Alamat
	Alamat        string  `gorm:"type:text;not null;column:alamat" json:"alamat"`
	Kelurahan     string  `gorm:"type:varchar(100);not null;column:kelurahan" json:"kelurahan"`
	Kecamatan     string  `gorm:"type:varchar(100);not null;index:idx_kelompok_kecamatan;column:kecamatan" json:"kecamatan"`
	KotaKabupaten string  `gorm:"type:varchar(100);not null;column:kota_kabupaten" json:"kota_kabupaten"`
	Provinsi      string  `gorm:"type:varchar(100);not null;column:provinsi" json:"provinsi"`
	KodePos       *string `gorm:"type:varchar(10);column:kode_pos" json:"kode_pos,omitempty"`

	// Kontak
	NoTelepon string  `gorm:"type:varchar(20);not null;column:no_telepon" json:"no_telepon"`
	Email     *string `gorm:"type:varchar(100);column:email" json:"email,omitempty"`

	// Usaha & legalitas
	KomoditasUtama     string          `gorm:"type:varchar(100);not null;column:komoditas_utama" json:"komoditas_utama"`
	StatusLegalitas    StatusLegalitas `gorm:"type:varchar(20);not null;default:'Belum Terdaftar';index:idx_kelompok_legalitas;column:status_legalitas" json:"status_legalitas"`
	NomorSKLegalitas   *string         `gorm:"type:varchar(100);column:nomor_sk_legalitas" json:"nomor_sk_legalitas,omitempty"`
	TanggalSKLegalitas *dbtime.Date    `gorm:"type:date;column:tanggal_sk_legalitas" json:"tanggal_sk_legalitas,omitempty"`

	// Pendamping & mitra
	NamaPenyuluh  *string `gorm:"type:varchar(200);column:nama_penyuluh" json:"nama_penyuluh,omitempty"`
	BankMitra     *string `gorm:"type:varchar(100);column:bank_mitra" json:"bank_mitra,omitempty"`
	NomorRekening *string `gorm:"type:varchar(50);column:nomor_rekening" json:"nomor_rekening,omitempty"`

	// Status & catatan
	Status             StatusAktif `gorm:"type:varchar(10);not null;default:'aktif';index:idx_kelompok_status;column:status" json:"status"`
	TanggalPendaftaran dbtime.Date `gorm:"type:date;not null;column:tanggal_pendaftaran" json:"tanggal_pendaftaran"`
	Catatan            *string     `gorm:"type:text;column:catatan" json:"catatan,omitempty"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KelompokTaniModel) TableName() string { return "kelompok_tani" }
