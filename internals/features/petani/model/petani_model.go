// internals/features/petani/model/petani_model.go
package model

import (
	"time"

	"sitani_backend/internals/helpers/dbtime"
)

/*
Enum sesuai skema DB:
- jenis_kelamin: "L" | "P"
- status: "aktif" | "nonaktif"
*/
type JenisKelamin string

const (
	JenisKelaminLaki      JenisKelamin = "L"
	JenisKelaminPerempuan JenisKelamin = "P"
)

type StatusAktif string

const (
	StatusAktifAktif    StatusAktif = "aktif"
	StatusAktifNonaktif StatusAktif = "nonaktif"
)

type StatusPernikahan string

const (
	PernikahanBelumMenikah StatusPernikahan = "Belum Menikah"
	PernikahanMenikah      StatusPernikahan = "Menikah"
	PernikahanCeraiHidup   StatusPernikahan = "Cerai Hidup"
	PernikahanCeraiMati    StatusPernikahan = "Cerai Mati"
)

type Pendidikan string

const (
	PendidikanTidakSekolah Pendidikan = "Tidak Sekolah"
	PendidikanSD           Pendidikan = "SD"
	PendidikanSMP          Pendidikan = "SMP"
	PendidikanSMA          Pendidikan = "SMA"
	PendidikanD3           Pendidikan = "D3"
	PendidikanS1           Pendidikan = "S1"
	PendidikanS2           Pendidikan = "S2"
)

type StatusKepemilikanLahan string

const (
	KepemilikanMilikSendiri StatusKepemilikanLahan = "Milik Sendiri"
	KepemilikanSewa         StatusKepemilikanLahan = "Sewa"
	KepemilikanBagiHasil    StatusKepemilikanLahan = "Bagi Hasil"
	KepemilikanLainnya      StatusKepemilikanLahan = "Lainnya"
)

type PetaniModel struct {
	// PK
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Identitas
	NIK                string            `gorm:"type:varchar(16);not null;uniqueIndex:idx_petani_nik;column:nik" json:"nik"`
	NamaLengkap        string            `gorm:"type:varchar(100);not null;index:idx_petani_nama;column:nama_lengkap" json:"nama_lengkap"`
	TempatLahir        *string           `gorm:"type:varchar(100);column:tempat_lahir" json:"tempat_lahir,omitempty"`
	TanggalLahir       dbtime.Date       `gorm:"type:date;not null;column:tanggal_lahir" json:"tanggal_lahir"`
	JenisKelamin       JenisKelamin      `gorm:"type:varchar(1);not null;column:jenis_kelamin" json:"jenis_kelamin"`
	StatusPernikahan   *StatusPernikahan `gorm:"type:varchar(20);column:status_pernikahan" json:"status_pernikahan,omitempty"`
	PendidikanTerakhir *Pendidikan       `gorm:"type:varchar(20);column:pendidikan_terakhir" json:"pendidikan_terakhir,omitempty"`
	Pekerjaan          *string           `gorm:"type:varchar(100);column:pekerjaan" json:"pekerjaan,omitempty"`

	// Alamat
	Alamat        string  `gorm:"type:text;not null;column:alamat" json:"alamat"`
	Kelurahan     string  `gorm:"type:varchar(100);not null;column:kelurahan" json:"kelurahan"`
	Kecamatan     string  `gorm:"type:varchar(100);not null;index:idx_petani_kecamatan;column:kecamatan" json:"kecamatan"`
	KotaKabupaten string  `gorm:"type:varchar(100);not null;column:kota_kabupaten" json:"kota_kabupaten"`
	Provinsi      string  `gorm:"type:varchar(100);not null;column:provinsi" json:"provinsi"`
	KodePos       *string `gorm:"type:varchar(5);column:kode_pos" json:"kode_pos,omitempty"`

	// Kontak
	NoTelepon string  `gorm:"type:varchar(20);not null;column:no_telepon" json:"no_telepon"`
	Email     *string `gorm:"type:varchar(100);uniqueIndex:idx_petani_email;column:email" json:"email,omitempty"`

	// Keanggotaan & lahan
	KelompokTaniID         *uint                   `gorm:"index:idx_petani_kelompok;column:kelompok_tani_id" json:"kelompok_tani_id,omitempty"`
	StatusKepemilikanLahan *StatusKepemilikanLahan `gorm:"type:varchar(20);column:status_kepemilikan_lahan" json:"status_kepemilikan_lahan,omitempty"`
	LuasLahan              float64                 `gorm:"type:decimal(10,2);not null;default:0;column:luas_lahan" json:"luas_lahan"`

	// Status & catatan
	Status  StatusAktif `gorm:"type:varchar(10);not null;default:'aktif';index:idx_petani_status;column:status" json:"status"`
	Catatan *string     `gorm:"type:text;column:catatan" json:"catatan,omitempty"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PetaniModel) TableName() string { return "petani" }
