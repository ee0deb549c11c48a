// internals/features/kelompok_tani/dto/kelompok_tani_dto.go
package dto

import (
	"strings"
	"time"

	ktModel "sitani_backend/internals/features/kelompok_tani/model"
	helper "sitani_backend/internals/helpers"
	"sitani_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreateKelompokTaniRequest struct {
	KodeKelompok       string      `json:"kode_kelompok" validate:"required,max=50"`
	NamaKelompok       string      `json:"nama_kelompok" validate:"required,max=200"`
	NamaKetua          string      `json:"nama_ketua" validate:"required,max=200"`
	TanggalPembentukan dbtime.Date `json:"tanggal_pembentukan" validate:"required"`

	Alamat        string  `json:"alamat" validate:"required"`
	Kelurahan     string  `json:"kelurahan" validate:"required,max=100"`
	Kecamatan     string  `json:"kecamatan" validate:"required,max=100"`
	KotaKabupaten string  `json:"kota_kabupaten" validate:"required,max=100"`
	Provinsi      string  `json:"provinsi" validate:"required,max=100"`
	KodePos       *string `json:"kode_pos" validate:"omitempty,max=10,numeric"`

	NoTelepon string  `json:"no_telepon" validate:"required,max=20,telepon"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`

	KomoditasUtama     string                   `json:"komoditas_utama" validate:"required,max=100"`
	StatusLegalitas    *ktModel.StatusLegalitas `json:"status_legalitas" validate:"omitempty,oneof='Terdaftar' 'Belum Terdaftar' 'Dalam Proses'"`
	NomorSKLegalitas   *string                  `json:"nomor_sk_legalitas" validate:"omitempty,max=100"`
	TanggalSKLegalitas *dbtime.Date             `json:"tanggal_sk_legalitas" validate:"omitempty"`

	NamaPenyuluh  *string `json:"nama_penyuluh" validate:"omitempty,max=200"`
	BankMitra     *string `json:"bank_mitra" validate:"omitempty,max=100"`
	NomorRekening *string `json:"nomor_rekening" validate:"omitempty,max=50"`

	Status             *ktModel.StatusAktif `json:"status" validate:"omitempty,oneof=aktif nonaktif"`
	TanggalPendaftaran *dbtime.Date         `json:"tanggal_pendaftaran" validate:"omitempty"`
	Catatan            *string              `json:"catatan" validate:"omitempty"`
}

func (r *CreateKelompokTaniRequest) Normalize() {
	r.KodeKelompok = strings.TrimSpace(r.KodeKelompok)
	r.NamaKelompok = strings.TrimSpace(r.NamaKelompok)
	r.NamaKetua = strings.TrimSpace(r.NamaKetua)
	r.Alamat = strings.TrimSpace(r.Alamat)
	r.Kelurahan = strings.TrimSpace(r.Kelurahan)
	r.Kecamatan = strings.TrimSpace(r.Kecamatan)
	r.KotaKabupaten = strings.TrimSpace(r.KotaKabupaten)
	r.Provinsi = strings.TrimSpace(r.Provinsi)
	r.NoTelepon = strings.TrimSpace(r.NoTelepon)
	r.KomoditasUtama = strings.TrimSpace(r.KomoditasUtama)
	r.KodePos = helper.TrimPtr(r.KodePos)
	r.Email = helper.TrimPtr(r.Email)
	r.NomorSKLegalitas = helper.TrimPtr(r.NomorSKLegalitas)
	r.NamaPenyuluh = helper.TrimPtr(r.NamaPenyuluh)
	r.BankMitra = helper.TrimPtr(r.BankMitra)
	r.NomorRekening = helper.TrimPtr(r.NomorRekening)
	r.Catatan = helper.TrimPtr(r.Catatan)
}

func (r *CreateKelompokTaniRequest) ToModel() *ktModel.KelompokTaniModel {
	m := &ktModel.KelompokTaniModel{
		KodeKelompok:       r.KodeKelompok,
		NamaKelompok:       r.NamaKelompok,
		NamaKetua:          r.NamaKetua,
		TanggalPembentukan: r.TanggalPembentukan,

		Alamat:        r.Alamat,
		Kelurahan:     r.Kelurahan,
		Kecamatan:     r.Kecamatan,
		KotaKabupaten: r.KotaKabupaten,
		Provinsi:      r.Provinsi,
		KodePos:       r.KodePos,

		NoTelepon: r.NoTelepon,
		Email:     r.Email,

		KomoditasUtama:     r.KomoditasUtama,
		StatusLegalitas:    ktModel.LegalitasBelumTerdaftar,
		NomorSKLegalitas:   r.NomorSKLegalitas,
		TanggalSKLegalitas: r.TanggalSKLegalitas,

		NamaPenyuluh:  r.NamaPenyuluh,
		BankMitra:     r.BankMitra,
		NomorRekening: r.NomorRekening,

		Status:             ktModel.StatusAktifAktif,
		TanggalPendaftaran: dbtime.Today(),
		Catatan:            r.Catatan,
	}
	if r.StatusLegalitas != nil {
		m.StatusLegalitas = *r.StatusLegalitas
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.TanggalPendaftaran != nil {
		m.TanggalPendaftaran = *r.TanggalPendaftaran
	}
	return m
}

// Field wajib yang dikirim kosong tetap ditolak (min=1): update parsial
// tidak boleh mengosongkan nilai yang di create-nya required.
type UpdateKelompokTaniRequest struct {
	KodeKelompok       *string      `json:"kode_kelompok" validate:"omitempty,min=1,max=50"`
	NamaKelompok       *string      `json:"nama_kelompok" validate:"omitempty,min=1,max=200"`
	NamaKetua          *string      `json:"nama_ketua" validate:"omitempty,min=1,max=200"`
	TanggalPembentukan *dbtime.Date `json:"tanggal_pembentukan" validate:"omitempty"`

	Alamat        *string `json:"alamat" validate:"omitempty,min=1"`
	Kelurahan     *string `json:"kelurahan" validate:"omitempty,min=1,max=100"`
	Kecamatan     *string `json:"kecamatan" validate:"omitempty,min=1,max=100"`
	KotaKabupaten *string `json:"kota_kabupaten" validate:"omitempty,min=1,max=100"`
	Provinsi      *string `json:"provinsi" validate:"omitempty,min=1,max=100"`
	KodePos       *string `json:"kode_pos" validate:"omitempty,max=10,numeric"`

	NoTelepon *string `json:"no_telepon" validate:"omitempty,max=20,telepon"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`

	KomoditasUtama     *string                  `json:"komoditas_utama" validate:"omitempty,min=1,max=100"`
	StatusLegalitas    *ktModel.StatusLegalitas `json:"status_legalitas" validate:"omitempty,oneof='Terdaftar' 'Belum Terdaftar' 'Dalam Proses'"`
	NomorSKLegalitas   *string                  `json:"nomor_sk_legalitas" validate:"omitempty,max=100"`
	TanggalSKLegalitas *dbtime.Date             `json:"tanggal_sk_legalitas" validate:"omitempty"`

	NamaPenyuluh  *string `json:"nama_penyuluh" validate:"omitempty,max=200"`
	BankMitra     *string `json:"bank_mitra" validate:"omitempty,max=100"`
	NomorRekening *string `json:"nomor_rekening" validate:"omitempty,max=50"`

	Status             *ktModel.StatusAktif `json:"status" validate:"omitempty,oneof=aktif nonaktif"`
	TanggalPendaftaran *dbtime.Date         `json:"tanggal_pendaftaran" validate:"omitempty"`
	Catatan            *string              `json:"catatan" validate:"omitempty"`
}

func (r *UpdateKelompokTaniRequest) Normalize() {
	trimReq := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	r.KodeKelompok = trimReq(r.KodeKelompok)
	r.NamaKelompok = trimReq(r.NamaKelompok)
	r.NamaKetua = trimReq(r.NamaKetua)
	r.Alamat = trimReq(r.Alamat)
	r.Kelurahan = trimReq(r.Kelurahan)
	r.Kecamatan = trimReq(r.Kecamatan)
	r.KotaKabupaten = trimReq(r.KotaKabupaten)
	r.Provinsi = trimReq(r.Provinsi)
	r.NoTelepon = trimReq(r.NoTelepon)
	r.KomoditasUtama = trimReq(r.KomoditasUtama)
	r.KodePos = helper.TrimPtr(r.KodePos)
	r.Email = helper.TrimPtr(r.Email)
	r.NomorSKLegalitas = helper.TrimPtr(r.NomorSKLegalitas)
	r.NamaPenyuluh = helper.TrimPtr(r.NamaPenyuluh)
	r.BankMitra = helper.TrimPtr(r.BankMitra)
	r.NomorRekening = helper.TrimPtr(r.NomorRekening)
	r.Catatan = helper.TrimPtr(r.Catatan)
}

func (r *UpdateKelompokTaniRequest) ApplyToModel(m *ktModel.KelompokTaniModel) {
	if r.KodeKelompok != nil {
		m.KodeKelompok = *r.KodeKelompok
	}
	if r.NamaKelompok != nil {
		m.NamaKelompok = *r.NamaKelompok
	}
	if r.NamaKetua != nil {
		m.NamaKetua = *r.NamaKetua
	}
	if r.TanggalPembentukan != nil {
		m.TanggalPembentukan = *r.TanggalPembentukan
	}
	if r.Alamat != nil {
		m.Alamat = *r.Alamat
	}
	if r.Kelurahan != nil {
		m.Kelurahan = *r.Kelurahan
	}
	if r.Kecamatan != nil {
		m.Kecamatan = *r.Kecamatan
	}
	if r.KotaKabupaten != nil {
		m.KotaKabupaten = *r.KotaKabupaten
	}
	if r.Provinsi != nil {
		m.Provinsi = *r.Provinsi
	}
	if r.KodePos != nil {
		m.KodePos = r.KodePos
	}
	if r.NoTelepon != nil {
		m.NoTelepon = *r.NoTelepon
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.KomoditasUtama != nil {
		m.KomoditasUtama = *r.KomoditasUtama
	}
	if r.StatusLegalitas != nil {
		m.StatusLegalitas = *r.StatusLegalitas
	}
	if r.NomorSKLegalitas != nil {
		m.NomorSKLegalitas = r.NomorSKLegalitas
	}
	if r.TanggalSKLegalitas != nil {
		m.TanggalSKLegalitas = r.TanggalSKLegalitas
	}
	if r.NamaPenyuluh != nil {
		m.NamaPenyuluh = r.NamaPenyuluh
	}
	if r.BankMitra != nil {
		m.BankMitra = r.BankMitra
	}
	if r.NomorRekening != nil {
		m.NomorRekening = r.NomorRekening
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.TanggalPendaftaran != nil {
		m.TanggalPendaftaran = *r.TanggalPendaftaran
	}
	if r.Catatan != nil {
		m.Catatan = r.Catatan
	}
	m.UpdatedAt = time.Now()
}

/* ===================== QUERIES ===================== */

// ListKelompokTaniQuery: permukaan filter tertutup sesuai kontrak API.
type ListKelompokTaniQuery struct {
	Search          string
	StatusLegalitas string // exact
	StatusAktif     string // exact
	Kecamatan       string // substring
	Kabupaten       string // substring
	KomoditasUtama  string // substring
	Paging          helper.Paging
}

/* ===================== RESPONSES ===================== */

type KelompokTaniResponse struct {
	ID uint `json:"id"`

	KodeKelompok       string      `json:"kode_kelompok"`
	NamaKelompok       string      `json:"nama_kelompok"`
	NamaKetua          string      `json:"nama_ketua"`
	TanggalPembentukan dbtime.Date `json:"tanggal_pembentukan"`

	Alamat        string  `json:"alamat"`
	Kelurahan     string  `json:"kelurahan"`
	Kecamatan     string  `json:"kecamatan"`
	KotaKabupaten string  `json:"kota_kabupaten"`
	Provinsi      string  `json:"provinsi"`
	KodePos       *string `json:"kode_pos,omitempty"`

	NoTelepon string  `json:"no_telepon"`
	Email     *string `json:"email,omitempty"`

	KomoditasUtama     string                  `json:"komoditas_utama"`
	StatusLegalitas    ktModel.StatusLegalitas `json:"status_legalitas"`
	NomorSKLegalitas   *string                 `json:"nomor_sk_legalitas,omitempty"`
	TanggalSKLegalitas *dbtime.Date            `json:"tanggal_sk_legalitas,omitempty"`

	NamaPenyuluh  *string `json:"nama_penyuluh,omitempty"`
	BankMitra     *string `json:"bank_mitra,omitempty"`
	NomorRekening *string `json:"nomor_rekening,omitempty"`

	Status             ktModel.StatusAktif `json:"status"`
	TanggalPendaftaran dbtime.Date         `json:"tanggal_pendaftaran"`
	Catatan            *string             `json:"catatan,omitempty"`

	// Agregat anggota aktif
	JumlahAnggota  int64   `json:"jumlah_anggota"`
	LuasTotalLahan float64 `json:"luas_total_lahan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewKelompokTaniResponse(m *ktModel.KelompokTaniModel, jumlahAnggota int64, luasTotal float64) *KelompokTaniResponse {
	if m == nil {
		return nil
	}
	return &KelompokTaniResponse{
		ID: m.ID,

		KodeKelompok:       m.KodeKelompok,
		NamaKelompok:       m.NamaKelompok,
		NamaKetua:          m.NamaKetua,
		TanggalPembentukan: m.TanggalPembentukan,

		Alamat:        m.Alamat,
		Kelurahan:     m.Kelurahan,
		Kecamatan:     m.Kecamatan,
		KotaKabupaten: m.KotaKabupaten,
		Provinsi:      m.Provinsi,
		KodePos:       m.KodePos,

		NoTelepon: m.NoTelepon,
		Email:     m.Email,

		KomoditasUtama:     m.KomoditasUtama,
		StatusLegalitas:    m.StatusLegalitas,
		NomorSKLegalitas:   m.NomorSKLegalitas,
		TanggalSKLegalitas: m.TanggalSKLegalitas,

		NamaPenyuluh:  m.NamaPenyuluh,
		BankMitra:     m.BankMitra,
		NomorRekening: m.NomorRekening,

		Status:             m.Status,
		TanggalPendaftaran: m.TanggalPendaftaran,
		Catatan:            m.Catatan,

		JumlahAnggota:  jumlahAnggota,
		LuasTotalLahan: luasTotal,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type KelompokTaniStatsResponse struct {
	Total          int64   `json:"total"`
	Aktif          int64   `json:"aktif"`
	Nonaktif       int64   `json:"nonaktif"`
	Terdaftar      int64   `json:"terdaftar"`
	BelumTerdaftar int64   `json:"belumTerdaftar"`
	DalamProses    int64   `json:"dalamProses"`
	TotalAnggota   int64   `json:"totalAnggota"`
	TotalLuasLahan float64 `json:"totalLuasLahan"`
}
