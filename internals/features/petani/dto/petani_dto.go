// internals/features/petani/dto/petani_dto.go
package dto

import (
	"strings"
	"time"

	pModel "sitani_backend/internals/features/petani/model"
	helper "sitani_backend/internals/helpers"
	"sitani_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreatePetaniRequest struct {
	NIK                string                   `json:"nik" validate:"required,len=16,numeric"`
	NamaLengkap        string                   `json:"nama_lengkap" validate:"required,min=3,max=100"`
	TempatLahir        *string                  `json:"tempat_lahir" validate:"omitempty,max=100"`
	TanggalLahir       dbtime.Date              `json:"tanggal_lahir" validate:"required"`
	JenisKelamin       pModel.JenisKelamin      `json:"jenis_kelamin" validate:"required,oneof=L P"`
	StatusPernikahan   *pModel.StatusPernikahan `json:"status_pernikahan" validate:"omitempty,oneof='Belum Menikah' 'Menikah' 'Cerai Hidup' 'Cerai Mati'"`
	PendidikanTerakhir *pModel.Pendidikan       `json:"pendidikan_terakhir" validate:"omitempty,oneof='Tidak Sekolah' 'SD' 'SMP' 'SMA' 'D3' 'S1' 'S2'"`
	Pekerjaan          *string                  `json:"pekerjaan" validate:"omitempty,max=100"`

	Alamat        string  `json:"alamat" validate:"required"`
	Kelurahan     string  `json:"kelurahan" validate:"required,max=100"`
	Kecamatan     string  `json:"kecamatan" validate:"required,max=100"`
	KotaKabupaten string  `json:"kota_kabupaten" validate:"required,max=100"`
	Provinsi      string  `json:"provinsi" validate:"required,max=100"`
	KodePos       *string `json:"kode_pos" validate:"omitempty,len=5,numeric"`

	NoTelepon string  `json:"no_telepon" validate:"required,max=20,telepon"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`

	KelompokTaniID         *uint                          `json:"kelompok_tani_id" validate:"omitempty,gt=0"`
	StatusKepemilikanLahan *pModel.StatusKepemilikanLahan `json:"status_kepemilikan_lahan" validate:"omitempty,oneof='Milik Sendiri' 'Sewa' 'Bagi Hasil' 'Lainnya'"`
	LuasLahan              *float64                       `json:"luas_lahan" validate:"omitempty,gte=0"`

	Status  *pModel.StatusAktif `json:"status" validate:"omitempty,oneof=aktif nonaktif"`
	Catatan *string             `json:"catatan" validate:"omitempty"`
}

// Normalize: trim seluruh string, string-opsional kosong dianggap absen.
func (r *CreatePetaniRequest) Normalize() {
	r.NIK = strings.TrimSpace(r.NIK)
	r.NamaLengkap = strings.TrimSpace(r.NamaLengkap)
	r.Alamat = strings.TrimSpace(r.Alamat)
	r.Kelurahan = strings.TrimSpace(r.Kelurahan)
	r.Kecamatan = strings.TrimSpace(r.Kecamatan)
	r.KotaKabupaten = strings.TrimSpace(r.KotaKabupaten)
	r.Provinsi = strings.TrimSpace(r.Provinsi)
	r.NoTelepon = strings.TrimSpace(r.NoTelepon)
	r.TempatLahir = helper.TrimPtr(r.TempatLahir)
	r.Pekerjaan = helper.TrimPtr(r.Pekerjaan)
	r.KodePos = helper.TrimPtr(r.KodePos)
	r.Email = helper.TrimPtr(r.Email)
	r.Catatan = helper.TrimPtr(r.Catatan)
}

func (r *CreatePetaniRequest) ToModel() *pModel.PetaniModel {
	m := &pModel.PetaniModel{
		NIK:                r.NIK,
		NamaLengkap:        r.NamaLengkap,
		TempatLahir:        r.TempatLahir,
		TanggalLahir:       r.TanggalLahir,
		JenisKelamin:       r.JenisKelamin,
		StatusPernikahan:   r.StatusPernikahan,
		PendidikanTerakhir: r.PendidikanTerakhir,
		Pekerjaan:          r.Pekerjaan,

		Alamat:        r.Alamat,
		Kelurahan:     r.Kelurahan,
		Kecamatan:     r.Kecamatan,
		KotaKabupaten: r.KotaKabupaten,
		Provinsi:      r.Provinsi,
		KodePos:       r.KodePos,

		NoTelepon: r.NoTelepon,
		Email:     r.Email,

		KelompokTaniID:         r.KelompokTaniID,
		StatusKepemilikanLahan: r.StatusKepemilikanLahan,

		Status:  pModel.StatusAktifAktif,
		Catatan: r.Catatan,
	}
	if r.LuasLahan != nil {
		m.LuasLahan = *r.LuasLahan
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type UpdatePetaniRequest struct {
	NIK                *string                  `json:"nik" validate:"omitempty,len=16,numeric"`
	NamaLengkap        *string                  `json:"nama_lengkap" validate:"omitempty,min=3,max=100"`
	TempatLahir        *string                  `json:"tempat_lahir" validate:"omitempty,max=100"`
	TanggalLahir       *dbtime.Date             `json:"tanggal_lahir" validate:"omitempty"`
	JenisKelamin       *pModel.JenisKelamin     `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	StatusPernikahan   *pModel.StatusPernikahan `json:"status_pernikahan" validate:"omitempty,oneof='Belum Menikah' 'Menikah' 'Cerai Hidup' 'Cerai Mati'"`
	PendidikanTerakhir *pModel.Pendidikan       `json:"pendidikan_terakhir" validate:"omitempty,oneof='Tidak Sekolah' 'SD' 'SMP' 'SMA' 'D3' 'S1' 'S2'"`
	Pekerjaan          *string                  `json:"pekerjaan" validate:"omitempty,max=100"`

	// min=1: field wajib yang dikirim kosong tetap ditolak
	Alamat        *string `json:"alamat" validate:"omitempty,min=1"`
	Kelurahan     *string `json:"kelurahan" validate:"omitempty,min=1,max=100"`
	Kecamatan     *string `json:"kecamatan" validate:"omitempty,min=1,max=100"`
	KotaKabupaten *string `json:"kota_kabupaten" validate:"omitempty,min=1,max=100"`
	Provinsi      *string `json:"provinsi" validate:"omitempty,min=1,max=100"`
	KodePos       *string `json:"kode_pos" validate:"omitempty,len=5,numeric"`

	NoTelepon *string `json:"no_telepon" validate:"omitempty,max=20,telepon"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`

	KelompokTaniID         *uint                          `json:"kelompok_tani_id" validate:"omitempty,gt=0"`
	StatusKepemilikanLahan *pModel.StatusKepemilikanLahan `json:"status_kepemilikan_lahan" validate:"omitempty,oneof='Milik Sendiri' 'Sewa' 'Bagi Hasil' 'Lainnya'"`
	LuasLahan              *float64                       `json:"luas_lahan" validate:"omitempty,gte=0"`

	Status  *pModel.StatusAktif `json:"status" validate:"omitempty,oneof=aktif nonaktif"`
	Catatan *string             `json:"catatan" validate:"omitempty"`
}

func (r *UpdatePetaniRequest) Normalize() {
	if r.NIK != nil {
		t := strings.TrimSpace(*r.NIK)
		r.NIK = &t
	}
	if r.NamaLengkap != nil {
		t := strings.TrimSpace(*r.NamaLengkap)
		r.NamaLengkap = &t
	}
	if r.Alamat != nil {
		t := strings.TrimSpace(*r.Alamat)
		r.Alamat = &t
	}
	if r.NoTelepon != nil {
		t := strings.TrimSpace(*r.NoTelepon)
		r.NoTelepon = &t
	}
	r.TempatLahir = helper.TrimPtr(r.TempatLahir)
	r.Pekerjaan = helper.TrimPtr(r.Pekerjaan)
	r.KodePos = helper.TrimPtr(r.KodePos)
	r.Email = helper.TrimPtr(r.Email)
	r.Catatan = helper.TrimPtr(r.Catatan)
	trimReq := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	r.Kelurahan = trimReq(r.Kelurahan)
	r.Kecamatan = trimReq(r.Kecamatan)
	r.KotaKabupaten = trimReq(r.KotaKabupaten)
	r.Provinsi = trimReq(r.Provinsi)
}

// ApplyToModel: hanya field yang dikirim yang diterapkan.
func (r *UpdatePetaniRequest) ApplyToModel(m *pModel.PetaniModel) {
	if r.NIK != nil {
		m.NIK = *r.NIK
	}
	if r.NamaLengkap != nil {
		m.NamaLengkap = *r.NamaLengkap
	}
	if r.TempatLahir != nil {
		m.TempatLahir = r.TempatLahir
	}
	if r.TanggalLahir != nil {
		m.TanggalLahir = *r.TanggalLahir
	}
	if r.JenisKelamin != nil {
		m.JenisKelamin = *r.JenisKelamin
	}
	if r.StatusPernikahan != nil {
		m.StatusPernikahan = r.StatusPernikahan
	}
	if r.PendidikanTerakhir != nil {
		m.PendidikanTerakhir = r.PendidikanTerakhir
	}
	if r.Pekerjaan != nil {
		m.Pekerjaan = r.Pekerjaan
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
	if r.KelompokTaniID != nil {
		m.KelompokTaniID = r.KelompokTaniID
	}
	if r.StatusKepemilikanLahan != nil {
		m.StatusKepemilikanLahan = r.StatusKepemilikanLahan
	}
	if r.LuasLahan != nil {
		m.LuasLahan = *r.LuasLahan
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Catatan != nil {
		m.Catatan = r.Catatan
	}
	m.UpdatedAt = time.Now()
}

/* ===================== QUERIES ===================== */

// ListPetaniQuery: permukaan filter tertutup, bukan field-map dinamis.
type ListPetaniQuery struct {
	Search string
	Status string // aktif|nonaktif, kosong = semua
	Paging helper.Paging
}

/* ===================== RESPONSES ===================== */

type PetaniResponse struct {
	ID uint `json:"id"`

	NIK                string                   `json:"nik"`
	NamaLengkap        string                   `json:"nama_lengkap"`
	TempatLahir        *string                  `json:"tempat_lahir,omitempty"`
	TanggalLahir       dbtime.Date              `json:"tanggal_lahir"`
	JenisKelamin       pModel.JenisKelamin      `json:"jenis_kelamin"`
	StatusPernikahan   *pModel.StatusPernikahan `json:"status_pernikahan,omitempty"`
	PendidikanTerakhir *pModel.Pendidikan       `json:"pendidikan_terakhir,omitempty"`
	Pekerjaan          *string                  `json:"pekerjaan,omitempty"`

	Alamat        string  `json:"alamat"`
	Kelurahan     string  `json:"kelurahan"`
	Kecamatan     string  `json:"kecamatan"`
	KotaKabupaten string  `json:"kota_kabupaten"`
	Provinsi      string  `json:"provinsi"`
	KodePos       *string `json:"kode_pos,omitempty"`

	NoTelepon string  `json:"no_telepon"`
	Email     *string `json:"email,omitempty"`

	KelompokTaniID         *uint                          `json:"kelompok_tani_id,omitempty"`
	StatusKepemilikanLahan *pModel.StatusKepemilikanLahan `json:"status_kepemilikan_lahan,omitempty"`
	LuasLahan              float64                        `json:"luas_lahan"`

	Status  pModel.StatusAktif `json:"status"`
	Catatan *string            `json:"catatan,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPetaniResponse(m *pModel.PetaniModel) *PetaniResponse {
	if m == nil {
		return nil
	}
	return &PetaniResponse{
		ID: m.ID,

		NIK:                m.NIK,
		NamaLengkap:        m.NamaLengkap,
		TempatLahir:        m.TempatLahir,
		TanggalLahir:       m.TanggalLahir,
		JenisKelamin:       m.JenisKelamin,
		StatusPernikahan:   m.StatusPernikahan,
		PendidikanTerakhir: m.PendidikanTerakhir,
		Pekerjaan:          m.Pekerjaan,

		Alamat:        m.Alamat,
		Kelurahan:     m.Kelurahan,
		Kecamatan:     m.Kecamatan,
		KotaKabupaten: m.KotaKabupaten,
		Provinsi:      m.Provinsi,
		KodePos:       m.KodePos,

		NoTelepon: m.NoTelepon,
		Email:     m.Email,

		KelompokTaniID:         m.KelompokTaniID,
		StatusKepemilikanLahan: m.StatusKepemilikanLahan,
		LuasLahan:              m.LuasLahan,

		Status:  m.Status,
		Catatan: m.Catatan,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewPetaniResponses(rows []pModel.PetaniModel) []*PetaniResponse {
	items := make([]*PetaniResponse, 0, len(rows))
	for i := range rows {
		items = append(items, NewPetaniResponse(&rows[i]))
	}
	return items
}

type PetaniStatsResponse struct {
	Total             int64   `json:"total"`
	Aktif             int64   `json:"aktif"`
	Nonaktif          int64   `json:"nonaktif"`
	TotalLahan        float64 `json:"totalLahan"`
	AvgLahan          float64 `json:"avgLahan"`
	KelompokTaniCount int64   `json:"kelompokTaniCount"`
}
