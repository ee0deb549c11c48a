package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitani_backend/internals/apperr"
	ktDTO "sitani_backend/internals/features/kelompok_tani/dto"
	ktModel "sitani_backend/internals/features/kelompok_tani/model"
	ktService "sitani_backend/internals/features/kelompok_tani/service"
	pModel "sitani_backend/internals/features/petani/model"
	helper "sitani_backend/internals/helpers"
	"sitani_backend/internals/helpers/dbtime"
	"sitani_backend/internals/testhelper"
)

func newCreateRequest(kode, nama string) *ktDTO.CreateKelompokTaniRequest {
	d, _ := dbtime.ParseDate("2015-03-10")
	return &ktDTO.CreateKelompokTaniRequest{
		KodeKelompok:       kode,
		NamaKelompok:       nama,
		NamaKetua:          "Sutrisno",
		TanggalPembentukan: d,
		Alamat:             "Jl. Raya Pertanian No. 1",
		Kelurahan:          "Sukamaju",
		Kecamatan:          "Cibadak",
		KotaKabupaten:      "Sukabumi",
		Provinsi:           "Jawa Barat",
		NoTelepon:          "0266123456",
		KomoditasUtama:     "Padi",
	}
}

func defaultPaging() helper.Paging {
	return helper.Paging{Page: 1, PerPage: 10, SortBy: "created_at", SortOrder: "DESC"}
}

func addPetani(t *testing.T, svcDB *ktService.KelompokTaniService, nik string, kelompokID *uint, luas float64, status pModel.StatusAktif) {
	t.Helper()
	d, _ := dbtime.ParseDate("1980-01-01")
	m := pModel.PetaniModel{
		NIK:            nik,
		NamaLengkap:    "Petani Uji",
		TanggalLahir:   d,
		JenisKelamin:   pModel.JenisKelaminLaki,
		Alamat:         "Jl. A",
		Kelurahan:      "X",
		Kecamatan:      "Y",
		KotaKabupaten:  "Z",
		Provinsi:       "W",
		NoTelepon:      "0811111111",
		KelompokTaniID: kelompokID,
		LuasLahan:      luas,
		Status:         status,
	}
	require.NoError(t, svcDB.DB.Create(&m).Error)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	created, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, ktModel.LegalitasBelumTerdaftar, created.StatusLegalitas)
	assert.Equal(t, ktModel.StatusAktifAktif, created.Status)
	assert.False(t, created.TanggalPendaftaran.IsZero())

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "KT-001", got.KodeKelompok)
	assert.Equal(t, "Tani Makmur", got.NamaKelompok)
	assert.Equal(t, int64(0), got.JumlahAnggota)
	assert.Equal(t, float64(0), got.LuasTotalLahan)
}

func TestCreateDuplicateKode(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	_, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	_, err = svc.Create(newCreateRequest("KT-001", "Kelompok Lain"))
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
	assert.Equal(t, "Kode kelompok sudah digunakan", ae.Message)
}

func TestMemberAggregatesOnlyAktif(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	created, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	addPetani(t, svc, "1111111111111101", &created.ID, 1.5, pModel.StatusAktifAktif)
	addPetani(t, svc, "1111111111111102", &created.ID, 0.75, pModel.StatusAktifAktif)
	addPetani(t, svc, "1111111111111103", &created.ID, 2.0, pModel.StatusAktifNonaktif)
	addPetani(t, svc, "1111111111111104", nil, 3.0, pModel.StatusAktifAktif)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	// hanya anggota aktif kelompok ini yang dihitung
	assert.Equal(t, int64(2), got.JumlahAnggota)
	assert.Equal(t, 2.25, got.LuasTotalLahan)
}

func TestListSearchByKode(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	_, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)
	_, err = svc.Create(newCreateRequest("KT-002", "Harapan Jaya"))
	require.NoError(t, err)

	items, total, err := svc.List(ktDTO.ListKelompokTaniQuery{Search: "KT-001", Paging: defaultPaging()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "KT-001", items[0].KodeKelompok)
}

func TestListFilters(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	_, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	req := newCreateRequest("KT-002", "Harapan Jaya")
	req.Kecamatan = "Cicurug"
	req.KomoditasUtama = "Sayuran"
	legal := ktModel.LegalitasTerdaftar
	req.StatusLegalitas = &legal
	nonaktif := ktModel.StatusAktifNonaktif
	req.Status = &nonaktif
	_, err = svc.Create(req)
	require.NoError(t, err)

	// status_legalitas: exact match
	_, total, err := svc.List(ktDTO.ListKelompokTaniQuery{StatusLegalitas: "Terdaftar", Paging: defaultPaging()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// kecamatan: substring, case-insensitive
	_, total, err = svc.List(ktDTO.ListKelompokTaniQuery{Kecamatan: "cicurug", Paging: defaultPaging()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// komoditas + status aktif digabung AND
	_, total, err = svc.List(ktDTO.ListKelompokTaniQuery{
		KomoditasUtama: "sayur",
		StatusAktif:    "aktif",
		Paging:         defaultPaging(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestUpdateKodeConflict(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	_, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)
	second, err := svc.Create(newCreateRequest("KT-002", "Harapan Jaya"))
	require.NoError(t, err)

	taken := "KT-001"
	_, err = svc.Update(second.ID, &ktDTO.UpdateKelompokTaniRequest{KodeKelompok: &taken})
	require.Error(t, err)
	ae, _ := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, ae.Kind)

	// kode sendiri yang tidak berubah tidak dianggap duplikat
	same := "KT-002"
	nama := "Harapan Jaya Baru"
	updated, err := svc.Update(second.ID, &ktDTO.UpdateKelompokTaniRequest{
		KodeKelompok: &same,
		NamaKelompok: &nama,
	})
	require.NoError(t, err)
	assert.Equal(t, nama, updated.NamaKelompok)
}

func TestDeleteEmptyGroup(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	created, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	require.Error(t, err)
	ae, _ := apperr.From(err)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestDeleteBlockedByMembers(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	created, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	// anggota nonaktif pun tetap memblokir penghapusan
	addPetani(t, svc, "1111111111111101", &created.ID, 1.0, pModel.StatusAktifAktif)
	addPetani(t, svc, "1111111111111102", &created.ID, 1.0, pModel.StatusAktifNonaktif)

	err = svc.Delete(created.ID)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindDependency, ae.Kind)
	assert.Contains(t, ae.Message, "masih memiliki 2 anggota petani")

	// record masih ada
	_, err = svc.GetByID(created.ID)
	require.NoError(t, err)
}

func TestDeleteNotFound(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	err := svc.Delete(9999)
	require.Error(t, err)
	ae, _ := apperr.From(err)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestStats(t *testing.T) {
	svc := ktService.NewKelompokTaniService(testhelper.NewTestDB(t))

	aktifGroup, err := svc.Create(newCreateRequest("KT-001", "Tani Makmur"))
	require.NoError(t, err)

	req := newCreateRequest("KT-002", "Harapan Jaya")
	legal := ktModel.LegalitasTerdaftar
	req.StatusLegalitas = &legal
	nonaktif := ktModel.StatusAktifNonaktif
	req.Status = &nonaktif
	nonaktifGroup, err := svc.Create(req)
	require.NoError(t, err)

	req = newCreateRequest("KT-003", "Subur Rejeki")
	proses := ktModel.LegalitasDalamProses
	req.StatusLegalitas = &proses
	_, err = svc.Create(req)
	require.NoError(t, err)

	// anggota: 2 aktif di kelompok aktif, 1 nonaktif di kelompok aktif,
	// 1 aktif di kelompok nonaktif (tidak ikut total anggota)
	addPetani(t, svc, "1111111111111101", &aktifGroup.ID, 1.0, pModel.StatusAktifAktif)
	addPetani(t, svc, "1111111111111102", &aktifGroup.ID, 2.0, pModel.StatusAktifAktif)
	addPetani(t, svc, "1111111111111103", &aktifGroup.ID, 4.0, pModel.StatusAktifNonaktif)
	addPetani(t, svc, "1111111111111104", &nonaktifGroup.ID, 8.0, pModel.StatusAktifAktif)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Aktif)
	assert.Equal(t, int64(1), stats.Nonaktif)
	assert.Equal(t, int64(1), stats.Terdaftar)
	assert.Equal(t, int64(1), stats.BelumTerdaftar)
	assert.Equal(t, int64(1), stats.DalamProses)
	assert.Equal(t, int64(2), stats.TotalAnggota)
	assert.Equal(t, float64(3), stats.TotalLuasLahan)
}
