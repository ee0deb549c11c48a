package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pDTO "sitani_backend/internals/features/petani/dto"
	pModel "sitani_backend/internals/features/petani/model"
	helper "sitani_backend/internals/helpers"
	"sitani_backend/internals/helpers/dbtime"
)

func validCreateRequest() *pDTO.CreatePetaniRequest {
	d, _ := dbtime.ParseDate("1980-01-01")
	return &pDTO.CreatePetaniRequest{
		NIK:           "3202011234560001",
		NamaLengkap:   "Budi Santoso",
		TanggalLahir:  d,
		JenisKelamin:  pModel.JenisKelaminLaki,
		Alamat:        "Jl. Sawah No. 2",
		Kelurahan:     "Sukamaju",
		Kecamatan:     "Cibadak",
		KotaKabupaten: "Sukabumi",
		Provinsi:      "Jawa Barat",
		NoTelepon:     "0812-3456-789",
	}
}

func TestValidateStructOK(t *testing.T) {
	assert.Nil(t, helper.ValidateStruct(validCreateRequest()))
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	req := validCreateRequest()
	req.NIK = "12AB"
	req.NamaLengkap = "ab"
	req.NoTelepon = "telp#1"

	fields := helper.ValidateStruct(req)
	require.Len(t, fields, 3)

	byField := map[string][]string{}
	for _, f := range fields {
		byField[f.Field] = append(byField[f.Field], f.Message)
	}
	// nama field memakai json tag
	assert.Contains(t, byField, "nik")
	assert.Contains(t, byField, "nama_lengkap")
	assert.Contains(t, byField, "no_telepon")
	assert.Contains(t, byField["nama_lengkap"][0], "minimal 3 karakter")
}

func TestValidateRequiredDate(t *testing.T) {
	req := validCreateRequest()
	req.TanggalLahir = dbtime.Date{}

	fields := helper.ValidateStruct(req)
	require.Len(t, fields, 1)
	assert.Equal(t, "tanggal_lahir", fields[0].Field)
	assert.Contains(t, fields[0].Message, "wajib diisi")
}

func TestValidateTeleponRule(t *testing.T) {
	req := validCreateRequest()

	for _, ok := range []string{"08123456789", "+62 812-3456-789", "(0266) 123456"} {
		req.NoTelepon = ok
		assert.Nil(t, helper.ValidateStruct(req), ok)
	}
	for _, bad := range []string{"telp#1", "0812a3456"} {
		req.NoTelepon = bad
		fields := helper.ValidateStruct(req)
		require.Len(t, fields, 1, bad)
		assert.Equal(t, "no_telepon", fields[0].Field)
	}
}

func TestValidateOneofWithSpaces(t *testing.T) {
	req := validCreateRequest()

	menikah := pModel.StatusPernikahan("Menikah")
	req.StatusPernikahan = &menikah
	assert.Nil(t, helper.ValidateStruct(req))

	belum := pModel.StatusPernikahan("Belum Menikah") // nilai dengan spasi
	req.StatusPernikahan = &belum
	assert.Nil(t, helper.ValidateStruct(req))

	invalid := pModel.StatusPernikahan("Jomblo")
	req.StatusPernikahan = &invalid
	fields := helper.ValidateStruct(req)
	require.Len(t, fields, 1)
	assert.Equal(t, "status_pernikahan", fields[0].Field)
}

func TestValidateOptionalFieldsSkippedWhenAbsent(t *testing.T) {
	req := validCreateRequest()
	req.Email = nil
	req.KodePos = nil
	req.LuasLahan = nil
	assert.Nil(t, helper.ValidateStruct(req))

	bad := "bukan-email"
	req.Email = &bad
	fields := helper.ValidateStruct(req)
	require.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
}

func TestTrimPtr(t *testing.T) {
	s := "  halo  "
	got := helper.TrimPtr(&s)
	require.NotNil(t, got)
	assert.Equal(t, "halo", *got)

	empty := "   "
	assert.Nil(t, helper.TrimPtr(&empty))
	assert.Nil(t, helper.TrimPtr(nil))
}
