package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routes "sitani_backend/internals/route"
	"sitani_backend/internals/testhelper"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.SetupRoutes(app, testhelper.NewTestDB(t))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

func validKelompokPayload(kode string) map[string]any {
	return map[string]any{
		"kode_kelompok":       kode,
		"nama_kelompok":       "Tani Makmur",
		"nama_ketua":          "Sutrisno",
		"tanggal_pembentukan": "2015-03-10",
		"alamat":              "Jl. Raya Pertanian No. 1",
		"kelurahan":           "Sukamaju",
		"kecamatan":           "Cibadak",
		"kota_kabupaten":      "Sukabumi",
		"provinsi":            "Jawa Barat",
		"no_telepon":          "0266123456",
		"komoditas_utama":     "Padi",
	}
}

func validPetaniPayload(nik string, kelompokID int) map[string]any {
	return map[string]any{
		"nik":              nik,
		"nama_lengkap":     "Budi Santoso",
		"tanggal_lahir":    "1980-01-01",
		"jenis_kelamin":    "L",
		"alamat":           "Jl. Sawah No. 2",
		"kelurahan":        "Sukamaju",
		"kecamatan":        "Cibadak",
		"kota_kabupaten":   "Sukabumi",
		"provinsi":         "Jawa Barat",
		"no_telepon":       "08123456789",
		"kelompok_tani_id": kelompokID,
		"luas_lahan":       1.5,
	}
}

func TestCreateKelompokHTTP(t *testing.T) {
	app := newApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Kelompok tani berhasil ditambahkan", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "KT-001", data["kode_kelompok"])
	assert.Equal(t, "Belum Terdaftar", data["status_legalitas"]) // default
	assert.Equal(t, "aktif", data["status"])
	assert.Equal(t, float64(0), data["jumlah_anggota"])
}

func TestCreateKelompokDuplicateHTTP(t *testing.T) {
	app := newApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Kode kelompok sudah digunakan", body["message"])
}

func TestCreateKelompokValidationHTTP(t *testing.T) {
	app := newApp(t)

	payload := validKelompokPayload("KT-001")
	payload["nama_ketua"] = ""
	payload["status_legalitas"] = "Ilegal"

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["nama_ketua"])
	assert.True(t, fields["status_legalitas"])
}

func TestListKelompokSearchHTTP(t *testing.T) {
	app := newApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	payload := validKelompokPayload("KT-002")
	payload["nama_kelompok"] = "Harapan Jaya"
	resp, _ = doJSON(t, app, http.MethodPost, "/api/kelompok-tani", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/kelompok-tani?search=KT-001", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	rows := data["kelompok_tani"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "KT-001", rows[0].(map[string]any)["kode_kelompok"])

	meta := data["pagination"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
}

func TestKelompokDetailWithMembersHTTP(t *testing.T) {
	app := newApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(body["data"].(map[string]any)["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/petani", validPetaniPayload("3202011234560001", id))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/kelompok-tani/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["jumlah_anggota"])
	assert.Equal(t, 1.5, data["luas_total_lahan"])
}

func TestUpdateKelompokEmptyRequiredFieldsHTTP(t *testing.T) {
	app := newApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(body["data"].(map[string]any)["id"].(float64))

	// string kosong pada field wajib tidak boleh mengosongkan nilai tersimpan
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/kelompok-tani/%d", id), map[string]any{
		"kode_kelompok": "",
		"nama_kelompok": "",
		"alamat":        "",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validasi gagal", body["message"])

	errs := body["errors"].([]any)
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["kode_kelompok"])
	assert.True(t, fields["nama_kelompok"])
	assert.True(t, fields["alamat"])

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/kelompok-tani/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "KT-001", data["kode_kelompok"])
	assert.Equal(t, "Tani Makmur", data["nama_kelompok"])
}

func TestDeleteKelompokBlockedHTTP(t *testing.T) {
	app := newApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(body["data"].(map[string]any)["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/petani", validPetaniPayload("3202011234560001", id))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/kelompok-tani/%d", id), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "masih memiliki 1 anggota petani")

	// kelompok masih bisa diambil setelah delete ditolak
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/kelompok-tani/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestKelompokStatsRouteHTTP(t *testing.T) {
	app := newApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/kelompok-tani", validKelompokPayload("KT-001"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/kelompok-tani/stats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["aktif"])
	assert.Equal(t, float64(1), data["belumTerdaftar"])
}
