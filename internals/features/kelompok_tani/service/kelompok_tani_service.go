// internals/features/kelompok_tani/service/kelompok_tani_service.go
package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sitani_backend/internals/apperr"
	ktDTO "sitani_backend/internals/features/kelompok_tani/dto"
	ktModel "sitani_backend/internals/features/kelompok_tani/model"
	pModel "sitani_backend/internals/features/petani/model"
)

type KelompokTaniService struct {
	DB *gorm.DB
}

func NewKelompokTaniService(db *gorm.DB) *KelompokTaniService {
	return &KelompokTaniService{DB: db}
}

var sortColumns = map[string]string{
	"id":            "id",
	"kode_kelompok": "kode_kelompok",
	"nama_kelompok": "lower(nama_kelompok)",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

// memberAgg: hasil satu query agregat anggota aktif per kelompok
// (pengganti loop count-per-kelompok).
type memberAgg struct {
	KelompokTaniID uint
	Jumlah         int64
	Luas           float64
}

func (s *KelompokTaniService) memberAggregates(ids []uint) (map[uint]memberAgg, error) {
	out := make(map[uint]memberAgg, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var aggs []memberAgg
	err := s.DB.Model(&pModel.PetaniModel{}).
		Select("kelompok_tani_id, COUNT(*) AS jumlah, COALESCE(SUM(luas_lahan), 0) AS luas").
		Where("status = ? AND kelompok_tani_id IN ?", pModel.StatusAktifAktif, ids).
		Group("kelompok_tani_id").
		Scan(&aggs).Error
	if err != nil {
		return nil, apperr.Store("Gagal menghitung anggota kelompok", err)
	}
	for _, a := range aggs {
		out[a.KelompokTaniID] = a
	}
	return out, nil
}

/* ===================== LIST ===================== */

func (s *KelompokTaniService) List(q ktDTO.ListKelompokTaniQuery) ([]*ktDTO.KelompokTaniResponse, int64, error) {
	orderExpr, err := q.Paging.SafeOrderClause(sortColumns, "created_at")
	if err != nil {
		return nil, 0, apperr.Validation("Parameter sort_by tidak dikenal", []apperr.FieldError{
			{Field: "sort_by", Message: err.Error()},
		})
	}

	dbq := s.DB.Model(&ktModel.KelompokTaniModel{})
	if q.Search != "" {
		term := "%" + q.Search + "%"
		dbq = dbq.Where(
			"LOWER(kode_kelompok) LIKE LOWER(?) OR LOWER(nama_kelompok) LIKE LOWER(?) OR LOWER(nama_ketua) LIKE LOWER(?)",
			term, term, term,
		)
	}
	if q.StatusLegalitas != "" {
		dbq = dbq.Where("status_legalitas = ?", q.StatusLegalitas)
	}
	if q.StatusAktif != "" {
		dbq = dbq.Where("status = ?", q.StatusAktif)
	}
	if q.Kecamatan != "" {
		dbq = dbq.Where("LOWER(kecamatan) LIKE LOWER(?)", "%"+q.Kecamatan+"%")
	}
	if q.Kabupaten != "" {
		dbq = dbq.Where("LOWER(kota_kabupaten) LIKE LOWER(?)", "%"+q.Kabupaten+"%")
	}
	if q.KomoditasUtama != "" {
		dbq = dbq.Where("LOWER(komoditas_utama) LIKE LOWER(?)", "%"+q.KomoditasUtama+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("Gagal menghitung data kelompok tani", err)
	}

	var rows []ktModel.KelompokTaniModel
	if err := dbq.
		Order(orderExpr).
		Limit(q.Paging.Limit()).
		Offset(q.Paging.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.Store("Gagal mengambil data kelompok tani", err)
	}

	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	aggs, err := s.memberAggregates(ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*ktDTO.KelompokTaniResponse, 0, len(rows))
	for i := range rows {
		a := aggs[rows[i].ID]
		items = append(items, ktDTO.NewKelompokTaniResponse(&rows[i], a.Jumlah, a.Luas))
	}
	return items, total, nil
}

/* ===================== GET ===================== */

func (s *KelompokTaniService) findByID(id uint) (*ktModel.KelompokTaniModel, error) {
	var m ktModel.KelompokTaniModel
	if err := s.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Kelompok tani tidak ditemukan")
		}
		return nil, apperr.Store("Gagal mengambil data kelompok tani", err)
	}
	return &m, nil
}

func (s *KelompokTaniService) GetByID(id uint) (*ktDTO.KelompokTaniResponse, error) {
	m, err := s.findByID(id)
	if err != nil {
		return nil, err
	}
	aggs, err := s.memberAggregates([]uint{id})
	if err != nil {
		return nil, err
	}
	a := aggs[id]
	return ktDTO.NewKelompokTaniResponse(m, a.Jumlah, a.Luas), nil
}

/* ===================== CREATE ===================== */

// Create: keunikan kode_kelompok dijaga unique index di store;
// pelanggarannya diterjemahkan jadi Conflict yang ramah.
func (s *KelompokTaniService) Create(req *ktDTO.CreateKelompokTaniRequest) (*ktDTO.KelompokTaniResponse, error) {
	m := req.ToModel()
	if err := s.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Kode kelompok sudah digunakan")
		}
		return nil, apperr.Store("Gagal menyimpan data kelompok tani", err)
	}
	return ktDTO.NewKelompokTaniResponse(m, 0, 0), nil
}

/* ===================== UPDATE ===================== */

func (s *KelompokTaniService) Update(id uint, req *ktDTO.UpdateKelompokTaniRequest) (*ktDTO.KelompokTaniResponse, error) {
	m, err := s.findByID(id)
	if err != nil {
		return nil, err
	}

	if req.KodeKelompok != nil && *req.KodeKelompok != m.KodeKelompok {
		var cnt int64
		if err := s.DB.Model(&ktModel.KelompokTaniModel{}).
			Where("kode_kelompok = ? AND id <> ?", *req.KodeKelompok, id).
			Count(&cnt).Error; err != nil {
			return nil, apperr.Store("Gagal cek duplikasi kode kelompok", err)
		}
		if cnt > 0 {
			return nil, apperr.Conflict("Kode kelompok sudah digunakan")
		}
	}

	req.ApplyToModel(m)
	if err := s.DB.Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Kode kelompok sudah digunakan")
		}
		return nil, apperr.Store("Gagal memperbarui data kelompok tani", err)
	}

	aggs, err := s.memberAggregates([]uint{id})
	if err != nil {
		return nil, err
	}
	a := aggs[id]
	return ktDTO.NewKelompokTaniResponse(m, a.Jumlah, a.Luas), nil
}

/* ===================== DELETE ===================== */

// Delete ditolak selama masih ada petani yang mereferensikan kelompok ini;
// integritas referensial dijaga di level aplikasi, bukan constraint DB.
func (s *KelompokTaniService) Delete(id uint) error {
	if _, err := s.findByID(id); err != nil {
		return err
	}

	var cnt int64
	if err := s.DB.Model(&pModel.PetaniModel{}).
		Where("kelompok_tani_id = ?", id).
		Count(&cnt).Error; err != nil {
		return apperr.Store("Gagal cek anggota kelompok", err)
	}
	if cnt > 0 {
		return apperr.Dependency(fmt.Sprintf(
			"Kelompok tani tidak dapat dihapus karena masih memiliki %d anggota petani", cnt))
	}

	if err := s.DB.Delete(&ktModel.KelompokTaniModel{}, "id = ?", id).Error; err != nil {
		return apperr.Store("Gagal menghapus data kelompok tani", err)
	}
	return nil
}

/* ===================== STATS ===================== */

func (s *KelompokTaniService) Stats() (*ktDTO.KelompokTaniStatsResponse, error) {
	var out ktDTO.KelompokTaniStatsResponse

	type groupAgg struct {
		Total          int64
		Aktif          int64
		Nonaktif       int64
		Terdaftar      int64
		BelumTerdaftar int64
		DalamProses    int64
	}
	var ga groupAgg
	err := s.DB.Model(&ktModel.KelompokTaniModel{}).
		Select(`
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'aktif' THEN 1 END) AS aktif,
			COUNT(CASE WHEN status = 'nonaktif' THEN 1 END) AS nonaktif,
			COUNT(CASE WHEN status_legalitas = 'Terdaftar' THEN 1 END) AS terdaftar,
			COUNT(CASE WHEN status_legalitas = 'Belum Terdaftar' THEN 1 END) AS belum_terdaftar,
			COUNT(CASE WHEN status_legalitas = 'Dalam Proses' THEN 1 END) AS dalam_proses
		`).
		Scan(&ga).Error
	if err != nil {
		return nil, apperr.Store("Gagal menghitung statistik kelompok tani", err)
	}

	// total anggota & luas: satu query join, bukan satu query per kelompok
	type anggotaAgg struct {
		Jumlah int64
		Luas   float64
	}
	var aa anggotaAgg
	err = s.DB.Model(&pModel.PetaniModel{}).
		Joins("JOIN kelompok_tani ON kelompok_tani.id = petani.kelompok_tani_id").
		Where("petani.status = ? AND kelompok_tani.status = ?",
			pModel.StatusAktifAktif, ktModel.StatusAktifAktif).
		Select("COUNT(*) AS jumlah, COALESCE(SUM(petani.luas_lahan), 0) AS luas").
		Scan(&aa).Error
	if err != nil {
		return nil, apperr.Store("Gagal menghitung total anggota", err)
	}

	out.Total = ga.Total
	out.Aktif = ga.Aktif
	out.Nonaktif = ga.Nonaktif
	out.Terdaftar = ga.Terdaftar
	out.BelumTerdaftar = ga.BelumTerdaftar
	out.DalamProses = ga.DalamProses
	out.TotalAnggota = aa.Jumlah
	out.TotalLuasLahan = aa.Luas
	return &out, nil
}
