// internals/features/petani/service/petani_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	"sitani_backend/internals/apperr"
	pDTO "sitani_backend/internals/features/petani/dto"
	pModel "sitani_backend/internals/features/petani/model"
)

type PetaniService struct {
	DB *gorm.DB
}

func NewPetaniService(db *gorm.DB) *PetaniService {
	return &PetaniService{DB: db}
}

// Kolom sort dari whitelist (query param sort_by).
var sortColumns = map[string]string{
	"id":           "id",
	"nik":          "nik",
	"nama_lengkap": "lower(nama_lengkap)",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

/* ===================== LIST ===================== */

// List: total dan rows dihitung dari predikat yang sama.
func (s *PetaniService) List(q pDTO.ListPetaniQuery) ([]pModel.PetaniModel, int64, error) {
	orderExpr, err := q.Paging.SafeOrderClause(sortColumns, "created_at")
	if err != nil {
		return nil, 0, apperr.Validation("Parameter sort_by tidak dikenal", []apperr.FieldError{
			{Field: "sort_by", Message: err.Error()},
		})
	}

	dbq := s.DB.Model(&pModel.PetaniModel{})
	if q.Search != "" {
		term := "%" + q.Search + "%"
		dbq = dbq.Where(
			"LOWER(nama_lengkap) LIKE LOWER(?) OR nik LIKE ? OR no_telepon LIKE ? OR LOWER(email) LIKE LOWER(?)",
			term, term, term, term,
		)
	}
	if q.Status != "" {
		dbq = dbq.Where("status = ?", q.Status)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store("Gagal menghitung data petani", err)
	}

	var rows []pModel.PetaniModel
	if err := dbq.
		Order(orderExpr).
		Limit(q.Paging.Limit()).
		Offset(q.Paging.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.Store("Gagal mengambil data petani", err)
	}
	return rows, total, nil
}

/* ===================== GET ===================== */

func (s *PetaniService) GetByID(id uint) (*pModel.PetaniModel, error) {
	var m pModel.PetaniModel
	if err := s.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Petani tidak ditemukan")
		}
		return nil, apperr.Store("Gagal mengambil data petani", err)
	}
	return &m, nil
}

/* ===================== CREATE ===================== */

// Create: pre-check NIK & email lalu insert. Pre-check bisa balapan antar
// request; unique index di store adalah penjaga terakhir dan hasilnya
// diterjemahkan ke Conflict yang sama.
func (s *PetaniService) Create(req *pDTO.CreatePetaniRequest) (*pModel.PetaniModel, error) {
	var cnt int64
	if err := s.DB.Model(&pModel.PetaniModel{}).
		Where("nik = ?", req.NIK).
		Count(&cnt).Error; err != nil {
		return nil, apperr.Store("Gagal cek duplikasi NIK", err)
	}
	if cnt > 0 {
		return nil, apperr.Conflict("NIK sudah terdaftar")
	}

	if req.Email != nil {
		cnt = 0
		if err := s.DB.Model(&pModel.PetaniModel{}).
			Where("email = ?", *req.Email).
			Count(&cnt).Error; err != nil {
			return nil, apperr.Store("Gagal cek duplikasi email", err)
		}
		if cnt > 0 {
			return nil, apperr.Conflict("Email sudah terdaftar")
		}
	}

	m := req.ToModel()
	if err := s.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("NIK atau email sudah terdaftar")
		}
		return nil, apperr.Store("Gagal menyimpan data petani", err)
	}
	return m, nil
}

/* ===================== UPDATE ===================== */

// Update: keunikan dicek ulang hanya bila NIK/email dikirim dan berubah.
func (s *PetaniService) Update(id uint, req *pDTO.UpdatePetaniRequest) (*pModel.PetaniModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.NIK != nil && *req.NIK != m.NIK {
		var cnt int64
		if err := s.DB.Model(&pModel.PetaniModel{}).
			Where("nik = ? AND id <> ?", *req.NIK, id).
			Count(&cnt).Error; err != nil {
			return nil, apperr.Store("Gagal cek duplikasi NIK", err)
		}
		if cnt > 0 {
			return nil, apperr.Conflict("NIK sudah terdaftar")
		}
	}

	if req.Email != nil && (m.Email == nil || *req.Email != *m.Email) {
		var cnt int64
		if err := s.DB.Model(&pModel.PetaniModel{}).
			Where("email = ? AND id <> ?", *req.Email, id).
			Count(&cnt).Error; err != nil {
			return nil, apperr.Store("Gagal cek duplikasi email", err)
		}
		if cnt > 0 {
			return nil, apperr.Conflict("Email sudah terdaftar")
		}
	}

	req.ApplyToModel(m)
	if err := s.DB.Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("NIK atau email sudah terdaftar")
		}
		return nil, apperr.Store("Gagal memperbarui data petani", err)
	}
	return m, nil
}

/* ===================== DELETE ===================== */

// Delete petani tanpa syarat (tidak ada entitas lain yang bergantung).
func (s *PetaniService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&pModel.PetaniModel{}, "id = ?", id).Error; err != nil {
		return apperr.Store("Gagal menghapus data petani", err)
	}
	return nil
}

/* ===================== STATS ===================== */

func (s *PetaniService) Stats() (*pDTO.PetaniStatsResponse, error) {
	var out pDTO.PetaniStatsResponse

	type lahanAgg struct {
		Total    int64
		Aktif    int64
		Nonaktif int64
		Sum      float64
		Avg      float64
		Kelompok int64
	}
	var agg lahanAgg
	err := s.DB.Model(&pModel.PetaniModel{}).
		Select(`
			COUNT(*) AS total,
			COUNT(CASE WHEN status = 'aktif' THEN 1 END) AS aktif,
			COUNT(CASE WHEN status = 'nonaktif' THEN 1 END) AS nonaktif,
			COALESCE(SUM(luas_lahan), 0) AS sum,
			COALESCE(AVG(luas_lahan), 0) AS avg,
			COUNT(DISTINCT kelompok_tani_id) AS kelompok
		`).
		Scan(&agg).Error
	if err != nil {
		return nil, apperr.Store("Gagal menghitung statistik petani", err)
	}

	out.Total = agg.Total
	out.Aktif = agg.Aktif
	out.Nonaktif = agg.Nonaktif
	out.TotalLahan = agg.Sum
	out.AvgLahan = agg.Avg
	out.KelompokTaniCount = agg.Kelompok
	return &out, nil
}
