// internals/testhelper/testhelper.go
package testhelper

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	ktModel "sitani_backend/internals/features/kelompok_tani/model"
	pModel "sitani_backend/internals/features/petani/model"
)

// NewTestDB membuka store sqlite in-memory terisolasi per test, dengan
// skema termigrasi dan TranslateError aktif (sama seperti koneksi produksi),
// sehingga pelanggaran unique index muncul sebagai gorm.ErrDuplicatedKey.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal membuka test DB: %v", err)
	}
	// satu koneksi saja supaya in-memory DB tidak terpecah antar koneksi pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&ktModel.KelompokTaniModel{},
		&pModel.PetaniModel{},
	); err != nil {
		t.Fatalf("gagal migrasi skema test: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
