package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/consint/callbackd/internal/callback/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "callbacks.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.CallbackRecord{}))
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, r domain.Repository, customerID, scanID string, createdAt time.Time) domain.CallbackRecord {
	t.Helper()

	record := domain.CallbackRecord{
		CustomerID: customerID,
		ScanID:     scanID,
		Timestamp:  createdAt.Format(time.RFC3339Nano),
		Status:     domain.StatusReceived,
		Payload:    datatypes.JSON(fmt.Sprintf(`{"customerID":%q,"scanID":%q}`, customerID, scanID)),
		CreatedAt:  createdAt,
	}
	require.NoError(t, r.Insert(context.Background(), db, &record))
	return record
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)
	r := Provide()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var last int64
	for i := 0; i < 5; i++ {
		record := seedRecord(t, db, r, "CUST_1", fmt.Sprintf("SCN_%d", i), base.Add(time.Duration(i)*time.Second))
		assert.Greater(t, record.ID, last)
		last = record.ID
	}
}

func TestListPaginationTotalInvariant(t *testing.T) {
	db := newTestDB(t)
	r := Provide()
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedRecord(t, db, r, "CUST_1", fmt.Sprintf("SCN_%d", i), base.Add(time.Duration(i)*time.Second))
	}

	page, total, err := r.List(ctx, db, 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "SCN_4", page[0].ScanID)
	assert.Equal(t, "SCN_3", page[1].ScanID)

	// total stays the unfiltered count, whatever the window
	page, total, err = r.List(ctx, db, 10, 99999)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, page)
}

func TestListClampsNegativeLimitAndOffset(t *testing.T) {
	db := newTestDB(t)
	r := Provide()

	seedRecord(t, db, r, "CUST_1", "SCN_1", time.Now().UTC())

	page, total, err := r.List(context.Background(), db, -5, -3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, page)
}

func TestListTieBreakIsStableAcrossPages(t *testing.T) {
	db := newTestDB(t)
	r := Provide()
	ctx := context.Background()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 6; i++ {
		seedRecord(t, db, r, "CUST_1", fmt.Sprintf("SCN_%d", i), createdAt)
	}

	seen := make(map[int64]bool)
	var lastID int64
	for offset := 0; offset < 6; offset += 2 {
		page, _, err := r.List(ctx, db, 2, offset)
		require.NoError(t, err)
		require.Len(t, page, 2)
		for _, record := range page {
			assert.False(t, seen[record.ID], "record %d appeared twice", record.ID)
			if lastID != 0 {
				assert.Less(t, record.ID, lastID)
			}
			seen[record.ID] = true
			lastID = record.ID
		}
	}
	assert.Len(t, seen, 6)
}

func TestListByCustomerFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	r := Provide()
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	seedRecord(t, db, r, "CUST_1", "SCN_OLD", base)
	seedRecord(t, db, r, "CUST_2", "SCN_OTHER", base.Add(time.Second))
	seedRecord(t, db, r, "CUST_1", "SCN_NEW", base.Add(2*time.Second))

	records, err := r.ListByCustomer(ctx, db, "CUST_1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SCN_NEW", records[0].ScanID)
	assert.Equal(t, "SCN_OLD", records[1].ScanID)

	records, err = r.ListByCustomer(ctx, db, "UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteReportsWhetherARowWasRemoved(t *testing.T) {
	db := newTestDB(t)
	r := Provide()
	ctx := context.Background()

	record := seedRecord(t, db, r, "CUST_1", "SCN_1", time.Now().UTC())

	removed, err := r.Delete(ctx, db, record.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.Delete(ctx, db, record.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
