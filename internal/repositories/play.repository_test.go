package repositories

import (
	"context"
	"strings"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB builds statements without touching a database, so the scope a
// repository applies can be asserted from the generated SQL.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.statements = append(r.statements, tx.Statement.SQL.String())
}

func recordSQL(t *testing.T, db *gorm.DB) *sqlRecorder {
	t.Helper()

	recorder := &sqlRecorder{}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("record_query", recorder.record))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("record_create", recorder.record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("record_update", recorder.record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("record_delete", recorder.record))
	return recorder
}

func TestListTrashVisibility(t *testing.T) {
	testCases := []struct {
		name   string
		filter TrashFilter
		check  func(t *testing.T, sql string)
	}{
		{
			name:   "default listing hides trashed rows",
			filter: TrashNone,
			check: func(t *testing.T, sql string) {
				assert.Contains(t, sql, "IS NULL")
			},
		},
		{
			name:   "only_trashed lists trashed rows exclusively",
			filter: TrashOnly,
			check: func(t *testing.T, sql string) {
				assert.Contains(t, sql, "deleted_at IS NOT NULL")
			},
		},
		{
			name:   "with_trashed lifts the soft delete scope entirely",
			filter: TrashWith,
			check: func(t *testing.T, sql string) {
				assert.NotContains(t, sql, "deleted_at")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newDryRunDB(t)
			recorder := recordSQL(t, db)

			repo := NewPlayRepository()
			_, err := repo.List(context.Background(), db, tc.filter)
			require.NoError(t, err)

			require.NotEmpty(t, recorder.statements)
			tc.check(t, recorder.statements[0])
		})
	}
}

func TestShowTrashVisibility(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewPlayRepository()

	_, err := repo.GetByID(context.Background(), db, 7)
	require.NoError(t, err)
	require.Len(t, recorder.statements, 1)
	assert.Contains(t, recorder.statements[0], "IS NULL")

	_, err = repo.GetByIDWithTrashed(context.Background(), db, 7)
	require.NoError(t, err)
	require.Len(t, recorder.statements, 2)
	assert.NotContains(t, recorder.statements[1], "deleted_at")
}

func TestDeleteIsSoftDelete(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewPlayRepository()

	err := repo.Delete(context.Background(), db, 7)
	// dry run touches no rows, which is exactly the missing-row outcome
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.statements, 1)
	sql := recorder.statements[0]
	assert.True(t, strings.HasPrefix(sql, "UPDATE"), "soft delete must not issue DELETE: %s", sql)
	assert.Contains(t, sql, "deleted_at")
	// already trashed rows stay untouched
	assert.Contains(t, sql, "IS NULL")
}

func TestRestoreClearsSoftDeleteMarker(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewPlayRepository()

	err := repo.Restore(context.Background(), db, 7)
	// dry run touches no rows, which is exactly the missing-row outcome
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.statements, 1)
	sql := recorder.statements[0]
	assert.True(t, strings.HasPrefix(sql, "UPDATE"), "restore must update in place: %s", sql)
	assert.Contains(t, sql, "deleted_at")
	// unscoped: a trashed row must be reachable for the update to land
	assert.NotContains(t, sql, "IS NULL")
	assert.NotContains(t, sql, "IS NOT NULL")
}

func TestLoadCountsExcludesTrashedChildren(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewPlayRepository()

	play := &Play{}
	play.ID = 3
	require.NoError(t, repo.LoadCounts(context.Background(), db, play))

	require.Len(t, recorder.statements, 2)
	for _, sql := range recorder.statements {
		assert.Contains(t, sql, "count")
		assert.Contains(t, sql, "IS NULL")
	}
}
