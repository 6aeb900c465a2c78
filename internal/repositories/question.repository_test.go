package repositories

import (
	"context"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTakenCountsActiveSiblingsOnly(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewQuestionRepository()

	_, err := repo.OrderTaken(context.Background(), db, 1, 2, nil)
	require.NoError(t, err)

	require.Len(t, recorder.statements, 1)
	sql := recorder.statements[0]
	assert.Contains(t, sql, "count")
	assert.Contains(t, sql, `"order"`)
	// trashed siblings do not block order reuse
	assert.Contains(t, sql, "IS NULL")
	assert.NotContains(t, sql, "<>")
}

func TestOrderTakenExcludesOwnRowOnUpdate(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewQuestionRepository()

	excludeID := 9
	_, err := repo.OrderTaken(context.Background(), db, 1, 2, &excludeID)
	require.NoError(t, err)

	require.Len(t, recorder.statements, 1)
	assert.Contains(t, recorder.statements[0], "id <> ?")
}

func TestQuestionLoadCountsExcludesTrashedOptions(t *testing.T) {
	db := newDryRunDB(t)
	recorder := recordSQL(t, db)
	repo := NewQuestionRepository()

	question := &Question{}
	question.ID = 4
	require.NoError(t, repo.LoadCounts(context.Background(), db, question))

	require.Len(t, recorder.statements, 1)
	assert.Contains(t, recorder.statements[0], "count")
	assert.Contains(t, recorder.statements[0], "IS NULL")
}
