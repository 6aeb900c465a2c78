package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	. "telon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpsertCreatesWhenLookupReportsNotFound(t *testing.T) {
	db := newDryRunDB(t)

	// the lookup surfaces a wrapped not-found, as layered call sites do
	require.NoError(t, db.Callback().Query().After("gorm:query").Register(
		"missing_row",
		func(tx *gorm.DB) {
			_ = tx.AddError(fmt.Errorf("user lookup: %w", gorm.ErrRecordNotFound))
		},
	))

	recorder := &sqlRecorder{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register(
		"record_create",
		recorder.record,
	))

	repo := NewUserRepository()
	user := &User{
		Name:         "Administrator",
		Email:        "admin@teatro.local",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Upsert(context.Background(), db, user))

	require.Len(t, recorder.statements, 1)
	assert.True(
		t,
		strings.HasPrefix(recorder.statements[0], "INSERT"),
		"missing user must be created: %s",
		recorder.statements[0],
	)
}
