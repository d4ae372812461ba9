package auth

import (
	"runtime"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/dbtest"
	"github.com/interior-site/interior-site/internal/db/models"
)

var testParams = &argon2id.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func newTestGuard(t *testing.T, secret string) *Guard {
	t.Helper()

	guard := NewGuard(dbtest.Open(t))
	guard.Params = testParams

	if secret != "" {
		require.NoError(t, guard.Rotate(secret))
	}

	return guard
}

func TestAuthorize(t *testing.T) {
	guard := newTestGuard(t, "1111")

	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{name: "match", secret: "1111", want: true},
		{name: "mismatch", secret: "2222", want: false},
		{name: "empty", secret: "", want: false},
		{name: "prefix", secret: "111", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Authorize(tt.secret))
		})
	}
}

func TestAuthorizeWithoutSecret(t *testing.T) {
	guard := newTestGuard(t, "")

	set, err := guard.IsSet()
	require.NoError(t, err)
	assert.False(t, set)

	assert.False(t, guard.Authorize("1111"))
	assert.False(t, guard.Authorize(""))
}

func TestRotate(t *testing.T) {
	guard := newTestGuard(t, "1111")

	require.NoError(t, guard.Rotate("new-secret"))

	assert.False(t, guard.Authorize("1111"))
	assert.True(t, guard.Authorize("new-secret"))

	var rows []models.AccessSecret
	require.NoError(t, guard.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.NotContains(t, rows[0].Hash, "new-secret")
}

func TestRotateEmpty(t *testing.T) {
	guard := newTestGuard(t, "1111")

	require.ErrorIs(t, guard.Rotate(""), ErrEmptySecret)
	assert.True(t, guard.Authorize("1111"))
}

func TestRotateTxRollback(t *testing.T) {
	guard := newTestGuard(t, "1111")

	err := guard.db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, guard.RotateTx(tx, "rolled-back"))
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	assert.True(t, guard.Authorize("1111"))
	assert.False(t, guard.Authorize("rolled-back"))
}

func TestNilDB(t *testing.T) {
	guard := NewGuard(nil)

	assert.False(t, guard.Authorize("1111"))
	require.ErrorIs(t, guard.Rotate("1111"), ErrDBNil)

	_, err := guard.IsSet()
	require.ErrorIs(t, err, ErrDBNil)
}

func allocated(f func()) uint64 {
	var before, after runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)

	return after.TotalAlloc - before.TotalAlloc
}

func TestAuthorizeRejectedAllocation(t *testing.T) {
	guard := NewGuard(dbtest.Open(t))
	require.NoError(t, guard.Rotate("1111"))

	var ok bool
	n := allocated(func() { ok = guard.Authorize("wrong") })

	assert.False(t, ok)
	assert.Less(t, n, uint64(32<<20), "rejected authorize allocated %d bytes", n)
}

func TestAuthorizeRemembersMatch(t *testing.T) {
	guard := NewGuard(dbtest.Open(t))
	require.NoError(t, guard.Rotate("1111"))
	require.True(t, guard.Authorize("1111"))

	var ok bool
	n := allocated(func() { ok = guard.Authorize("1111") })

	assert.True(t, ok)
	assert.Less(t, n, uint64(1<<20), "repeated authorize allocated %d bytes", n)
	assert.False(t, guard.Authorize("2222"))
}

func TestRotateForgetsMatch(t *testing.T) {
	guard := newTestGuard(t, "1111")
	require.True(t, guard.Authorize("1111"))

	require.NoError(t, guard.Rotate("2222"))

	assert.False(t, guard.Authorize("1111"))
	assert.True(t, guard.Authorize("2222"))
}

func TestAuthorizeStoredHashChanged(t *testing.T) {
	guard := newTestGuard(t, "1111")
	require.True(t, guard.Authorize("1111"))

	other := NewGuard(guard.db)
	other.Params = testParams
	require.NoError(t, other.Rotate("2222"))

	assert.False(t, guard.Authorize("1111"))
	assert.True(t, guard.Authorize("2222"))
}

func TestAuthorizeRehashesOutdated(t *testing.T) {
	guard := newTestGuard(t, "1111")

	guard.Params = &argon2id.Params{
		Memory:      16 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
	require.True(t, guard.Authorize("1111"))

	var row models.AccessSecret
	require.NoError(t, guard.db.Where(&models.AccessSecret{Name: AdminSecretName}).First(&row).Error)
	assert.True(t, strings.Contains(row.Hash, "m=16384,"), row.Hash)
	assert.True(t, guard.Authorize("1111"))
}

func TestParamsFromConfig(t *testing.T) {
	p := ParamsFromConfig(config.Admin{HashMemoryKiB: 4096, HashIterations: 3})

	assert.Equal(t, uint32(4096), p.Memory)
	assert.Equal(t, uint32(3), p.Iterations)
	assert.Equal(t, DefaultParams.Parallelism, p.Parallelism)
	assert.Equal(t, DefaultParams.SaltLength, p.SaltLength)
	assert.Equal(t, DefaultParams.KeyLength, p.KeyLength)

	assert.Equal(t, *DefaultParams, *ParamsFromConfig(config.Admin{}))
}
