package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "jobboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, schemaVersion, v)
}

func TestSeedAndListKeepCatalogOrder(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	sample := catalog.Sample().Jobs()
	added, err := SeedJobs(ctx, db.Pool, sample)
	require.NoError(t, err)
	assert.Equal(t, 5, added)

	again, err := SeedJobs(ctx, db.Pool, sample)
	require.NoError(t, err)
	assert.Equal(t, 0, again, "existing ids are ignored")

	jobs, err := ListJobs(ctx, db.Pool)
	require.NoError(t, err)
	assert.Equal(t, sample, jobs)
}

func TestLoadCatalogSeedsOnlyEmptyStore(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	cat, added, err := LoadCatalog(ctx, db.Pool, catalog.SampleJobs())
	require.NoError(t, err)
	assert.Equal(t, 5, added)
	assert.Equal(t, 5, cat.Len())

	extra := catalog.Job{
		ID:          6,
		Title:       "Project Manager",
		Company:     "BuildCo",
		Location:    "Denver, CO",
		Industry:    catalog.IndustryConstruction,
		Experience:  catalog.ExperienceFivePlus,
		Credentials: []catalog.Credential{catalog.CredentialPMP},
	}
	_, err = SeedJobs(ctx, db.Pool, []catalog.Job{extra})
	require.NoError(t, err)

	cat, added, err = LoadCatalog(ctx, db.Pool, catalog.SampleJobs())
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	require.Equal(t, 6, cat.Len())

	got, ok := cat.ByID(6)
	require.True(t, ok)
	assert.Equal(t, catalog.DegreeLevel(""), got.DegreeLevel)
	assert.Equal(t, []catalog.Credential{catalog.CredentialPMP}, got.Credentials)
}

func TestLoadCatalogRejectsBadRows(t *testing.T) {
	ctx := context.Background()
	db := openTemp(t)

	_, err := db.Pool.Exec(`
INSERT INTO jobs (id, title, company, location, industry, experience)
VALUES (1, 'Wrangler', 'Ranch', 'Austin, TX', 'All', '1-3 years');`)
	require.NoError(t, err)

	_, _, err = LoadCatalog(ctx, db.Pool, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidJob))
}

func TestLockDataDir(t *testing.T) {
	dir := t.TempDir()

	first, err := LockDataDir(dir)
	require.NoError(t, err)

	_, err = LockDataDir(dir)
	assert.True(t, errors.Is(err, ErrLocked))

	require.NoError(t, first.Unlock())

	second, err := LockDataDir(dir)
	require.NoError(t, err)
	require.NoError(t, second.Unlock())
}
