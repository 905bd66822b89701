package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Repository{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedRepos(t *testing.T, db *gorm.DB, repos []models.Repository) {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range repos {
		repos[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(&repos[i]).Error, "failed to seed test data")
	}
}

func boolPtr(b bool) *bool { return &b }

func TestCreateDefaultsTechnologies(t *testing.T) {
	db := setupTestDB(t)

	repo := &models.Repository{
		Title:       "gofolio",
		Description: "portfolio backend",
		GithubURL:   "https://github.com/GoFolio/GoFolio",
	}

	require.NoError(t, Create(db, repo))

	got, err := GetByID(db, repo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTechnologies, got.Technologies)
	assert.False(t, got.Featured, "featured must default to false")
}

func TestCreateKeepsProvidedTechnologies(t *testing.T) {
	db := setupTestDB(t)

	repo := &models.Repository{
		Title:        "gofolio",
		Description:  "portfolio backend",
		GithubURL:    "https://github.com/GoFolio/GoFolio",
		Technologies: "Go,Fiber,GORM",
	}

	require.NoError(t, Create(db, repo))

	got, err := GetByID(db, repo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go,Fiber,GORM", got.Technologies)
}

func TestGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)

	seedRepos(t, db, []models.Repository{
		{Title: "oldest", Description: "d", GithubURL: "https://github.com/u/a"},
		{Title: "newest", Description: "d", GithubURL: "https://github.com/u/b"},
	})

	repos, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "newest", repos[0].Title)
	assert.Equal(t, "oldest", repos[1].Title)
}

func TestUpdateFeaturedOnly(t *testing.T) {
	db := setupTestDB(t)

	seedRepos(t, db, []models.Repository{
		{
			Title:        "gofolio",
			Description:  "portfolio backend",
			GithubURL:    "https://github.com/GoFolio/GoFolio",
			DemoURL:      "https://demo.example.com",
			Technologies: "Go",
		},
	})

	var repo models.Repository
	require.NoError(t, db.First(&repo).Error)

	require.NoError(t, Update(db, repo.ID, Patch{Featured: boolPtr(true)}))

	got, err := GetByID(db, repo.ID)
	require.NoError(t, err)

	// only featured changed, everything else retains its prior value
	assert.True(t, got.Featured)
	assert.Equal(t, repo.Title, got.Title)
	assert.Equal(t, repo.Description, got.Description)
	assert.Equal(t, repo.GithubURL, got.GithubURL)
	assert.Equal(t, repo.DemoURL, got.DemoURL)
	assert.Equal(t, repo.Technologies, got.Technologies)
}

func TestUpdateEdgeCases(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Update(db, 1, Patch{}), "empty patch is a no-op even for a missing id")
	require.ErrorIs(t, Update(db, 1, Patch{Featured: boolPtr(true)}), ErrNotFound)
	require.ErrorIs(t, Update(nil, 1, Patch{Featured: boolPtr(true)}), ErrDBNil)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	seedRepos(t, db, []models.Repository{
		{Title: "gone soon", Description: "d", GithubURL: "https://github.com/u/r"},
	})

	var repo models.Repository
	require.NoError(t, db.First(&repo).Error)

	require.NoError(t, Delete(db, repo.ID))
	require.ErrorIs(t, Delete(db, repo.ID), ErrNotFound)

	_, err := GetByID(db, repo.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
