package blogpost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.BlogPost{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedPosts inserts test data with staggered creation times so ordering
// assertions are deterministic.
func seedPosts(t *testing.T, db *gorm.DB, posts []models.BlogPost) {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range posts {
		posts[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		err := db.Create(&posts[i]).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateThenGetByID(t *testing.T) {
	db := setupTestDB(t)

	post := &models.BlogPost{
		Title:   "First Post",
		Content: "<p>hello</p>",
		Excerpt: "hello",
		Slug:    "first-post",
	}

	require.NoError(t, Create(db, post))
	require.NotZero(t, post.ID)

	got, err := GetByID(db, post.ID)
	require.NoError(t, err)

	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, "<p>hello</p>", got.Content)
	assert.Equal(t, "hello", got.Excerpt)
	assert.Equal(t, "first-post", got.Slug)
	assert.False(t, got.Published, "published must default to false")
}

func TestCreateNilDB(t *testing.T) {
	err := Create(nil, &models.BlogPost{Title: "x"})
	require.ErrorIs(t, err, ErrDBNil)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetByID(db, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "oldest", Content: "c", Excerpt: "e", Slug: "oldest"},
		{Title: "middle", Content: "c", Excerpt: "e", Slug: "middle", Published: true},
		{Title: "newest", Content: "c", Excerpt: "e", Slug: "newest"},
	})

	posts, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
}

func TestGetPublishedFiltersDrafts(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "draft one", Content: "c", Excerpt: "e", Slug: "d1"},
		{Title: "live one", Content: "c", Excerpt: "e", Slug: "l1", Published: true},
		{Title: "draft two", Content: "c", Excerpt: "e", Slug: "d2"},
		{Title: "live two", Content: "c", Excerpt: "e", Slug: "l2", Published: true},
	})

	posts, err := GetPublished(db)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	for _, p := range posts {
		assert.True(t, p.Published, "public listing must never include drafts")
	}

	// newest first
	assert.Equal(t, "live two", posts[0].Title)
}

func TestGetBySlug(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "draft", Content: "c", Excerpt: "e", Slug: "shared"},
		{Title: "older published", Content: "c", Excerpt: "e", Slug: "shared", Published: true},
		{Title: "newer published", Content: "c", Excerpt: "e", Slug: "shared", Published: true},
	})

	testCases := []struct {
		name      string
		slug      string
		wantErr   error
		wantTitle string
	}{
		{name: "empty slug", slug: "", wantErr: ErrSlugEmpty},
		{name: "no match", slug: "missing", wantErr: ErrNotFound},
		{name: "duplicate slugs take newest published", slug: "shared", wantTitle: "newer published"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := GetBySlug(db, tc.slug)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, post)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, post.Title)
			assert.True(t, post.Published)
		})
	}
}

func TestGetBySlugNeverReturnsDraft(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "hidden", Content: "c", Excerpt: "e", Slug: "hidden"},
	})

	_, err := GetBySlug(db, "hidden")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "original", Content: "body", Excerpt: "teaser", Slug: "original"},
	})

	var post models.BlogPost
	require.NoError(t, db.First(&post).Error)

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		err := Update(db, post.ID, Patch{Published: boolPtr(true)})
		require.NoError(t, err)

		got, err := GetByID(db, post.ID)
		require.NoError(t, err)
		assert.True(t, got.Published)
		assert.Equal(t, "original", got.Title)
		assert.Equal(t, "body", got.Content)
		assert.Equal(t, "teaser", got.Excerpt)
	})

	t.Run("empty patch is a no-op success", func(t *testing.T) {
		require.NoError(t, Update(db, post.ID, Patch{}))
	})

	t.Run("missing id", func(t *testing.T) {
		err := Update(db, 9999, Patch{Title: strPtr("ghost")})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil db", func(t *testing.T) {
		err := Update(nil, post.ID, Patch{Title: strPtr("x")})
		require.ErrorIs(t, err, ErrDBNil)
	})
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	seedPosts(t, db, []models.BlogPost{
		{Title: "to delete", Content: "c", Excerpt: "e", Slug: "to-delete"},
	})

	var post models.BlogPost
	require.NoError(t, db.First(&post).Error)

	require.NoError(t, Delete(db, post.ID))

	_, err := GetByID(db, post.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// deleting again reports not found, not a hard failure
	require.ErrorIs(t, Delete(db, post.ID), ErrNotFound)

	require.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}
