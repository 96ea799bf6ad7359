package news_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artstudio-api/database"
	"artstudio-api/internal/api/apitest"
	"artstudio-api/internal/domain/admins"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/domain/posts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *apitest.FakeStore) {
	return apitest.Setup(t, &admins.Administrator{}, &posts.NewsPost{})
}

func seedPost(t *testing.T, cover string) posts.NewsPost {
	t.Helper()
	post := posts.NewsPost{
		Title:       "Sunset",
		Content:     "desc",
		PublishedAt: time.Now(),
		AdminID:     1,
		Cover:       cover,
	}
	require.NoError(t, database.DB.Create(&post).Error)
	return post
}

func TestCreateNews(t *testing.T) {
	r, store := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/news/create",
		map[string]string{"title": "Sunset", "content": "desc", "link": "https://example.org"},
		"a.jpg", "b.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := apitest.Body(t, w)
	id := uint(body["id"].(float64))
	require.NotZero(t, id)

	var post posts.NewsPost
	require.NoError(t, database.DB.First(&post, id).Error)

	cover := media.DecodeCover(post.Cover)
	require.Len(t, cover, 2)
	assert.Equal(t, store.Uploads, cover, "stored cover must match uploads in order")
	assert.NotEmpty(t, cover[0].URL)
	assert.NotEmpty(t, cover[0].PublicID)
	assert.Empty(t, store.Destroyed)
}

func TestCreateNewsWithoutImages(t *testing.T) {
	r, _ := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/news/create",
		map[string]string{"title": "Sunset", "content": "desc"})
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&posts.NewsPost{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateNewsMissingTitleCleansUploads(t *testing.T) {
	r, store := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/news/create",
		map[string]string{"content": "desc"}, "a.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The file reached the store before validation; it must be gone again.
	require.Len(t, store.Uploads, 1)
	assert.Equal(t, []string{store.Uploads[0].PublicID}, store.Destroyed)

	var count int64
	database.DB.Model(&posts.NewsPost{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateNewsTooManyImages(t *testing.T) {
	r, _ := setup(t)

	files := make([]string, 11)
	for i := range files {
		files[i] = "img.jpg"
	}
	req := apitest.MultipartRequest(t, http.MethodPost, "/news/create",
		map[string]string{"title": "Sunset", "content": "desc"}, files...)
	w := apitest.Do(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateNewsRejectsBadFormat(t *testing.T) {
	r, _ := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/news/create",
		map[string]string{"title": "Sunset", "content": "desc"}, "malware.exe")
	w := apitest.Do(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNewsWithoutFilesKeepsCover(t *testing.T) {
	r, store := setup(t)

	original := media.EncodeCover([]media.ImageRef{{URL: "https://img/a", PublicID: "assets/a"}})
	post := seedPost(t, original)

	req := apitest.MultipartRequest(t, http.MethodPut, "/news/1",
		map[string]string{"title": "Sunset II", "content": "desc"})
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated posts.NewsPost
	require.NoError(t, database.DB.First(&updated, post.ID).Error)
	assert.Equal(t, "Sunset II", updated.Title)
	assert.Equal(t, original, updated.Cover)
	assert.Empty(t, store.Destroyed)
}

func TestUpdateNewsReplacesCover(t *testing.T) {
	r, store := setup(t)

	post := seedPost(t, media.EncodeCover([]media.ImageRef{
		{URL: "https://img/a", PublicID: "assets/a"},
		{URL: "https://img/b", PublicID: "assets/b"},
	}))

	req := apitest.MultipartRequest(t, http.MethodPut, "/news/1",
		map[string]string{"title": "Sunset II", "content": "desc"}, "new.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.ElementsMatch(t, []string{"assets/a", "assets/b"}, store.Destroyed)

	var updated posts.NewsPost
	require.NoError(t, database.DB.First(&updated, post.ID).Error)
	cover := media.DecodeCover(updated.Cover)
	require.Len(t, cover, 1)
	assert.Equal(t, store.Uploads[0], cover[0], "cover is replaced, not merged")
}

func TestUpdateNewsNotFound(t *testing.T) {
	r, _ := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPut, "/news/999",
		map[string]string{"title": "x", "content": "y"})
	w := apitest.Do(r, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNews(t *testing.T) {
	r, store := setup(t)

	seedPost(t, media.EncodeCover([]media.ImageRef{
		{URL: "https://img/a", PublicID: "assets/a"},
	}))

	w := apitest.Do(r, httptest.NewRequest(http.MethodDelete, "/news/1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := apitest.Body(t, w)
	assert.Equal(t, float64(1), body["deletedImages"])
	assert.Equal(t, []string{"assets/a"}, store.Destroyed)

	var count int64
	database.DB.Model(&posts.NewsPost{}).Count(&count)
	assert.Zero(t, count)

	// Deleting again must 404 without touching anything.
	w = apitest.Do(r, httptest.NewRequest(http.MethodDelete, "/news/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, store.Destroyed, 1)
}

func TestDeleteNewsLegacyCover(t *testing.T) {
	r, store := setup(t)

	seedPost(t, "old1.jpg, old2.jpg")

	w := apitest.Do(r, httptest.NewRequest(http.MethodDelete, "/news/1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := apitest.Body(t, w)
	assert.Equal(t, float64(2), body["deletedImages"])
	assert.ElementsMatch(t, []string{"old1.jpg", "old2.jpg"}, store.Destroyed)
}

func TestListNews(t *testing.T) {
	r, _ := setup(t)

	author := admins.Administrator{Name: "Dana", Email: "dana@studio.test", Password: "x", SecurityPIN: "x"}
	require.NoError(t, database.DB.Create(&author).Error)

	older := posts.NewsPost{
		Title: "Old", Content: "c", AdminID: author.ID,
		PublishedAt: time.Now().Add(-time.Hour),
		Cover:       media.EncodeCover([]media.ImageRef{{URL: "https://img/a", PublicID: "assets/a"}}),
	}
	newer := posts.NewsPost{
		Title: "New", Content: "c", AdminID: author.ID,
		PublishedAt: time.Now(),
		Cover:       "legacy.jpg",
	}
	require.NoError(t, database.DB.Create(&older).Error)
	require.NoError(t, database.DB.Create(&newer).Error)

	w := apitest.Do(r, httptest.NewRequest(http.MethodGet, "/news", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []struct {
		Title  string           `json:"title"`
		Author string           `json:"author"`
		Cover  []media.ImageRef `json:"cover"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "New", items[0].Title, "newest first")
	assert.Equal(t, "Dana", items[0].Author)
	assert.Equal(t, []media.ImageRef{{PublicID: "legacy.jpg"}}, items[0].Cover)
	assert.Equal(t, []media.ImageRef{{URL: "https://img/a", PublicID: "assets/a"}}, items[1].Cover)
}
