package shop_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"artstudio-api/database"
	"artstudio-api/internal/api/apitest"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/domain/shop"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *apitest.FakeStore) {
	return apitest.Setup(t, &shop.ShopItem{})
}

func TestCreateItem(t *testing.T) {
	r, store := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/shop/create",
		map[string]string{"name": "Print", "content": "A3 giclee print", "price": "45.50"},
		"print.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item shop.ShopItem
	require.NoError(t, database.DB.First(&item, uint(apitest.Body(t, w)["id"].(float64))).Error)
	assert.Equal(t, 45.50, item.Price)
	assert.Equal(t, store.Uploads, media.DecodeCover(item.Cover))
}

func TestCreateItemRequiresPrice(t *testing.T) {
	r, store := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/shop/create",
		map[string]string{"name": "Print", "content": "desc"}, "print.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Upload preceded validation; it must be compensated.
	require.Len(t, store.Uploads, 1)
	assert.Equal(t, []string{store.Uploads[0].PublicID}, store.Destroyed)
}

func TestCreateItemRejectsBadPrice(t *testing.T) {
	r, _ := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPost, "/shop/create",
		map[string]string{"name": "Print", "content": "desc", "price": "cheap"}, "print.jpg")
	assert.Equal(t, http.StatusBadRequest, apitest.Do(r, req).Code)
}

func TestUpdateItemReplacesCover(t *testing.T) {
	r, store := setup(t)

	item := shop.ShopItem{
		Name: "Print", Content: "desc", Price: 45, AdminID: 1,
		Cover: media.EncodeCover([]media.ImageRef{{URL: "https://img/a", PublicID: "assets/a"}}),
	}
	require.NoError(t, database.DB.Create(&item).Error)

	req := apitest.MultipartRequest(t, http.MethodPut, "/shop",
		map[string]string{"id": "1", "name": "Print v2", "content": "desc", "price": "50"},
		"new.jpg")
	w := apitest.Do(r, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, []string{"assets/a"}, store.Destroyed)

	body := apitest.Body(t, w)
	cover, ok := body["cover"].([]interface{})
	require.True(t, ok)
	require.Len(t, cover, 1)

	var updated shop.ShopItem
	require.NoError(t, database.DB.First(&updated, item.ID).Error)
	assert.Equal(t, "Print v2", updated.Name)
	assert.Equal(t, float64(50), updated.Price)
	assert.Equal(t, store.Uploads, media.DecodeCover(updated.Cover))
}

func TestUpdateItemRequiresID(t *testing.T) {
	r, _ := setup(t)

	req := apitest.MultipartRequest(t, http.MethodPut, "/shop",
		map[string]string{"name": "Print", "content": "desc", "price": "50"})
	assert.Equal(t, http.StatusBadRequest, apitest.Do(r, req).Code)
}

func TestDeleteItem(t *testing.T) {
	r, store := setup(t)

	item := shop.ShopItem{
		Name: "Print", Content: "desc", Price: 45, AdminID: 1,
		Cover: media.EncodeCover([]media.ImageRef{
			{URL: "https://img/a", PublicID: "assets/a"},
			{URL: "https://img/b", PublicID: "assets/b"},
		}),
	}
	require.NoError(t, database.DB.Create(&item).Error)

	w := apitest.Do(r, httptest.NewRequest(http.MethodDelete, "/shop/1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(2), apitest.Body(t, w)["deletedImages"])
	assert.ElementsMatch(t, []string{"assets/a", "assets/b"}, store.Destroyed)

	assert.Equal(t, http.StatusNotFound, apitest.Do(r, httptest.NewRequest(http.MethodDelete, "/shop/1", nil)).Code)
}
