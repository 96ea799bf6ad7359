// Package apitest wires the in-memory fixtures the handler tests share: a
// throwaway sqlite database behind the global gorm handle and a fake image
// store behind the global store handles.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"artstudio-api/config"
	"artstudio-api/database"
	routes "artstudio-api/internal/app/http"
	"artstudio-api/internal/domain/media"
	"artstudio-api/internal/infra/images"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// Setup migrates the given models into a fresh in-memory database, swaps
// it into database.DB, points both image stores at a fake, and returns a
// router with the full route table.
func Setup(t *testing.T, models ...interface{}) (*gin.Engine, *FakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))
	database.DB = db

	store := &FakeStore{}
	images.Covers = store
	images.Logos = store

	config.JWT_SECRET = "test-secret"

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, store
}

// FakeStore records uploads and destroys instead of talking to an image
// host. Public IDs embed the original filename so tests can assert order.
type FakeStore struct {
	mu        sync.Mutex
	seq       int
	Uploads   []media.ImageRef
	Destroyed []string
}

func (f *FakeStore) Upload(_ context.Context, _ io.Reader, filename string) (media.ImageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	ref := media.ImageRef{
		URL:      fmt.Sprintf("https://img.test/v%d/%s", f.seq, filename),
		PublicID: fmt.Sprintf("assets/%d-%s", f.seq, filename),
	}
	f.Uploads = append(f.Uploads, ref)
	return ref, nil
}

func (f *FakeStore) Destroy(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Destroyed = append(f.Destroyed, publicID)
	return nil
}

// MultipartRequest builds a multipart form request; every entry of files
// becomes one part of the "cover" field, in order.
func MultipartRequest(t *testing.T, method, url string, fields map[string]string, files ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range files {
		fw, err := w.CreateFormFile("cover", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func JSONRequest(t *testing.T, method, url string, payload interface{}) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func Do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Body decodes a JSON response into a generic map.
func Body(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
