package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_interfaces "joalheria_xpto/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestImageHandler_UploadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewImageHandler(storage)

		r := gin.New()
		r.POST("/v1/images", h.UploadImage)

		body, contentType := multipartImage(t, "wrong_field", "ring.jpg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewImageHandler(storage)

		r := gin.New()
		r.POST("/v1/images", h.UploadImage)

		storage.EXPECT().Upload(gomock.Any(), "ring.jpg", gomock.Any(), gomock.Any()).Return("", errors.New("bucket down"))

		body, contentType := multipartImage(t, "file", "ring.jpg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewImageHandler(storage)

		r := gin.New()
		r.POST("/v1/images", h.UploadImage)

		storage.EXPECT().Upload(gomock.Any(), "ring.jpg", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, body io.Reader) (string, error) {
				data, _ := io.ReadAll(body)
				if string(data) != "jpegdata" {
					t.Fatalf("unexpected upload content: %q", data)
				}
				return "https://images.example.com/products/abc.jpg", nil
			},
		)

		body, contentType := multipartImage(t, "file", "ring.jpg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/v1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["url"] != "https://images.example.com/products/abc.jpg" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
