package detect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"reporter-backend/internal/apperr"
)

func TestDetect_TalliesLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(10<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		require.NotZero(t, header.Size)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detections":[
			{"class":"cat","confidence":0.91},
			{"class":"chair","confidence":0.72},
			{"class":"cat","confidence":0.64}
		]}`))
	}))
	defer srv.Close()

	adapter := NewYOLOAdapter(srv.URL)
	counts, err := adapter.Detect(context.Background(), []byte("fake-image-bytes"))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"cat": 2, "chair": 1}, counts)
}

func TestDetect_NoObjectsYieldsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detections":[]}`))
	}))
	defer srv.Close()

	adapter := NewYOLOAdapter(srv.URL)
	counts, err := adapter.Detect(context.Background(), []byte("fake-image-bytes"))
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestDetect_ServiceFailureIsExternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model blew up", http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := NewYOLOAdapter(srv.URL)
	_, err := adapter.Detect(context.Background(), []byte("fake-image-bytes"))
	require.Error(t, err)
	require.Equal(t, apperr.KindExternal, apperr.KindOf(err))
}

func TestDetect_UnreachableService(t *testing.T) {
	adapter := NewYOLOAdapter("http://127.0.0.1:1/predict")
	_, err := adapter.Detect(context.Background(), []byte("fake-image-bytes"))
	require.Error(t, err)
	require.Equal(t, apperr.KindExternal, apperr.KindOf(err))
}
