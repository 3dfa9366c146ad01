package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "storefront-bff/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	api := NewAPIClient("http://upstream:5000", "http://media:5000", time.Second)

	t.Run("empty path stays empty", func(t *testing.T) {
		assert.Equal(t, "", api.ImageURL(""))
	})

	t.Run("absolute http URL passes through", func(t *testing.T) {
		assert.Equal(t, "http://cdn.example.com/a.jpg", api.ImageURL("http://cdn.example.com/a.jpg"))
	})

	t.Run("absolute https URL passes through", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/a.jpg", api.ImageURL("https://cdn.example.com/a.jpg"))
	})

	t.Run("relative path gets the media host", func(t *testing.T) {
		assert.Equal(t, "http://media:5000/uploads/a.jpg", api.ImageURL("/uploads/a.jpg"))
	})
}

func TestDoJSONStatusTranslation(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   apperrors.Kind
	}{
		{"401 becomes auth required", http.StatusUnauthorized, apperrors.KindAuthRequired},
		{"404 becomes not found", http.StatusNotFound, apperrors.KindNotFound},
		{"500 becomes server", http.StatusInternalServerError, apperrors.KindServer},
		{"400 becomes server", http.StatusBadRequest, apperrors.KindServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			api := NewAPIClient(srv.URL, srv.URL, time.Second)
			_, err := api.DoJSON(context.Background(), http.MethodGet, "/cart", nil, nil, nil, nil)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, tc.kind))
		})
	}

	t.Run("transport failure becomes network", func(t *testing.T) {
		api := NewAPIClient("http://127.0.0.1:1", "", 100*time.Millisecond)
		_, err := api.DoJSON(context.Background(), http.MethodGet, "/cart", nil, nil, nil, nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNetwork))
	})

	t.Run("malformed success payload becomes server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		api := NewAPIClient(srv.URL, srv.URL, time.Second)
		var out map[string]interface{}
		_, err := api.DoJSON(context.Background(), http.MethodGet, "/cart", nil, nil, nil, &out)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindServer))
	})
}

func TestDoSendsCookiesAndBasePath(t *testing.T) {
	var gotPath, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, srv.URL, time.Second)
	_, err := api.DoJSON(context.Background(), http.MethodGet, "/auth/check", nil, []string{"sid=abc"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/check", gotPath)
	assert.Equal(t, "sid=abc", gotCookie)
}

func TestMergeCookies(t *testing.T) {
	t.Run("no incoming keeps current", func(t *testing.T) {
		assert.Equal(t, []string{"sid=a"}, MergeCookies([]string{"sid=a"}, nil))
	})

	t.Run("set-cookie attributes are stripped", func(t *testing.T) {
		got := MergeCookies(nil, []string{"sid=abc; Path=/; HttpOnly"})
		assert.Equal(t, []string{"sid=abc"}, got)
	})

	t.Run("same name replaces", func(t *testing.T) {
		got := MergeCookies([]string{"sid=old", "theme=dark"}, []string{"sid=new; Path=/"})
		assert.Equal(t, []string{"theme=dark", "sid=new"}, got)
	})
}
