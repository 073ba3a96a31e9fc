package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Search(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Batman", r.URL.Query().Get("s"))
			assert.Equal(t, "testkey", r.URL.Query().Get("apikey"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Search":[{"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie"}],"totalResults":"1","Response":"True"}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		result, err := client.Search(context.Background(), "Batman", 1)

		assert.NoError(t, err)
		assert.Len(t, result.Search, 1)
		assert.Equal(t, "tt0372784", result.Search[0].ImdbID)
	})

	t.Run("NoResults", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		_, err := client.Search(context.Background(), "qqqq", 1)

		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound))
		assert.Equal(t, "Movie not found!", notFound.Message)
	})

	t.Run("ServerError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		_, err := client.Search(context.Background(), "Batman", 1)

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		_, err := client.Search(context.Background(), "Batman", 1)

		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_DetailByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tt0468569", r.URL.Query().Get("i"))
			w.Write([]byte(`{"Title":"The Dark Knight","Year":"2008","imdbID":"tt0468569","imdbRating":"9.0","Response":"True"}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		detail, err := client.DetailByID(context.Background(), "tt0468569")

		assert.NoError(t, err)
		assert.Equal(t, "The Dark Knight", detail.Title)
		assert.Equal(t, "9.0", detail.ImdbRating)
	})

	t.Run("BadID", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, "testkey", 100, nil)
		_, err := client.DetailByID(context.Background(), "nonsense")

		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestClient_DetailByTitle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Inception", r.URL.Query().Get("t"))
		w.Write([]byte(`{"Title":"Inception","Year":"2010","imdbID":"tt1375666","Response":"True"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "testkey", 100, nil)
	detail, err := client.DetailByTitle(context.Background(), "Inception")

	assert.NoError(t, err)
	assert.Equal(t, "tt1375666", detail.ImdbID)
}
