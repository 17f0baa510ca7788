package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJobBoard serves a listing page with count cards, each linking to its
// own detail page.
func newJobBoard(count int) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host

		fmt.Fprint(w, "<html><body>")
		for i := 0; i < count; i++ {
			date := fmt.Sprintf("2023-08-%02d", i+1)
			fmt.Fprintf(w, `
<div class="card-content">
  <h2 class="title">Job Title %[1]d</h2>
  <h3 class="company">Company %[1]d</h3>
  <p class="location">City %[1]d, Region %[2]d</p>
  <time datetime="%[3]s">%[3]s</time>
  <footer class="card-footer">
    <a class="card-footer-item" href="#">Learn</a>
    <a class="card-footer-item" href="%[4]s/jobs/%[1]d">Apply</a>
  </footer>
</div>`, i, i%2, date, base)
		}
		fmt.Fprint(w, "</body></html>")
	})

	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><div class="content"><p>Description for %s</p></div></body></html>`, r.URL.Path)
	})

	return httptest.NewServer(mux)
}

func TestRunCollectsAllCards(t *testing.T) {
	const cardCount = 6

	server := newJobBoard(cardCount)
	defer server.Close()

	s := New(Config{ListingURL: server.URL}, nil)

	results, err := s.Run(3)
	require.NoError(t, err)
	require.Len(t, results, cardCount)

	// Keys are exactly {0, ..., N-1} and each record keeps its own index
	for i := 0; i < cardCount; i++ {
		record, ok := results[i]
		require.True(t, ok, "missing record for index %d", i)

		assert.Equal(t, fmt.Sprintf("Job Title %d", i), record.Title)
		assert.Equal(t, fmt.Sprintf("Company %d", i), record.Company)
		assert.Equal(t, fmt.Sprintf("City %d", i), record.Location.City)
		assert.Equal(t, fmt.Sprintf(" Region %d", i%2), record.Location.Region)
		assert.Equal(t, fmt.Sprintf("2023-08-%02d", i+1), record.Date)
		assert.Equal(t, fmt.Sprintf("%s/jobs/%d", server.URL, i), record.URL)
		assert.Equal(t, fmt.Sprintf("Description for /jobs/%d", i), record.Content)
	}
}

func TestRunPoolSizeDoesNotAffectResults(t *testing.T) {
	server := newJobBoard(8)
	defer server.Close()

	s := New(Config{ListingURL: server.URL}, nil)

	serial, err := s.Run(1)
	require.NoError(t, err)

	parallel, err := s.Run(8)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRunEmptyOnListingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := New(Config{ListingURL: server.URL}, nil)

	results, err := s.Run(5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunEmptyOnListingWithoutCards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>no jobs today</p></body></html>"))
	}))
	defer server.Close()

	s := New(Config{ListingURL: server.URL}, nil)

	results, err := s.Run(5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
