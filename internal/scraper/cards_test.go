package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingFixture = `
<html><body>
<div class="card">
  <div class="card-content">
    <h2 class="title">Senior Python Developer</h2>
    <h3 class="company">Payne, Roberts and Davis</h3>
    <p class="location">Stewartbury, AA</p>
  </div>
</div>
<div class="card">
  <div class="card-content">
    <h3 class="company">Untitled Corp</h3>
  </div>
</div>
<div class="card">
  <div class="card-content">
    <h2 class="title">  Energy engineer  </h2>
  </div>
</div>
</body></html>`

func TestLocateCards(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingFixture))
	require.NoError(t, err)

	cards := LocateCards(doc, DefaultSelectors())
	require.Len(t, cards, 3)

	// Indices follow document order
	for i, card := range cards {
		assert.Equal(t, i, card.Index)
		assert.NotNil(t, card.Selection)
	}

	assert.Equal(t, "Senior Python Developer", cards[0].Title)
	// Missing title node degrades to a synthesized one
	assert.Equal(t, "Job 1", cards[1].Title)
	// Titles are trimmed
	assert.Equal(t, "Energy engineer", cards[2].Title)
}

func TestLocateCardsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	cards := LocateCards(doc, DefaultSelectors())
	assert.Empty(t, cards)
}
