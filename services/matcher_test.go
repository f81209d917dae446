package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cake-shop/models"
)

var testCatalog = []models.Product{
	{ID: 1, Name: "Медовик", Description: "Торт с медом", Price: 5500, Stock: 4},
	{ID: 2, Name: "Молочная девочка", Description: "Нежный молочный торт", Price: 6000, Stock: 3},
}

func TestContainsMatcherHitsNameInsideQuery(t *testing.T) {
	m := ContainsMatcher{}

	p, score, ok := m.FindBest("Есть ли у вас Медовик?", testCatalog)
	require.True(t, ok)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 100, score)
}

func TestContainsMatcherIsCaseInsensitive(t *testing.T) {
	m := ContainsMatcher{}

	p, _, ok := m.FindBest("хочу МЕДОВИК на день рождения", testCatalog)
	require.True(t, ok)
	assert.Equal(t, "Медовик", p.Name)
}

func TestContainsMatcherMissesUnknownName(t *testing.T) {
	m := ContainsMatcher{}

	_, _, ok := m.FindBest("посоветуйте что-нибудь шоколадное", testCatalog)
	assert.False(t, ok)
}

func TestSimilarityMatcherExactNameScoresFull(t *testing.T) {
	m := SimilarityMatcher{}

	p, score, ok := m.FindBest("медовик", testCatalog)
	require.True(t, ok)
	assert.Equal(t, "Медовик", p.Name)
	assert.Equal(t, 100, score)
}

func TestSimilarityMatcherToleratesTypo(t *testing.T) {
	m := SimilarityMatcher{}

	p, score, ok := m.FindBest("медовикк", testCatalog)
	require.True(t, ok)
	assert.Equal(t, "Медовик", p.Name)
	assert.Greater(t, score, SimilarityThreshold)
}

func TestSimilarityMatcherMissesUnrelatedQuery(t *testing.T) {
	m := SimilarityMatcher{}

	_, score, ok := m.FindBest("когда вы открываетесь по выходным", testCatalog)
	assert.False(t, ok)
	assert.LessOrEqual(t, score, SimilarityThreshold)
}

func TestMatchersHandleEmptyCatalog(t *testing.T) {
	_, _, ok := ContainsMatcher{}.FindBest("Медовик", nil)
	assert.False(t, ok)

	_, _, ok = SimilarityMatcher{}.FindBest("Медовик", nil)
	assert.False(t, ok)
}

func TestInitMatcherSelectsStrategy(t *testing.T) {
	InitMatcher("similarity")
	assert.IsType(t, SimilarityMatcher{}, ProductMatcher())

	InitMatcher("contains")
	assert.IsType(t, ContainsMatcher{}, ProductMatcher())

	// Unknown strategy falls back to containment
	InitMatcher("semantic")
	assert.IsType(t, ContainsMatcher{}, ProductMatcher())
}
