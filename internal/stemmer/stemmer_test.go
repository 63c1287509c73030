package stemmer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stemcheck/internal/stemmer"
)

func TestStemSharedRoot(t *testing.T) {
	s := stemmer.New()
	a, err := s.Stem("книги")
	require.NoError(t, err)
	b, err := s.Stem("книга")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestStemDistinctRoots(t *testing.T) {
	s := stemmer.New()
	a, err := s.Stem("привет")
	require.NoError(t, err)
	b, err := s.Stem("превет")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStemDeterministic(t *testing.T) {
	s := stemmer.New()
	a, err := s.Stem("красивые")
	require.NoError(t, err)
	b, err := s.Stem("красивые")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStemRejectsForeignRunes(t *testing.T) {
	uu := map[string]string{
		"latin": "hello",
		"mixed": "домa",
		"upper": "Дом",
		"empty": "",
	}

	s := stemmer.New()
	for k, w := range uu {
		t.Run(k, func(t *testing.T) {
			_, err := s.Stem(w)
			assert.ErrorIs(t, err, stemmer.ErrUnstemmable)
		})
	}
}
