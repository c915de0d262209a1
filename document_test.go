package pagetext_test

import (
	"testing"

	"github.com/LenAngliChan/pagetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document passes", func(t *testing.T) {
		t.Parallel()

		doc := &pagetext.Document{
			SourceURL: "https://example.com/news",
			Text:      "wrapped text",
		}

		require.NoError(t, doc.Validate())
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		doc := &pagetext.Document{Text: "text"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})

	t.Run("requires text", func(t *testing.T) {
		t.Parallel()

		doc := &pagetext.Document{SourceURL: "https://example.com"}

		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, pagetext.EINVALID, pagetext.ErrorCode(err))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("same content yields same hash", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, pagetext.ComputeHash("content"), pagetext.ComputeHash("content"))
	})

	t.Run("different content yields different hash", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, pagetext.ComputeHash("one"), pagetext.ComputeHash("two"))
	})
}
