package gui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"codeberg.org/snonux/flashy/internal/vocab"
)

func testAssets() *Assets {
	return &Assets{
		CardFront: fyne.NewStaticResource(CardFrontFile, []byte("front")),
		CardBack:  fyne.NewStaticResource(CardBackFile, []byte("back")),
		Known:     fyne.NewStaticResource(KnownFile, []byte("known")),
		Skip:      fyne.NewStaticResource(SkipFile, []byte("skip")),
	}
}

var sample = vocab.Entry{"English": "cat", "German": "Katze", "French": "Chat"}

func TestCardShowQuestion(t *testing.T) {
	test.NewApp()

	tests := []struct {
		question string
		word     string
	}{
		{"French", "Chat"},
		{"German", "Katze"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assets := testAssets()
			card := NewCardView(assets, tt.question)

			card.ShowQuestion(sample)

			assert.Equal(t, FaceFront, card.Face())
			assert.Equal(t, assets.CardFront, card.Resource())
			assert.Equal(t, tt.question, card.LanguageText())
			assert.Equal(t, tt.word, card.WordText())
			assert.Equal(t, color.Black, card.Ink())

			// Idempotent
			card.ShowQuestion(sample)
			assert.Equal(t, tt.word, card.WordText())
		})
	}
}

func TestCardShowAnswerAlwaysEnglish(t *testing.T) {
	test.NewApp()

	for _, question := range []string{"French", "German"} {
		assets := testAssets()
		card := NewCardView(assets, question)

		card.ShowQuestion(sample)
		card.ShowAnswer(sample)

		assert.Equal(t, FaceBack, card.Face())
		assert.Equal(t, assets.CardBack, card.Resource())
		assert.Equal(t, "English", card.LanguageText())
		assert.Equal(t, "cat", card.WordText())
		assert.Equal(t, color.White, card.Ink())
	}
}

func TestCardShowComplete(t *testing.T) {
	test.NewApp()

	assets := testAssets()
	card := NewCardView(assets, "French")
	card.ShowAnswer(sample)
	card.ShowComplete()

	assert.Equal(t, FaceComplete, card.Face())
	assert.Equal(t, assets.CardFront, card.Resource())
	assert.Equal(t, CompleteText, card.LanguageText())
	assert.Empty(t, card.WordText())
	assert.Equal(t, color.Black, card.Ink())
}

func TestCardMinSize(t *testing.T) {
	test.NewApp()

	card := NewCardView(testAssets(), "French")
	test.NewWindow(card)

	assert.Equal(t, cardSize, card.MinSize())
}
