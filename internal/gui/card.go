package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/flashy/internal"
	"codeberg.org/snonux/flashy/internal/vocab"
)

// Face is the side of the card currently shown
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceComplete
)

// CompleteText is shown once every word is known
const CompleteText = "All words known"

var (
	cardSize = fyne.NewSize(800, 526)

	frontInk color.Color = color.Black
	backInk  color.Color = color.White
)

// CardView draws a two-sided flashcard: the question language on the front,
// English on the back
type CardView struct {
	widget.BaseWidget

	container *fyne.Container
	image     *canvas.Image
	language  *canvas.Text
	word      *canvas.Text

	assets   *Assets
	question string // column shown on the front
	face     Face
}

// NewCardView creates a card asking in the question column
func NewCardView(assets *Assets, question string) *CardView {
	c := &CardView{
		assets:   assets,
		question: question,
	}

	c.image = canvas.NewImageFromResource(assets.CardFront)
	c.image.FillMode = canvas.ImageFillContain
	c.image.SetMinSize(cardSize)
	c.image.Resize(cardSize)

	c.language = canvas.NewText("", frontInk)
	c.language.TextSize = 40
	c.language.TextStyle = fyne.TextStyle{Italic: true}
	c.language.Alignment = fyne.TextAlignCenter
	c.language.Move(fyne.NewPos(0, 120))
	c.language.Resize(fyne.NewSize(cardSize.Width, 60))

	c.word = canvas.NewText("", frontInk)
	c.word.TextSize = 60
	c.word.TextStyle = fyne.TextStyle{Bold: true}
	c.word.Alignment = fyne.TextAlignCenter
	c.word.Move(fyne.NewPos(0, 218))
	c.word.Resize(fyne.NewSize(cardSize.Width, 90))

	c.container = container.NewWithoutLayout(c.image, c.language, c.word)

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CardView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.container)
}

// ShowQuestion turns the card to its front with the entry's question word
func (c *CardView) ShowQuestion(entry vocab.Entry) {
	c.show(FaceFront, c.assets.CardFront, frontInk, c.question, entry[c.question])
}

// ShowAnswer turns the card to its back with the English word
func (c *CardView) ShowAnswer(entry vocab.Entry) {
	c.show(FaceBack, c.assets.CardBack, backInk, internal.PivotLanguage, entry[internal.PivotLanguage])
}

// ShowComplete shows the end-of-list card
func (c *CardView) ShowComplete() {
	c.show(FaceComplete, c.assets.CardFront, frontInk, CompleteText, "")
}

func (c *CardView) show(face Face, res fyne.Resource, ink color.Color, language, word string) {
	c.face = face

	c.image.Resource = res
	c.image.Refresh()

	c.language.Text = language
	c.language.Color = ink
	c.language.Refresh()

	c.word.Text = word
	c.word.Color = ink
	c.word.Refresh()
}

// Face returns the side currently shown
func (c *CardView) Face() Face {
	return c.face
}

// LanguageText returns the language label
func (c *CardView) LanguageText() string {
	return c.language.Text
}

// WordText returns the word label
func (c *CardView) WordText() string {
	return c.word.Text
}

// Ink returns the label colour
func (c *CardView) Ink() color.Color {
	return c.word.Color
}

// Resource returns the card image currently drawn
func (c *CardView) Resource() fyne.Resource {
	return c.image.Resource
}
