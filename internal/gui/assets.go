package gui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/spf13/afero"
)

// ErrStartup marks failures that prevent the window from opening
var ErrStartup = errors.New("startup failed")

// Asset file names inside the assets directory
const (
	CardFrontFile = "card_front.png"
	CardBackFile  = "card_back.png"
	KnownFile     = "right.png"
	SkipFile      = "wrong.png"
)

// Assets holds the images the trainer draws
type Assets struct {
	CardFront fyne.Resource
	CardBack  fyne.Resource
	Known     fyne.Resource
	Skip      fyne.Resource
}

// LoadAssets reads all card and button images from dir
func LoadAssets(fs afero.Fs, dir string) (*Assets, error) {
	assets := &Assets{}
	targets := []struct {
		name string
		dst  *fyne.Resource
	}{
		{CardFrontFile, &assets.CardFront},
		{CardBackFile, &assets.CardBack},
		{KnownFile, &assets.Known},
		{SkipFile, &assets.Skip},
	}

	for _, target := range targets {
		res, err := ResourceFromPath(fs, filepath.Join(dir, target.name))
		if err != nil {
			return nil, fmt.Errorf("%w: missing image: %v", ErrStartup, err)
		}
		*target.dst = res
	}

	return assets, nil
}

// ResourceFromPath creates a Fyne resource from a file path
func ResourceFromPath(fs afero.Fs, path string) (fyne.Resource, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	return fyne.NewStaticResource(filepath.Base(path), data), nil
}
