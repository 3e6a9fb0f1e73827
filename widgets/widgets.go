package widgets

import (
	"github.com/xxxserxxx/lingo/v2"
)

var tr lingo.Translations

// SetTr sets the translations used for widget titles and labels.
func SetTr(t lingo.Translations) {
	tr = t
}

type Widget interface {
	Update()
}

type Widgets []Widget

func (ws Widgets) Update() {
	for _, wid := range ws {
		wid.Update()
	}
}
