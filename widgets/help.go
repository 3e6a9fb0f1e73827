package widgets

import (
	"image"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/xxxserxxx/lingo/v2"
)

// HelpMenu is a bordered box listing the key bindings, centred on the
// screen.
type HelpMenu struct {
	termui.Block
	lines []string
}

func NewHelpMenu(tr lingo.Translations) *HelpMenu {
	help := &HelpMenu{
		Block: *termui.NewBlock(),
		lines: strings.Split(strings.TrimSpace(tr.Value("help.menu")), "\n"),
	}
	help.Title = tr.Value("widget.label.help")
	return help
}

// Resize centres the menu in a termWidth x termHeight terminal.
func (help *HelpMenu) Resize(termWidth, termHeight int) {
	textWidth := 0
	for _, line := range help.lines {
		if n := len([]rune(line)); n > textWidth {
			textWidth = n
		}
	}
	textWidth += 2
	textHeight := len(help.lines) + 2
	x := (termWidth - textWidth) / 2
	y := (termHeight - textHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	help.Block.SetRect(x, y, x+textWidth, y+textHeight)
}

func (help *HelpMenu) Draw(buf *termui.Buffer) {
	help.Block.Draw(buf)
	for y, line := range help.lines {
		p := image.Pt(help.Inner.Min.X, help.Inner.Min.Y+y)
		if p.Y >= help.Inner.Max.Y {
			break
		}
		buf.SetString(termui.TrimString(line, help.Inner.Dx()), termui.Theme.Default, p)
	}
}
