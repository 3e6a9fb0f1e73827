package widgets

import (
	"image"
	"log"
	"os"
	"time"

	"github.com/gizak/termui/v3"
)

type StatusBar struct {
	termui.Block
	hostname string
}

func NewStatusBar() *StatusBar {
	self := &StatusBar{Block: *termui.NewBlock()}
	self.Border = false
	hostname, err := os.Hostname()
	if err != nil {
		log.Print(tr.Value("error.nohostname", err.Error()))
	}
	self.hostname = hostname
	return self
}

func (sb *StatusBar) Draw(buf *termui.Buffer) {
	sb.Block.Draw(buf)
	row := sb.Inner.Min.Y + (sb.Inner.Dy() / 2)

	buf.SetString(
		sb.hostname,
		termui.Theme.Default,
		image.Pt(sb.Inner.Min.X, row),
	)

	formattedTime := time.Now().Format("15:04:05")
	buf.SetString(
		formattedTime,
		termui.Theme.Default,
		image.Pt(sb.Inner.Min.X+(sb.Inner.Dx()/2)-len(formattedTime)/2, row),
	)

	const name = "gogauge"
	buf.SetString(
		name,
		termui.Theme.Default,
		image.Pt(sb.Inner.Max.X-len(name), row),
	)
}
