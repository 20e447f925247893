package observability

import (
	"io"

	"github.com/fatih/color"
)

// Console печатает прогресс для человека. Формат не предназначен для разбора.
type Console struct {
	out     io.Writer
	banner  *color.Color
	done    *color.Color
	warning *color.Color
	failure *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:     out,
		banner:  color.New(color.FgCyan),
		done:    color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (c *Console) PageStarted(page int) {
	c.banner.Fprintf(c.out, "--- %dページ目を読み込み中... ---\n", page)
}

func (c *Console) CardWritten(name string) {
	c.done.Fprintf(c.out, "完了：%s\n", name)
}

func (c *Console) PageEmpty(page int) {
	c.warning.Fprintf(c.out, "警告：%dページ目にカードが見つかりませんでした。\n", page)
}

func (c *Console) Failed(err error) {
	c.failure.Fprintf(c.out, "エラーが発生しました: %v\n", err)
}

func (c *Console) Finished(outputPath string) {
	c.done.Fprintf(c.out, "\nすべての処理が完了しました！\n")
	c.done.Fprintf(c.out, "保存先: %s\n", outputPath)
}
