package observability

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "warn", nil)

	logger.Info("Processing page", "page", 1)
	logger.Warn("No cards found on page", "page", 2)

	out := buf.String()
	assert.NotContains(t, out, "Processing page")
	assert.Contains(t, out, "No cards found on page")
	assert.Contains(t, out, "page=2")
}

func TestConsoleLines(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.PageStarted(3)
	console.CardWritten("稲妻")
	console.PageEmpty(4)
	console.Failed(errors.New("timeout"))
	console.Finished("/tmp/out.txt")

	expected := "--- 3ページ目を読み込み中... ---\n" +
		"完了：稲妻\n" +
		"警告：4ページ目にカードが見つかりませんでした。\n" +
		"エラーが発生しました: timeout\n" +
		"\nすべての処理が完了しました！\n" +
		"保存先: /tmp/out.txt\n"
	assert.Equal(t, expected, buf.String())
}
