package normalize

import (
	"strings"
)

// Цвета стоимости -> буквы WUBRG
var costLetters = strings.NewReplacer(
	"白", "W",
	"青", "U",
	"黒", "B",
	"赤", "R",
	"緑", "G",
)

// TrimQuoted убирает пробелы по краям, затем обрамляющие кавычки.
// Пробелы внутри кавычек сохраняются.
func TrimQuoted(text string) string {
	return strings.Trim(strings.TrimSpace(text), `"`)
}

// CostLetters переводит японские цвета в строке стоимости в W/U/B/R/G
func CostLetters(cost string) string {
	return costLetters.Replace(cost)
}
