package scraper

import (
	"strings"

	"phyrexian-cardlist/internal/normalize"
)

const (
	landMarker       = "土地"
	illustratorLabel = "(一覧に記載なし)"
)

var blockSeparator = strings.Repeat("-", 30)

type RenderOptions struct {
	SetLabel    string
	CostLetters bool
}

// IsLand: у земель строка стоимости не выводится
func IsLand(cardType string) bool {
	return strings.Contains(cardType, landMarker)
}

// Render форматирует карточку в текстовый блок, завершённый разделителем
func Render(card *CardRecord, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString("日本語名：" + card.Name + "\n")
	if !IsLand(card.Type) {
		cost := strings.Join(card.Cost, "")
		if opts.CostLetters {
			cost = normalize.CostLetters(cost)
		}
		b.WriteString("　コスト：" + cost + "\n")
	}
	b.WriteString("　タイプ：" + card.Type + "\n")
	b.WriteString(card.EffectText + "\n")
	b.WriteString("イラスト：" + illustratorLabel + "\n")
	b.WriteString("　セット：" + opts.SetLabel + "\n")
	b.WriteString("　稀少度：" + card.Rarity + "\n")
	b.WriteString(blockSeparator + "\n")

	return b.String()
}
