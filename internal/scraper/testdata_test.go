package scraper

import (
	"fmt"
	"strings"
)

// fragmentHTML собирает контейнер карточки в разметке листинга.
// Пустые name/typeRow/rules означают отсутствие соответствующего блока.
func fragmentHTML(name string, costAlts []string, typeRow string, rules string) string {
	var b strings.Builder
	b.WriteString(`<div class="p-2 border-solid border-t border-gray-300">`)
	b.WriteString(`<div class="flex justify-between">`)
	if name != "" {
		fmt.Fprintf(&b, `<span class="text-left font-bold text-lg">%s</span>`, name)
	}
	b.WriteString(`<span class="text-left">`)
	for _, alt := range costAlts {
		fmt.Fprintf(&b, `<img src="/img/mana/%s.png" alt="%s">`, alt, alt)
	}
	b.WriteString(`</span></div>`)
	if typeRow != "" {
		b.WriteString(typeRow)
	}
	if rules != "" {
		fmt.Fprintf(&b, `<div class="printedText">%s</div>`, rules)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func typeRowHTML(cardType, rarity string) string {
	return fmt.Sprintf(`<div class="flex justify-between"><span class="w-8/12">%s</span><span>%s</span></div>`, cardType, rarity)
}

func pageHTML(fragments ...string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><title>カードリスト</title></head><body>` +
		`<div class="container">` + strings.Join(fragments, "\n") + `</div></body></html>`
}
