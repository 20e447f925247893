package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"phyrexian-cardlist/internal/normalize"
)

// ErrMalformedFragment — контейнер карточки найден, но строка типа неполная.
// Такая ошибка прерывает весь прогон, как и ошибка загрузки.
var ErrMalformedFragment = errors.New("malformed card fragment")

type Scraper struct {
	selectors *Selectors
	symbols   SymbolMap
}

func NewScraper(selectors *Selectors, symbols SymbolMap) *Scraper {
	if selectors == nil {
		selectors = DefaultSelectors()
	}
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &Scraper{
		selectors: selectors,
		symbols:   symbols,
	}
}

// ParseListing парсит листинг и возвращает карточки в порядке документа.
// При ошибке во фрагменте возвращаются карточки, извлечённые до него.
func (s *Scraper) ParseListing(html string) (*Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	fragments := Wrap(doc.Selection).Find(s.selectors.CardSelectors)
	listing := &Listing{Fragments: len(fragments)}

	for i, fragment := range fragments {
		card, err := s.ExtractCard(fragment)
		if err != nil {
			return listing, fmt.Errorf("fragment %d: %w", i+1, err)
		}
		if card == nil {
			continue // Пропуск если нет имени
		}
		listing.Records = append(listing.Records, card)
	}

	return listing, nil
}

// ExtractCard собирает запись из одного фрагмента.
// (nil, nil) — фрагмент без имени, это не карточка.
func (s *Scraper) ExtractCard(fragment Node) (*CardRecord, error) {
	nameNode, ok := firstOf(fragment, s.selectors.NameSelectors)
	if !ok {
		return nil, nil
	}

	card := &CardRecord{
		Name: normalize.TrimQuoted(strippedText(nameNode)),
		Cost: []string{},
	}

	if costNode, ok := firstOf(fragment, s.selectors.CostSelectors); ok {
		for _, icon := range costNode.Find(s.selectors.CostIcon) {
			alt, _ := icon.Attr("alt")
			card.Cost = append(card.Cost, CostToken(alt))
		}
	}

	if row, ok := fragment.First(s.selectors.TypeRowSelector); ok {
		typeNode, ok := row.First(s.selectors.TypeSelector)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no type span", ErrMalformedFragment, card.Name)
		}
		rarityNode, ok := row.First(s.selectors.RaritySelector)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no rarity span", ErrMalformedFragment, card.Name)
		}
		card.Type = strippedText(typeNode)
		card.Rarity = strippedText(rarityNode)
	}

	if rules, ok := firstOf(fragment, s.selectors.RulesSelectors); ok {
		card.EffectText = RulesText(rules, s.symbols, s.selectors.SymbolClass)
	}

	return card, nil
}

// RulesText собирает текст правил: символы заменяются глифами, <br> — переводом строки.
// DOM не изменяется, поэтому повторный вызов даёт тот же результат.
func RulesText(rules Node, symbols SymbolMap, symbolClass string) string {
	var b strings.Builder
	writeRules(&b, rules, symbols, symbolClass)
	return normalize.TrimQuoted(b.String())
}

func writeRules(b *strings.Builder, n Node, symbols SymbolMap, symbolClass string) {
	for _, child := range n.Children() {
		switch child.Name() {
		case textNodeName:
			b.WriteString(child.Text())
		case "br":
			b.WriteString("\n")
		case "span":
			if hasClass(child, symbolClass) {
				if glyph, ok := symbols.Glyph(child.Classes()); ok {
					b.WriteString(glyph)
					continue
				}
			}
			writeRules(b, child, symbols, symbolClass)
		default:
			writeRules(b, child, symbols, symbolClass)
		}
	}
}

func firstOf(n Node, selectors []string) (Node, bool) {
	for _, selector := range selectors {
		if found, ok := n.First(selector); ok {
			return found, true
		}
	}
	return nil, false
}
