package scraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, html string) Node {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML(html)))
	require.NoError(t, err)
	fragments := Wrap(doc.Selection).Find(DefaultSelectors().CardSelectors)
	require.Len(t, fragments, 1)
	return fragments[0]
}

func TestParseListingSamplePage(t *testing.T) {
	header := `<div class="border-solid border-t"><p>検索結果 2件</p></div>`
	land := fragmentHTML(`"Test Land"`, nil, typeRowHTML("基本土地 ― 山", "コモン"), `(Ｔ)：赤マナ1点を加える。`)
	spell := fragmentHTML("Test Spell", []string{"R"}, typeRowHTML("インスタント", "アンコモン"),
		`クリーチャー1体を対象とする。<br>それに3点のダメージを与える。`)

	s := NewScraper(nil, nil)
	listing, err := s.ParseListing(pageHTML(header, land, spell))
	require.NoError(t, err)

	assert.Equal(t, 3, listing.Fragments)

	want := []*CardRecord{
		{
			Name:       "Test Land",
			Cost:       []string{},
			Type:       "基本土地 ― 山",
			Rarity:     "コモン",
			EffectText: "(Ｔ)：赤マナ1点を加える。",
		},
		{
			Name:       "Test Spell",
			Cost:       []string{"(R)"},
			Type:       "インスタント",
			Rarity:     "アンコモン",
			EffectText: "クリーチャー1体を対象とする。\nそれに3点のダメージを与える。",
		},
	}
	if diff := cmp.Diff(want, listing.Records); diff != "" {
		t.Errorf("ParseListing() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseListingNoFragments(t *testing.T) {
	s := NewScraper(nil, nil)
	listing, err := s.ParseListing(pageHTML(`<p>該当するカードはありません</p>`))
	require.NoError(t, err)

	assert.Equal(t, 0, listing.Fragments)
	assert.Empty(t, listing.Records)
}

func TestExtractCardWithoutName(t *testing.T) {
	s := NewScraper(nil, nil)
	fragment := parseFragment(t, fragmentHTML("", []string{"W"}, typeRowHTML("エンチャント", "レア"), "効果"))

	card, err := s.ExtractCard(fragment)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestExtractCardCostOrder(t *testing.T) {
	s := NewScraper(nil, nil)
	fragment := parseFragment(t, fragmentHTML("連携", []string{"W", "U"}, typeRowHTML("ソーサリー", "コモン"), ""))

	card, err := s.ExtractCard(fragment)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, []string{"(W)", "(U)"}, card.Cost)
	assert.Equal(t, "(W)(U)", strings.Join(card.Cost, ""))
	assert.Empty(t, card.EffectText)
}

func TestExtractCardIconWithoutAlt(t *testing.T) {
	s := NewScraper(nil, nil)
	html := `<div class="border-solid border-t">` +
		`<span class="text-left font-bold text-lg">無名</span>` +
		`<span class="text-left"><img src="/img/mana/x.png"><img alt="G"></span></div>`

	card, err := s.ExtractCard(parseFragment(t, html))
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, []string{"()", "(G)"}, card.Cost)
}

func TestExtractCardWithoutTypeRow(t *testing.T) {
	s := NewScraper(nil, nil)
	fragment := parseFragment(t, fragmentHTML("行なし", []string{"B"}, "", ""))

	card, err := s.ExtractCard(fragment)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, "", card.Type)
	assert.Equal(t, "", card.Rarity)
}

func TestExtractCardMalformedTypeRow(t *testing.T) {
	s := NewScraper(nil, nil)
	row := `<div class="flex justify-between"><span class="w-6/12">壊れた</span><span>レア</span></div>`
	fragment := parseFragment(t, fragmentHTML("壊れたカード", nil, row, ""))

	_, err := s.ExtractCard(fragment)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFragment))

	good := fragmentHTML("先のカード", []string{"U"}, typeRowHTML("インスタント", "コモン"), "")
	listing, err := s.ParseListing(pageHTML(good, fragmentHTML("壊れたカード", nil, row, "")))
	assert.ErrorIs(t, err, ErrMalformedFragment)
	require.NotNil(t, listing)
	require.Len(t, listing.Records, 1)
	assert.Equal(t, "先のカード", listing.Records[0].Name)
}

func TestRulesTextLineBreakThenSymbol(t *testing.T) {
	rules := `"このクリーチャーは速攻を持つ。<br><span class="card-symbol card-symbol-T"></span>：緑マナ1点を加える。"`
	fragment := parseFragment(t, fragmentHTML("ラノワールのエルフ", []string{"G"}, typeRowHTML("クリーチャー ― エルフ", "コモン"), rules))

	rulesNode, ok := fragment.First("div.printedText")
	require.True(t, ok)

	text := RulesText(rulesNode, DefaultSymbols(), "card-symbol")
	lines := strings.Split(text, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "このクリーチャーは速攻を持つ。", lines[0])
	assert.Equal(t, "(Ｔ)：緑マナ1点を加える。", lines[1])
	assert.NotContains(t, text, "card-symbol")
	assert.NotContains(t, text, "<")
}

func TestRulesTextIdempotent(t *testing.T) {
	rules := `<span class="card-symbol card-symbol-W"></span><span class="card-symbol card-symbol-U"></span>、<span class="card-symbol card-symbol-T"></span>：カード1枚を引く。<br>(◇)は無色。`
	fragment := parseFragment(t, fragmentHTML("テスト", nil, "", rules))
	rulesNode, ok := fragment.First("div.printedText")
	require.True(t, ok)

	once := RulesText(rulesNode, DefaultSymbols(), "card-symbol")
	twice := RulesText(rulesNode, DefaultSymbols(), "card-symbol")
	assert.Equal(t, once, twice)
	assert.Equal(t, "(白)(青)、(Ｔ)：カード1枚を引く。\n(◇)は無色。", once)

	// Уже подставленные глифы не подставляются повторно
	again := parseFragment(t, fragmentHTML("テスト", nil, "", strings.ReplaceAll(once, "\n", "<br>")))
	againNode, ok := again.First("div.printedText")
	require.True(t, ok)
	assert.Equal(t, once, RulesText(againNode, DefaultSymbols(), "card-symbol"))
}

func TestRulesTextUnknownSymbolKeepsText(t *testing.T) {
	rules := `<span class="card-symbol card-symbol-X">X</span>点のダメージ`
	fragment := parseFragment(t, fragmentHTML("火の玉", []string{"X", "R"}, "", rules))
	rulesNode, ok := fragment.First("div.printedText")
	require.True(t, ok)

	assert.Equal(t, "X点のダメージ", RulesText(rulesNode, DefaultSymbols(), "card-symbol"))
}

func TestSymbolMapGlyph(t *testing.T) {
	symbols := DefaultSymbols()

	glyph, ok := symbols.Glyph([]string{"card-symbol", "card-symbol-C"})
	assert.True(t, ok)
	assert.Equal(t, "(◇)", glyph)

	_, ok = symbols.Glyph([]string{"card-symbol"})
	assert.False(t, ok)

	assert.Len(t, symbols, 10)
}
