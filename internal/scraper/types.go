package scraper

// CardRecord — одна карточка из листинга. Живёт только до записи в файл.
type CardRecord struct {
	Name       string
	Cost       []string
	Type       string
	Rarity     string
	EffectText string
}

// Listing — результат разбора одной страницы.
// Fragments считает все найденные контейнеры, включая пропущенные без имени.
type Listing struct {
	Fragments int
	Records   []*CardRecord
}

type Selectors struct {
	CardSelectors   string   `yaml:"card_selectors"`
	NameSelectors   []string `yaml:"name_selectors"`
	CostSelectors   []string `yaml:"cost_selectors"`
	CostIcon        string   `yaml:"cost_icon"`
	TypeRowSelector string   `yaml:"type_row_selector"`
	TypeSelector    string   `yaml:"type_selector"`
	RaritySelector  string   `yaml:"rarity_selector"`
	RulesSelectors  []string `yaml:"rules_selectors"`
	SymbolClass     string   `yaml:"symbol_class"`
}

// DefaultSelectors — разметка phyrexian-mtg.net/search/list
func DefaultSelectors() *Selectors {
	return &Selectors{
		CardSelectors:   `div[class*="border-solid"][class*="border-t"]`,
		NameSelectors:   []string{"span.text-left.font-bold.text-lg"},
		CostSelectors:   []string{"span.text-left:not(.font-bold)"},
		CostIcon:        "img",
		TypeRowSelector: "div.flex.justify-between:nth-of-type(2)",
		TypeSelector:    `span.w-8\/12`,
		RaritySelector:  "span:last-child",
		RulesSelectors:  []string{"div.printedText"},
		SymbolClass:     "card-symbol",
	}
}
