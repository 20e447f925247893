package scraper

// SymbolMap: CSS-класс символа -> глиф для текста правил
type SymbolMap map[string]string

func DefaultSymbols() SymbolMap {
	return SymbolMap{
		"card-symbol-T": "(Ｔ)",
		"card-symbol-Q": "(Ｑ)",
		"card-symbol-W": "(白)",
		"card-symbol-U": "(青)",
		"card-symbol-B": "(黒)",
		"card-symbol-R": "(赤)",
		"card-symbol-G": "(緑)",
		"card-symbol-C": "(◇)",
		"card-symbol-E": "(Ｅ)",
		"card-symbol-S": "(Ｓ)",
	}
}

// Glyph ищет первый класс элемента, известный карте
func (m SymbolMap) Glyph(classes []string) (string, bool) {
	for _, c := range classes {
		if glyph, ok := m[c]; ok {
			return glyph, true
		}
	}
	return "", false
}

// CostToken строит токен стоимости из alt иконки. Отсутствующий alt даёт "()".
func CostToken(alt string) string {
	return "(" + alt + ")"
}
