package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"

	"phyrexian-cardlist/internal/scraper"
)

// LoadSelectors загружает селекторы из YAML файла поверх селекторов по умолчанию
func LoadSelectors(filePath string) (*scraper.Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	// Проверяем существование файла
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("selectors file not found: %s: %w", filePath, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	selectors := scraper.DefaultSelectors()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(selectors); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(selectors); err != nil {
		return nil, err
	}

	return selectors, nil
}

// Selectors возвращает селекторы из selectors_file или встроенные.
// Относительный путь считается от каталога файла конфигурации.
func (c *Config) Selectors() (*scraper.Selectors, error) {
	if c.SelectorsFile == "" {
		return scraper.DefaultSelectors(), nil
	}

	filePath := c.SelectorsFile
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(c.baseDir, filePath)
	}

	return LoadSelectors(filePath)
}

// validateSelectors проверяет, что все селекторы заданы и компилируются
func validateSelectors(s *scraper.Selectors) error {
	required := map[string]string{
		"card_selectors":    s.CardSelectors,
		"cost_icon":         s.CostIcon,
		"type_row_selector": s.TypeRowSelector,
		"type_selector":     s.TypeSelector,
		"rarity_selector":   s.RaritySelector,
	}
	for key, selector := range required {
		if selector == "" {
			return fmt.Errorf("%s is required", key)
		}
		if _, err := cascadia.Compile(selector); err != nil {
			return fmt.Errorf("%s: invalid selector %q: %w", key, selector, err)
		}
	}

	lists := map[string][]string{
		"name_selectors":  s.NameSelectors,
		"cost_selectors":  s.CostSelectors,
		"rules_selectors": s.RulesSelectors,
	}
	for key, selectors := range lists {
		if len(selectors) == 0 {
			return fmt.Errorf("%s is required", key)
		}
		for _, selector := range selectors {
			if _, err := cascadia.Compile(selector); err != nil {
				return fmt.Errorf("%s: invalid selector %q: %w", key, selector, err)
			}
		}
	}

	if s.SymbolClass == "" {
		return fmt.Errorf("symbol_class is required")
	}

	return nil
}
