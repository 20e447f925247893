package checksum

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"phyrexian-cardlist/internal/scraper"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateRecordHash генерирует SHA256 хеш карточки
// Формула: SHA256(name|cost|type|rarity|effect)
func (g *Generator) GenerateRecordHash(card *scraper.CardRecord) string {
	content := fmt.Sprintf("%s|%s|%s|%s|%s",
		card.Name,
		strings.Join(card.Cost, ""),
		card.Type,
		card.Rarity,
		card.EffectText,
	)

	hash := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", hash)
}

// Seen запоминает хеши карточек, записанных за прогон
type Seen struct {
	gen    *Generator
	hashes map[string]int
}

func NewSeen(gen *Generator) *Seen {
	return &Seen{
		gen:    gen,
		hashes: make(map[string]int),
	}
}

// Add возвращает номер страницы, где карточка уже встречалась, и true для дубликата
func (s *Seen) Add(card *scraper.CardRecord, page int) (int, bool) {
	hash := s.gen.GenerateRecordHash(card)
	if firstPage, ok := s.hashes[hash]; ok {
		return firstPage, true
	}
	s.hashes[hash] = page
	return 0, false
}
