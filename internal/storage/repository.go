package storage

// Sink принимает отрендеренные блоки карточек в порядке записи
type Sink interface {
	// WriteBlock дописывает блок как есть
	WriteBlock(block string) error

	// Path возвращает место, куда пишется результат
	Path() string

	Close() error
}
