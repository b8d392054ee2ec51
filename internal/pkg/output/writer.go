package output

import "io"

// Writer определяет интерфейс для форматирования результатов команд.
// Реализации: JSONWriter, TextWriter.
type Writer interface {
	// Write форматирует result и записывает в w.
	Write(w io.Writer, result *Result) error
}

// Tabular реализуется данными, которые TextWriter выводит таблицей.
type Tabular interface {
	// Header возвращает заголовки колонок.
	Header() []string
	// Rows возвращает строки таблицы; длина каждой строки равна len(Header()).
	Rows() [][]string
}
