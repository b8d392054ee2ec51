// Package progress показывает ход постраничной загрузки коллекций Bitbucket.
// Число страниц заранее неизвестно, поэтому все реализации indeterminate:
// spinner в терминале, периодический лог вне терминала и JSON-lines события.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kargones/bitbucket-client/pkg/logging"
)

// Progress отображает ход долгой операции.
type Progress interface {
	// Start начинает отображение с сообщением message.
	Start(message string)
	// Update сообщает о загрузке current единиц работы.
	Update(current int64, message string)
	// Finish завершает отображение.
	Finish()
}

// Options конфигурирует Progress.
type Options struct {
	// Output — куда выводить индикатор (обычно os.Stderr).
	Output io.Writer
	// Format — формат вывода результата команды ("text" или "json").
	Format string
	// Logger используется вне терминала.
	Logger logging.Logger
	// ThrottleInterval — минимальный интервал между перерисовками.
	ThrottleInterval time.Duration
}

// Event — JSON событие прогресса.
type Event struct {
	Type       string `json:"type"` // "progress_start", "progress", "progress_end"
	Pages      int64  `json:"pages,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}

// IsTTY проверяет, является ли writer терминалом.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// FormatDuration форматирует длительность: 45s, 5m 30s, 1h 7m.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d < 0:
		return "0s"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		if s := int(d.Seconds()) % 60; s != 0 {
			return fmt.Sprintf("%dm %ds", int(d.Minutes()), s)
		}
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		if m := int(d.Minutes()) % 60; m != 0 {
			return fmt.Sprintf("%dh %dm", int(d.Hours()), m)
		}
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
