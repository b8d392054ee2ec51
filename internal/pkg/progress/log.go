package progress

import "time"

// logReportInterval — период записи прогресса в лог.
const logReportInterval = 10 * time.Second

// LogProgress пишет прогресс в лог для CI и перенаправленного вывода.
type LogProgress struct {
	opts       Options
	startTime  time.Time
	lastReport time.Time
	message    string
	pages      int64
}

// NewLogProgress создаёт LogProgress.
func NewLogProgress(opts Options) *LogProgress {
	return &LogProgress{opts: opts}
}

// Start записывает начало операции.
func (p *LogProgress) Start(message string) {
	p.startTime = time.Now()
	p.lastReport = p.startTime
	p.message = message
	p.pages = 0
	p.opts.Logger.Info("загрузка начата", "message", message)
}

// Update записывает прогресс не чаще logReportInterval.
func (p *LogProgress) Update(current int64, message string) {
	if message != "" {
		p.message = message
	}
	p.pages = current
	if time.Since(p.lastReport) < logReportInterval {
		return
	}
	p.lastReport = time.Now()
	p.opts.Logger.Info("загрузка продолжается",
		"message", p.message,
		"pages", current,
		"elapsed", FormatDuration(time.Since(p.startTime)))
}

// Finish записывает итог.
func (p *LogProgress) Finish() {
	p.opts.Logger.Info("загрузка завершена",
		"message", p.message,
		"pages", p.pages,
		"duration", FormatDuration(time.Since(p.startTime)))
}
