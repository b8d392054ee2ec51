package progress

import (
	"encoding/json"
	"time"
)

// JSONProgress выводит события прогресса в формате JSON-lines.
type JSONProgress struct {
	opts      Options
	encoder   *json.Encoder
	startTime time.Time
	lastEmit  time.Time
}

// NewJSONProgress создаёт JSONProgress.
func NewJSONProgress(opts Options) *JSONProgress {
	return &JSONProgress{
		opts:    opts,
		encoder: json.NewEncoder(opts.Output),
	}
}

// Start выводит событие progress_start.
func (p *JSONProgress) Start(message string) {
	p.startTime = time.Now()
	p.lastEmit = time.Time{}
	p.emit(Event{Type: "progress_start", Message: message})
}

// Update выводит событие progress не чаще ThrottleInterval.
func (p *JSONProgress) Update(current int64, message string) {
	if p.opts.ThrottleInterval > 0 && time.Since(p.lastEmit) < p.opts.ThrottleInterval {
		return
	}
	p.lastEmit = time.Now()
	p.emit(Event{Type: "progress", Pages: current, Message: message})
}

// Finish выводит событие progress_end.
func (p *JSONProgress) Finish() {
	p.emit(Event{Type: "progress_end", DurationMs: time.Since(p.startTime).Milliseconds()})
}

func (p *JSONProgress) emit(e Event) {
	if err := p.encoder.Encode(e); err != nil {
		p.opts.Logger.Warn("progress: не удалось записать событие", "error", err.Error())
	}
}
