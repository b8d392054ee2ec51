package progress

import (
	"fmt"
	"time"
)

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// SpinnerProgress рисует spinner с числом загруженных страниц.
type SpinnerProgress struct {
	opts       Options
	startTime  time.Time
	message    string
	pages      int64
	frameIndex int
	lastDraw   time.Time
	started    bool
}

// NewSpinnerProgress создаёт spinner.
func NewSpinnerProgress(opts Options) *SpinnerProgress {
	return &SpinnerProgress{opts: opts}
}

// Start начинает анимацию.
func (p *SpinnerProgress) Start(message string) {
	p.startTime = time.Now()
	p.message = message
	p.pages = 0
	p.frameIndex = 0
	p.started = true
	p.draw()
}

// Update переключает кадр не чаще ThrottleInterval.
func (p *SpinnerProgress) Update(current int64, message string) {
	if message != "" {
		p.message = message
	}
	p.pages = current
	if p.opts.ThrottleInterval > 0 && time.Since(p.lastDraw) < p.opts.ThrottleInterval {
		return
	}
	p.frameIndex = (p.frameIndex + 1) % len(spinnerFrames)
	p.draw()
}

// Finish стирает строку spinner-а. Без Start ничего не выводит.
func (p *SpinnerProgress) Finish() {
	if !p.started {
		return
	}
	p.started = false
	_, _ = fmt.Fprintf(p.opts.Output, "\r✓ %s: страниц %d за %s\033[K\n", //nolint:errcheck // terminal output
		p.message, p.pages, FormatDuration(time.Since(p.startTime)))
}

func (p *SpinnerProgress) draw() {
	p.lastDraw = time.Now()
	_, _ = fmt.Fprintf(p.opts.Output, "\r%c %s: страниц %d (время: %s)\033[K", //nolint:errcheck // terminal output
		spinnerFrames[p.frameIndex], p.message, p.pages, FormatDuration(time.Since(p.startTime)))
}
