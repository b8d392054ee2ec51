package progress

import (
	"os"
	"strings"
	"time"

	"github.com/Kargones/bitbucket-client/pkg/logging"
)

// Переменные окружения управления индикатором.
const (
	EnvShowProgress   = "BB_SHOW_PROGRESS"
	EnvProgressStream = "BB_PROGRESS_STREAM"
)

// DefaultThrottleInterval — интервал перерисовки по умолчанию.
const DefaultThrottleInterval = 200 * time.Millisecond

// New выбирает реализацию Progress:
//  1. BB_SHOW_PROGRESS=false → NoopProgress
//  2. формат json и BB_PROGRESS_STREAM=true → JSONProgress
//  3. формат json → NoopProgress, чтобы не смешивать вывод
//  4. терминал → SpinnerProgress
//  5. иначе → LogProgress
func New(opts Options) Progress {
	if opts.ThrottleInterval == 0 {
		opts.ThrottleInterval = DefaultThrottleInterval
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}

	if os.Getenv(EnvShowProgress) == "false" {
		return NewNoOp()
	}
	if strings.EqualFold(opts.Format, "json") {
		if os.Getenv(EnvProgressStream) == "true" {
			return NewJSONProgress(opts)
		}
		return NewNoOp()
	}
	if IsTTY(opts.Output) {
		return NewSpinnerProgress(opts)
	}
	return NewLogProgress(opts)
}
