package logging

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Поддерживаемые форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
const (
	DefaultLevel      = LevelInfo
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "/var/log/bitbucket-client.log"
	DefaultMaxSize    = 100 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 7 // days
	DefaultCompress   = true
)

// Config содержит настройки логирования.
type Config struct {
	// Format — "json" или "text".
	Format string
	// Level — минимальный уровень: "debug", "info", "warn", "error".
	Level string
	// Output — "stderr" или "file".
	Output string
	// FilePath — путь к файлу логов при Output="file".
	FilePath string
	// MaxSize — размер файла в мегабайтах перед ротацией.
	MaxSize int
	// MaxBackups — количество backup файлов.
	MaxBackups int
	// MaxAge — возраст backup файлов в днях.
	MaxAge int
	// Compress — сжимать ли backup файлы в gzip.
	Compress bool
}

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Validate проверяет допустимость значений. Пустые значения допустимы
// и заменяются значениями по умолчанию в NewLogger.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.In(FormatJSON, FormatText)),
		validation.Field(&c.Level, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
		validation.Field(&c.Output, validation.In(OutputStderr, OutputFile)),
		validation.Field(&c.FilePath, validation.When(c.Output == OutputFile, validation.Required)),
		validation.Field(&c.MaxSize, validation.Min(0)),
		validation.Field(&c.MaxBackups, validation.Min(0)),
		validation.Field(&c.MaxAge, validation.Min(0)),
	)
}
