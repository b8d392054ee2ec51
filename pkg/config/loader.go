package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
)

// Load собирает конфигурацию из значений по умолчанию и переменных окружения.
func Load() (*Config, error) {
	cfg := Default()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"ошибка чтения переменных окружения", err)
	}
	return validated(&cfg)
}

// LoadFile читает YAML-файл path и применяет переменные окружения поверх него.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			fmt.Sprintf("ошибка чтения файла %s", path), err)
	}
	return Parse(data)
}

// Parse разбирает YAML-конфигурацию и применяет переменные окружения.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigParse,
			"ошибка парсинга YAML конфигурации", err)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"ошибка чтения переменных окружения", err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigValidate,
			"невалидная конфигурация", err)
	}
	return cfg, nil
}
