// Package tracing настраивает OpenTelemetry и генерирует trace ID для корреляции логов.
//
// Формат trace ID — 32 hex символа (16 байт), совместимый с W3C Trace Context:
//
//	ctx = tracing.WithTraceID(ctx, tracing.GenerateTraceID())
package tracing

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID генерирует случайный trace ID через crypto/rand.
// Если crypto/rand недоступен, ID строится из времени и счётчика.
func GenerateTraceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackTraceID: %016x от uint64 всегда даёт 16 символов, итого 32.
func fallbackTraceID() string {
	counter := fallbackCounter.Add(1)
	return fmt.Sprintf("%016x%016x", uint64(time.Now().UnixNano()), counter)
}
