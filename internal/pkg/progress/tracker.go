package progress

import (
	"fmt"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
)

// Tracker — REST клиент, сообщающий Progress о каждой загруженной странице.
// Учёт страниц внутреннего клиента (метрики) сохраняется.
type Tracker struct {
	bitbucket.RestClient
	progress Progress
	pages    map[string]int64
	started  bool
}

// Track оборачивает client так, что загрузка страниц отображается через p.
func Track(client bitbucket.RestClient, p Progress) *Tracker {
	return &Tracker{
		RestClient: client,
		progress:   p,
		pages:      make(map[string]int64),
	}
}

// RecordPage реализует bitbucket.PageRecorder.
func (t *Tracker) RecordPage(resource string) {
	if rec, ok := t.RestClient.(bitbucket.PageRecorder); ok {
		rec.RecordPage(resource)
	}
	message := fmt.Sprintf("загрузка %s", resource)
	if !t.started {
		t.started = true
		t.progress.Start(message)
	}
	t.pages[resource]++
	t.progress.Update(t.pages[resource], message)
}

// Pages возвращает число страниц ресурса, загруженных через трекер.
func (t *Tracker) Pages(resource string) int64 {
	return t.pages[resource]
}

// Finish завершает индикатор, если была загружена хотя бы одна страница.
func (t *Tracker) Finish() {
	if t.started {
		t.progress.Finish()
		t.started = false
	}
}
