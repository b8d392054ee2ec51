// Package bitbuckettest предоставляет тестовые утилиты для пакета bitbucket:
// мок-реализацию RestClient и хелперы для заполнения ответов.
package bitbuckettest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Kargones/bitbucket-client/pkg/bitbucket"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

// Compile-time проверки реализации интерфейсов
var (
	_ bitbucket.RestClient   = (*MockClient)(nil)
	_ bitbucket.PageRecorder = (*MockClient)(nil)
)

// DefaultHost — host, который MockClient возвращает по умолчанию.
const DefaultHost = "bitbucket.test"

// Call — запись об одном вызове MockClient.
type Call struct {
	Method string
	URI    string
	Body   any
}

// MockClient — мок-реализация bitbucket.RestClient с функциональными полями.
// Незаданные функции возвращают nil и не трогают out.
type MockClient struct {
	SchemeValue uri.Scheme
	HostValue   string

	GetFunc    func(ctx context.Context, resourceURI string, out any) error
	PostFunc   func(ctx context.Context, resourceURI string, body, out any) error
	PutFunc    func(ctx context.Context, resourceURI string, body, out any) error
	DeleteFunc func(ctx context.Context, resourceURI string) error

	mu    sync.Mutex
	calls []Call
	pages map[string]int
}

// NewMockClient создаёт MockClient для DefaultHost по HTTP.
func NewMockClient() *MockClient {
	return &MockClient{HostValue: DefaultHost}
}

func (m *MockClient) record(method, resourceURI string, body any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, URI: resourceURI, Body: body})
}

// Calls возвращает копию журнала вызовов.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// URIs возвращает URI всех вызовов по порядку.
func (m *MockClient) URIs() []string {
	calls := m.Calls()
	uris := make([]string, len(calls))
	for i, c := range calls {
		uris[i] = c.URI
	}
	return uris
}

func (m *MockClient) Scheme() uri.Scheme { return m.SchemeValue }
func (m *MockClient) Host() string       { return m.HostValue }

func (m *MockClient) Get(ctx context.Context, resourceURI string, out any) error {
	m.record("GET", resourceURI, nil)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, resourceURI, out)
	}
	return nil
}

func (m *MockClient) Post(ctx context.Context, resourceURI string, body, out any) error {
	m.record("POST", resourceURI, body)
	if m.PostFunc != nil {
		return m.PostFunc(ctx, resourceURI, body, out)
	}
	return nil
}

func (m *MockClient) Put(ctx context.Context, resourceURI string, body, out any) error {
	m.record("PUT", resourceURI, body)
	if m.PutFunc != nil {
		return m.PutFunc(ctx, resourceURI, body, out)
	}
	return nil
}

func (m *MockClient) Delete(ctx context.Context, resourceURI string) error {
	m.record("DELETE", resourceURI, nil)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, resourceURI)
	}
	return nil
}

// RecordPage считает страницы по ресурсу.
func (m *MockClient) RecordPage(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages == nil {
		m.pages = make(map[string]int)
	}
	m.pages[resource]++
}

// Pages возвращает количество учтённых страниц ресурса.
func (m *MockClient) Pages(resource string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pages[resource]
}

// Fill копирует value в out через JSON, как это делает настоящий клиент.
func Fill(out, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// FillJSON декодирует JSON-строку в out.
func FillJSON(out any, payload string) error {
	return json.Unmarshal([]byte(payload), out)
}
