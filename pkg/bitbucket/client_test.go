package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Kargones/bitbucket-client/pkg/logging"
	"github.com/Kargones/bitbucket-client/pkg/models"
	"github.com/Kargones/bitbucket-client/pkg/uri"
)

const projectPayload = `{
  "key": "PRJ",
  "id": 1,
  "name": "My Cool Project",
  "description": "The description for my cool project.",
  "public": true,
  "type": "NORMAL",
  "links": {"self": [{"href": "http://link/to/project"}]}
}`

const notFoundPayload = `{"errors":[{"context":null,"message":"Project x not found","exceptionName":"com.atlassian.bitbucket.project.NoSuchProjectException"}]}`

// recordingCollector запоминает вызовы RecordRequest.
type recordingCollector struct {
	methods  []string
	statuses []int
	pages    []string
}

func (r *recordingCollector) RecordRequest(method string, status int, _ time.Duration) {
	r.methods = append(r.methods, method)
	r.statuses = append(r.statuses, status)
}
func (r *recordingCollector) RecordPage(resource string)     { r.pages = append(r.pages, resource) }
func (r *recordingCollector) Push(_ context.Context) error { return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	client, err := NewClient(Config{Host: host}, opts...)
	require.NoError(t, err)

	base, err := uri.New().Host(host).Build()
	require.NoError(t, err)
	return client, base
}

func TestClient_Get(t *testing.T) {
	var gotPath, gotAccept, gotAuth string
	client, base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, projectPayload)
	})

	var project models.Project
	require.NoError(t, client.Get(context.Background(), base+"/projects/PRJ", &project))

	assert.Equal(t, "/rest/api/1.0/projects/PRJ", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotAuth, "анонимный клиент не отправляет Authorization")
	assert.Equal(t, "PRJ", project.Key)
	assert.Equal(t, "http://link/to/project", project.Links.SelfHref())
}

func TestClient_BasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "george" || pass != "test" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"errors":[{"context":null,"message":"Authentication failed. Please check your credentials and try again.","exceptionName":"com.atlassian.bitbucket.auth.IncorrectPasswordAuthenticationException"}]}`)
			return
		}
		_, _ = io.WriteString(w, projectPayload)
	}))
	defer server.Close()
	host := strings.TrimPrefix(server.URL, "http://")

	authed, err := NewClient(Config{Host: host, Credentials: &Credentials{Username: "george", Password: "test"}})
	require.NoError(t, err)
	var project models.Project
	require.NoError(t, authed.Get(context.Background(), server.URL+"/rest/api/1.0/projects/PRJ", &project))

	wrong, err := NewClient(Config{Host: host, Credentials: &Credentials{Username: "george", Password: "bad"}})
	require.NoError(t, err)
	err = wrong.Get(context.Background(), server.URL+"/rest/api/1.0/projects/PRJ", &project)
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
}

func TestClient_PostPut(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client, u string, body, out any) error
		verb string
	}{
		{"post", func(c *Client, u string, body, out any) error { return c.Post(context.Background(), u, body, out) }, http.MethodPost},
		{"put", func(c *Client, u string, body, out any) error { return c.Put(context.Background(), u, body, out) }, http.MethodPut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotContentType string
			var gotBody models.CreateProject
			client, base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotContentType = r.Header.Get("Content-Type")
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusCreated)
				_, _ = io.WriteString(w, projectPayload)
			})

			var project models.Project
			body := models.CreateProject{Key: "PRJ", Name: "My Cool Project"}
			require.NoError(t, tt.call(client, base+"/projects", body, &project))

			assert.Equal(t, tt.verb, gotMethod)
			assert.Equal(t, "application/json", gotContentType)
			assert.Equal(t, body, gotBody)
			assert.Equal(t, "PRJ", project.Key)
		})
	}
}

// TestClient_NoContent проверяет, что пустое тело успешного ответа не декодируется.
func TestClient_NoContent(t *testing.T) {
	client, base := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var project models.Project
	require.NoError(t, client.Post(context.Background(), base+"/projects/PRJ/repos/repo/pull-requests/1/watch", nil, &project))
	assert.Empty(t, project.Key)
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{"202 с телом", http.StatusAccepted, `{"context":null,"message":"scheduled"}`, false},
		{"204", http.StatusNoContent, "", false},
		{"тело не JSON", http.StatusOK, "deleted", false},
		{"404", http.StatusNotFound, notFoundPayload, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod string
			client, base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := client.Delete(context.Background(), base+"/projects/PRJ")
			assert.Equal(t, http.MethodDelete, gotMethod)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_ServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
		wantServer  int
	}{
		{
			name:        "404 с одной ошибкой",
			status:      http.StatusNotFound,
			body:        notFoundPayload,
			wantCode:    ErrBitbucketNotFound,
			wantMessage: "Project x not found",
			wantServer:  1,
		},
		{
			name:        "409 с несколькими ошибками",
			status:      http.StatusConflict,
			body:        `{"errors":[{"context":"name","message":"first","exceptionName":"A"},{"context":null,"message":"second","exceptionName":"B"}]}`,
			wantCode:    ErrBitbucketAPI,
			wantMessage: "first; second",
			wantServer:  2,
		},
		{
			name:        "403",
			status:      http.StatusForbidden,
			body:        `{"errors":[{"context":null,"message":"denied","exceptionName":"AuthorisationException"}]}`,
			wantCode:    ErrBitbucketAuth,
			wantMessage: "denied",
			wantServer:  1,
		},
		{
			name:        "500 не JSON",
			status:      http.StatusInternalServerError,
			body:        "<html>oops</html>",
			wantCode:    ErrBitbucketAPI,
			wantMessage: "неожиданный статус ответа 500 Internal Server Error",
		},
		{
			name:        "404 без списка ошибок",
			status:      http.StatusNotFound,
			body:        `{}`,
			wantCode:    ErrBitbucketNotFound,
			wantMessage: "неожиданный статус ответа 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, base := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			var project models.Project
			err := client.Get(context.Background(), base+"/projects/x", &project)
			require.Error(t, err)

			var bbErr *BitbucketError
			require.ErrorAs(t, err, &bbErr)
			assert.Equal(t, tt.wantCode, bbErr.Code)
			assert.Equal(t, tt.wantMessage, bbErr.Message)
			assert.Equal(t, tt.status, bbErr.StatusCode)
			assert.Len(t, bbErr.ServerErrors, tt.wantServer)
			if tt.wantServer == 0 {
				assert.NotNil(t, bbErr.Cause)
				assert.NoError(t, bbErr.Details())
			} else {
				assert.Error(t, bbErr.Details())
			}
		})
	}
}

func TestClient_DecodeError(t *testing.T) {
	client, base := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"key": 42`)
	})

	var project models.Project
	err := client.Get(context.Background(), base+"/projects/PRJ", &project)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestClient_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	client, err := NewClient(Config{Host: host})
	require.NoError(t, err)

	err = client.Get(context.Background(), "http://"+host+"/rest/api/1.0/projects", nil)
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(Config{Host: strings.TrimPrefix(server.URL, "http://"), Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	err = client.Get(context.Background(), server.URL+"/rest/api/1.0/projects", nil)
	require.Error(t, err)
	assert.True(t, IsTimeoutError(err))
}

// TestClient_Observability проверяет метрики, span и лог одного запроса.
func TestClient_Observability(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	collector := &recordingCollector{}
	var logs bytes.Buffer
	logger := logging.NewLoggerWithWriter(logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}, &logs)

	client, base := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, notFoundPayload)
	}, WithTracerProvider(tp), WithCollector(collector), WithLogger(logger))

	err := client.Get(context.Background(), base+"/projects/x", nil)
	require.Error(t, err)
	client.RecordPage("projects")

	assert.Equal(t, []string{http.MethodGet}, collector.methods)
	assert.Equal(t, []int{http.StatusNotFound}, collector.statuses)
	assert.Equal(t, []string{"projects"}, collector.pages)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "bitbucket GET", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusNotFound))

	assert.Contains(t, logs.String(), "bitbucket: запрос завершился ошибкой")
	assert.Contains(t, logs.String(), `"trace_id"`)
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"только host", Config{Host: "localhost:7990"}, false},
		{"https с учётными данными", Config{Scheme: uri.HTTPS, Host: "bb", Credentials: &Credentials{Username: "u", Password: "p"}}, false},
		{"без host", Config{}, true},
		{"неизвестная схема", Config{Host: "bb", Scheme: uri.Scheme(7)}, true},
		{"учётные данные без имени", Config{Host: "bb", Credentials: &Credentials{Password: "p"}}, true},
		{"токен без имени", Config{Host: "bb", Credentials: &Credentials{Token: "t"}}, false},
		{"отрицательный таймаут", Config{Host: "bb", Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.config.Host, client.Host())
			assert.Equal(t, tt.config.Scheme, client.Scheme())
		})
	}
}

func TestCredentials_String(t *testing.T) {
	creds := Credentials{Username: "george", Password: "secret"}
	assert.Equal(t, "george:***", creds.String())
	assert.Equal(t, "token:***", Credentials{Token: "secret"}.String())
}

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	client, base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, projectPayload)
	})
	client.config.Credentials = &Credentials{Token: "token"}

	require.NoError(t, client.Get(context.Background(), base+"/projects/PRJ", nil))
	assert.Equal(t, "Bearer token", gotAuth)
}
