// Package paging собирает постраничные коллекции REST API в один срез.
package paging

import (
	"context"
	"strconv"
	"strings"

	"github.com/Kargones/bitbucket-client/internal/pkg/apperrors"
	"github.com/Kargones/bitbucket-client/pkg/models"
)

// PageLimit — размер запрашиваемой страницы.
const PageLimit = 50

// ErrMissingCursor возвращается, если сервер отдал непоследнюю страницу без nextPageStart.
var ErrMissingCursor = apperrors.NewAppError(apperrors.ErrPagingCursor,
	"сервер вернул непоследнюю страницу без nextPageStart", nil)

// FetchFunc загружает одну страницу по полному URI.
type FetchFunc[T any] func(ctx context.Context, uri string) (*models.PagedResponse[T], error)

// Accumulate последовательно загружает все страницы коллекции uri
// и возвращает значения в порядке поступления.
//
// Первый запрос — uri с limit=50, последующие дополняются start=<nextPageStart>.
// Любая ошибка загрузки прерывает сбор без частичного результата.
func Accumulate[T any](ctx context.Context, uri string, fetch FetchFunc[T]) ([]T, error) {
	base := WithLimit(uri, PageLimit)

	var values []T
	next := base
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := fetch(ctx, next)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, ErrMissingCursor
		}

		values = append(values, page.Values...)
		if page.IsLastPage {
			return values, nil
		}
		if page.NextPageStart == nil {
			return nil, ErrMissingCursor
		}
		next = base + "&start=" + strconv.FormatUint(uint64(*page.NextPageStart), 10)
	}
}

// WithLimit добавляет параметр limit, учитывая уже существующую query-часть.
func WithLimit(uri string, limit int) string {
	return WithParam(uri, "limit", strconv.Itoa(limit))
}

// WithParam добавляет к uri параметр key=value через "?" или "&".
func WithParam(uri, key, value string) string {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + key + "=" + value
}
