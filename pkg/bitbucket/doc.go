// Package bitbucket предоставляет HTTP-клиент REST API Bitbucket Server.
//
// Client выполняет GET/POST/PUT/DELETE с JSON-телами и необязательной
// HTTP Basic аутентификацией. Ответы с ошибкой сервера ({"errors": [...]})
// превращаются в *BitbucketError с кодом по HTTP статусу:
//
//	err := client.Get(ctx, u, &project)
//	if bitbucket.IsNotFoundError(err) {
//	    // проект не существует
//	}
//
// Повторные попытки не выполняются. Каждый запрос логируется на уровне Debug,
// учитывается в metrics.Collector и оборачивается в OTel span.
package bitbucket
