// Package handlers явно регистрирует все обработчики команд bbctl.
// Явная регистрация вместо init() делает граф зависимостей видимым
// и избавляет импорт пакетов от побочных эффектов.
package handlers

import (
	"github.com/Kargones/bitbucket-client/internal/command/handlers/branchhandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/commithandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/prhandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/projecthandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/repohandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/serverinfo"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/userhandler"
	"github.com/Kargones/bitbucket-client/internal/command/handlers/version"
)

// RegisterAll регистрирует все обработчики в глобальном реестре.
// Вызывается один раз из main() до использования команд.
func RegisterAll() {
	version.RegisterCmd()
	serverinfo.RegisterCmd()
	projecthandler.RegisterCmd()
	repohandler.RegisterCmd()
	branchhandler.RegisterCmd()
	commithandler.RegisterCmd()
	prhandler.RegisterCmd()
	userhandler.RegisterCmd()
}
