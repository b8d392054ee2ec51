// Package smoketest содержит smoke-тесты системной целостности bbctl.
//
// Smoke-тесты проверяют:
//   - Регистрацию всех команд в глобальном реестре
//   - Валидность Name(), Description() и ArgNames() каждого handler
//   - Уникальность и детерминированность списка команд
//   - Вывод результата каждой команды при ошибке сервера в форматах json и text
//
// Это НЕ unit-тесты отдельных handlers — это тесты уровня системной целостности.
// Unit-тесты находятся в _test.go каждого handler-пакета.
package smoketest
