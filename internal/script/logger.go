package script

//go:generate mockgen -source logger.go -destination internal/mocks/logger_mock.go -package mocks

// Logger абстракция предназначенная для логирования в строго определённых ситуациях
// при исполнении сценария. Реализация логирования должна делаться пользователями.
type Logger interface {
	// UnknownCommand строка сценария с неизвестной командой, строка пропускается.
	UnknownCommand(line int, command string)
	// MissingArgument команде требуется значение, но оно не указано.
	MissingArgument(line int, command string)
	// NoCurrentItem команда требует текущего элемента, а его нет. Команда пропускается.
	NoCurrentItem(line int, command string)
}
