package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод CLI. В тестах заменяется на IOMock
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
