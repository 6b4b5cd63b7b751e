// Package iocli отделяет команды клиента от терминала.
package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод команды. Write позволяет выводить шаблоны напрямую.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
