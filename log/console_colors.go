package log

// ConsoleColorsType returns the ANSI directives used to color log lines
type ConsoleColorsType struct{}

// Red is used for errors
func (ConsoleColorsType) Red() string {
	return "\033[31m"
}

// Green is used for success lines
func (ConsoleColorsType) Green() string {
	return "\033[32m"
}

// Yellow is used for warnings
func (ConsoleColorsType) Yellow() string {
	return "\033[33m"
}

// Blue is used for info lines
func (ConsoleColorsType) Blue() string {
	return "\033[34m"
}

// Cyan is used for debug lines
func (ConsoleColorsType) Cyan() string {
	return "\033[36m"
}

// Reset restores the terminal color
func (ConsoleColorsType) Reset() string {
	return "\033[0m"
}

// ConsoleColors is the ConsoleColorsType singleton
var ConsoleColors = ConsoleColorsType{}
