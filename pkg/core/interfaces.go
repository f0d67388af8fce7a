package core

// Logger is the logging sink used by the renderer and the CLI.
// Shading code never logs.
type Logger interface {
	Printf(format string, args ...interface{})
}
