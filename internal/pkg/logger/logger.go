// Package logger provides the process-wide structured logger.
package logger

// Logger defines the logging interface.
//
// A call with a message followed by an even number of arguments whose keys
// are strings is logged as structured attributes:
//
//	log.Info("portfolio item created", "id", item.ID, "order", item.DisplayOrder)
//
// Any other argument list is concatenated with fmt.Sprint.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
