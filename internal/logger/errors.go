package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
)

// writeErrors counts events a console or rolling file writer rejected.
var writeErrors = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "log_write_errors_total",
	Help: "Number of log events that could not be written.",
})

// errorOutput receives the failure reports of ErrorHandler.
var errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler is installed as zerolog.ErrorHandler by Init.
// A lost event, e.g. a rolling file on a full disk, is counted in
// log_write_errors_total and reported on stderr, which bypasses the broken writer.
func ErrorHandler(err error) {
	writeErrors.Inc()

	_, _ = fmt.Fprintf(errorOutput, "interior-site: log event lost: %v\n", err)
}
