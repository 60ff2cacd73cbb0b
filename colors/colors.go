package colors

import (
	"net/http"

	"github.com/fatih/color"
)

// Output is left uncolored when stdout isn't a terminal
var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
)

// HTTPStatus colors a response status for request logs
func HTTPStatus(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return Red(status)
	case status >= http.StatusBadRequest:
		return Yellow(status)
	}

	return Green(status)
}
