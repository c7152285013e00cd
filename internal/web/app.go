package web

import (
	"strconv"

	"github.com/rprtr258/imflux/internal/view"
)

const (
	headerID      ID = "app-header"
	counterID     ID = "counter-value"
	incrementID   ID = "counter-add"
	incrementText    = "Add"
)

// app renders one frame of the page: the header, the counter and its button.
type app func(f *frame, props view.CounterProps)

func counterApp(headerHTML string) app {
	return func(f *frame, props view.CounterProps) {
		f.html(headerID, `<div id='`+string(headerID)+`'>`+headerHTML+`</div>`)
		f.heading(counterID, strconv.Itoa(props.Counter))
		if f.button(incrementID, incrementText) {
			props.OnIncrement()
		}
	}
}
