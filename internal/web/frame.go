package web

import (
	"fmt"
	"html"
)

// ID identifies an element in the browser document.
type ID string

// Command kinds sent to the browser.
const (
	CommandAdd     = "ADD"
	CommandRemove  = "REMOVE"
	CommandReplace = "REPLACE"
)

// event is an incoming browser event, e.g. a button click.
type event struct {
	ID    ID     `json:"id"`
	Event string `json:"event"`
}

// command is an outgoing document update.
type command struct {
	ID   ID     `json:"id"`
	Data string `json:"data"`
	Kind string `json:"kind"`
}

type elemState struct {
	Markup  string
	button  bool
	clicked bool
}

// frame is an immediate-mode render pass. Each element call compares the
// markup with what the browser already has and queues the minimal command.
type frame struct {
	elems    *syncMap[ID, elemState]
	commands []command
}

func (f *frame) put(id ID, markup string, button bool) elemState {
	st, ok := f.elems.Get(id)
	switch {
	case !ok:
		st = elemState{Markup: markup, button: button}
		f.elems.Set(id, st)
		f.commands = append(f.commands, command{ID: id, Data: markup, Kind: CommandAdd})
	case st.Markup != markup:
		st.Markup = markup
		f.elems.Set(id, st)
		f.commands = append(f.commands, command{ID: id, Data: markup, Kind: CommandReplace})
	}
	return st
}

// html places trusted markup. The markup root must carry id.
func (f *frame) html(id ID, markup string) {
	f.put(id, markup, false)
}

func (f *frame) heading(id ID, text string) {
	f.put(id, fmt.Sprintf(`<h1 id='%s'>%s</h1>`, id, html.EscapeString(text)), false)
}

func (f *frame) text(id ID, text string) {
	f.put(id, fmt.Sprintf(`<div id='%s'>%s</div>`, id, html.EscapeString(text)), false)
}

// button reports whether the button was clicked since the previous frame.
func (f *frame) button(id ID, label string) bool {
	markup := fmt.Sprintf(
		`<button id='%[1]s' onclick='window.IMFLUX_notify({id: "%[1]s", event: "clicked"})'>%[2]s</button>`,
		id, html.EscapeString(label),
	)
	st := f.put(id, markup, true)
	if st.clicked {
		st.clicked = false
		f.elems.Set(id, st)
		return true
	}
	return false
}
