package web

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// bootstrapJS keeps a websocket open, applies document commands and
// forwards clicks.
const bootstrapJS = `window.onload = () => {
	const body = document.body;

	if (!window["WebSocket"]) {
		body.innerHTML = "<b>Your browser does not support WebSockets.</b>";
		return;
	}

	let ws;
	const connect = () => {
		document.body.innerHTML = "";
		ws = new WebSocket("ws://" + document.location.host + "/ws");
		ws.onclose = (e) => {
			console.log("Socket is closed. Reconnect will be attempted in 1 second.", e.reason);
			setTimeout(() => {
				connect();
			}, 1000);
		};
		ws.onerror = (err) => {
			console.error("Socket encountered error: ", err, "Closing socket");
			ws.close();
		};
		ws.onmessage = (e) => {
			const message = JSON.parse(e.data);
			switch (message.kind) {
			case "ADD":
				body.insertAdjacentHTML("beforeend", message.data);
				break;
			case "REMOVE":
				document.getElementById(message.id).remove();
				break;
			case "REPLACE":
				document.getElementById(message.id).outerHTML = message.data;
				break;
			}
		};
	};

	connect();
	window.IMFLUX_notify = (msg) => {
		ws.send(JSON.stringify(msg));
	};
};
`

// renderPage writes the bootstrap document. The body starts empty; every
// element arrives over the session.
func renderPage(w io.Writer, title string) error {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Type("text/javascript"), g.Raw(bootstrapJS)),
			),
			h.Body(),
		),
	).Render(w)
}
