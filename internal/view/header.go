package view

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MenuItem is one entry of the header navigation.
type MenuItem struct {
	Key   string
	Icon  string
	Label string
	// Href, when set, wraps the entry in a link opened in a new tab.
	Href string
}

// Header is the static navigation bar shown above the app.
type Header struct {
	Logo  string
	Items []MenuItem
	// Align is "end" to push the menu to the right edge.
	Align string
}

// AppHeader is the header used by the tool itself.
func AppHeader() Header {
	return Header{
		Logo:  "REACT MAKER",
		Align: "end",
		Items: []MenuItem{
			{Key: "mail", Icon: "github", Label: "本工具源码", Href: "http://example.com"},
			{Icon: "info-circle-o", Label: "意见和建议"},
			{Key: "app", Icon: "user", Label: "关于我"},
			{Icon: "coffee", Label: "捐助"},
			{Icon: "global", Label: "English"},
		},
	}
}

// ClassicHeader is the older layout: no logo, no external link.
func ClassicHeader() Header {
	return Header{
		Items: []MenuItem{
			{Key: "mail", Icon: "github", Label: "本工具源码"},
			{Key: "app", Icon: "user", Label: "关于我"},
			{Icon: "info-circle-o", Label: "意见和建议"},
			{Icon: "coffee", Label: "捐助"},
			{Icon: "global", Label: "English"},
		},
	}
}

// HeaderByVariant returns the header for a config variant name.
func HeaderByVariant(variant string) (Header, error) {
	switch variant {
	case "", "app":
		return AppHeader(), nil
	case "classic":
		return ClassicHeader(), nil
	default:
		return Header{}, fmt.Errorf("unknown header variant %q", variant)
	}
}

// Node builds the header element tree.
func (hd Header) Node() g.Node {
	style := "line-height: 64px;"
	if hd.Align == "end" {
		style += " display: flex; justify-content: flex-end;"
	}
	return h.Header(h.Class("layout-header"),
		g.If(hd.Logo != "", h.Div(h.Class("logo"), g.Text(hd.Logo))),
		h.Ul(h.Class("menu menu-horizontal menu-dark"), h.Style(style),
			g.Map(hd.Items, menuItemNode),
		),
	)
}

func menuItemNode(item MenuItem) g.Node {
	entry := g.Group{
		h.I(h.Class("anticon anticon-" + item.Icon)),
		h.Span(g.Text(item.Label)),
	}
	return h.Li(h.Class("menu-item"),
		g.If(item.Key != "", h.Data("key", item.Key)),
		g.If(item.Href != "", h.A(h.Href(item.Href), h.Target("_blank"), entry)),
		g.If(item.Href == "", entry),
	)
}

// RenderHTML renders the header markup.
func (hd Header) RenderHTML() (string, error) {
	var sb strings.Builder
	if err := hd.Node().Render(&sb); err != nil {
		return "", fmt.Errorf("render header: %w", err)
	}
	return sb.String(), nil
}
