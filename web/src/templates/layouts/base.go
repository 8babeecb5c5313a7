package layouts

import (
	"github.com/hwright/contactform/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Contact"
	}
	return "Contact"
}

// Base wraps page content in the shared HTML shell and renders any flash
// messages above it.
func Base(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
			),
			g.Body(
				g.Class("bg-gray-100 min-h-screen"),
				flashBanner(flashes),
				g.Main(content),
			),
		),
	)
}

// flashBanner renders success and error flash messages, if any.
func flashBanner(flashes view.FlashData) cmp.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return cmp.Group(nil)
	}
	return g.Div(
		g.Class("container mx-auto px-8 pt-4"),
		cmp.Group(mapStrings(flashes.Success, func(msg string) cmp.Node {
			return g.Div(
				g.Class("bg-green-100 border border-green-300 text-green-800 rounded p-3 mb-2"),
				g.Role("status"),
				cmp.Text(msg),
			)
		})),
		cmp.Group(mapStrings(flashes.Error, func(msg string) cmp.Node {
			return g.Div(
				g.Class("bg-red-100 border border-red-300 text-red-800 rounded p-3 mb-2"),
				g.Role("alert"),
				cmp.Text(msg),
			)
		})),
	)
}

func mapStrings(values []string, fn func(string) cmp.Node) []cmp.Node {
	nodes := make([]cmp.Node, 0, len(values))
	for _, v := range values {
		nodes = append(nodes, fn(v))
	}
	return nodes
}
