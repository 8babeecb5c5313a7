package pages

import (
	"github.com/hwright/contactform/internal/domain"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AdminMessages renders the read-only listing of stored contact messages,
// newest first.
func AdminMessages(messages []*domain.ContactMessage) cmp.Node {
	rows := make([]cmp.Node, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, g.Tr(
			g.Td(g.Class("border px-3 py-2"), cmp.Text(m.Email)),
			g.Td(g.Class("border px-3 py-2"), cmp.Text(m.Name)),
			g.Td(g.Class("border px-3 py-2"), cmp.Text(m.Subject)),
			g.Td(g.Class("border px-3 py-2"), cmp.Text(m.CreatedOn.Format("2006-01-02 15:04:05"))),
		))
	}

	return g.Div(
		g.Class("container mx-auto p-8"),
		g.H1(
			g.Class("text-2xl font-bold mb-6"),
			cmp.Text("Contact form messages"),
		),
		g.Table(
			g.Class("w-full border-collapse bg-white shadow rounded"),
			g.THead(
				g.Tr(
					headerCell("Email"),
					headerCell("Name"),
					headerCell("Subject"),
					headerCell("Created on"),
				),
			),
			g.TBody(rows...),
		),
	)
}

func headerCell(label string) cmp.Node {
	return g.Th(
		g.Class("border px-3 py-2 text-left bg-gray-50"),
		cmp.Text(label),
	)
}
