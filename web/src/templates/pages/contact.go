package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ContactData is the view model for the contact form: submitted values for
// re-rendering plus per-field error messages keyed by input name.
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
}

// Contact renders the contact form. On a failed submission the fields keep
// their submitted values and field errors appear under the offending inputs.
func Contact(data ContactData) cmp.Node {
	return g.Div(
		g.Class("container mx-auto p-8 max-w-xl"),
		g.Div(
			g.Class("bg-white shadow rounded-xl p-8"),
			g.H1(
				g.Class("text-2xl font-bold mb-6"),
				cmp.Text("Contact us"),
			),
			g.Form(
				g.ID("contact-form"),
				g.Method("post"),
				g.Action("/"),
				hx.Boost("true"),
				textField("name", "Name", data.Name, data.Errors),
				textField("email", "Email", data.Email, data.Errors),
				textField("subject", "Subject", data.Subject, data.Errors),
				messageField(data.Message, data.Errors),
				g.Button(
					g.Type("submit"),
					g.Class("bg-indigo-600 text-white rounded px-4 py-2"),
					cmp.Text("Send message"),
				),
			),
		),
	)
}

func textField(name, label, value string, errs map[string]string) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		g.Label(
			g.For(name),
			g.Class("block font-medium mb-1"),
			cmp.Text(label),
		),
		g.Input(
			g.Type("text"),
			g.ID(name),
			g.Name(name),
			g.Value(value),
			g.Class("w-full border rounded px-3 py-2"),
		),
		fieldError(name, errs),
	)
}

func messageField(value string, errs map[string]string) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		g.Label(
			g.For("message"),
			g.Class("block font-medium mb-1"),
			cmp.Text("Message"),
		),
		g.Textarea(
			g.ID("message"),
			g.Name("message"),
			g.Rows("6"),
			g.Class("w-full border rounded px-3 py-2"),
			cmp.Text(value),
		),
		fieldError("message", errs),
	)
}

func fieldError(name string, errs map[string]string) cmp.Node {
	msg, ok := errs[name]
	if !ok {
		return cmp.Group(nil)
	}
	return g.P(
		g.Class("text-red-600 text-sm mt-1"),
		g.DataAttr("field-error", name),
		cmp.Text(msg),
	)
}
