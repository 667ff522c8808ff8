// Package ui renders the mailcraft editor pages with gomponents and datastar.
package ui

import (
	"fmt"
	"net/url"

	"github.com/joeblew999/plat-mailcraft/internal/types"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

const livePreview = "@post('/preview/live')"

var successMessages = map[string]string{
	"saved":          "Template saved.",
	"updated":        "Template updated.",
	"deleted":        "Template deleted.",
	"imported":       "Template imported.",
	"image_uploaded": "Image uploaded.",
	"image_deleted":  "Image deleted.",
	"test_queued":    "Test email queued.",
}

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.A(h.Class("nav-brand"), h.Href("/"), g.Text("mailcraft")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Editor")),
					h.A(h.Href("/#templates"), g.Text("Templates")),
					h.A(h.Href("/#images"), g.Text("Images")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("mailcraft - HTML email template builder"),
			),
		),
	)
}

// IndexPage renders the editor, the saved templates and the uploaded images.
func IndexPage(p *types.IndexPage, csrf string) g.Node {
	var form types.TemplateItem
	action, submit := "/save", "Save Template"
	if p.Edit != nil {
		form = *p.Edit
		action, submit = fmt.Sprintf("/update/%d", p.Edit.Id), "Update Template"
	}
	if form.TemplateName == "" && len(p.Layouts) > 0 {
		form.TemplateName = p.Layouts[0].Name
	}

	return Layout("mailcraft",
		data.Signals(map[string]any{
			"templateName": form.TemplateName,
			"header":       form.Header,
			"body":         form.Body,
			"buttonText":   form.ButtonText,
			"buttonLink":   form.ButtonLink,
			"footer":       form.Footer,
			"previewHtml":  "",
			"previewError": "",
		}),
		data.Init(livePreview),

		StatusBanner(p.Success, p.Error),

		h.Div(h.Class("editor-grid"),
			editorForm(form, p.Layouts, action, submit, csrf, p.Edit != nil),
			previewPanel(),
		),

		h.Div(h.Class("two-col"),
			importSection(csrf),
			uploadSection(csrf),
		),
		imagesSection(p.Images, csrf),
		templatesSection(p.Templates, csrf),
	)
}

// StatusBanner shows the outcome of the last form submission.
func StatusBanner(success, errMsg string) g.Node {
	if errMsg != "" {
		return h.Div(h.Class("banner banner-error"), g.Text(errMsg))
	}
	if msg, ok := successMessages[success]; ok {
		return h.Div(h.Class("banner banner-success"), g.Text(msg))
	}
	return g.Group(nil)
}

func csrfInput(token string) g.Node {
	return h.Input(h.Type("hidden"), h.Name("csrf_token"), h.Value(token))
}

func editorForm(f types.TemplateItem, layouts []types.LayoutOption, action, submit, csrf string, editing bool) g.Node {
	return h.Form(h.Class("card editor"), h.Method("post"), h.Action(action), h.EncType("multipart/form-data"),
		csrfInput(csrf),
		h.H2(g.If(editing, g.Text("Edit Template")), g.If(!editing, g.Text("New Template"))),

		textField("Title", "title", f.Title, "", 200, h.Required()),
		textField("Subject", "subject", f.Subject, "", 300),

		h.Div(h.Class("form-group"),
			h.Label(h.For("template_name"), g.Text("Layout")),
			h.Select(h.ID("template_name"), h.Name("template_name"),
				data.Bind("templateName"),
				data.On("change", livePreview),
				g.Map(layouts, func(o types.LayoutOption) g.Node {
					return h.Option(h.Value(o.Name),
						g.If(o.Name == f.TemplateName, h.Selected()),
						g.Text(o.Name+" - "+o.Description),
					)
				}),
			),
		),

		textField("Header", "header", f.Header, "header", 0),
		h.Div(h.Class("form-group"),
			h.Label(h.For("body"), g.Text("Body")),
			h.Textarea(h.ID("body"), h.Name("body"), h.Rows("8"),
				data.Bind("body"),
				data.On("input", livePreview),
				g.Text(f.Body),
			),
		),
		h.Div(h.Class("two-col"),
			textField("Button text", "button_text", f.ButtonText, "buttonText", 100),
			textField("Button link", "button_link", f.ButtonLink, "buttonLink", 500),
		),
		textField("Footer", "footer", f.Footer, "footer", 0),

		h.Div(h.Class("actions"),
			h.Button(h.Type("submit"), g.Text(submit)),
			h.Button(h.Type("submit"), h.Class("secondary"),
				g.Attr("formaction", "/preview"), g.Attr("formtarget", "_blank"),
				g.Text("Open Preview"),
			),
			h.Button(h.Type("submit"), h.Class("secondary"),
				g.Attr("formaction", "/export_current"),
				g.Text("Export HTML"),
			),
			g.If(editing, h.A(h.Class("button-link"), h.Href("/"), g.Text("Cancel"))),
		),
	)
}

// textField renders a labelled input. A non-empty signal binds it to the live preview.
func textField(label, name, value, signal string, maxLen int, extra ...g.Node) g.Node {
	attrs := []g.Node{h.ID(name), h.Name(name), h.Type("text"), h.Value(value)}
	if maxLen > 0 {
		attrs = append(attrs, g.Attr("maxlength", fmt.Sprint(maxLen)))
	}
	if signal != "" {
		attrs = append(attrs, data.Bind(signal), data.On("input", livePreview))
	}
	attrs = append(attrs, extra...)

	return h.Div(h.Class("form-group"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(attrs...),
	)
}

func previewPanel() g.Node {
	return h.Div(h.Class("card preview-panel"),
		h.H2(g.Text("Live Preview")),
		h.Div(h.Class("banner banner-error"),
			data.Show("$previewError"),
			data.Text("$previewError"),
		),
		h.IFrame(
			h.ID("preview-frame"),
			data.Attr("srcdoc", "$previewHtml"),
			h.StyleAttr("width: 100%; height: 640px; border: 1px solid #ddd; border-radius: 8px; background: white;"),
		),
	)
}

func importSection(csrf string) g.Node {
	return h.Form(h.Class("card"), h.Method("post"), h.Action("/import_html"), h.EncType("multipart/form-data"),
		csrfInput(csrf),
		h.H2(g.Text("Import HTML")),
		h.Div(h.Class("form-group"),
			h.Label(h.For("html_file"), g.Text("HTML file")),
			h.Input(h.ID("html_file"), h.Name("html_file"), h.Type("file"), h.Accept(".html,.htm,text/html")),
		),
		h.Div(h.Class("form-group"),
			h.Label(h.For("import_title"), g.Text("Title (optional)")),
			h.Input(h.ID("import_title"), h.Name("import_title"), h.Type("text"), g.Attr("maxlength", "200")),
		),
		h.Button(h.Type("submit"), g.Text("Import")),
	)
}

func uploadSection(csrf string) g.Node {
	return h.Form(h.Class("card"), h.Method("post"), h.Action("/upload_image"), h.EncType("multipart/form-data"),
		csrfInput(csrf),
		h.H2(g.Text("Upload Image")),
		h.Div(h.Class("form-group"),
			h.Label(h.For("image"), g.Text("PNG, JPG, GIF or WebP, up to 16 MiB")),
			h.Input(h.ID("image"), h.Name("image"), h.Type("file"), h.Accept(".png,.jpg,.jpeg,.gif,.webp")),
		),
		h.Button(h.Type("submit"), g.Text("Upload")),
	)
}

func imagesSection(images []types.ImageItem, csrf string) g.Node {
	return h.Section(h.ID("images"), h.Class("card"),
		h.H2(g.Text("Images")),
		g.If(len(images) == 0, h.P(h.Class("hint"), g.Text("No images uploaded yet."))),
		h.Div(h.Class("image-grid"),
			g.Map(images, func(img types.ImageItem) g.Node {
				return h.Div(h.Class("image-item"),
					h.Img(h.Src(img.Url), h.Alt(img.Filename)),
					h.Code(g.Text(img.Url)),
					h.Form(h.Method("post"), h.Action("/delete_image/"+url.PathEscape(img.Filename)),
						csrfInput(csrf),
						h.Button(h.Type("submit"), h.Class("danger small"), g.Text("Delete")),
					),
				)
			}),
		),
	)
}

func templatesSection(templates []types.TemplateItem, csrf string) g.Node {
	return h.Section(h.ID("templates"), h.Class("card"),
		h.H2(g.Text("Saved Templates")),
		g.If(len(templates) == 0, h.P(h.Class("hint"), g.Text("No templates saved yet."))),
		g.If(len(templates) > 0, h.Table(h.Class("templates"),
			h.THead(h.Tr(
				h.Th(g.Text("Title")),
				h.Th(g.Text("Subject")),
				h.Th(g.Text("Layout")),
				h.Th(g.Text("Created")),
				h.Th(g.Text("Actions")),
			)),
			h.TBody(g.Map(templates, func(t types.TemplateItem) g.Node {
				return templateRow(t, csrf)
			})),
		)),
	)
}

func templateRow(t types.TemplateItem, csrf string) g.Node {
	return h.Tr(
		h.Td(h.Strong(g.Text(t.Title))),
		h.Td(g.Text(t.Subject)),
		h.Td(h.Code(g.Text(t.TemplateName))),
		h.Td(h.Class("muted"), g.Text(t.CreatedAt)),
		h.Td(h.Class("row-actions"),
			h.A(h.Href(fmt.Sprintf("/view/%d", t.Id)), g.Text("View")),
			h.A(h.Href(fmt.Sprintf("/edit/%d", t.Id)), g.Text("Edit")),
			h.A(h.Href(fmt.Sprintf("/export/%d", t.Id)), g.Text("Export")),
			h.Form(h.Method("post"), h.Action(fmt.Sprintf("/delete/%d", t.Id)),
				g.Attr("onsubmit", "return confirm('Delete this template?')"),
				csrfInput(csrf),
				h.Button(h.Type("submit"), h.Class("danger small"), g.Text("Delete")),
			),
			h.Form(h.Class("inline"), h.Method("post"), h.Action(fmt.Sprintf("/send_test/%d", t.Id)),
				csrfInput(csrf),
				h.Input(h.Type("email"), h.Name("to"), h.Placeholder("test@example.com"), h.Required()),
				h.Button(h.Type("submit"), h.Class("small"), g.Text("Send test")),
			),
		),
	)
}

// ViewPage renders a stored template with compatibility hints and its test-send log.
func ViewPage(p *types.ViewPage) g.Node {
	t := p.Template
	return Layout(t.Title+" - mailcraft",
		h.Div(h.Class("card"),
			h.H1(g.Text(t.Title)),
			h.P(h.Strong(g.Text("Subject: ")), g.Text(t.Subject)),
			h.P(h.Strong(g.Text("Layout: ")), h.Code(g.Text(t.TemplateName)), g.Text(" "+p.Layout)),
			h.P(h.Class("muted"), g.Text("Created "+t.CreatedAt)),
			h.Div(h.Class("actions"),
				h.A(h.Class("button-link"), h.Href(fmt.Sprintf("/edit/%d", t.Id)), g.Text("Edit")),
				h.A(h.Class("button-link"), h.Href(fmt.Sprintf("/export/%d", t.Id)), g.Text("Export")),
				h.A(h.Class("button-link secondary"), h.Href("/"), g.Text("Back")),
			),
		),
		g.If(len(p.Issues) > 0, h.Div(h.Class("card"),
			h.H2(g.Text("Email client hints")),
			h.Ul(g.Map(p.Issues, func(issue string) g.Node { return h.Li(g.Text(issue)) })),
		)),
		h.Div(h.Class("card"),
			h.IFrame(
				h.ID("view-frame"),
				g.Attr("srcdoc", p.Html),
				h.StyleAttr("width: 100%; height: 720px; border: 1px solid #ddd; border-radius: 8px; background: white;"),
			),
		),
		h.Div(h.Class("card"),
			h.H2(g.Text("Test sends")),
			g.If(len(p.Events) == 0, h.P(h.Class("hint"), g.Text("No test sends yet."))),
			g.If(len(p.Events) > 0, h.Table(h.Class("templates"),
				h.THead(h.Tr(
					h.Th(g.Text("When")),
					h.Th(g.Text("Event")),
					h.Th(g.Text("Recipient")),
					h.Th(g.Text("Details")),
				)),
				h.TBody(g.Map(p.Events, func(e types.SendEventItem) g.Node {
					return h.Tr(
						h.Td(h.Class("muted"), g.Text(e.CreatedAt)),
						h.Td(h.Span(h.Class("event event-"+e.EventType), g.Text(e.EventType))),
						h.Td(g.Text(e.Recipient)),
						h.Td(g.Text(e.Details)),
					)
				})),
			)),
		),
	)
}
