// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// TemplateForm carries the editable fields of an email template.
type TemplateForm struct {
	Title        string `form:"title,optional"`
	Subject      string `form:"subject,optional"`
	Header       string `form:"header,optional"`
	Body         string `form:"body,optional"`
	ButtonText   string `form:"button_text,optional"`
	ButtonLink   string `form:"button_link,optional"`
	Footer       string `form:"footer,optional"`
	TemplateName string `form:"template_name,optional"`
}

type TemplateIdRequest struct {
	Id int64 `path:"id"`
}

type ImageNameRequest struct {
	Filename string `path:"filename"`
}

type StatusRequest struct {
	Success string `form:"success,optional"`
	Error   string `form:"error,optional"`
}

type ImportRequest struct {
	ImportTitle string `form:"import_title,optional"`
}

type SendTestRequest struct {
	To string `form:"to,optional"`
}

// LivePreviewSignals are the datastar signals posted while the form is edited.
type LivePreviewSignals struct {
	TemplateName string `json:"templateName"`
	Header       string `json:"header"`
	Body         string `json:"body"`
	ButtonText   string `json:"buttonText"`
	ButtonLink   string `json:"buttonLink"`
	Footer       string `json:"footer"`
}

type TemplateItem struct {
	Id           int64
	Title        string
	Subject      string
	Header       string
	Body         string
	ButtonText   string
	ButtonLink   string
	Footer       string
	TemplateName string
	CreatedAt    string
}

type LayoutOption struct {
	Name        string
	Description string
}

type ImageItem struct {
	Filename string
	Url      string
}

type IndexPage struct {
	Templates []TemplateItem
	Images    []ImageItem
	Layouts   []LayoutOption
	Edit      *TemplateItem
	Success   string
	Error     string
}

type SendEventItem struct {
	EventType string
	Recipient string
	Details   string
	CreatedAt string
}

type ViewPage struct {
	Template TemplateItem
	Layout   string
	Html     string
	Issues   []string
	Events   []SendEventItem
}

type ExportFile struct {
	Filename string
	Html     string
}
