package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/projection"
)

// rowView строка списка для вывода
type rowView struct {
	Num    int
	Indent string
	Item   models.Item
}

const listTemplate = `
{{- if eq (len .) 0 -}}
List is empty.

Use 'listsync add <text>' to add your first item.
{{ else -}}
{{- range . }}
{{ printf "%3d" .Num }}  {{ .Indent }}{{ mark .Item }} {{ .Item.Text }}{{ if .Item.Archived }}  (archived){{ end }}
{{- end }}
{{ end -}}
`

const itemTemplate = `
=== {{ kind . }} ===

ID:        {{ .ID }}
Text:      {{ .Text }}
Position:  {{ .Position }}
{{- if .IsSection }}
Level:     {{ .Level }}
{{- else }}
Indented:  {{ .Indented }}
Important: {{ .Important }}
Completed: {{ .Completed }}{{ with .CompletedAt }} ({{ stamp . }}){{ end }}
{{- end }}
{{- with .ParentID }}
Parent:    {{ . }}
{{- end }}
{{- if .Archived }}
Archived:  {{ with .ArchivedAt }}{{ stamp . }}{{ else }}yes{{ end }}
{{- end }}
Created:   {{ stamp .CreatedAt }}
`

const statusTemplate = `
=== Sync Status ===

Server:    {{ if .Server }}{{ .Server }}{{ else }}not configured{{ end }}
{{- if .Session }}
User:      {{ .Session.Username }}
Expires:   {{ unix .Session.ExpiresAt }}
{{- else }}
User:      not logged in
{{- end }}
State:     {{ .State }}
Cursor:    {{ .Cursor }}
Unpushed:  {{ .Unpushed }}
`

var funcs = template.FuncMap{
	"mark": mark,
	"kind": func(it models.Item) string {
		if it.IsSection() {
			return fmt.Sprintf("Section (level %d)", it.SectionLevel())
		}
		return "Task"
	},
	"unix": func(sec int64) string {
		return time.Unix(sec, 0).Format("2006-01-02 15:04:05")
	},
	"stamp": func(ms any) string {
		switch v := ms.(type) {
		case int64:
			return time.UnixMilli(v).Format("2006-01-02 15:04:05")
		case *int64:
			if v == nil {
				return ""
			}
			return time.UnixMilli(*v).Format("2006-01-02 15:04:05")
		}
		return fmt.Sprint(ms)
	},
}

var (
	listTmpl   = template.Must(template.New("list").Funcs(funcs).Parse(listTemplate))
	itemTmpl   = template.Must(template.New("item").Funcs(funcs).Parse(itemTemplate))
	statusTmpl = template.Must(template.New("status").Funcs(funcs).Parse(statusTemplate))
)

func mark(it models.Item) string {
	if it.IsSection() {
		return strings.Repeat("#", int(it.SectionLevel())+1)
	}
	m := "[ ]"
	if it.Completed {
		m = "[x]"
	}
	if it.Important {
		m += "!"
	}
	return m
}

// renderList выводит строки; номер строки совпадает с номером в resolveID,
// поэтому скрытые архивные элементы не сдвигают нумерацию
func renderList(w io.Writer, rows []projection.Row, all bool) error {
	views := make([]rowView, 0, len(rows))
	for i, r := range rows {
		if r.Item.Archived && !all {
			continue
		}
		views = append(views, rowView{
			Num:    i + 1,
			Indent: strings.Repeat("  ", r.Depth),
			Item:   r.Item,
		})
	}
	return listTmpl.Execute(w, views)
}
