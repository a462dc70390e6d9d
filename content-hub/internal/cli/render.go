package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/importer"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/models"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/normalize"
)

const maxCellWidth = 60

// Renderer prints command results as go-pretty tables or indented JSON.
type Renderer struct {
	out  io.Writer
	json bool
}

func NewRenderer(out io.Writer, asJSON bool) *Renderer {
	return &Renderer{out: out, json: asJSON}
}

func (r *Renderer) newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Items renders a content listing. Entities differ in shape, so the table
// shows the common columns and a title taken from title or name.
func (r *Renderer) Items(items []any) error {
	if r.json {
		return r.writeJSON(items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.out, "No items")
		return err
	}

	t := r.newTable(table.Row{"ID", "Title", "Published", "Sites", "Updated"})
	for _, item := range items {
		m, err := normalize.ToMap(item)
		if err != nil {
			return err
		}
		title := text(m["title"])
		if title == "" {
			title = text(m["name"])
		}
		t.AppendRow(table.Row{
			text(m["id"]),
			truncate(title),
			m["published"],
			sitesCell(m["sources"]),
			text(m["updated_at"]),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d items", len(items))})
	t.Render()
	return nil
}

// Item renders one entity as a field/value table in key order.
func (r *Renderer) Item(item any) error {
	if r.json {
		return r.writeJSON(item)
	}
	m, err := normalize.ToMap(item)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := r.newTable(table.Row{"Field", "Value"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, truncate(text(m[k]))})
	}
	t.Render()
	return nil
}

func (r *Renderer) Media(items []models.MediaItem) error {
	if r.json {
		return r.writeJSON(items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.out, "No media")
		return err
	}
	t := r.newTable(table.Row{"#", "Type", "Label", "URL", "Embed"})
	for i, m := range items {
		t.AppendRow(table.Row{i + 1, m.Type, m.Label, m.URL, m.EmbedURL})
	}
	t.Render()
	return nil
}

func (r *Renderer) Import(res *importer.Result) error {
	if r.json {
		return r.writeJSON(res)
	}
	if _, err := fmt.Fprintf(r.out, "Rows: %d  Created: %d  Failed: %d\n",
		res.Total, len(res.Created), len(res.Errors)); err != nil {
		return err
	}
	if len(res.Errors) == 0 {
		return nil
	}
	t := r.newTable(table.Row{"Row", "Error"})
	for _, e := range res.Errors {
		t.AppendRow(table.Row{e.Row, e.Error})
	}
	t.Render()
	return nil
}

func (r *Renderer) Names(names []string) error {
	if r.json {
		return r.writeJSON(names)
	}
	t := r.newTable(table.Row{"Resource"})
	for _, n := range names {
		t.AppendRow(table.Row{n})
	}
	t.Render()
	return nil
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any, map[string]any:
		data, _ := json.Marshal(x)
		return string(data)
	default:
		return fmt.Sprint(x)
	}
}

func sitesCell(v any) string {
	list, _ := v.([]any)
	if len(list) == 0 {
		return string(models.SiteAll)
	}
	parts := make([]string, 0, len(list))
	for _, s := range list {
		parts = append(parts, text(s))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string) string {
	if r := []rune(s); len(r) > maxCellWidth {
		return string(r[:maxCellWidth-1]) + "…"
	}
	return s
}
