package output

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type Mode int

const (
	Text Mode = iota
	JSON
	Table
)

func (m Mode) String() string {
	switch m {
	case JSON:
		return "json"
	case Table:
		return "table"
	}
	return "text"
}

// Missing is printed in text and table output for empty fields.
const Missing = "-"

var ErrInvalidJSON = errors.New("response is not valid JSON")

// MaxCellWidth bounds table cells by display width.
const MaxCellWidth = 40

// View projects a response body onto rows of fields. List views project every
// element under Key; object views project the whole body as a single row.
type View struct {
	Header []string
	Key    string
	list   bool
	rows   func(body []byte) ([][]string, error)
}

// List builds a view over the array found at key ("" for a top-level array),
// decoding each element into T before projecting it.
func List[T any](key string, header []string, row func(T) []string) View {
	return View{
		Header: header,
		Key:    key,
		list:   true,
		rows: func(body []byte) ([][]string, error) {
			var items []T
			raw := elements(body, key)
			if !raw.Exists() || raw.Type == gjson.Null {
				return nil, nil
			}
			if err := json.Unmarshal([]byte(raw.Raw), &items); err != nil {
				return nil, errors.Wrap(err, "error decoding list")
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, row(item))
			}
			return rows, nil
		},
	}
}

// Object builds a view that decodes the whole body into T.
func Object[T any](header []string, row func(T) []string) View {
	return View{
		Header: header,
		rows: func(body []byte) ([][]string, error) {
			var item T
			if err := json.Unmarshal(body, &item); err != nil {
				return nil, errors.Wrap(err, "error decoding object")
			}
			return [][]string{row(item)}, nil
		},
	}
}

func elements(body []byte, key string) gjson.Result {
	if key == "" {
		return gjson.ParseBytes(body)
	}
	return gjson.GetBytes(body, key)
}

type Printer struct {
	Out  io.Writer
	Err  io.Writer
	Mode Mode
}

func NewPrinter(out, errOut io.Writer, mode Mode) *Printer {
	return &Printer{Out: out, Err: errOut, Mode: mode}
}

// Print renders body through v in the printer's mode. An empty body prints
// nothing.
func (p *Printer) Print(body []byte, v View) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return ErrInvalidJSON
	}
	if p.Mode == JSON {
		return p.printJSON(body, v)
	}
	rows, err := v.rows(body)
	if err != nil {
		return err
	}
	if p.Mode == Table {
		p.Table(v.Header, rows)
		return nil
	}
	for _, row := range rows {
		p.Line(row...)
	}
	return nil
}

func (p *Printer) printJSON(body []byte, v View) error {
	if !v.list {
		_, err := p.Out.Write(pretty.Pretty(body))
		return err
	}
	raw := elements(body, v.Key)
	if !raw.IsArray() {
		return nil
	}
	var err error
	raw.ForEach(func(_, value gjson.Result) bool {
		_, err = fmt.Fprintln(p.Out, string(pretty.Ugly([]byte(value.Raw))))
		return err == nil
	})
	return err
}

// Line prints fields space-separated on one line, substituting Missing for
// empty ones.
func (p *Printer) Line(fields ...string) {
	fmt.Fprintln(p.Out, strings.Join(dashed(fields), " "))
}

func (p *Printer) Table(header []string, rows [][]string) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(p.Out)
	tw.Style().Options.SeparateRows = false

	h := make(table.Row, 0, len(header))
	for _, col := range header {
		h = append(h, col)
	}
	tw.AppendHeader(h)
	for _, row := range rows {
		r := make(table.Row, 0, len(row))
		for _, cell := range dashed(row) {
			r = append(r, runewidth.Truncate(cell, MaxCellWidth, "…"))
		}
		tw.AppendRow(r)
	}
	tw.Render()
}

// Status prints the outcome of a call that has no view, such as a delete.
func (p *Printer) Status(code int) {
	if p.Mode == JSON {
		fmt.Fprintf(p.Out, "{\"status\":%d}\n", code)
		return
	}
	fmt.Fprintf(p.Out, "%d %s\n", code, http.StatusText(code))
}

// Raw prints body as-is, pretty-printing it when it is JSON.
func (p *Printer) Raw(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	if gjson.ValidBytes(body) {
		_, err := p.Out.Write(pretty.Pretty(body))
		return err
	}
	_, err := p.Out.Write(body)
	return err
}

// RenderError writes the body of a failed call to the error stream: pretty
// JSON when it parses, otherwise the status followed by the raw text.
func (p *Printer) RenderError(code int, body []byte) {
	if len(body) > 0 && gjson.ValidBytes(body) {
		p.Err.Write(pretty.Pretty(body))
		return
	}
	fmt.Fprintf(p.Err, "HTTP %d\n", code)
	if len(body) > 0 {
		fmt.Fprintln(p.Err, strings.TrimRight(string(body), "\n"))
	}
}

func dashed(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		f = strings.Join(strings.Fields(f), " ")
		if f == "" {
			f = Missing
		}
		out[i] = f
	}
	return out
}
