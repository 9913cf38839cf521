package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State struct {
		Status string `json:"status"`
	} `json:"state"`
}

var itemView = List("items", []string{"ID", "NAME", "STATUS"}, func(i item) []string {
	return []string{i.ID, i.Name, i.State.Status}
})

func render(t *testing.T, mode Mode, body string, v View) string {
	t.Helper()
	var out bytes.Buffer
	p := NewPrinter(&out, &out, mode)
	if err := p.Print([]byte(body), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestTextFieldOrderAndMissing(t *testing.T) {
	body := `{"items":[{"id":"a1","name":"web","state":{"status":"running"}},{"id":"a2","name":"api"}]}`
	got := render(t, Text, body, itemView)
	want := "a1 web running\na2 api -\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONPrintsOneCompactValuePerElement(t *testing.T) {
	body := `{"items":[
	  {"id": "a1", "name": "web"},
	  {"id": "a2", "name": "api"}
	]}`
	got := render(t, JSON, body, itemView)
	want := "{\"id\":\"a1\",\"name\":\"web\"}\n{\"id\":\"a2\",\"name\":\"api\"}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestObjectViews(t *testing.T) {
	v := Object([]string{"ID", "NAME"}, func(i item) []string { return []string{i.ID, i.Name} })

	if got := render(t, Text, `{"id":"a1","name":"web"}`, v); got != "a1 web\n" {
		t.Errorf("text: got %q", got)
	}
	got := render(t, JSON, `{"id":"a1","name":"web"}`, v)
	if !strings.Contains(got, "\n  \"id\": \"a1\"") {
		t.Errorf("json object should be pretty printed, got %q", got)
	}
}

func TestTopLevelArray(t *testing.T) {
	v := List("", []string{"ID", "NAME"}, func(i item) []string { return []string{i.ID, i.Name} })
	if got := render(t, Text, `[{"id":"o1","name":"acme"}]`, v); got != "o1 acme\n" {
		t.Errorf("got %q", got)
	}
}

func TestTableTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", MaxCellWidth*2)
	body := fmt.Sprintf(`{"items":[{"id":"a1","name":%q}]}`, long)
	got := render(t, Table, body, itemView)
	if !strings.Contains(got, "NAME") || !strings.Contains(got, "a1") {
		t.Errorf("table misses header or row: %q", got)
	}
	if strings.Contains(got, long) {
		t.Errorf("long cell was not truncated")
	}
	if !strings.Contains(got, "…") {
		t.Errorf("truncated cell should end with an ellipsis: %q", got)
	}
}

func TestEmptyBodyPrintsNothing(t *testing.T) {
	if got := render(t, Text, "", itemView); got != "" {
		t.Errorf("got %q", got)
	}
	if got := render(t, JSON, `{"items":[]}`, itemView); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestInvalidBodyIsAnErrorInEveryMode(t *testing.T) {
	body := []byte("<html><body>502 Bad Gateway</body></html>")
	for _, mode := range []Mode{Text, JSON, Table} {
		for _, v := range []View{itemView, Object([]string{"ID"}, func(i item) []string { return []string{i.ID} })} {
			var out bytes.Buffer
			err := NewPrinter(&out, &out, mode).Print(body, v)
			if err != ErrInvalidJSON {
				t.Errorf("%s: expected ErrInvalidJSON, got %v", mode, err)
			}
			if out.Len() != 0 {
				t.Errorf("%s: nothing should be printed, got %q", mode, out.String())
			}
		}
	}
}

func TestRenderError(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, Text)

	p.RenderError(404, []byte(`{"title":"not found"}`))
	if !strings.Contains(out.String(), `"title": "not found"`) {
		t.Errorf("json error body not pretty printed: %q", out.String())
	}

	out.Reset()
	p.RenderError(502, []byte("bad gateway\n"))
	if out.String() != "HTTP 502\nbad gateway\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestStatusLine(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, &out, Text).Status(202)
	NewPrinter(&out, &out, JSON).Status(204)
	if out.String() != "202 Accepted\n{\"status\":204}\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestListOutputLineCounts(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	encode := func(names []string) string {
		items := make([]map[string]string, 0, len(names))
		for i, name := range names {
			items = append(items, map[string]string{"id": fmt.Sprintf("id-%d", i), "name": name})
		}
		data, _ := json.Marshal(map[string]interface{}{"items": items})
		return string(data)
	}
	lines := func(s string) []string {
		if s == "" {
			return nil
		}
		return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	}

	properties.Property("text mode prints one line per element", prop.ForAll(
		func(names []string) bool {
			out := render(t, Text, encode(names), itemView)
			got := lines(out)
			if len(got) != len(names) {
				return false
			}
			for i, line := range got {
				if !strings.HasPrefix(line, fmt.Sprintf("id-%d ", i)) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("json mode prints one valid value per element", prop.ForAll(
		func(names []string) bool {
			out := render(t, JSON, encode(names), itemView)
			got := lines(out)
			if len(got) != len(names) {
				return false
			}
			for i, line := range got {
				var decoded map[string]string
				if err := json.Unmarshal([]byte(line), &decoded); err != nil {
					return false
				}
				if decoded["name"] != names[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
