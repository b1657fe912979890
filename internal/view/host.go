package view

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Component is anything that renders itself as an HTML fragment.
type Component interface {
	Render(w io.Writer) error
}

var hostTmpl = template.Must(template.New("host").Parse(`<div><h1>{{.Heading}}</h1>{{.List}}</div>`))

// Host wraps a list under a static heading.
type Host struct {
	Heading string
	List    Component
}

func (h Host) Render(w io.Writer) error {
	var list strings.Builder
	if h.List != nil {
		if err := h.List.Render(&list); err != nil {
			return err
		}
	}

	err := hostTmpl.Execute(w, struct {
		Heading string
		List    template.HTML
	}{
		Heading: h.Heading,
		List:    template.HTML(list.String()),
	})
	if err != nil {
		return fmt.Errorf("render host: %w", err)
	}
	return nil
}

// Mount mounts the wrapped list when it supports mounting.
func (h Host) Mount(ctx context.Context) error {
	if m, ok := h.List.(interface{ Mount(context.Context) error }); ok {
		return m.Mount(ctx)
	}
	return nil
}
