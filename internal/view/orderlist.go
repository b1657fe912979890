package view

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"sync"

	"orderview/internal/model"
)

type State int

const (
	Uninitialized State = iota
	Populated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ItemText is the display text of one list item.
func ItemText(o model.Order) string {
	return fmt.Sprintf("%s: %s %s - %s", o.ID, o.Amount, o.Currency, o.Status)
}

var listTmpl = template.Must(template.New("orderlist").Funcs(template.FuncMap{
	"item": ItemText,
}).Parse(`<ul>
{{- range .}}
  <li>{{item .}}</li>
{{- end}}
</ul>`))

// OrderList holds an ordered sequence of orders and renders it as a list.
// The list is its own only writer; Render may be called concurrently.
type OrderList struct {
	provider Provider

	mu      sync.RWMutex
	state   State
	orders  []model.Order
	mounted bool
}

func NewOrderList(provider Provider) *OrderList {
	return &OrderList{
		provider: provider,
		orders:   []model.Order{},
	}
}

// Mount populates the list from its provider the first time it is called.
// A failed fetch is logged and returned; the current state is kept.
func (l *OrderList) Mount(ctx context.Context) error {
	l.mu.Lock()
	if l.mounted {
		l.mu.Unlock()
		return nil
	}
	l.mounted = true
	l.mu.Unlock()

	orders, err := l.provider(ctx)
	if err != nil {
		slog.Error("failed to fetch orders", "error", err)
		return fmt.Errorf("mount order list: %w", err)
	}

	l.Replace(orders)
	return nil
}

// Replace swaps the whole sequence.
func (l *OrderList) Replace(orders []model.Order) {
	next := make([]model.Order, len(orders))
	copy(next, orders)

	l.mu.Lock()
	l.orders = next
	l.state = Populated
	l.mu.Unlock()
}

func (l *OrderList) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Orders returns a copy of the current sequence.
func (l *OrderList) Orders() []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Order{}, l.orders...)
}

// Items returns the text of each list item in display order.
func (l *OrderList) Items() []string {
	orders := l.Orders()
	items := make([]string, 0, len(orders))
	for _, o := range orders {
		items = append(items, ItemText(o))
	}
	return items
}

func (l *OrderList) Render(w io.Writer) error {
	if err := listTmpl.Execute(w, l.Orders()); err != nil {
		return fmt.Errorf("render order list: %w", err)
	}
	return nil
}
