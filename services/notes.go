package services

import (
	"strings"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
)

// Special instructions are kept structured until the persistence/display
// boundary; only RenderNotes knows the "<item>: <note>" presentation.

type NoteScope string

const (
	NoteScopeOrder NoteScope = "order"
	NoteScopeItem  NoteScope = "item"
)

type Note struct {
	Scope    NoteScope
	ItemName string // set for item-scoped notes
	Text     string
}

// BuildOrderNotes collects the order-level note followed by per-item notes
// in cart order. Blank notes are dropped.
func BuildOrderNotes(orderNote string, items []entity.CartItem) []Note {
	var notes []Note
	if t := strings.TrimSpace(orderNote); t != "" {
		notes = append(notes, Note{Scope: NoteScopeOrder, Text: t})
	}
	for _, it := range items {
		if t := strings.TrimSpace(it.Note); t != "" {
			notes = append(notes, Note{Scope: NoteScopeItem, ItemName: it.ItemName, Text: t})
		}
	}
	return notes
}

// RenderNotes flattens to the newline-joined form staff see on the dashboard.
func RenderNotes(notes []Note) string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		if n.Scope == NoteScopeItem {
			lines = append(lines, n.ItemName+": "+n.Text)
		} else {
			lines = append(lines, n.Text)
		}
	}
	return strings.Join(lines, "\n")
}
