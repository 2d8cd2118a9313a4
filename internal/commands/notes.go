// Package commands provides the built-in command definitions the agent can
// propose: persistent notes, one-shot model queries, sleeping, and status
// reporting. Each constructor returns a definition ready to register.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/operant/internal/command"
	"github.com/abdul-hamid-achik/operant/internal/store"
)

// NotesStore is the slice of the store the notes commands need.
type NotesStore interface {
	CreateNote(ctx context.Context, title, content string) (int64, error)
	GetNote(ctx context.Context, id int64) (*store.Note, error)
	ListNotes(ctx context.Context) ([]store.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

// Notes builds the "notes" category with its add, list, show, and delete
// sub-commands.
func Notes(st NotesStore) *command.Definition {
	sub := command.NewRegistry(
		notesAdd(st),
		notesList(st),
		notesShow(st),
		notesDelete(st),
	)
	return &command.Definition{
		Name:        "notes",
		Description: "Persistent notes that survive across sessions",
		Sub:         sub,
	}
}

func notesAdd(st NotesStore) *command.Definition {
	return &command.Definition{
		Name:        "add",
		Description: "Save a new note",
		Params: []command.ParameterSpec{
			{Name: "title", Description: "Short note title, one word", Required: true, Type: command.TypeString},
			{Name: "content", Description: "Note body", Required: true, Type: command.TypeString},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			title, _ := args.String("title")
			content, _ := args.String("content")
			id, err := st.CreateNote(ctx, title, content)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Saved note %d: %s", id, title), nil
		}),
	}
}

func notesList(st NotesStore) *command.Definition {
	return &command.Definition{
		Name:        "list",
		Description: "List all saved notes",
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			notes, err := st.ListNotes(ctx)
			if err != nil {
				return "", err
			}
			if len(notes) == 0 {
				return "No notes saved.", nil
			}
			var sb strings.Builder
			for _, n := range notes {
				fmt.Fprintf(&sb, "%d  %s  (%s)\n", n.ID, n.Title, n.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return strings.TrimRight(sb.String(), "\n"), nil
		}),
	}
}

func notesShow(st NotesStore) *command.Definition {
	return &command.Definition{
		Name:        "show",
		Description: "Show one note in full",
		Params: []command.ParameterSpec{
			{Name: "id", Description: "Note id from notes list", Required: true, Type: command.TypeNumber},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			id, _ := args.Number("id")
			n, err := st.GetNote(ctx, int64(id))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("# %s\n\n%s", n.Title, n.Content), nil
		}),
	}
}

func notesDelete(st NotesStore) *command.Definition {
	return &command.Definition{
		Name:        "delete",
		Description: "Delete a note",
		Params: []command.ParameterSpec{
			{Name: "id", Description: "Note id from notes list", Required: true, Type: command.TypeNumber},
		},
		Handler: command.HandlerFunc(func(ctx context.Context, args command.Args) (string, error) {
			id, _ := args.Number("id")
			if err := st.DeleteNote(ctx, int64(id)); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted note %d", int64(id)), nil
		}),
	}
}
