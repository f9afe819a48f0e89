// Package notebook implements the note operations behind the noots commands.
// Each operation loads the full collection from the store, applies one change
// and saves the result.
package notebook

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leefowlercu/noots/internal/notes"
	"github.com/leefowlercu/noots/internal/prompt"
	"github.com/leefowlercu/noots/internal/storage"
	"github.com/leefowlercu/noots/internal/tui/pager"
	"github.com/leefowlercu/noots/internal/tui/styles"
)

// User-facing messages.
const (
	MsgNoNotes       = "You don't have any saved notes!"
	MsgClearHeading  = "These are your notes:"
	MsgClearQuestion = "Are you sure?(Y/N) > "
	MsgCleared       = "All of your notes have been deleted!"
	MsgNotCleared    = "Stuff not deleted."
)

// Pager displays fully buffered output.
type Pager interface {
	Page(content string) error
}

// Notebook runs note operations against a Store.
type Notebook struct {
	store           storage.Store
	out             io.Writer
	in              io.Reader
	pager           Pager
	logger          *slog.Logger
	defaultCategory string
}

// Option configures a Notebook.
type Option func(*Notebook)

// WithOutput sets where results and messages are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(n *Notebook) {
		n.out = w
	}
}

// WithInput sets where confirmation answers are read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(n *Notebook) {
		n.in = r
	}
}

// WithPager sets the pager used for paged output.
func WithPager(p Pager) Option {
	return func(n *Notebook) {
		n.pager = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notebook) {
		n.logger = logger
	}
}

// WithDefaultCategory sets the category used when Remember gets none.
func WithDefaultCategory(category string) Option {
	return func(n *Notebook) {
		if category != "" {
			n.defaultCategory = category
		}
	}
}

// New creates a Notebook over store.
func New(store storage.Store, opts ...Option) *Notebook {
	n := &Notebook{
		store:           store,
		out:             os.Stdout,
		in:              os.Stdin,
		logger:          slog.Default(),
		defaultCategory: notes.DefaultCategory,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.pager == nil {
		n.pager = pager.New(n.in, n.out, "noots")
	}
	n.logger = n.logger.With("component", "notebook")
	return n
}

// Load returns the current collection without modifying it.
func (n *Notebook) Load() (*notes.Collection, error) {
	c, err := n.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load notes; %w", err)
	}
	return c, nil
}

// Show prints every category in sorted order followed by its numbered notes.
// When paged is set the listing is handed to the pager instead of printed line by line.
func (n *Notebook) Show(paged bool) error {
	c, err := n.Load()
	if err != nil {
		return err
	}

	if c.IsEmpty() {
		fmt.Fprintln(n.out, MsgNoNotes)
		return nil
	}

	if paged {
		var b strings.Builder
		writeListing(&b, c)
		n.logger.Debug("showing notes in pager", "categories", c.Len())
		return n.pager.Page(b.String())
	}

	writeListing(n.out, c)
	return nil
}

// Remember appends note to category, defaulting the category when empty.
// An identical note already in the category is reported and not saved again.
func (n *Notebook) Remember(category, note string) error {
	if category == "" {
		category = n.defaultCategory
	}

	c, err := n.Load()
	if err != nil {
		return err
	}

	if err := c.Add(category, note); err != nil {
		if errors.Is(err, notes.ErrDuplicateNote) {
			n.logger.Debug("duplicate note skipped", "category", category)
			fmt.Fprintln(n.out, styles.Notice.Render(fmt.Sprintf("Note already exists in %s: %s", category, note)))
			return nil
		}
		return fmt.Errorf("failed to remember note; %w", err)
	}

	if err := n.save(c); err != nil {
		return err
	}

	list, _ := c.Notes(category)
	n.logger.Debug("note remembered", "category", category, "index", len(list))
	fmt.Fprintf(n.out, "Remembered %s %d: %s\n", category, len(list), note)
	return nil
}

// Forget removes the note at the 1-based index in category.
// A missing category or index is reported and nothing is saved.
func (n *Notebook) Forget(category string, index int) error {
	c, err := n.Load()
	if err != nil {
		return err
	}

	removed, err := c.Remove(category, index)
	if err != nil {
		return n.reportMissing(err)
	}

	if err := n.save(c); err != nil {
		return err
	}

	n.logger.Debug("note forgotten", "category", category, "index", index)
	fmt.Fprintf(n.out, "Forgot %s %d: %s\n", category, index, removed)
	return nil
}

// Edit replaces the text of the note at the 1-based index in category.
// Missing categories and out-of-range indexes are reported the same way as Forget.
func (n *Notebook) Edit(category string, index int, note string) error {
	c, err := n.Load()
	if err != nil {
		return err
	}

	if _, err := c.Replace(category, index, note); err != nil {
		return n.reportMissing(err)
	}

	if err := n.save(c); err != nil {
		return err
	}

	n.logger.Debug("note edited", "category", category, "index", index)
	fmt.Fprintf(n.out, "Edited %s %d: %s\n", category, index, note)
	return nil
}

// Clear shows all notes, asks for confirmation and then deletes everything.
// With force set the question is skipped.
func (n *Notebook) Clear(force bool) error {
	fmt.Fprintln(n.out, MsgClearHeading)
	if err := n.Show(false); err != nil {
		return err
	}

	if !force && !prompt.Confirm(n.in, n.out, MsgClearQuestion) {
		fmt.Fprintln(n.out, MsgNotCleared)
		return nil
	}

	if err := n.save(notes.New()); err != nil {
		return err
	}

	n.logger.Debug("all notes cleared")
	fmt.Fprintln(n.out, MsgCleared)
	return nil
}

func (n *Notebook) save(c *notes.Collection) error {
	if err := n.store.Save(c); err != nil {
		return fmt.Errorf("failed to save notes; %w", err)
	}
	return nil
}

func (n *Notebook) reportMissing(err error) error {
	var nf *notes.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	n.logger.Debug("note not found", "category", nf.Category, "index", nf.Index)
	fmt.Fprintf(n.out, "There is no note %s %d\n", nf.Category, nf.Index)
	return nil
}

// writeListing renders categories in sorted order with 1-based note numbers.
func writeListing(w io.Writer, c *notes.Collection) {
	for _, category := range c.Sorted() {
		fmt.Fprintln(w, styles.CategoryHeader.Render(category+":"))
		list, _ := c.Notes(category)
		for i, note := range list {
			fmt.Fprintf(w, "   %d: %s\n", i+1, note)
		}
	}
}
