package notebook

import (
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leefowlercu/noots/internal/notes"
	"github.com/leefowlercu/noots/internal/storage"
)

// recordingPager captures paged content instead of drawing it.
type recordingPager struct {
	pages []string
}

func (p *recordingPager) Page(content string) error {
	p.pages = append(p.pages, content)
	return nil
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Load() (*notes.Collection, error) {
	return nil, storage.ErrMalformedStore
}

func (brokenStore) Save(*notes.Collection) error {
	return errors.New("disk full")
}

type fixture struct {
	store *storage.MemoryStore
	out   *bytes.Buffer
	pager *recordingPager
	nb    *Notebook
}

func newFixture(t *testing.T, input string) *fixture {
	t.Helper()
	f := &fixture{
		store: storage.NewMemoryStore(nil),
		out:   &bytes.Buffer{},
		pager: &recordingPager{},
	}
	f.nb = New(f.store,
		WithOutput(f.out),
		WithInput(strings.NewReader(input)),
		WithPager(f.pager),
	)
	return f
}

func (f *fixture) notes(t *testing.T, category string) []string {
	t.Helper()
	c, err := f.store.Load()
	require.NoError(t, err)
	list, _ := c.Notes(category)
	return list
}

func (f *fixture) reset() {
	f.out.Reset()
}

func TestShow_Empty(t *testing.T) {
	f := newFixture(t, "")

	require.NoError(t, f.nb.Show(false))

	assert.Equal(t, MsgNoNotes+"\n", f.out.String())
	assert.Equal(t, 0, f.store.Saves(), "show must not write")
}

func TestShow_SortedWithIndexes(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	require.NoError(t, f.nb.Remember("", "Buy milk"))
	require.NoError(t, f.nb.Remember("Work", "Review PR"))
	f.reset()

	require.NoError(t, f.nb.Show(false))

	want := "General:\n" +
		"   1: Buy milk\n" +
		"Work:\n" +
		"   1: Standup at 9\n" +
		"   2: Review PR\n"
	assert.Equal(t, want, f.out.String())
}

func TestShow_CaseSensitiveOrder(t *testing.T) {
	f := newFixture(t, "")
	for _, category := range []string{"beta", "Alpha", "alpha", "Beta"} {
		require.NoError(t, f.nb.Remember(category, "x"))
	}
	f.reset()

	require.NoError(t, f.nb.Show(false))

	out := f.out.String()
	order := []string{"Alpha:", "Beta:", "alpha:", "beta:"}
	last := -1
	for _, header := range order {
		at := strings.Index(out, header)
		require.Greater(t, at, last, "header %q out of order in:\n%s", header, out)
		last = at
	}
}

func TestShow_PagedMatchesPlain(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	require.NoError(t, f.nb.Remember("General", "Buy milk"))
	f.reset()

	require.NoError(t, f.nb.Show(false))
	plain := f.out.String()
	f.reset()

	require.NoError(t, f.nb.Show(true))
	assert.Empty(t, f.out.String(), "paged output goes through the pager only")
	require.Len(t, f.pager.pages, 1)
	assert.Equal(t, plain, f.pager.pages[0])
}

func TestShow_PagedEmptyPrintsMessage(t *testing.T) {
	f := newFixture(t, "")

	require.NoError(t, f.nb.Show(true))

	assert.Equal(t, MsgNoNotes+"\n", f.out.String())
	assert.Empty(t, f.pager.pages)
}

func TestRemember_DefaultCategory(t *testing.T) {
	f := newFixture(t, "")

	require.NoError(t, f.nb.Remember("", "Buy milk"))

	assert.Equal(t, []string{"Buy milk"}, f.notes(t, notes.DefaultCategory))
	assert.Contains(t, f.out.String(), "Remembered General 1: Buy milk")
}

func TestRemember_ConfiguredDefaultCategory(t *testing.T) {
	store := storage.NewMemoryStore(nil)
	var out bytes.Buffer
	nb := New(store, WithOutput(&out), WithPager(&recordingPager{}), WithDefaultCategory("Inbox"))

	require.NoError(t, nb.Remember("", "Buy milk"))

	c, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Inbox"}, c.Categories())
}

func TestRemember_DuplicateIsNoOp(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	before := string(f.store.Bytes())
	saves := f.store.Saves()
	f.reset()

	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))

	assert.Contains(t, f.out.String(), "already exists")
	assert.Equal(t, saves, f.store.Saves())
	assert.Equal(t, before, string(f.store.Bytes()))
}

func TestRemember_SameTextOtherCategory(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Call Sam"))

	require.NoError(t, f.nb.Remember("Home", "Call Sam"))

	assert.Equal(t, []string{"Call Sam"}, f.notes(t, "Work"))
	assert.Equal(t, []string{"Call Sam"}, f.notes(t, "Home"))
}

func TestForget(t *testing.T) {
	f := newFixture(t, "")
	for _, note := range []string{"one", "two", "three"} {
		require.NoError(t, f.nb.Remember("Work", note))
	}
	f.reset()

	require.NoError(t, f.nb.Forget("Work", 2))

	assert.Equal(t, "Forgot Work 2: two\n", f.out.String())
	assert.Equal(t, []string{"one", "three"}, f.notes(t, "Work"))
}

func TestForget_LastNoteRemovesCategory(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	require.NoError(t, f.nb.Remember("", "Buy milk"))

	require.NoError(t, f.nb.Forget("Work", 1))
	f.reset()

	require.NoError(t, f.nb.Show(false))
	assert.NotContains(t, f.out.String(), "Work:")
	assert.Contains(t, f.out.String(), "General:")
}

func TestForget_Missing(t *testing.T) {
	tests := []struct {
		name     string
		category string
		index    int
	}{
		{"unknown category", "Home", 1},
		{"index past end", "Work", 5},
		{"index zero", "Work", 0},
		{"negative index", "Work", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			require.NoError(t, f.nb.Remember("Work", "only"))
			saves := f.store.Saves()
			f.reset()

			require.NoError(t, f.nb.Forget(tt.category, tt.index))

			assert.Equal(t, "There is no note "+tt.category+" "+strconv.Itoa(tt.index)+"\n", f.out.String())
			assert.Equal(t, saves, f.store.Saves())
			assert.Equal(t, []string{"only"}, f.notes(t, "Work"))
		})
	}
}

func TestForget_NoData(t *testing.T) {
	f := newFixture(t, "")

	require.NoError(t, f.nb.Forget("General", 1))

	assert.Equal(t, "There is no note General 1\n", f.out.String())
	assert.Equal(t, 0, f.store.Saves())
}

func TestEdit(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	require.NoError(t, f.nb.Remember("", "Buy milk"))

	require.NoError(t, f.nb.Edit("General", 1, "Buy oat milk"))
	f.reset()

	require.NoError(t, f.nb.Show(false))
	assert.Contains(t, f.out.String(), "General:\n   1: Buy oat milk\n")
}

func TestEdit_MissingMatchesForget(t *testing.T) {
	tests := []struct {
		name     string
		category string
		index    int
	}{
		{"unknown category", "Home", 1},
		{"index past end", "Work", 2},
		{"index zero", "Work", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			require.NoError(t, f.nb.Remember("Work", "only"))
			saves := f.store.Saves()
			f.reset()

			require.NoError(t, f.nb.Edit(tt.category, tt.index, "new text"))
			editOut := f.out.String()
			f.reset()

			require.NoError(t, f.nb.Forget(tt.category, tt.index))
			forgetOut := f.out.String()

			assert.Equal(t, forgetOut, editOut)
			assert.Equal(t, saves, f.store.Saves())
			assert.Equal(t, []string{"only"}, f.notes(t, "Work"))
		})
	}
}

func TestClear_Confirmed(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "yes\n"} {
		t.Run(strings.TrimSpace(answer), func(t *testing.T) {
			f := newFixture(t, answer)
			require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
			f.reset()

			require.NoError(t, f.nb.Clear(false))

			out := f.out.String()
			assert.True(t, strings.HasPrefix(out, MsgClearHeading+"\nWork:\n   1: Standup at 9\n"+MsgClearQuestion), out)
			assert.True(t, strings.HasSuffix(out, MsgCleared+"\n"), out)

			c, err := f.store.Load()
			require.NoError(t, err)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestClear_Declined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "", "maybe\n"} {
		t.Run("answer "+strings.TrimSpace(answer), func(t *testing.T) {
			f := newFixture(t, answer)
			require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
			before := string(f.store.Bytes())
			saves := f.store.Saves()
			f.reset()

			require.NoError(t, f.nb.Clear(false))

			assert.True(t, strings.HasSuffix(f.out.String(), MsgNotCleared+"\n"), f.out.String())
			assert.Equal(t, saves, f.store.Saves())
			assert.Equal(t, before, string(f.store.Bytes()))
		})
	}
}

func TestClear_Force(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.nb.Remember("Work", "Standup at 9"))
	f.reset()

	require.NoError(t, f.nb.Clear(true))

	assert.NotContains(t, f.out.String(), MsgClearQuestion)
	c, err := f.store.Load()
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestOperations_MalformedStorePropagates(t *testing.T) {
	var out bytes.Buffer
	nb := New(brokenStore{}, WithOutput(&out), WithPager(&recordingPager{}))

	ops := map[string]func() error{
		"show":     func() error { return nb.Show(false) },
		"remember": func() error { return nb.Remember("Work", "x") },
		"forget":   func() error { return nb.Forget("Work", 1) },
		"edit":     func() error { return nb.Edit("Work", 1, "x") },
		"clear":    func() error { return nb.Clear(true) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(), storage.ErrMalformedStore)
		})
	}
}

func TestNotebook_FileStoreRoundTrip(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), storage.DefaultFileName))
	var out bytes.Buffer
	nb := New(store, WithOutput(&out), WithPager(&recordingPager{}))

	require.NoError(t, nb.Remember("Work", "Standup at 9"))
	require.NoError(t, nb.Remember("", "Buy milk"))
	require.NoError(t, nb.Edit("General", 1, "Buy oat milk"))
	require.NoError(t, nb.Forget("Work", 1))

	// A fresh notebook over the same file sees the persisted state.
	out.Reset()
	reopened := New(storage.NewFileStore(store.Path()), WithOutput(&out), WithPager(&recordingPager{}))
	require.NoError(t, reopened.Show(false))

	assert.Equal(t, "General:\n   1: Buy oat milk\n", out.String())
}
