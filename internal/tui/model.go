// Package tui is the interactive recipe browser. It owns the filter state,
// debounces typing, issues queries through the API and applies render
// fragments to the terminal. Every response carries the token it was issued
// with and late ones are dropped.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/mealdb/internal/debug"
	"github.com/idilsaglam/mealdb/internal/mealdb"
	"github.com/idilsaglam/mealdb/internal/model"
	"github.com/idilsaglam/mealdb/internal/render"
)

// API is the part of the recipe client the browser uses.
type API interface {
	List(ctx context.Context, q mealdb.Query) ([]model.Meal, error)
	Lookup(ctx context.Context, id string) (model.Meal, error)
	LookupAll(ctx context.Context, ids []string) ([]model.Meal, error)
	Random(ctx context.Context) (model.Meal, error)
	Categories(ctx context.Context) ([]string, error)
	Areas(ctx context.Context) ([]string, error)
}

// Favorites is the favorites set as the browser mutates it.
type Favorites interface {
	IsFavorite(id string) bool
	Toggle(id string) (bool, error)
	All() []string
}

// Options tune timings and the banner. Zero values pick the defaults.
type Options struct {
	Debounce      time.Duration
	CloseDelay    time.Duration
	PreviewLength int
	UTCOffset     time.Duration
	Location      string
	Now           func() time.Time
}

const (
	defaultDebounce   = 500 * time.Millisecond
	defaultCloseDelay = 300 * time.Millisecond

	allCategories = "All Categories"
	allAreas      = "All Areas"
)

type focusTarget int

const (
	focusSearch focusTarget = iota
	focusCategory
	focusArea
	focusGrid
	focusCount
)

type modalState int

const (
	modalClosed modalState = iota
	modalOpening
	modalOpen
	modalOpenWithError
	modalClosing
)

func (s modalState) visible() bool {
	return s == modalOpening || s == modalOpen || s == modalOpenWithError
}

// debounceMsg fires when typing has been quiet for the debounce interval.
type debounceMsg struct{ seq int }

type resultsMsg struct {
	seq   int
	title string
	meals []model.Meal
	err   error
}

type filtersMsg struct {
	categories []string
	areas      []string
	err        error
}

type specialMsg struct {
	meal model.Meal
	err  error
}

type detailMsg struct {
	seq  int
	meal model.Meal
	err  error
}

// closedMsg ends the closing transition of the modal it was armed for.
type closedMsg struct{ seq int }

// Model is the Bubble Tea model for the recipe browser.
type Model struct {
	ctx  context.Context
	api  API
	favs Favorites
	opts Options

	width, height int

	// Filter state. Index 0 of each selector means "no filter".
	focus      focusTarget
	search     textinput.Model
	categories []string
	catIdx     int
	areas      []string
	areaIdx    int

	debounceSeq int
	reqSeq      int
	loading     bool
	spinner     spinner.Model

	grid render.Grid
	list list.Model

	greeting string
	special  *render.Special

	modal    modalState
	modalSeq int
	detail   *render.DetailView
	modalErr string
	viewport viewport.Model

	keys     KeyMap
	help     help.Model
	showHelp bool
	status   string
}

// New builds the browser. The first query is issued by Init.
func New(ctx context.Context, api API, favs Favorites, opts Options) *Model {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.CloseDelay <= 0 {
		opts.CloseDelay = defaultCloseDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search recipes..."
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(accentStyle))

	m := &Model{
		ctx:        ctx,
		api:        api,
		favs:       favs,
		opts:       opts,
		search:     ti,
		categories: []string{allCategories},
		areas:      []string{allAreas},
		reqSeq:     1,
		loading:    true,
		spinner:    sp,
		greeting:   render.Greeting(opts.Now(), opts.UTCOffset, opts.Location),
		viewport:   viewport.New(0, 0),
		list:       newGridList(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.resizeList()
	return m
}

// Init populates the filters, fetches the chef's special and lists
// everything.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.fetchFilters(),
		m.fetchSpecial(),
		m.fetchList(m.reqSeq, mealdb.Query{}),
		tea.SetWindowTitle("MealDB"),
	)
}

// Query is the current filter state.
func (m *Model) Query() mealdb.Query {
	q := mealdb.Query{Term: m.search.Value()}
	if m.catIdx > 0 {
		q.Category = m.categories[m.catIdx]
	}
	if m.areaIdx > 0 {
		q.Area = m.areas[m.areaIdx]
	}
	return q
}

// Grid is the fragment currently applied to the result area.
func (m *Model) Grid() render.Grid { return m.grid }

// Loading reports whether a listing request is outstanding.
func (m *Model) Loading() bool { return m.loading }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		m.resizeList()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		return m, m.issue(m.Query())

	case resultsMsg:
		if msg.seq != m.reqSeq {
			debug.Logf("tui: dropping stale results #%d (current #%d)", msg.seq, m.reqSeq)
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.applyGrid(render.ResultGrid(msg.meals, msg.title, m.favs))
		return m, nil

	case filtersMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.categories = append([]string{allCategories}, msg.categories...)
		m.areas = append([]string{allAreas}, msg.areas...)
		return m, nil

	case specialMsg:
		if msg.err != nil {
			m.special = nil
			if errors.Is(msg.err, mealdb.ErrUnavailable) {
				m.fail(msg.err)
			} else {
				debug.Logf("tui: special: %v", msg.err)
			}
			return m, nil
		}
		s := render.ChefSpecial(msg.meal, m.opts.PreviewLength)
		m.special = &s
		return m, nil

	case detailMsg:
		if msg.seq != m.modalSeq || m.modal != modalOpening {
			return m, nil
		}
		if msg.err != nil {
			m.modal = modalOpenWithError
			m.modalErr = render.DetailFailedMessage
			if errors.Is(msg.err, mealdb.ErrUnavailable) {
				m.fail(msg.err)
			} else {
				debug.Logf("tui: detail: %v", msg.err)
			}
			return m, nil
		}
		d := render.Detail(msg.meal)
		m.detail = &d
		m.modal = modalOpen
		m.viewport.SetContent(detailContent(d))
		m.viewport.GotoTop()
		return m, nil

	case closedMsg:
		if msg.seq == m.modalSeq && m.modal == modalClosing {
			m.modal = modalClosed
			m.detail = nil
			m.modalErr = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// fail applies the error fragment for a failed request. A lookup that
// answered without a meal is not a failure and never reaches here.
func (m *Model) fail(err error) {
	debug.Logf("tui: %v", err)
	m.applyGrid(render.Error(render.FetchFailedMessage))
}

// issue starts a listing with a fresh token, invalidating any in flight.
func (m *Model) issue(q mealdb.Query) tea.Cmd {
	m.reqSeq++
	m.loading = true
	return m.fetchList(m.reqSeq, q)
}

func (m *Model) showFavorites() tea.Cmd {
	m.reqSeq++
	m.debounceSeq++
	ids := m.favs.All()
	if len(ids) == 0 {
		m.loading = false
		m.applyGrid(render.ResultGrid(nil, render.FavoritesTitle, m.favs))
		return nil
	}
	m.loading = true
	return m.fetchFavorites(m.reqSeq, ids)
}

// toggleFavorite flips id and updates its card in place, without a re-render.
func (m *Model) toggleFavorite(id string) {
	on, err := m.favs.Toggle(id)
	if err != nil {
		debug.Logf("tui: %v", err)
		m.status = "Could not save favorites: " + err.Error()
	} else {
		m.status = ""
	}
	if m.grid.SetFavorite(id, on) {
		m.refreshCard(id)
	}
}

func (m *Model) openDetail(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	m.modalSeq++
	m.modal = modalOpening
	m.detail = nil
	m.modalErr = ""
	m.resizeViewport()
	return m.fetchDetail(m.modalSeq, id)
}

func (m *Model) closeModal() tea.Cmd {
	if !m.modal.visible() {
		return nil
	}
	m.modal = modalClosing
	seq := m.modalSeq
	return tea.Tick(m.opts.CloseDelay, func(time.Time) tea.Msg { return closedMsg{seq: seq} })
}

// selectCategory moves the category selector by delta. A change clears the
// other filters and queries at once.
func (m *Model) selectCategory(delta int) tea.Cmd {
	m.catIdx = cycle(m.catIdx, delta, len(m.categories))
	m.areaIdx = 0
	m.clearSearch()
	return m.issue(m.Query())
}

func (m *Model) selectArea(delta int) tea.Cmd {
	m.areaIdx = cycle(m.areaIdx, delta, len(m.areas))
	m.catIdx = 0
	m.clearSearch()
	return m.issue(m.Query())
}

// clearSearch empties the search field and disarms a pending debounce.
func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.debounceSeq++
}

func (m *Model) setFocus(f focusTarget) {
	m.focus = f
	m.list.Styles.Title = titleStyle
	if f == focusGrid {
		m.list.Styles.Title = focusedLabelStyle
	}
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func cycle(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
