// Package ui implements the terminal tree view: a state machine that
// owns the focal person, rebuilds the visible subtree on every focal or
// data change, and renders person cards with a detail panel, fuzzy
// search, and export shortcuts.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kinview/pkg/analysis"
	"kinview/pkg/export"
	"kinview/pkg/loader"
	"kinview/pkg/model"
	"kinview/pkg/permalink"
	"kinview/pkg/tree"
)

// state is the controller's lifecycle state.
type state int

const (
	stateLoading state = iota
	stateReady
	stateEmpty
	stateFailed
)

// Messages.
type peopleLoadedMsg struct{ people []model.RawPerson }
type loadFailedMsg struct{ err error }
type exportDoneMsg struct {
	paths []string
	err   error
}
type clearStatusMsg struct{ seq int }

// RefreshMsg asks the controller to re-fetch the dataset. The file
// watcher sends it through Program.Send after an external edit; the
// current focal person is preserved when it survives the reload.
type RefreshMsg struct{}

const (
	detailPanelWidth = 42
	headerLines      = 3
	footerLines      = 2
	minTreeHeight    = tree.CardHeight
	statusTimeout    = 3 * time.Second
)

// App is the tree view controller.
type App struct {
	source loader.Source
	opts   tree.Options
	theme  Theme

	state state
	err   error

	raw   []model.RawPerson
	nodes []tree.Node
	stats analysis.Stats

	focalID string
	sub     *tree.Subtree
	cursor  int // index into sub.Nodes

	width  int
	height int

	showDetail bool
	detail     detailPanel
	search     searchOverlay

	// initialRef is the location reference resolved at startup (flag or
	// state file); consumed on the first successful load.
	initialRef string
	// persistRef controls writing the state file on focal changes;
	// disabled in tests.
	persistRef bool

	status    string
	statusSeq int
}

// NewApp creates the controller in the Loading state.
func NewApp(source loader.Source, opts tree.Options, initialRef string, theme Theme) *App {
	return &App{
		source:     source,
		opts:       opts,
		theme:      theme,
		state:      stateLoading,
		initialRef: initialRef,
		persistRef: true,
		detail:     newDetailPanel(theme),
		search:     newSearchOverlay(theme),
	}
}

// Init implements tea.Model: kick off the one-shot data fetch.
func (a *App) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		people, err := a.source.Load()
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return peopleLoadedMsg{people: people}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Pure re-flow: focal id and visible set are untouched.
		a.width, a.height = msg.Width, msg.Height
		a.detail.setSize(detailPanelWidth, a.contentHeight())
		return a, nil

	case peopleLoadedMsg:
		a.ingest(msg.people)
		return a, nil

	case loadFailedMsg:
		a.state = stateFailed
		a.err = msg.err
		return a, nil

	case RefreshMsg:
		return a, a.loadCmd()

	case exportDoneMsg:
		if msg.err != nil {
			return a, a.setStatus(fmt.Sprintf("export failed: %v", msg.err))
		}
		return a, a.setStatus("exported " + strings.Join(msg.paths, ", "))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// ingest runs translate → stats → focal resolution after a (re)load.
func (a *App) ingest(people []model.RawPerson) {
	a.raw = people
	a.nodes = tree.Translate(people)
	a.stats = analysis.Compute(a.nodes)
	a.search.setNodes(a.nodes)

	if len(a.nodes) == 0 {
		a.state = stateEmpty
		a.focalID = ""
		a.sub = nil
		return
	}

	// Focal resolution order: current focal when it survives a refresh,
	// then the startup location reference, then first person in load
	// order.
	focal := a.focalID
	if !a.hasNode(focal) {
		focal = permalink.Parse(a.initialRef)
		a.initialRef = ""
		if !a.hasNode(focal) {
			focal = a.nodes[0].ID
		}
	}
	a.setFocal(focal)
}

func (a *App) hasNode(id string) bool {
	if id == "" {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i].ID == id {
			return true
		}
	}
	return false
}

// setFocal is the single entry into Ready(x): rebuild the subtree,
// publish x to the detail panel, and sync the location reference.
func (a *App) setFocal(id string) {
	sub := tree.BuildView(a.nodes, id, a.opts)
	if sub.Empty() {
		// Stale id (deleted person, dead link): fall back to the first
		// person rather than rendering a permanently blank view.
		if len(a.nodes) == 0 {
			a.state = stateEmpty
			return
		}
		id = a.nodes[0].ID
		sub = tree.BuildView(a.nodes, id, a.opts)
	}

	a.state = stateReady
	a.focalID = id
	a.sub = sub
	a.cursor = 0
	for i, n := range sub.Nodes {
		if n.ID == id {
			a.cursor = i
			break
		}
	}
	a.detail.setDetail(tree.BuildDetail(a.nodes, a.raw, id))

	if a.persistRef {
		_ = permalink.Save(a.source.Path(), id)
	}
}

func (a *App) setStatus(s string) tea.Cmd {
	a.status = s
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.search.active {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "r":
		return a, a.loadCmd()
	}

	if a.state != stateReady {
		return a, nil
	}

	switch msg.String() {
	case "enter":
		if n, ok := a.selectedNode(); ok && n.ID != a.focalID {
			a.setFocal(n.ID)
		}
	case "left", "h":
		a.moveCursor(0, -1)
	case "right", "l":
		a.moveCursor(0, 1)
	case "up", "k":
		a.moveCursor(-1, 0)
	case "down", "j":
		a.moveCursor(1, 0)
	case "d":
		a.showDetail = !a.showDetail
		a.detail.setSize(detailPanelWidth, a.contentHeight())
	case "pgup":
		a.detail.vp.HalfViewUp()
	case "pgdown":
		a.detail.vp.HalfViewDown()
	case "/":
		a.search.open()
	case "y":
		if err := permalink.CopyToClipboard(a.focalID); err != nil {
			return a, a.setStatus(fmt.Sprintf("copy failed: %v", err))
		}
		return a, a.setStatus("link copied: " + permalink.Format(a.focalID))
	case "e":
		return a, a.exportCmd()
	case "s":
		a.opts.HideFocalSiblings = !a.opts.HideFocalSiblings
		a.setFocal(a.focalID)
	case "D":
		a.cycleDepth()
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.search.close()
		return a, nil
	case "enter":
		id := a.search.selected()
		a.search.close()
		if id != "" {
			a.setFocal(id)
		}
		return a, nil
	case "up", "ctrl+k":
		if a.search.cursor > 0 {
			a.search.cursor--
		}
		return a, nil
	case "down", "ctrl+j":
		if a.search.cursor < len(a.search.matches)-1 {
			a.search.cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.input, cmd = a.search.input.Update(msg)
	a.search.refresh()
	return a, cmd
}

// cycleDepth steps both depth bounds through 1 → 2 → 3 → unlimited.
func (a *App) cycleDepth() {
	next := map[int]int{0: 1, 1: 2, 2: 3, 3: 0}
	d, ok := next[a.opts.AncestryDepth]
	if !ok {
		d = 0
	}
	a.opts.AncestryDepth = d
	a.opts.ProgenyDepth = d
	a.setFocal(a.focalID)
}

func (a *App) selectedNode() (tree.Node, bool) {
	if a.sub.Empty() || a.cursor < 0 || a.cursor >= len(a.sub.Nodes) {
		return tree.Node{}, false
	}
	return a.sub.Nodes[a.cursor], true
}

// moveCursor shifts the selection by row (dr) or slot (dc), clamping to
// the row contents.
func (a *App) moveCursor(dr, dc int) {
	n, ok := a.selectedNode()
	if !ok {
		return
	}
	pos := a.sub.Pos[n.ID]
	rows := a.sub.Rows()
	row := pos.Gen - a.sub.MinGen

	if dc != 0 {
		slot := pos.Slot + dc
		if slot >= 0 && slot < len(rows[row]) {
			a.selectID(rows[row][slot].ID)
		}
		return
	}

	row += dr
	if row < 0 || row >= len(rows) || len(rows[row]) == 0 {
		return
	}
	slot := pos.Slot
	if slot >= len(rows[row]) {
		slot = len(rows[row]) - 1
	}
	a.selectID(rows[row][slot].ID)
}

func (a *App) selectID(id string) {
	for i, n := range a.sub.Nodes {
		if n.ID == id {
			a.cursor = i
			return
		}
	}
}

func (a *App) exportCmd() tea.Cmd {
	sub := a.sub
	base := "kinview-" + a.focalID
	paths := []string{base + ".svg", base + ".png"}
	return func() tea.Msg {
		if err := export.WriteAll(sub, paths...); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: paths}
	}
}

func (a *App) contentHeight() int {
	h := a.height - headerLines - footerLines
	if h < minTreeHeight {
		h = minTreeHeight
	}
	return h
}
