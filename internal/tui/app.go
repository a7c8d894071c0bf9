package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/aura/internal/export"
	"github.com/sadopc/aura/internal/logging"
	"github.com/sadopc/aura/internal/palette"
	"github.com/sadopc/aura/internal/session"
	"github.com/sadopc/aura/internal/store"
)

// Options configure the TUI beyond its starting params.
type Options struct {
	Prefs     *store.Store // nil disables remembering preferences
	Log       *logging.Logger
	Moods     []palette.Mood
	Bell      io.Writer // nil silences cues
	Inline    bool      // program runs without the alternate screen
	ExportDir string    // defaults to the home directory
}

// Run starts the program and blocks until the user quits.
func Run(params session.Params, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithReportFocus()}
	if !opts.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(NewApp(params, opts), progOpts...).Run()
	return err
}

// App is the root Bubble Tea model.
type App struct {
	store     *session.Store
	prefs     *store.Store
	host      *host
	log       *logging.Logger
	exportDir string

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	confirmQuit   bool

	session  sessionModel
	moods    moodsModel
	timeline timelineModel
	settings settingsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(params session.Params, opts Options) App {
	h := newHost(opts.Bell, opts.Inline)
	st := session.NewStore(params, h.sessionHost(opts.Log))
	st.Subscribe(h.record)

	hm := help.New()
	hm.ShowAll = false

	a := App{
		store:      st,
		prefs:      opts.Prefs,
		host:       h,
		log:        opts.Log,
		exportDir:  opts.ExportDir,
		activeView: viewSession,
		session:    newSessionModel(),
		moods:      newMoodsModel(opts.Moods, st.Snapshot().Params.Seed),
		timeline:   newTimelineModel(),
		settings:   newSettingsModel(opts.Prefs),
		help:       hm,
	}
	a.rebuildTimeline()
	return a
}

func (a App) Init() tea.Cmd {
	return a.settings.refresh()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.session.setSize(a.width, contentHeight)
		a.moods.setSize(a.width, contentHeight)
		a.timeline.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.rebuildTimeline()
		return a, nil

	case tea.BlurMsg:
		a.host.setVisible(false)
		return a.afterStore(nil)

	case tea.FocusMsg:
		a.host.setVisible(true)
		return a, nil

	case sessionTickMsg:
		return a.afterStore(a.store.HandleTick(msg.tick))

	case tea.KeyMsg:
		return a.handleKey(msg)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %s to %s", strings.ToUpper(string(msg.format)), msg.path)
		a.statusErr = false
		return a, nil

	case settingsDataMsg:
		a.settings, _ = a.settings.update(msg, a.store.Snapshot())
		return a, nil

	case seedChosenMsg:
		var cmd tea.Cmd
		a, cmd = a.dispatch(session.SetSeed{Color: msg.seed})
		return a, tea.Batch(cmd, a.savePrefs())

	case paramsEditedMsg:
		var cmd tea.Cmd
		a, cmd = a.dispatch(
			session.SetDuration{Minutes: msg.duration},
			session.SetSprintCount{Count: msg.sprints},
			session.SetEnergy{Level: msg.energy},
			session.SetAmbience{Level: msg.ambience},
		)
		return a, tea.Batch(cmd, a.savePrefs())

	case cardEditedMsg:
		return a.dispatch(session.SetFocusCard{Card: msg.card})
	}

	return a.updateActiveView(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmQuit {
		switch {
		case key.Matches(msg, keys.Confirm):
			a.store.Dispatch(session.Reset{})
			a.host.drain()
			return a, tea.Quit
		case key.Matches(msg, keys.Deny):
			a.confirmQuit = false
			a.status = ""
			a.statusErr = false
		}
		return a, nil
	}

	if a.exportPicking {
		return a.updateExportPicker(msg)
	}

	// If a child view is capturing input (e.g. form), delegate first.
	if a.isFormActive() {
		return a.updateActiveView(msg)
	}

	snap := a.store.Snapshot()
	switch {
	case key.Matches(msg, keys.Quit):
		if a.host.guarding() {
			a.confirmQuit = true
			a.status = "Session in progress. Quit anyway? (y/n)"
			a.statusErr = true
			return a, nil
		}
		return a, tea.Quit
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	case key.Matches(msg, keys.Commit):
		return a.dispatch(session.Commit{})
	case key.Matches(msg, keys.Pause):
		if snap.State.Running {
			return a.dispatch(session.Pause{})
		}
		return a.dispatch(session.Resume{})
	case key.Matches(msg, keys.Reset):
		if snap.Commit.Countdown > 0 {
			return a.dispatch(session.CancelCommit{})
		}
		return a.dispatch(session.Reset{})
	}

	// The focus screen has no tabs.
	if snap.LockedIn {
		return a, nil
	}

	switch {
	case key.Matches(msg, keys.Export):
		a.exportPicking = true
		a.exportCursor = 0
		return a, nil
	case key.Matches(msg, keys.Tab1):
		a.activeView = viewSession
		return a, nil
	case key.Matches(msg, keys.Tab2):
		a.activeView = viewMoods
		return a, nil
	case key.Matches(msg, keys.Tab3):
		a.activeView = viewTimeline
		return a, nil
	case key.Matches(msg, keys.Tab4):
		a.activeView = viewSettings
		return a, a.settings.refresh()
	case key.Matches(msg, keys.Tab):
		a.activeView = (a.activeView + 1) % viewState(len(viewNames))
		if a.activeView == viewSettings {
			return a, a.settings.refresh()
		}
		return a, nil
	}

	return a.updateActiveView(msg)
}

// dispatch applies commands to the session store and collects the
// effects they produced.
func (a App) dispatch(cmds ...session.Command) (App, tea.Cmd) {
	var ticks []session.Tick
	for _, c := range cmds {
		ticks = append(ticks, a.store.Dispatch(c)...)
	}
	return a.afterStore(ticks)
}

func (a App) afterStore(ticks []session.Tick) (App, tea.Cmd) {
	screen, events := a.host.drain()
	cmds := append([]tea.Cmd{scheduleTicks(ticks)}, screen...)

	rebuild := false
	for _, ev := range events {
		if text := eventStatus(ev); text != "" {
			a.status = text
			a.statusErr = ev.Kind == session.EventLeave
		}
		if ev.Kind == session.EventParams {
			rebuild = true
		}
	}
	if rebuild {
		a.rebuildTimeline()
	}
	return a, tea.Batch(cmds...)
}

func eventStatus(ev session.Event) string {
	switch ev.Kind {
	case session.EventPhase:
		return phaseLabel(ev.State) + " started"
	case session.EventComplete:
		return "Session complete"
	case session.EventLeave:
		return fmt.Sprintf("Attention lost (%d this session)", ev.Leave.Count)
	case session.EventReset:
		return "Session reset"
	}
	return ""
}

func (a *App) rebuildTimeline() {
	snap := a.store.Snapshot()
	a.timeline.build(snap.Plan, newTheme(snap.Palette))
}

func (a App) savePrefs() tea.Cmd {
	if a.prefs == nil {
		return nil
	}
	p := a.store.Snapshot().Params
	prefs, log := a.prefs, a.log
	return func() tea.Msg {
		err := prefs.SavePreferences(store.Preferences{
			Duration: p.Duration,
			Sprints:  p.Sprints,
			Seed:     p.Seed,
			Energy:   p.Energy,
			Ambience: p.Ambience,
		})
		if err != nil {
			log.Errorf("save preferences: %v", err)
			return statusMsg{text: fmt.Sprintf("Could not save preferences: %v", err), isError: true}
		}
		settings, _ := prefs.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	snap := a.store.Snapshot()
	var cmd tea.Cmd
	switch a.activeView {
	case viewSession:
		a.session, cmd = a.session.update(msg, snap)
	case viewMoods:
		a.moods, cmd = a.moods.update(msg, snap)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg, snap)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewSession:
		return a.session.formActive
	case viewMoods:
		return a.moods.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	snap := a.store.Snapshot()
	th := newTheme(snap.Palette)
	footer := a.renderFooter(snap, th)

	if snap.LockedIn {
		h := max(1, a.height-lipgloss.Height(footer))
		return lipgloss.JoinVertical(lipgloss.Left, renderFocus(snap, th, a.width, h), footer)
	}

	header := a.renderHeader(th)

	var content string
	switch a.activeView {
	case viewSession:
		content = a.session.view(snap, th)
	case viewMoods:
		content = a.moods.view(snap, th)
	case viewTimeline:
		content = a.timeline.view(snap, th)
	case viewSettings:
		content = a.settings.view(snap, th)
	}

	contentHeight := max(1, a.height-lipgloss.Height(header)-lipgloss.Height(footer))

	if a.exportPicking {
		content = a.renderExportPicker(th)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader(th theme) string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, th.activeTab().Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := th.title().Render("aura")
	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter(snap session.Snapshot, th theme) string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	timerInfo := ""
	switch {
	case snap.Commit.Countdown > 0:
		timerInfo = th.accentText().Render(fmt.Sprintf(" ◎ %d", snap.Commit.Countdown))
	case snap.State.Phase.Active() && snap.State.Running:
		timerInfo = successStyle.Render(" ● " + formatClock(snap.State.Remaining))
	case snap.State.Phase.Active():
		timerInfo = warningStyle.Render(" ⏸ " + formatClock(snap.State.Remaining))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := max(1, a.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker(th theme) string {
	rows := []string{th.title().Render("Export Plan"), ""}
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = th.selectedItem()
		}
		rows = append(rows, style.Render(cursor+strings.ToUpper(string(f))))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return th.activePanel().Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(f export.Format) tea.Cmd {
	snap := a.store.Snapshot()
	dir, log := a.exportDir, a.log
	return func() tea.Msg {
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
			}
			dir = home
		}

		now := time.Now()
		path := filepath.Join(dir, export.FileName(f, now))
		doc := export.NewDocument(snap.Plan, snap.Params.Seed, now)
		if err := export.ToFile(path, f, doc); err != nil {
			log.Errorf("export %s: %v", f, err)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		log.Infof("exported plan to %s", path)
		return exportDoneMsg{path: path, format: f}
	}
}
