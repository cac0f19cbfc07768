package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/help"
	"github.com/ardnew/argot/log"
)

// editManifestMsg is sent when manifest editing completes successfully.
type editManifestMsg struct{ root *argv.Command }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a decode
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-decode error.
type editErrorMsg struct{ err error }

const (
	parsePrompt = "➜ "
	ctrlPrompt  = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help [COMMAND...]  Print this message, or help for a subcommand
  tree               List the command tree
  edit               Edit the manifest in $EDITOR
  clear              Clear screen
  quit               Exit REPL

Parse mode:
  Each line is split on whitespace and parsed against the manifest
  The line below the prompt shows the parse status as you type
  Tab / Shift-Tab cycle through options and subcommands in scope
  Up/Down walk the history; Shift+Up/Down stay within the current mode
  Ctrl+C on an empty line or Ctrl+D exits
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeParse inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// prompts holds the prompt text and style of each mode.
var prompts = [...]struct {
	text  string
	style lipgloss.Style
}{
	modeParse: {parsePrompt, promptStyle},
	modeCtrl:  {ctrlPrompt, ctrlPromptStyle},
}

// echo formats a submitted line with the prompt of mode.
func echo(mode inputMode, input string) string {
	p := prompts[mode]

	return p.style.Render(p.text) + inputStyle.Render(input)
}

// draft is the unsubmitted input of one mode.
type draft struct {
	text   string
	cursor int
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	root       *argv.Command
	parseOpts  []argv.ParseOption
	logger     log.Logger
	history    *History
	matches    fuzzy.Matches // current fuzzy match results
	drafts     [2]draft      // per-mode input saved across mode switches
	preTab     draft         // input before tab-cycling began
	historyIdx int
	wordStart  int // byte offset of current word start
	wordEnd    int // byte offset of current word end
	suggIdx    int // selected candidate index
	width      int // terminal width for ellipsization
	mode       inputMode
	tabActive  bool
	quitting   bool
}

// Run starts the REPL over the template tree rooted at root. Each command
// line entered is parsed with opts.
func Run(
	ctx context.Context,
	root *argv.Command,
	cacheDir string,
	logger log.Logger,
	opts ...argv.ParseOption,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if root == nil {
		return ErrNoTemplates
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.String("error", err.Error()))
	}

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Int("history", history.Len()),
	)

	p := tea.NewProgram(newModel(ctx, root, history, logger, opts...), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	root *argv.Command,
	history *History,
	logger log.Logger,
	opts ...argv.ParseOption,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(parsePrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		root:       root,
		parseOpts:  opts,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeParse,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(parsePrompt) - 2

		return m, nil

	case editManifestMsg:
		m.root = msg.root
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl manifest replaced",
			slog.Int("options", len(m.root.Options)),
			slog.Int("commands", len(m.root.Commands)),
		)

		return m, tea.Println(resultStyle.Render("✔ manifest updated"))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("🗴 error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View() + "\n" + m.statusLine() + "\n"
}

// statusLine returns the line shown below the prompt: the history position
// while browsing, the candidate bar while completing, or the parse status of
// the current input.
func (m model) statusLine() string {
	input := strings.TrimSpace(m.input.Value())

	switch {
	case m.historyIdx < m.history.Len():
		pos := lipgloss.NewStyle().Bold(true).Render(fmt.Sprint(m.historyIdx + 1))

		return hintStyle.Render(fmt.Sprintf("%s/%d", pos, m.history.Len()))

	case input == "" && m.mode == modeParse:
		return hintStyle.Render("Type a command line or press Esc for commands")

	case input == "":
		return hintStyle.Render("Type: help, tree, edit, clear, quit (press Esc to return)")

	case len(m.matches) > 0:
		return renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width)

	case m.mode == modeParse:
		return renderStatus(argv.Parse(strings.Fields(input), m.root, m.parseOpts...))
	}

	return ""
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress", slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		if msg.Type == tea.KeyCtrlC {
			m.input.SetValue("")
			m.historyIdx = m.history.Len()
			m.tabActive = false
			refreshMatches(&m, false)
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Enter locks in the tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		return m.recall(-1, false)

	case tea.KeyDown:
		return m.recall(1, false)

	case tea.KeyShiftUp:
		return m.recall(-1, true)

	case tea.KeyShiftDown:
		return m.recall(1, true)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTab.text)
			m.input.SetCursor(m.preTab.cursor)
			refreshMatches(&m, false)

			return m, nil
		}

		return m.toggleMode()
	}

	// Space ends tab-cycling and keeps the candidate; typing confirms a
	// unique exact match, while deletion and cursor motion never do.
	typing := msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
	if !typing || msg.String() == " " {
		m.tabActive = false
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, typing)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end. A single
// candidate is completed immediately.
func (m model) cycle(step int) (model, tea.Cmd) {
	n := len(m.matches)

	switch {
	case n == 0:
		return m, nil

	case n == 1:
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil

	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n

	default:
		m.tabActive = true
		m.preTab = draft{m.input.Value(), m.input.Position()}
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word in the input with replacement
// and moves the cursor to its end.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)
	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input. With
// autoConfirm, a word that already equals its sole candidate is accepted.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, _, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if candidate := m.matches[0].Str; m.input.Value()[m.wordStart:m.wordEnd] == candidate {
		replaceCurrentWord(m, candidate)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// recall steps through the history by step. When sameMode is set, entries of
// the other mode are skipped; otherwise the mode follows the entry. Stepping
// past the newest entry clears the input.
func (m model) recall(step int, sameMode bool) (model, tea.Cmd) {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.GetEntry(i)
		if err != nil || (sameMode && entry.Mode != m.mode) {
			continue
		}

		if entry.Mode != m.mode {
			m, _ = m.switchMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m, nil
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m, nil
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.drafts = [2]draft{}
	m.input.SetValue("")
	m.matches = nil

	if _, err := m.history.WriteWithMode(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not write history", slog.String("error", err.Error()))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	rs := argv.Parse(strings.Fields(input), m.root, m.parseOpts...)

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl parse",
		slog.String("input", input),
		slog.Int("results", len(rs)),
		slog.Bool("valid", rs.Valid()),
	)

	return m, tea.Sequence(tea.Println(echo(modeParse, input)), tea.Println(renderResults(rs)))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echoCmd := tea.Println(echo(modeCtrl, input))
	name, args := parts[0], parts[1:]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl command",
		slog.String("command", name),
		slog.Any("args", args),
	)

	switch name {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(m.helpView(args)))

	case "t", "tree":
		return m, tea.Sequence(echoCmd, tea.Println(renderTree(m.root)))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echoCmd, m.edit())
	}

	return m, tea.Println(errorStyle.Render("Unknown command: " + name + " (try 'help')"))
}

// edit hands the terminal to the manifest editor and reports the outcome as
// one of the edit messages.
func (m model) edit() tea.Cmd {
	cmd := &editManifestCommand{
		root:    m.root,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.newRoot == nil:
			return editCancelledMsg{}
		}

		return editManifestMsg{root: cmd.newRoot}
	})
}

// helpView returns the REPL help, or the rendered help of the subcommand
// reached by path.
func (m model) helpView(path []string) string {
	if len(path) == 0 {
		return helpMessage()
	}

	cmd := m.root.Path(path...)
	if cmd == nil {
		return errorStyle.Render("Unknown command: " + strings.Join(path, " "))
	}

	return help.Message(cmd, help.DefaultPosix().Apply(help.TerminalStyles()))
}

// toggleMode switches between parse and control modes.
func (m model) toggleMode() (model, tea.Cmd) {
	if m.mode == modeParse {
		return m.switchMode(modeCtrl)
	}

	return m.switchMode(modeParse)
}

// switchMode saves the current input as the draft of the current mode and
// restores the draft of mode.
func (m model) switchMode(mode inputMode) (model, tea.Cmd) {
	m.drafts[m.mode] = draft{m.input.Value(), m.input.Position()}
	m.mode = mode
	m.tabActive = false

	p := prompts[mode]
	m.input.Prompt = p.style.Render(p.text)
	m.input.SetValue(m.drafts[mode].text)
	m.input.SetCursor(m.drafts[mode].cursor)
	refreshMatches(&m, false)

	return m, nil
}
