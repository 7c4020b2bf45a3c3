package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark"
	"github.com/iw2rmb/nodemark/buffer"
	"github.com/iw2rmb/nodemark/editor"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// chromeRows is the status line plus the help line.
const chromeRows = 2

type model struct {
	editor editor.Model
	plugin *nodemark.Plugin
	help   help.Model
}

func newModel(doc document, log *zap.Logger, cb editor.Clipboard) (model, error) {
	p, err := nodemark.New(nodemark.Options{
		NodeType: buffer.NodeType(doc.NodeType),
		Logger:   log,
	})
	if err != nil {
		return model{}, err
	}
	wrap, err := doc.wrapMode()
	if err != nil {
		return model{}, err
	}
	ed, err := editor.New(editor.Config{
		Text:         doc.Text,
		Atoms:        doc.atomSpecs(),
		Plugins:      []editor.Plugin{p},
		ShowLineNums: doc.ShowLineNums,
		ReadOnly:     doc.ReadOnly,
		WrapMode:     wrap,
		Style:        editor.DefaultStyle(),
		Clipboard:    cb,
		Logger:       log,
	})
	if err != nil {
		return model{}, err
	}
	return model{editor: ed, plugin: p, help: help.New()}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.editor = m.editor.Close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		statusStyle.Render(m.status()),
		m.help.View(m.editor.KeyMap()),
	)
}

// status describes the caret relative to the nearest atom.
func (m model) status() string {
	b := m.editor.Buffer()
	off := b.CursorOffset()
	st := m.plugin.State(m.editor.PluginView())
	return fmt.Sprintf(" %d  %s  active=%v same_pos=%v",
		off, nodemark.Classify(b, off, m.plugin.NodeType()), st.Active, st.SamePos)
}

// newLogger returns a development logger writing to path, or a no-op logger.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run(docPath, logPath string) error {
	doc, err := loadDocument(docPath)
	if err != nil {
		return err
	}
	log, err := newLogger(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	m, err := newModel(doc, log, systemClipboard{})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	docPath := flag.String("doc", "", "TOML document to open (default: built-in sample)")
	logPath := flag.String("log", "", "write debug logs to this file")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nodemark", nodemark.Tag())
		return
	}
	if err := run(*docPath, *logPath); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
