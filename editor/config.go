package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/buffer"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// Atoms over Text, validated by buffer.NewWithAtoms.
	Atoms []buffer.AtomSpec

	// Plugins in installation order. Hooks run in this order and the first
	// handler that reports true wins.
	Plugins []Plugin

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4
	WrapMode     WrapMode

	ReadOnly     bool
	ScrollPolicy ScrollPolicy

	// Forwarded to buffer.Options.
	HistoryLimit int

	Clipboard Clipboard

	// OnChange fires after every Update that changed the buffer.
	OnChange func(ChangeEvent)

	// Logger receives debug output about dispatch and plugin routing.
	// nil disables logging.
	Logger *zap.Logger
}

func normalizeConfig(cfg Config) Config {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Logger = cfg.Logger.Named("editor")
	return cfg
}
