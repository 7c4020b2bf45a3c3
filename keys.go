package nodemark

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/nodemark/editor"
)

// HandleKey overrides arrows, backspace, home and end around atoms. Up, down
// and delete only reset the state and fall through to the defaults.
func (p *Plugin) HandleKey(v *editor.View, msg tea.KeyMsg) bool {
	km := v.KeyMap()
	switch {
	case key.Matches(msg, km.Right):
		return p.trace(v, "right", p.onArrowRight(v))
	case key.Matches(msg, km.Left):
		return p.trace(v, "left", p.onArrowLeft(v))
	case key.Matches(msg, km.Backspace):
		return p.trace(v, "backspace", p.onBackspace(v))
	case key.Matches(msg, km.Home):
		return p.trace(v, "home", p.onHome(v))
	case key.Matches(msg, km.End):
		return p.trace(v, "end", p.onEnd(v))
	case key.Matches(msg, km.Up), key.Matches(msg, km.Down), key.Matches(msg, km.Delete):
		p.reset(v)
		return false
	default:
		return false
	}
}

func (p *Plugin) trace(v *editor.View, name string, handled bool) bool {
	p.log.Debug("key",
		zap.String("key", name),
		zap.Int("offset", v.Caret()),
		zap.Bool("handled", handled),
	)
	return handled
}

// caret returns the caret offset, or false while a range is selected; the
// key handlers leave ranges to the defaults.
func caret(v *editor.View) (int, bool) {
	_, head, ranged := v.Selection()
	return head, !ranged
}

func (p *Plugin) moveActive(v *editor.View, off int) bool {
	return v.Dispatch(editor.NewTransaction().
		SetCursor(off).
		SetMeta(p.key, State{Active: true}))
}

func (p *Plugin) onArrowRight(v *editor.View) bool {
	off, ok := caret(v)
	if !ok {
		return false
	}
	pl := p.locate(v, off)
	switch {
	case pl.Code.Interior():
		return p.moveActive(v, pl.After.End())
	case (pl.Code == AtStart || pl.Code == Between) && !pl.After.Empty():
		return p.moveActive(v, pl.After.End())
	case pl.Code == TwoAwayLeft:
		return p.moveActive(v, off+1)
	default:
		return false
	}
}

func (p *Plugin) onArrowLeft(v *editor.View) bool {
	off, ok := caret(v)
	if !ok {
		return false
	}
	pl := p.locate(v, off)
	switch {
	case pl.Code.Interior():
		return p.moveActive(v, pl.Before.Start)
	case pl.Code == AtEnd || pl.Code == Between:
		return p.moveActive(v, pl.Before.Start)
	case pl.Code == TwoAwayRight:
		return p.moveActive(v, off-1)
	default:
		return false
	}
}

// onBackspace removes the atom behind the caret as one edit. A zero-size atom
// anchored at the caret renders right before it and counts as behind.
func (p *Plugin) onBackspace(v *editor.View) bool {
	if v.ReadOnly() {
		return false
	}
	off, ok := caret(v)
	if !ok {
		return false
	}
	pl := p.locate(v, off)
	target, found := pl.Before, pl.HasBefore
	switch {
	case pl.HasAfter && pl.After.Empty() && pl.After.Start == off:
		target, found = pl.After, true
	case pl.Code.Interior(), pl.Code == AtEnd, pl.Code == Between:
	default:
		found = false
	}
	if !found {
		return false
	}
	return v.Dispatch(editor.NewTransaction().
		DeleteAtom(target.ID).
		SetCursor(target.Start).
		SetMeta(p.key, DefaultState()))
}

// onHome lands on the outer boundary of an atom sitting at the start of the
// caret's line.
func (p *Plugin) onHome(v *editor.View) bool {
	off, ok := caret(v)
	if !ok {
		return false
	}
	start, _ := v.Doc().LineBounds(off)
	pl := p.locate(v, start)
	switch {
	case pl.Code.Interior():
		return p.moveActive(v, pl.Before.Start)
	case pl.HasAfter && pl.After.Start == start:
		return p.moveActive(v, start)
	default:
		return false
	}
}

// onEnd lands on the outer boundary of an atom sitting at the end of the
// caret's line.
func (p *Plugin) onEnd(v *editor.View) bool {
	off, ok := caret(v)
	if !ok {
		return false
	}
	_, end := v.Doc().LineBounds(off)
	pl := p.locate(v, end)
	switch {
	case pl.Code.Interior():
		return p.moveActive(v, pl.After.End())
	case pl.HasBefore && pl.Before.End() == end:
		return p.moveActive(v, end)
	case pl.HasAfter && pl.After.Empty() && pl.After.Start == end:
		return p.moveActive(v, end)
	default:
		return false
	}
}
