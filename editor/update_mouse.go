package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || m.buf == nil {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		hit := m.hitTest(msg.X, msg.Y)
		if !msg.Shift && m.routeClick(hit) {
			m.mouseDragging = false
			return m, cmd
		}

		if msg.Shift {
			anchor, _, _ := m.buf.SelectionOffsets()
			m.mouseAnchor = anchor
			m.buf.SetSelectionOffsets(anchor, hit.Offset)
		} else {
			m.mouseAnchor = hit.Offset
			m.buf.SetCursorOffset(hit.Offset)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		hit := m.hitTest(x, y)
		m.buf.SetSelectionOffsets(m.mouseAnchor, hit.Offset)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

// routeClick offers a click to the click handlers in plugin order.
func (m Model) routeClick(hit Hit) bool {
	v := m.view()
	for _, p := range m.h.plugins {
		ch, ok := p.(ClickHandler)
		if !ok {
			continue
		}
		if ch.HandleClick(v, hit.Offset, hit) {
			m.cfg.Logger.Debug("click handled by plugin",
				zap.Int("offset", hit.Offset),
				zap.Stringer("kind", hit.Kind),
				zap.String("plugin", p.Key().String()),
			)
			return true
		}
	}
	return false
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
