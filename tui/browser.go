package tui

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"lautenbacher.net/blinkin/config"
	"lautenbacher.net/blinkin/logging"
	"lautenbacher.net/blinkin/pattern"
)

// Browser is a full screen view of the pattern table. Log output is
// shown in a pane below the table while it runs.
type Browser struct {
	app     *tview.Application
	intro   *tview.TextView
	table   *tview.Table
	logView *tview.TextView
	out     config.OutputConfig
	mu      sync.Mutex
	logOnce sync.Once
}

func NewBrowser(out config.OutputConfig) *Browser {
	return &Browser{out: out}
}

func (b *Browser) introText(p pattern.Pattern) string {
	b.mu.Lock()
	out := b.out
	b.mu.Unlock()
	line1 := fmt.Sprintf("Output: [#ffff00]%s[white] max [#ffff00]%g[white]", out.Type, out.MaxDuty)
	line2 := fmt.Sprintf("Selected: [#00ffff]%s[white] (code %d, %s)", p, p.Code(), p.Category())
	line3 := "Hit [#ff0000]q[-] to exit, [#ff0000]Up/Down[-] to move, [#ff0000]Enter[-] to log the selection"
	return fmt.Sprintf("%s\n%s\n%s", line1, line2, line3)
}

// SetOutput changes the output the duty column is computed for. It is
// safe to call while Run is active.
func (b *Browser) SetOutput(out config.OutputConfig) error {
	if err := out.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	b.out = out
	app := b.app
	b.mu.Unlock()
	if app != nil {
		app.QueueUpdateDraw(func() {
			row, _ := b.table.GetSelection()
			if err := b.fillTable(); err != nil {
				slog.Error("Failed to refresh pattern table", "error", err)
				return
			}
			b.table.Select(row, 0)
			b.intro.SetText(b.introText(pattern.Pattern(row - 1)))
		})
		slog.Info("Output changed", "type", out.Type, "max", out.MaxDuty)
	}
	return nil
}

func (b *Browser) fillTable() error {
	b.mu.Lock()
	out := b.out
	b.mu.Unlock()

	rows, err := Rows(out)
	if err != nil {
		return err
	}
	b.table.Clear()
	for col, title := range Header {
		b.table.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(tcell.ColorLightBlue).
			SetSelectable(false))
	}
	b.table.SetCell(0, len(Header), tview.NewTableCell("").SetSelectable(false))
	for i, row := range rows {
		for col, text := range row {
			cell := tview.NewTableCell(text)
			if col >= 2 {
				cell.SetAlign(tview.AlignRight)
			}
			b.table.SetCell(i+1, col, cell)
		}
		swatch := tview.NewTableCell("    ")
		if color, ok := swatchColor(pattern.Pattern(i)); ok {
			swatch.SetBackgroundColor(color)
		}
		b.table.SetCell(i+1, len(Header), swatch)
	}
	return nil
}

// Run blocks until the user quits. Log output is held again when Run
// returns; release it with logging.Release.
func (b *Browser) Run() error {
	app := tview.NewApplication()

	b.intro = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	b.intro.SetText(b.introText(pattern.Rainbow))
	b.intro.SetBorder(true).SetTitle(" Blinkin Patterns ").SetTitleColor(tcell.ColorLightBlue)
	b.intro.SetBackgroundColor(tcell.NewRGBColor(20, 20, 20))

	b.table = tview.NewTable().
		SetFixed(1, 1).
		SetSelectable(true, false)
	b.table.SetBorder(true)
	b.table.SetBackgroundColor(tcell.NewRGBColor(30, 30, 30))
	if err := b.fillTable(); err != nil {
		return err
	}
	b.table.Select(1, 0)
	b.table.SetSelectionChangedFunc(func(row, _ int) {
		if p := pattern.Pattern(row - 1); p.Valid() {
			b.intro.SetText(b.introText(p))
		}
	})
	b.table.SetSelectedFunc(func(row, _ int) {
		p := pattern.Pattern(row - 1)
		b.mu.Lock()
		out := b.out
		b.mu.Unlock()
		duty, err := out.Duty(p)
		if err != nil {
			slog.Error("Failed to scale pattern", "pattern", p, "error", err)
			return
		}
		slog.Info("Selected pattern", "pattern", p, "code", p.Code(), "duty", duty, "pulse", p.AsPulseWidth())
	})

	b.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetChangedFunc(func() {
			b.logView.ScrollToEnd()
			app.Draw()
		})
	b.logView.SetBorder(true).SetTitle(" Logs ").SetTitleColor(tcell.ColorLightBlue)
	b.logView.SetBackgroundColor(tcell.NewRGBColor(40, 40, 40))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.intro, 5, 0, false).
		AddItem(b.table, 0, 3, true).
		AddItem(b.logView, 8, 0, false)

	// Route logs into the log pane once the screen is up.
	logging.Hold()
	app.SetAfterDrawFunc(func(screen tcell.Screen) {
		b.logOnce.Do(func() {
			if err := logging.Release(tview.ANSIWriter(b.logView)); err != nil {
				slog.Error("Failed to show logs in TUI", "error", err)
			}
		})
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	b.mu.Lock()
	b.app = app
	b.mu.Unlock()
	err := app.SetRoot(layout, true).Run()
	logging.Hold()
	return err
}
