// internal/app/app.go
package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quillmd/quill/internal/buffer"
	"github.com/quillmd/quill/internal/clipboard"
	"github.com/quillmd/quill/internal/config"
	"github.com/quillmd/quill/internal/event"
	"github.com/quillmd/quill/internal/highlighter"
	"github.com/quillmd/quill/internal/input"
	"github.com/quillmd/quill/internal/locate"
	"github.com/quillmd/quill/internal/logger"
	"github.com/quillmd/quill/internal/search"
	"github.com/quillmd/quill/internal/statusbar"
	"github.com/quillmd/quill/internal/storage"
	"github.com/quillmd/quill/internal/tui"
	"github.com/quillmd/quill/internal/types"
	"github.com/quillmd/quill/internal/utils"
)

// App encapsulates the editor components and the main loop.
type App struct {
	cfg        *config.Config
	tuiManager *tui.TUI
	events     *event.Manager
	buf        *buffer.Buffer
	processor  *input.Processor
	statusBar  *statusbar.StatusBar
	clip       *clipboard.Manager
	searcher   *search.Manager
	saver      storage.Saver
	hl         *highlighter.Highlighter

	viewY, viewX int
	highlights   highlighter.Result
	hlMu         sync.Mutex
	hlDebouncer  utils.Debouncer

	prompt      *promptState
	pendingQuit bool

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and wires an application instance. filePath may be ""
// for an unnamed document.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	events := event.NewManager()
	buf := buffer.New(events, cfg.Editor.HistoryLimit)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		events:        events,
		buf:           buf,
		processor:     input.NewProcessor(),
		statusBar:     statusbar.New(statusbar.DefaultConfig()),
		saver:         storage.FileSaver{},
		hl:            highlighter.NewHighlighter(),
		highlights:    make(highlighter.Result),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.clip = clipboard.NewManager(buf, cfg.Editor.SystemClipboard)
	a.searcher = search.NewManager(buf)

	events.Subscribe(event.TypeBufferChanged, a.handleBufferChanged)
	events.Subscribe(event.TypeSelectionMoved, a.handleSelectionMoved)
	events.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)

	if filePath != "" {
		content, err := storage.Load(filePath)
		if err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("cannot open '%s': %w", filePath, err)
		}
		buf.OpenFile(filePath, content)
	} else {
		buf.NewFile()
	}

	return a, nil
}

// Run starts the event loop and the drawing loop; it returns when the
// user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s - Ctrl+S Save | Ctrl+F Find | Ctrl+Q Quit", config.AppName)
	a.requestRedraw()

	var autosaveC <-chan time.Time
	if a.cfg.Editor.AutoSave {
		ticker := time.NewTicker(config.AutoSaveInterval)
		defer ticker.Stop()
		autosaveC = ticker.C
	}

	for {
		select {
		case <-a.quit:
			a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting")
			return nil
		case <-autosaveC:
			a.autoSave()
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// autoSave persists a named, modified buffer in the background.
func (a *App) autoSave() {
	if !a.buf.IsModified() || a.buf.CurrentFile() == "" {
		return
	}
	if err := a.buf.Save(a.saver); err != nil {
		logger.Warnf("App: autosave failed: %v", err)
		return
	}
	a.requestRedraw()
}

// eventLoop polls terminal events and dispatches key handling.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true
		case *tcell.EventKey:
			if a.prompt != nil {
				needsRedraw = a.handlePromptKey(eventData)
			} else {
				needsRedraw = a.handleAction(a.processor.ProcessEvent(eventData))
			}
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// drawEditor recomputes the viewport and redraws all components.
func (a *App) drawEditor() {
	content := a.buf.Content()
	lines := strings.Split(content, "\n")
	sel := a.buf.Selection()

	caret := locate.Locate(content, sel.End)
	selStart := locate.Locate(content, sel.Start)
	selEnd := caret

	width, height := a.tuiManager.Size()
	a.scrollToCursor(caret, lines, width, height)

	view := &tui.View{
		Lines:           lines,
		ViewY:           a.viewY,
		ViewX:           a.viewX,
		Cursor:          tui.Pos{Line: caret.Line - 1, Col: caret.Col - 1},
		SelStart:        tui.Pos{Line: selStart.Line - 1, Col: selStart.Col - 1},
		SelEnd:          tui.Pos{Line: selEnd.Line - 1, Col: selEnd.Col - 1},
		SelectionActive: !sel.IsCaret(),
		Highlights:      a.overlaySearch(content),
		StatusBarHeight: a.cfg.Editor.StatusBarHeight,
	}

	a.statusBar.SetCursorInfo(caret)

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, view)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.DrawCursor(a.tuiManager, view)
	a.tuiManager.Show()
}

// scrollToCursor adjusts the viewport so the caret stays visible with
// the configured scroll-off margin.
func (a *App) scrollToCursor(caret types.Point, lines []string, width, height int) {
	viewHeight := height - a.cfg.Editor.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	cursorLine := caret.Line - 1
	scrollOff := a.cfg.Editor.ScrollOff
	if scrollOff*2 >= viewHeight {
		scrollOff = (viewHeight - 1) / 2
	}

	if cursorLine < a.viewY+scrollOff {
		a.viewY = cursorLine - scrollOff
	}
	if cursorLine >= a.viewY+viewHeight-scrollOff {
		a.viewY = cursorLine - viewHeight + scrollOff + 1
	}
	maxY := len(lines) - viewHeight
	if a.viewY > maxY {
		a.viewY = maxY
	}
	if a.viewY < 0 {
		a.viewY = 0
	}

	cursorVisualCol := 0
	if cursorLine >= 0 && cursorLine < len(lines) {
		cursorVisualCol = tui.VisualColumn(lines[cursorLine], caret.Col-1)
	}
	if cursorVisualCol < a.viewX {
		a.viewX = cursorVisualCol
	}
	if cursorVisualCol >= a.viewX+width-1 {
		a.viewX = cursorVisualCol - width + 2
	}
	if a.viewX < 0 {
		a.viewX = 0
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
