package tui

import (
	"log"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"countrymap/internal/config"
	"countrymap/internal/geom"
	"countrymap/internal/info"
	"countrymap/internal/viewbox"
)

// Options are resolved by the command line before the program starts.
type Options struct {
	Config  config.Config
	MapPath string
	Watch   bool
}

type surface int

const (
	surfaceNone surface = iota
	surfaceMap
	surfaceDetail
)

type dragState struct {
	active  bool
	moved   bool
	x, y    int
	surface surface
}

type Model struct {
	cfg config.Config

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// Data
	path   string
	world  geom.World
	shapes []geom.Shape
	info   info.Catalog

	// main map surface
	view    viewbox.ViewBox
	hoverID string
	drag    dragState

	// country list
	l list.Model

	detail detailView
	tbl    table.Model

	watcher *fsnotify.Watcher
}

// New builds the model and loads the map and info files named in opts.
// Load failures end up in the status line; only a failure to set up
// file watching is returned.
func New(opts Options) (Model, error) {
	m := Model{
		cfg:         opts.Config,
		helpVisible: true,
		status:      "countrymap ready",
		view:        mainViewBox(opts.Config),
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Countries"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(false))

	if opts.Config.InfoPath != "" {
		c, err := info.Load(opts.Config.InfoPath)
		if err != nil {
			log.Printf("info: %v", err)
			m.status = err.Error()
		} else {
			m.info = c
		}
	}
	if opts.MapPath != "" {
		m.path = opts.MapPath
		m.loadPath(opts.MapPath)
		if opts.Watch {
			w, err := newWatcher(opts.MapPath)
			if err != nil {
				return Model{}, err
			}
			m.watcher = w
		}
	}
	return m, nil
}

func mainViewBox(c config.Config) viewbox.ViewBox {
	return viewbox.New(viewbox.Point{}, uint32(c.WorldWidth), uint32(c.WorldHeight), c.ZoomInLimit, c.ZoomOutLimit)
}

func (m Model) Init() tea.Cmd { return m.watchCmd() }

func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForChange(m.watcher, m.path)
}

// Close releases the file watcher, if any.
func (m Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// ViewBox returns the main map's view box.
func (m Model) ViewBox() viewbox.ViewBox { return m.view }
