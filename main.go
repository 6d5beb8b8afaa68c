package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/iv/internal/app"
	"github.com/llehouerou/iv/internal/awake"
	"github.com/llehouerou/iv/internal/clipboard"
	"github.com/llehouerou/iv/internal/config"
	"github.com/llehouerou/iv/internal/errmsg"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/index/store"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/player"
	"github.com/llehouerou/iv/internal/state"
)

// resources are the handles closed when the program exits.
type resources []io.Closer

func (r resources) Close() {
	for i := len(r) - 1; i >= 0; i-- {
		r[i].Close()
	}
}

func initialModel() (app.Model, resources, error) {
	var res resources

	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, res, err
	}

	logPath, err := cfg.LogFile()
	if err != nil {
		return app.Model{}, res, err
	}
	logger, logFile, err := logging.OpenFile(logPath, cfg.Level())
	if err != nil {
		return app.Model{}, res, err
	}
	res = append(res, logFile)

	indexPath, err := cfg.IndexFile()
	if err != nil {
		return app.Model{}, res, err
	}
	s, err := store.Open(indexPath,
		store.WithFileRemoval(cfg.ShouldDeleteFiles()),
		store.WithLogger(logger),
	)
	if err != nil {
		return app.Model{}, res, fmt.Errorf("opening index %s: %w", indexPath, err)
	}
	res = append(res, s)

	statePath, err := cfg.StateFile()
	if err != nil {
		return app.Model{}, res, err
	}
	stateMgr, err := state.Open(statePath, cfg.Filter())
	if err != nil {
		return app.Model{}, res, err
	}
	res = append(res, stateMgr)

	durations := func(uri string) (time.Duration, error) {
		return s.Duration(context.Background(), uri)
	}

	logger.Info("starting", "index", indexPath, "state", statePath)

	m := app.New(app.Deps{
		Index:        index.NewClient(s, logger),
		Prefs:        stateMgr,
		Factory:      player.NewSimulatedFactory(durations),
		Logger:       logger,
		Awake:        awake.New(),
		Clipboard:    clipboard.New(os.Stdout),
		PollInterval: cfg.PollInterval(),
		AutoPlay:     cfg.ShouldAutoPlay(),
	})
	return m, res, nil
}

func main() {
	m, res, err := initialModel()
	if err != nil {
		res.Close()
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	res.Close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
