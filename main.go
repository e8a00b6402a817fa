// termflip is a terminal application to play Othello with two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
	"termflip/engine/local"
	"termflip/othello"
	"termflip/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (8, 10 or 12; any even size from 4 up)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagPosition   = flag.String("position", "", "File with a start position (rows of X, O and .), Black to move")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.OthelloBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termflip %s\n", Version)
		return
	}

	logCloser, err := config.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var start *othello.Board
	if *flagPosition != "" {
		start, err = loadPosition(*flagPosition)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid start position: %s\n", err)
			os.Exit(1)
		}
	}

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagFocus || start != nil
	slog.Info("termflip starting", "version", Version, "quick_start", quickStart)

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● termflip ○ ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewOthelloBoard(app, cfg, gameHint)
	gameBoard.SetGameEndFunc(func(outcome othello.Outcome, result string) {
		showGameOver(outcome, result)
	})

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleGameInput)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Game history screen
	historyUI := ui.NewHistoryBrowser(config.HistoryDir(), func() {
		rootPage.SwitchToPage("setup")
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			historyUI.Refresh()
			rootPage.SwitchToPage("history")
		},
	)

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 72), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	rootPage.AddPage("history", historyUI.Flex(), true, false)

	if quickStart {
		gameCfg := buildGameConfigFromFlags(start)
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	err = app.SetRoot(rootPage, true).Run()
	gameBoard.Close()
	if err != nil {
		slog.Error("ui stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// handleGameInput maps keys on the game page to board actions.
func handleGameInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
		if gameBoard.SelectedTile() != nil {
			gameBoard.ResetSelection()
		} else {
			gameBoard.Close()
			rootPage.SwitchToPage("setup")
		}
		return nil
	}
	switch event.Key() {
	case tcell.KeyUp:
		gameBoard.MoveSelection(0, -1)
	case tcell.KeyDown:
		gameBoard.MoveSelection(0, 1)
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1, 0)
	case tcell.KeyRight:
		gameBoard.MoveSelection(1, 0)
	case tcell.KeyEnter:
		selTile := gameBoard.SelectedTile()
		if selTile == nil {
			gameBoard.MoveSelection(0, 0)
			return nil
		}
		gameBoard.PlayMove(selTile.X, selTile.Y)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			gameBoard.MoveSelection(-1, 0)
		case 'j':
			gameBoard.MoveSelection(0, 1)
		case 'k':
			gameBoard.MoveSelection(0, -1)
		case 'l':
			gameBoard.MoveSelection(1, 0)
		case 'r':
			gameBoard.Reset()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.Close()
	gameBoard.SetShowHints(cfg.Game.ShowHints)
	gameBoard.SetPlayers(gameCfg.PlayerBlack, gameCfg.PlayerWhite)

	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		slog.Error("failed to start game", "err", err)
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	if !gameBoard.IsFocusMode() {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
	rootPage.SwitchToPage("gameview")
	if state := gameBoard.BoardState; state.Finished() {
		// The start position was already decided.
		showGameOver(state.FinalOutcome(), state.Outcome)
	}
}

// showGameOver offers a rematch once neither side can move.
func showGameOver(outcome othello.Outcome, result string) {
	text := fmt.Sprintf("Game Over!\n%s\n\n● Black %d   ○ White %d", result, outcome.Black, outcome.White)
	if path := gameBoard.RecordPath(); path != "" {
		text += fmt.Sprintf("\n\nSaved to %s", filepath.Base(path))
	}
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"New Game", "Board", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("gameover")
			switch buttonLabel {
			case "New Game":
				gameBoard.Reset()
			case "Menu":
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
		})
	rootPage.AddPage("gameover", modal, true, true)
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags(start *othello.Board) engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = cfg.Game.DefaultBoardSize
	gameCfg.PlayerBlack = cfg.Game.PlayerBlack
	gameCfg.PlayerWhite = cfg.Game.PlayerWhite
	gameCfg.Record = cfg.Game.RecordGames
	gameCfg.HistoryDir = config.HistoryDir()

	if *flagBoardSize > 0 {
		gameCfg.BoardSize = *flagBoardSize
	}
	if start != nil {
		gameCfg.Start = start
		gameCfg.BoardSize = start.Size()
	}
	return gameCfg
}
