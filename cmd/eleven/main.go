package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/palemoky/eleven/internal/apperrors"
	"github.com/palemoky/eleven/internal/config"
	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/logger"
	"github.com/palemoky/eleven/internal/sound"
	"github.com/palemoky/eleven/internal/ui/console"
	"github.com/palemoky/eleven/internal/ui/tui"
)

type flags struct {
	configPath string
	players    string
	bots       string
	mode       string
	seed       uint64
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", "configs/config.yaml", "配置文件路径")
	flag.StringVar(&f.players, "players", "", "comma separated player names, in seat order")
	flag.StringVar(&f.bots, "bots", "", "comma separated seats played by the bot")
	flag.StringVar(&f.mode, "mode", "", "ui mode: auto, console or tui")
	flag.Uint64Var(&f.seed, "seed", 0, "shuffle seed, 0 for random")
	flag.Parse()

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, "eleven:", err)
		code := apperrors.Code(err)
		if code == 0 {
			code = 1
		}
		os.Exit(code)
	}
}

func run(f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer lg.Close()
	defer func() {
		if r := recover(); r != nil {
			lg.LogPanic(r)
			panic(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var observers []game.Observer
	if cfg.Sound.Enabled {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		if err := sm.Init(); err != nil {
			lg.WithError(err).Warn("sound disabled")
		} else {
			defer sm.Close()
			observers = append(observers, sm)
		}
	}

	opts := []game.Option{game.WithLogger(lg)}
	if cfg.Game.Seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed))))
	}
	bot := game.Threshold(cfg.Game.BotThreshold)

	mode := cfg.UI.Mode
	if mode == config.UIModeAuto {
		mode = config.UIModeConsole
		if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
			mode = config.UIModeTUI
		}
	}
	lg.WithField("mode", mode).WithField("players", cfg.Game.Players).Info("starting game")

	var res *game.Result
	switch mode {
	case config.UIModeTUI:
		s := tui.NewSession(tea.WithAltScreen())
		engine := game.NewEngine(seats(cfg, s, bot), append(opts, game.WithObserver(game.Observers(append(observers, s)...)))...)
		res, err = s.Run(ctx, func(ctx context.Context) (*game.Result, error) {
			return engine.Play(ctx, cfg.Game.Players)
		})
		if res != nil {
			// the alt screen is gone, leave the outcome on the terminal
			console.NewRenderer(os.Stdout).OnEvent(game.Event{Type: game.EventGameEnded, Result: res})
		}
	default:
		var human game.Decider = console.NewLinePrompt(os.Stdin, os.Stdout)
		if isatty.IsTerminal(os.Stdin.Fd()) {
			human = console.Confirm{}
		}
		observers = append(observers, console.NewRenderer(os.Stdout))
		engine := game.NewEngine(seats(cfg, human, bot), append(opts, game.WithObserver(game.Observers(observers...)))...)
		res, err = engine.Play(ctx, cfg.Game.Players)
	}
	if errors.Is(err, context.Canceled) {
		lg.Info("game cancelled")
		return nil
	}
	if err != nil {
		lg.WithError(err).Error("game aborted")
		return err
	}

	lg.WithField("game_id", res.GameID).WithField("winners", res.Winners).Info("game finished")
	return nil
}

func loadConfig(f flags) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("加载配置文件失败，使用默认配置: %v", err)
		}
		cfg = config.Default()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
	}

	if f.players != "" {
		cfg.Game.Players = config.SplitNames(f.players)
	}
	if f.bots != "" {
		cfg.Game.Bots = config.SplitNames(f.bots)
	}
	if f.mode != "" {
		cfg.UI.Mode = f.mode
	}
	if f.seed != 0 {
		cfg.Game.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

// seats sends bot seats to bot and every other seat to human.
func seats(cfg *config.Config, human, bot game.Decider) game.Decider {
	s := game.NewSeats(human)
	for _, name := range cfg.Game.Bots {
		s.With(name, bot)
	}
	return s
}
