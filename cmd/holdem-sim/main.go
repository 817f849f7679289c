package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/weedbox/holdem"
	"github.com/weedbox/holdem/actor"
	"github.com/weedbox/holdem/card"
	"github.com/weedbox/holdem/open_game_manager"
)

var printer = message.NewPrinter(language.English)

type simConfig struct {
	players      []string
	chips        int64
	smallBlind   int64
	bigBlind     int64
	hands        int
	seed         int64
	actionTime   time.Duration
	thinkingTime time.Duration
	readyTimeout int
	debug        bool
}

func parseFlags() simConfig {
	var cfg simConfig

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	pflag.StringSliceVarP(&cfg.players, "players", "p", []string{"Alice", "Bob", "Carol", "Dave"}, "player names, one seat each (2-8)")
	pflag.Int64Var(&cfg.chips, "chips", holdem.DefaultStartingChips, "starting chips")
	pflag.Int64Var(&cfg.smallBlind, "sb", 10, "small blind")
	pflag.Int64Var(&cfg.bigBlind, "bb", 20, "big blind")
	pflag.IntVarP(&cfg.hands, "hands", "n", 10, "hands to play, 0 plays until one player is left")
	pflag.Int64Var(&cfg.seed, "seed", 0, "deck and bot seed, 0 is random")
	pflag.DurationVar(&cfg.actionTime, "action-time", 0, "time to act before the default action applies")
	pflag.DurationVar(&cfg.thinkingTime, "thinking-time", 0, "max random bot delay per action")
	pflag.IntVar(&cfg.readyTimeout, "ready-timeout", 1, "seconds before pending players are auto readied for the next hand")
	pflag.BoolVarP(&cfg.debug, "debug", "d", false, "development logging")
	pflag.Parse()

	return cfg
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := parseFlags()

	logger, err := newLogger(cfg.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg simConfig, logger *zap.Logger) error {
	settings := holdem.NewDefaultTableSettings(cfg.players...)
	settings.StartingChips = cfg.chips
	settings.SmallBlind = cfg.smallBlind
	settings.BigBlind = cfg.bigBlind
	settings.ActionTime = cfg.actionTime
	settings.MaxHands = cfg.hands

	engine, err := setupTable(ctx, settings, cfg, logger)
	if err != nil {
		return err
	}

	runErr := engine.Run(ctx)
	report(engine.GetTable(), runErr)

	if errors.Is(runErr, holdem.ErrNotEnoughPlayers) {
		return nil
	}
	return runErr
}

/*
setupTable 建立一張由機器人對戰的桌
  - BotRunner 回應所有座位的動作請求
  - 每手結束後由 OpenGameManager 等待所有仍有籌碼的玩家準備好，再開始下一手
*/
func setupTable(ctx context.Context, settings holdem.TableSettings, cfg simConfig, logger *zap.Logger) (holdem.HandEngine, error) {
	provider := holdem.NewChannelActionProvider()

	botOpts := []actor.BotRunnerOpt{
		actor.WithLogger(logger),
		actor.WithHumanized(cfg.thinkingTime),
	}
	engineOpts := []holdem.HandEngineOpt{
		holdem.WithLogger(logger),
	}
	if cfg.seed != 0 {
		botOpts = append(botOpts, actor.WithSeed(cfg.seed))
		engineOpts = append(engineOpts, holdem.WithDeck(card.NewDeck(card.WithSeed(cfg.seed))))
	}

	bot := actor.NewBotRunner(provider, botOpts...)
	go func() {
		_ = bot.Run(ctx)
	}()

	gate := open_game_manager.NewOpenGameManager(open_game_manager.OpenGameOption{
		Timeout: cfg.readyTimeout,
		Logger:  logger,
		OnOpenGameReady: func(state open_game_manager.OpenGameState) {
			provider.NextHand()
		},
	})

	observer := actor.NewObserverRunner()
	observer.OnHandFinished(func(snapshot *holdem.Snapshot) {
		printer.Printf("hand %d: %s\n", snapshot.HandCount, snapshot.WinnerText)
	})
	observer.OnNextHandAwaited(func() {
		snapshot := observer.LastSnapshot()
		participants := make(map[string]int)
		for _, ss := range snapshot.Seats {
			if ss.Chips > 0 {
				participants[ss.Name] = ss.Seat
			}
		}

		if err := gate.Setup(snapshot.HandCount, participants); err != nil {
			logger.Warn("next hand gate not set up", zap.Error(err))
			return
		}

		// the bots are always ready
		go func() {
			for id := range participants {
				_ = gate.Ready(id)
			}
		}()
	})
	engineOpts = append(engineOpts, holdem.WithSink(observer))

	return holdem.NewHandEngine(settings, provider, engineOpts...)
}

func report(table *holdem.Table, runErr error) {
	status := "done"
	if runErr != nil {
		status = runErr.Error()
	}

	printer.Printf("table %s finished after %d hands: %s\n", table.ID, table.HandCount, status)
	for _, p := range table.Players {
		printer.Printf("  seat %d %-10s %d chips\n", p.Seat, p.Name, p.Stack)
	}
}
