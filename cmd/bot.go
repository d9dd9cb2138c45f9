package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/odit-bit/spesabot/spesa"
	"github.com/odit-bit/spesabot/spesa/config"
	"github.com/odit-bit/spesabot/tgbot"
	"github.com/spf13/cobra"
	tele "gopkg.in/telebot.v4"
)

func init() {
	BotCMD.Flags().AddFlagSet(config.FlagSet)
}

var BotCMD = cobra.Command{
	Use:  "bot",
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		cfg, err := config.LoadAndValidate(cmd.Flags())
		if err != nil {
			return err
		}
		if cfg.Bot.Token == "" {
			return fmt.Errorf("telegram bot token is not set, use --%s or TG_BOT_API_KEY", config.FLAG_BOT_TOKEN)
		}

		core, err := spesa.New(ctx, cfg)
		if err != nil {
			return err
		}

		setting := tele.Settings{
			Token:  cfg.Bot.Token,
			Poller: &tele.LongPoller{Timeout: cfg.Bot.Poll},
		}
		bot, err := tele.NewBot(setting)
		if err != nil {
			return err
		}

		tgbot.HandleBot(ctx, bot, core)
		slog.Info("bot started", "poll", cfg.Bot.Poll)

		srvErr := make(chan error, 1)
		go func() {
			bot.Start()
			_, err := bot.Close()
			srvErr <- err
		}()

		select {
		case err = <-srvErr:
			return err
		case <-ctx.Done():
			stop()
		}

		bot.Stop()

		return nil
	},
}
