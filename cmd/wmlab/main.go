// Command wmlab runs a robustness battery: it embeds a watermark with each
// configured codec, deforms the result with each configured attack and
// reports how well the watermark survived.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:           "wmlab",
		Short:         "watermark robustness laboratory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newAttacksCmd())
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wmlab failed")
	}
}
