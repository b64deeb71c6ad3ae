// Command imagelist inspects or initializes the image list file used by the viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ytget/image-viewer/internal/logger"
	"github.com/ytget/image-viewer/internal/platform"
	"github.com/ytget/image-viewer/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("imagelist", flag.ContinueOnError)
	flags.SetOutput(stderr)

	dataFile := flags.String("data", platform.DefaultDataFile(), "path to the image list file")
	count := flags.Bool("count", false, "print only the number of images")
	initFile := flags.Bool("init", false, "create an empty image list file if it does not exist")
	level := flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	log := logger.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}, logger.ParseLevel(*level))

	if *initFile {
		created, err := platform.CreateFileIfNotExists(*dataFile)
		if err != nil {
			log.Error().Err(err).Str("path", *dataFile).Msg("failed to create image list")
			return 1
		}
		log.Info().Str("path", *dataFile).Bool("created", created).Msg("image list ready")
	}

	s, err := store.Open(*dataFile, log)
	if err != nil {
		fmt.Fprintf(stderr, "imagelist: %v\n", err)
		return 1
	}

	if *count {
		fmt.Fprintln(stdout, s.Len())
		return 0
	}

	for i, image := range s.Images() {
		fmt.Fprintf(stdout, "%d\t%s\t%s\n", i+1, image.URL, image.Title)
	}
	return 0
}
