// Emuprefs is a desktop app for the advanced settings of an emulator.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	fyneapp "fyne.io/fyne/v2/app"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/app/iconselector"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
	"github.com/ErikKalkoken/emuprefs/internal/app/ui"
	"github.com/ErikKalkoken/emuprefs/internal/config"
	"github.com/ErikKalkoken/emuprefs/internal/dictionary"
)

const appID = "io.github.erikkalkoken.emuprefs"

// defined flags
var (
	levelFlag      logLevelFlag
	debugFlag      = flag.Bool("debug", false, "Enable debug logging")
	logFileFlag    = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	deleteDataFlag = flag.Bool("delete-data", false, "Deletes all user data, incl. settings and games")
	showDirsFlag   = flag.Bool("show-dirs", false, "Show directories where user data is stored")
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	levelFlag.value = cfg.SlogLevel()
	flag.Var(&levelFlag, "loglevel", "set log level")
	flag.Parse()
	if *debugFlag || cfg.Debug {
		levelFlag.value = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(levelFlag.value)
	if *showDirsFlag {
		fmt.Printf("Database: %s\n", cfg.DBPath())
		fmt.Printf("Logs: %s\n", cfg.LogDir)
		return
	}
	if *deleteDataFlag {
		if err := runDeleteData(cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *logFileFlag {
		fn, err := cfg.InitLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	dsn, err := cfg.InitDSN()
	if err != nil {
		log.Fatal(err)
	}
	dbRW, dbRO, err := storage.InitDB(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database %s: %s", dsn, err)
	}
	defer dbRW.Close()
	defer dbRO.Close()
	st := storage.New(dbRW, dbRO)
	prefs := dictionary.New(st)

	u := ui.New(ui.Params{
		App:      fyneapp.NewWithID(appID),
		Bulk:     bulkaction.New(st),
		Platform: iconselector.NewStoredPlatform(prefs),
		Settings: settings.New(prefs),
		Sync:     st,
	})
	u.ShowAndRun()
}

// runDeleteData deletes all user data after the user confirmed.
func runDeleteData(cfg config.Config, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Are you sure you want to delete all user data (y/N)? ")
	var input string
	fmt.Fscanln(in, &input)
	if strings.ToLower(input) != "y" {
		fmt.Fprintln(out, "Aborted")
		return nil
	}
	deleted, err := cfg.DeleteData()
	for _, p := range deleted {
		fmt.Fprintf(out, "Deleted %s\n", p)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "User data deleted")
	return nil
}
