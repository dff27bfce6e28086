// Command dungeonforge generates a dungeon level and prints it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"dungeonforge/pkg/game/advanced"
	"dungeonforge/pkg/game/config"
	"dungeonforge/pkg/game/devtools"
	"dungeonforge/pkg/game/generator"
	"dungeonforge/pkg/game/logger"
	"dungeonforge/pkg/game/renderer"
)

func initLocale() {
	gotext.Configure("locales", "en_US", "default")
}

func main() {
	depth := flag.Int("depth", 1, "dungeon depth to generate")
	seed := flag.Int64("seed", 0, "generation seed, 0 means time-based")
	advancedLayers := flag.Bool("advanced", true, "run the advanced generation layers")
	configPath := flag.String("config", "", "path to a YAML configuration file")
	dumpDir := flag.String("dump", "", "directory to write a map.txt snapshot into")
	yamlPath := flag.String("yaml", "", "path to write the level content manifest as YAML")
	noMap := flag.Bool("no-map", false, "skip printing the level map")
	logFile := flag.String("logfile", "", "path to a rotating log file")
	jsonLog := flag.Bool("json-log", false, "emit console logs as JSON")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	initLocale()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.Options{Level: level, JSON: *jsonLog, FilePath: *logFile})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error(gotext.Get("failed to load configuration"), "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if !*advancedLayers {
		cfg.Advanced.Enabled = false
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	pipeline := advanced.NewPipeline(cfg, *depth, rng, log, *seed)
	result := pipeline.Generate()

	log.Info(gotext.Get("level ready"),
		"depth", *depth,
		"seed", *seed,
		"biome", string(result.Biome),
		"rooms", len(result.Rooms),
		"enemies", len(result.Enemies),
	)

	if *dumpDir != "" {
		path, err := devtools.DumpMap(result, *depth, *dumpDir)
		if err != nil {
			log.Error(gotext.Get("failed to write map dump"), "err", err)
			os.Exit(1)
		}
		log.Info(gotext.Get("map dump written"), "path", path)
	}
	if *yamlPath != "" {
		if err := devtools.WriteYAML(result, *yamlPath); err != nil {
			log.Error(gotext.Get("failed to write level manifest"), "err", err)
			os.Exit(1)
		}
		log.Info(gotext.Get("level manifest written"), "path", *yamlPath)
	}

	if !*noMap {
		printMap(result, log)
	}
	printSummary(result)
}

// printMap renders the level, warning when the terminal is narrower than
// the map.
func printMap(result *generator.Result, log *slog.Logger) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width < result.Grid.Width() {
			log.Warn(gotext.Get("terminal narrower than map, output will wrap"),
				"terminal", width, "map", result.Grid.Width())
		}
	}
	fmt.Print(renderer.Render(result))
}

func printSummary(result *generator.Result) {
	fmt.Printf("%s: %s  %s: %d  %s: %d  %s: %d  %s: %d\n",
		gotext.Get("biome"), result.Biome,
		gotext.Get("rooms"), len(result.Rooms),
		gotext.Get("enemies"), len(result.Enemies),
		gotext.Get("items"), len(result.Items),
		gotext.Get("exits"), len(result.Exits),
	)
	if result.Advanced != nil {
		fmt.Printf("%s: %s  %s: %d  %s: %d\n",
			gotext.Get("theme"), result.Advanced.ThemeName,
			gotext.Get("zones"), len(result.Advanced.Zones),
			gotext.Get("secrets"), len(result.Advanced.Secrets),
		)
	}
}
