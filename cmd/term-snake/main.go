package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	gologging "github.com/op/go-logging"
	"golang.org/x/term"

	"github.com/lixenwraith/term-snake/apple"
	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/autopilot"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/events"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/logging"
	"github.com/lixenwraith/term-snake/maze"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/snake"
	"github.com/lixenwraith/term-snake/telemetry"
)

var log = gologging.MustGetLogger("main")

var ErrNotTerminal = errors.New("stdout is not a terminal")

// flags holds command-line overrides, applied only when set
type flags struct {
	configPath string
	tick       time.Duration
	width      int
	height     int
	seed       uint64
	autopilot  bool
	noAudio    bool
	debug      bool
	keymap     string
	spectator  string
	broker     string
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	f := &flags{}
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.DurationVar(&f.tick, "tick", constants.TickInterval, "Tick interval")
	fs.IntVar(&f.width, "width", 0, "Grid width, 0 = terminal width")
	fs.IntVar(&f.height, "height", 0, "Grid height, 0 = terminal height")
	fs.Uint64Var(&f.seed, "seed", 0, "Food RNG seed, 0 = time based")
	fs.BoolVar(&f.autopilot, "autopilot", false, "Let the bot steer")
	fs.BoolVar(&f.noAudio, "no-audio", false, "Disable sound effects")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to the log directory")
	fs.StringVar(&f.keymap, "keymap", "", "TOML keymap file")
	fs.StringVar(&f.spectator, "spectator", "", "Serve the spectator feed on this address")
	fs.StringVar(&f.broker, "mqtt", "", "MQTT broker URL for round events")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply copies explicitly set flags over cfg
func (f *flags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "tick":
			cfg.Tick.Duration = f.tick
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "seed":
			cfg.Seed = f.seed
		case "autopilot":
			cfg.Autopilot = f.autopilot
		case "no-audio":
			cfg.Audio.Enabled = !f.noAudio
		case "debug":
			cfg.Log.Debug = f.debug
		case "keymap":
			cfg.Keymap = f.keymap
		case "spectator":
			cfg.Spectator.Addr = f.spectator
		case "mqtt":
			cfg.MQTT.Broker = f.broker
		}
	})
}

// terminalSize probes the terminal, falling back to a fixed size when it cannot be read
func terminalSize(probe func() (int, int, error)) (int, int) {
	w, h, err := probe()
	if err != nil || w <= 0 || h <= 0 {
		return constants.FallbackGridWidth, constants.FallbackGridHeight
	}
	return w, h
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "term-snake: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Thanks for playing")
}

func run() error {
	fs := flag.NewFlagSet("term-snake", flag.ExitOnError)
	f, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logFile, err := logging.Setup(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	session := uuid.NewString()
	log.Infof("session %s starting", session)

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	termWidth, termHeight := terminalSize(func() (int, int, error) { return term.GetSize(fd) })

	width, height := cfg.GridSize(termWidth, termHeight)
	if width < constants.MinGridWidth || height < constants.MinGridHeight {
		return fmt.Errorf("%w: %dx%d", config.ErrGridTooSmall, width, height)
	}

	var keys *input.KeyTable
	if cfg.Keymap != "" {
		if keys, err = input.LoadKeyConfigFile(cfg.Keymap); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	finish := sync.OnceFunc(func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	})
	defer finish()

	// Optional subsystems fail soft
	listeners := []game.Listener{engine.RoundLogger{Session: session}}

	sounds := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.Volume))
	if err := sounds.Initialize(); err != nil {
		log.Warningf("audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
		listeners = append(listeners, sounds)
	}

	var publishers []telemetry.Publisher
	if cfg.MQTT.Broker != "" {
		clientID := cfg.MQTT.ClientID
		if clientID == "" {
			clientID = "term-snake-" + session
		}
		if pub, err := telemetry.NewMQTTPublisher(cfg.MQTT.Broker, clientID, cfg.MQTT.Topic); err != nil {
			log.Warningf("mqtt unavailable: %v", err)
		} else {
			defer pub.Close()
			publishers = append(publishers, pub)
		}
	}

	var spectator *telemetry.Spectator
	if cfg.Spectator.Addr != "" {
		spectator = telemetry.NewSpectator(session)
		spectator.Start(cfg.Spectator.Addr)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			spectator.Shutdown(ctx)
		}()
		publishers = append(publishers, spectator)
	}
	if len(publishers) > 0 {
		listeners = append(listeners, telemetry.NewReporter(session, publishers...))
	}

	arena := maze.New(width, height)
	g := game.New(arena, snake.New(), apple.New(cfg.Seed), game.WithListener(engine.Listeners(listeners)))

	bus := events.NewBus(constants.EventBufferSize)
	clock := engine.NewClock(bus, cfg.Tick.Duration)
	poller := input.NewPoller(screen, bus, keys)

	opts := []engine.DriverOption{
		engine.WithPresenter(render.NewTerminalRenderer(screen, cfg.StatusLine, cfg.Autopilot)),
	}
	if spectator != nil {
		opts = append(opts, engine.WithPresenter(spectator))
	}
	if cfg.Autopilot {
		opts = append(opts, engine.WithPilot(autopilot.New(arena)))
	}
	driver := engine.NewDriver(g, bus, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock.Start()
	poller.Start()

	err = driver.Run(ctx)

	clock.Stop()
	finish()
	poller.Wait()

	stats := g.Stats()
	log.Infof("session %s over: %d ticks, round %d, best %d", session, clock.Ticks(), stats.Round, stats.Best)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
