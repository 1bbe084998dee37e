// Example runs the rgui demo on one of the bundled backends.
//
//	go run ./example -c example/config.toml --backend opengl
//	go run ./example --backend software --frames 3 --out demo.png
//
// The opengl and raylib backends need a display plus the OpenGL/X11
// development headers; software runs headless and writes a PNG.
package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/go-theft-auto/rgui"
	"github.com/go-theft-auto/rgui/backend/opengl"
	"github.com/go-theft-auto/rgui/backend/raylib"
	"github.com/go-theft-auto/rgui/backend/software"
)

func init() {
	// GLFW and raylib must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()

	app.Name = "rgui example"
	app.Usage = "retained-mode GUI demo"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./example/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "backend, b",
			Usage: "renderer: opengl, raylib or software",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "window width in pixels",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "window height in pixels",
		},
		cli.IntFlag{
			Name:  "frames",
			Value: 2,
			Usage: "frames to render with the software backend",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "demo.png",
			Usage: "screenshot written by the software backend",
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func configure(c *cli.Context) {
	viper.SetDefault("backend", "opengl")
	viper.SetDefault("display.title", "rgui example")
	viper.SetDefault("display.width", 800)
	viper.SetDefault("display.height", 600)
	viper.SetDefault("display.resizable", true)
	viper.SetDefault("display.fps", 60)
	viper.SetDefault("display.style", "gta")

	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("config not loaded, using defaults")
	}

	// Flags override the file.
	if c.IsSet("backend") {
		viper.Set("backend", c.String("backend"))
	}
	if c.IsSet("width") {
		viper.Set("display.width", c.Int("width"))
	}
	if c.IsSet("height") {
		viper.Set("display.height", c.Int("height"))
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
	}
}

func serve(c *cli.Context) error {
	configure(c)

	// Engine logs go through logrus' writer so both share one output.
	level := slog.LevelInfo
	if viper.GetBool("core.debug") {
		level = slog.LevelDebug
		rgui.SetVerbose(true)
	}
	w := log.StandardLogger().Writer()
	defer w.Close()
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	width := viper.GetInt("display.width")
	height := viper.GetInt("display.height")
	style := rgui.GTAStyle()
	if viper.GetString("display.style") == "default" {
		style = rgui.DefaultStyle()
	}

	d, err := buildDemo(float64(width), float64(height), style)
	if err != nil {
		return errors.Wrap(err, "build demo")
	}

	opts := rgui.DefaultDisplayOptions()
	opts.Resizable = viper.GetBool("display.resizable")
	title := viper.GetString("display.title")

	backend := viper.GetString("backend")
	log.WithFields(log.Fields{
		"backend": backend,
		"width":   width,
		"height":  height,
	}).Info("starting")

	switch backend {
	case "opengl":
		win, err := opengl.NewWindow(title, width, height, opts)
		if err != nil {
			return errors.Wrap(err, "opengl window")
		}
		defer win.Destroy()
		r, err := opengl.NewRenderer(width, height)
		if err != nil {
			return errors.Wrap(err, "opengl renderer")
		}
		defer r.Delete()
		rgui.SetClipboardProvider(win.Clipboard())
		return run(d, win, r, logger)

	case "raylib":
		win, err := raylib.NewWindow(title, width, height, opts)
		if err != nil {
			return errors.Wrap(err, "raylib window")
		}
		defer win.Destroy()
		r := raylib.NewRenderer()
		defer r.Unload()
		rgui.SetClipboardProvider(win.Clipboard())
		return run(d, win, r, logger)

	case "software":
		canvas := software.NewCanvas(width, height, opts)
		canvas.SetTitle(title)
		r, err := software.NewRenderer()
		if err != nil {
			return err
		}
		e := newEngine(d, canvas, r, logger, nil)
		for i := 0; i < c.Int("frames"); i++ {
			if err := e.RunFrame(); err != nil {
				return errors.Wrapf(err, "frame %d", i)
			}
		}
		if err := canvas.SavePNG(c.String("out")); err != nil {
			return errors.Wrapf(err, "save %s", c.String("out"))
		}
		log.WithField("file", c.String("out")).Info("screenshot written")
		return nil
	}
	return errors.Errorf("unknown backend %q", backend)
}

func newEngine(d *demo, display rgui.Display, r rgui.Renderer, logger *slog.Logger, quit func()) *rgui.Engine {
	e := rgui.New(display, r, d.tree, d.root,
		rgui.WithLogger(logger),
		rgui.WithFrameLimit(viper.GetInt("display.fps")),
	)
	if quit != nil {
		exit := rgui.NewMessage(func(rgui.Event) { quit() })
		e.Actions().Register("quit", rgui.Hotkey{Key: rgui.KeyQ, Modifiers: rgui.ModifiersState{Control: true}}, exit)
	}
	return e
}

func run(d *demo, display rgui.Display, r rgui.Renderer, logger *slog.Logger) error {
	display.SetBackgroundColor(rgui.ColorBlack)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e := newEngine(d, display, r, logger, cancel)

	err := e.Run(ctx)
	if errors.Cause(err) == context.Canceled {
		err = nil
	}
	log.WithField("frames", e.Frames()).Info("bye")
	return err
}
