package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/console"
	"github.com/BeatGlow/console/framebuffer"
	"github.com/BeatGlow/console/internal/config"
	"github.com/BeatGlow/console/mirror"
	"github.com/BeatGlow/console/render"
	"github.com/BeatGlow/console/vga"
)

func main() {
	configFlag := flag.String("config", "", "YAML configuration file")
	backendFlag := flag.String("backend", config.Default.Backend, "Frame buffer backend (memory, vga, vcsa)")
	physAddrFlag := flag.Uint64("phys-addr", config.Default.PhysAddr, "Text buffer physical address (vga backend)")
	portFlag := flag.String("port", config.Default.Port, "I/O port device (vga backend)")
	vcsaFlag := flag.String("vcsa", "", "vcsa device (vcsa backend, default: active VT)")
	colorFlag := flag.String("color", config.Default.Color, "Text color")
	pngFlag := flag.String("png", "", "Write a PNG snapshot to this file")
	fontSizeFlag := flag.Float64("font-size", config.Default.FontSize, "Snapshot font size in points")
	tcellFlag := flag.Bool("tcell", false, "Show the console on this terminal when done")
	flag.Parse()

	cfg := new(config.Config)
	*cfg = config.Default
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendFlag
		case "phys-addr":
			cfg.PhysAddr = *physAddrFlag
		case "port":
			cfg.Port = *portFlag
		case "vcsa":
			cfg.VCSA = *vcsaFlag
		case "color":
			cfg.Color = *colorFlag
		case "png":
			cfg.PNG = *pngFlag
		case "font-size":
			cfg.FontSize = *fontSizeFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	con, err := open(cfg)
	if err != nil {
		fatal(err)
	}
	defer con.Close()
	fmt.Fprintf(os.Stderr, "using %s on %s backend\n", con, cfg.Backend)

	fg, _ := vga.ParseColor(cfg.Color)
	con.SetColor(fg)

	if _, err = io.Copy(con, os.Stdin); err != nil {
		fatal(err)
	}
	if err = con.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: hardware cursor: "+err.Error())
	}

	var (
		w, h = con.Size()
		x, y = con.Position()
		pos  = y*w + x
	)
	if cfg.PNG != "" {
		if err = snapshot(cfg, con.Buffer(), w, h, pos); err != nil {
			fatal(err)
		}
	}
	if *tcellFlag {
		if err = show(con.Buffer(), w, h, pos); err != nil {
			fatal(err)
		}
	}
}

func open(cfg *config.Config) (*console.Console, error) {
	var (
		c   = &console.Config{}
		err error
	)
	switch cfg.Backend {
	case config.BackendVGA:
		if c.Buffer, err = framebuffer.Map(cfg.PhysAddr, console.Width*console.Height); err != nil {
			return nil, err
		}
		if c.Cursor, err = console.OpenCRTC(&console.CRTCConfig{Device: cfg.Port}); err != nil {
			_ = c.Buffer.Close()
			return nil, err
		}
	case config.BackendVCSA:
		name := cfg.VCSA
		if name == "" {
			if name, err = framebuffer.ActiveVCSA(); err != nil {
				return nil, err
			}
		}
		v, err := framebuffer.OpenVCSA(name)
		if err != nil {
			return nil, err
		}
		c.Width, c.Height = v.Size()
		c.Buffer, c.Cursor = v, v
	}
	return console.New(c)
}

func snapshot(cfg *config.Config, buf framebuffer.Buffer, w, h, cursor int) error {
	r, err := render.New(&render.Options{Size: cfg.FontSize})
	if err != nil {
		return err
	}
	f, err := os.Create(cfg.PNG)
	if err != nil {
		return err
	}
	if err = png.Encode(f, r.Render(buf, w, h, cursor)); err != nil {
		_ = f.Close()
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote snapshot to %s\n", cfg.PNG)
	return f.Close()
}

func show(buf framebuffer.Buffer, w, h, cursor int) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	mirror.Draw(s, buf, w, h, cursor)
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
