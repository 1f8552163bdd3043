// This file is part of DGVita.
//
// DGVita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DGVita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DGVita.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/dgvita/blit"
	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/digest"
	"github.com/jetsetilly/dgvita/hosts"
	"github.com/jetsetilly/dgvita/hosts/ebitenhost"
	"github.com/jetsetilly/dgvita/hosts/headless"
	"github.com/jetsetilly/dgvita/hosts/linuxjs"
	"github.com/jetsetilly/dgvita/hosts/sdlhost"
	"github.com/jetsetilly/dgvita/hosts/terminal"
	"github.com/jetsetilly/dgvita/input"
	"github.com/jetsetilly/dgvita/logger"
	"github.com/jetsetilly/dgvita/modalflag"
	"github.com/jetsetilly/dgvita/paths"
	"github.com/jetsetilly/dgvita/performance"
	"github.com/jetsetilly/dgvita/platform"
	"github.com/jetsetilly/dgvita/prefs"
	"github.com/jetsetilly/dgvita/recorder"
	"github.com/jetsetilly/dgvita/statsview"
	"github.com/jetsetilly/dgvita/version"
	"github.com/jetsetilly/dgvita/wad"
)

// resolution of the Vita screen
const (
	displayWidth  = 960
	displayHeight = 544
)

// name of the data directory in the resource path
const dataDir = "data"

// SDL and ebiten require that the window is serviced from the main thread. the
// driver runs on the main goroutine so the goroutine is locked to the main
// thread before main() is called
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	// #ctrlc cancels the context. the driver stops at the end of the current
	// step
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := 0

	err := launch(ctx, md)
	if err != nil {
		if curated.Is(err, parseFailed) {
			fmt.Printf("* error: %v\n", curated.Unwrap(err))
			exitVal = 10
		} else {
			fmt.Printf("* error in %s mode: %s\n", md, err)
			exitVal = 20
		}
	}

	stop()
	os.Exit(exitVal)
}

// the error pattern used when the top level arguments can not be parsed
const parseFailed = "parse failed: %v"

func launch(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("PLAY", "EBITEN", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(parseFailed, err)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)
	case "EBITEN":
		err = playEbiten(ctx, md)
	case "HEADLESS":
		err = runHeadless(ctx, md)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "VERSION":
		err = showVersion(md)
	}

	return err
}

// flags common to every mode that runs the engine
type common struct {
	data     *string
	iwad     *string
	files    *[]string
	preset   *string
	mapping  *string
	deadzone *int
	fpscap   *int
	joystick *string
	prefs    *string
	save     *bool
	log      *bool
	stats    *bool
	statsAt  *string
	memviz   *bool
	width    *int
	height   *int
	record   *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		data:     md.AddString("data", "", "directory containing game data (default is in the resource path)"),
		iwad:     md.AddString("iwad", "", "game data file. overrides the search of the data directory"),
		files:    md.AddStrings("file", "additional PWAD file. can be repeated"),
		preset:   md.AddString("preset", "", fmt.Sprintf("input preset: %s", strings.Join(input.Presets, ", "))),
		mapping:  md.AddString("mapping", "", "input mapping. eg. \"CROSS=USE, LY-=UPARROW\""),
		deadzone: md.AddInt("deadzone", -1, "analog stick deadzone (0 to 127)"),
		fpscap:   md.AddInt("fpscap", -1, "maximum steps per second. zero for no limit"),
		joystick: md.AddString("joystick", "", fmt.Sprintf("linux joystick device. eg. %s", linuxjs.DefaultDevice)),
		prefs:    md.AddString("prefs", "", "preferences for this run. eg. \"input.deadzone::20; platform.fpscap::35\""),
		save:     md.AddBool("saveprefs", false, "save the preferences for this run"),
		log:      md.AddBool("log", false, "echo log to stdout"),
		stats:    md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
		statsAt:  md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server"),
		memviz:   md.AddBool("memviz", false, "write a graphviz dump of the input subsystem"),
		width:    md.AddInt("width", displayWidth, "width of the display"),
		height:   md.AddInt("height", displayHeight, "height of the display"),
		record:   md.AddString("record", "", "record controller input to file"),
	}
}

// commandLinePrefs converts the preference flags into a string suitable for
// the prefs command line stack. Flags that have not been set are omitted.
func (c *common) commandLinePrefs() string {
	var s []string
	if *c.prefs != "" {
		s = append(s, *c.prefs)
	}
	if *c.preset != "" {
		s = append(s, fmt.Sprintf("input.preset::%s", *c.preset))
	}
	if *c.mapping != "" {
		s = append(s, fmt.Sprintf("input.mapping::%s", *c.mapping))
	}
	if *c.deadzone >= 0 {
		s = append(s, fmt.Sprintf("input.deadzone::%d", *c.deadzone))
	}
	if *c.fpscap >= 0 {
		s = append(s, fmt.Sprintf("platform.fpscap::%d", *c.fpscap))
	}
	return strings.Join(s, "; ")
}

// session is everything created from the common flags
type session struct {
	c *common

	inPrefs *input.Preferences
	plPrefs *platform.Preferences

	// arguments for engine.Create()
	args []string

	joystick *linuxjs.Joystick

	// playback file. the recording is used in place of the controller
	playback string
	rec      *recorder.Recorder
}

func (c *common) start() (*session, error) {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *c.stats {
		statsview.Launch(os.Stdout, *c.statsAt)
	}

	s := &session{c: c}

	prefs.PushCommandLineStack(c.commandLinePrefs())
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	var err error

	s.inPrefs, err = input.NewPreferences()
	if err != nil {
		return nil, err
	}

	s.plPrefs, err = platform.NewPreferences()
	if err != nil {
		return nil, err
	}

	dir := *c.data
	if dir == "" {
		dir, err = paths.ResourcePath(dataDir, "")
		if err != nil {
			return nil, err
		}
	}

	search := wad.NewSearch(dir)
	if err := search.Prepare(); err != nil {
		return nil, err
	}

	iwad := *c.iwad
	if iwad == "" {
		// a missing IWAD is not fatal. the engine will report the problem
		iwad, err = search.Locate()
		if err != nil {
			logger.Log(logger.Allow, "wad", err)
		}
	}

	if k, err := wad.Identify(iwad); err == nil {
		logger.Logf(logger.Allow, "wad", "%s: %s", filepath.Base(iwad), k)
	}

	s.args = wad.Args(version.ApplicationName, iwad, *c.files...)

	if *c.joystick != "" {
		s.joystick, err = linuxjs.Open(*c.joystick)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// driver creates the input, engine and backend for the display and controller
// and then creates the engine
func (s *session) driver(display platform.Display, controller platform.Controller, paced bool) (*platform.Driver, error) {
	inp, err := s.inPrefs.NewInput()
	if err != nil {
		return nil, err
	}

	// recordings need a digest of every frame
	var dig *digest.Video
	if s.playback != "" || *s.c.record != "" {
		dig = digest.NewVideo(display)
		display = dig
	}

	be, err := platform.NewBackend(display, inp, newEngine(paced))
	if err != nil {
		return nil, err
	}

	if s.joystick != nil {
		controller = hosts.Combine(controller, s.joystick)
	}

	if s.playback != "" {
		plb, err := recorder.NewPlayback(s.playback)
		if err != nil {
			return nil, err
		}
		if err := plb.Attach(dig); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "playback", "%s recorded with: %s", s.playback, plb.Args)
		controller = plb
	} else if *s.c.record != "" {
		s.rec, err = recorder.NewRecorder(*s.c.record, controller, dig, s.args)
		if err != nil {
			return nil, err
		}
		controller = s.rec
	}

	drv := platform.NewDriver(be, controller)
	s.plPrefs.Attach(drv)

	if *s.c.memviz {
		if err := dumpMemviz(inp); err != nil {
			drv.Close()
			return nil, err
		}
	}

	if err := drv.Create(s.args); err != nil {
		drv.Close()
		return nil, err
	}

	return drv, nil
}

func dumpMemviz(inp *input.Input) error {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", "input"))
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, inp)
	logger.Logf(logger.Allow, "memviz", "written to %s", fn)

	return nil
}

// close ends any recording and releases the joystick. safe to call more than
// once
func (s *session) close() error {
	var err error

	if s.rec != nil {
		err = s.rec.End()
		s.rec = nil
	}

	if s.joystick != nil {
		if err := s.joystick.Close(); err != nil {
			logger.Log(logger.Allow, "linuxjs", err)
		}
		s.joystick = nil
	}

	return err
}

// end the session after a successful run. the preferences are saved if
// requested
func (s *session) end() error {
	if err := s.close(); err != nil {
		return err
	}

	if !*s.c.save {
		return nil
	}
	if err := s.inPrefs.Save(); err != nil {
		return err
	}
	return s.plPrefs.Save()
}

// the remaining arguments are treated as PWAD files
func (c *common) remaining(md *modalflag.Modes) {
	*c.files = append(*c.files, md.RemainingArgs()...)
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	scale := md.AddFloat64("scale", 1.0, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.remaining(md)

	s, err := c.start()
	if err != nil {
		return err
	}
	defer s.close()

	host, err := sdlhost.NewHost(*c.width, *c.height, float32(*scale))
	if err != nil {
		return err
	}
	defer host.Destroy()

	drv, err := s.driver(host, host, true)
	if err != nil {
		return err
	}
	defer drv.Close()

	if err := drv.Run(ctx); err != nil {
		return err
	}

	return s.end()
}

func playEbiten(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	scale := md.AddFloat64("scale", 1.0, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.remaining(md)

	s, err := c.start()
	if err != nil {
		return err
	}
	defer s.close()

	host := ebitenhost.NewHost(*c.width, *c.height, *scale)

	drv, err := s.driver(host, host, true)
	if err != nil {
		return err
	}
	defer drv.Close()

	if err := host.Run(ctx, drv); err != nil {
		return err
	}

	return s.end()
}

func runHeadless(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	frames := md.AddInt("frames", 0, "number of frames to run for. zero to run until interrupted")
	shot := md.AddString("screenshot", "", "save the final frame to a .png or .bmp file")
	useTerm := md.AddBool("terminal", false, "read controller input from the terminal")
	playback := md.AddString("playback", "", "play back a recording made with -record")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.remaining(md)

	s, err := c.start()
	if err != nil {
		return err
	}
	defer s.close()

	s.playback = *playback

	host := headless.NewHost(*c.width, *c.height, blit.FormatABGR8888)
	host.SetFrameLimit(*frames)

	var controller platform.Controller = host
	if *useTerm {
		term := terminal.NewController(terminal.DefaultHold)
		if err := term.Attach(os.Stdin); err != nil {
			return err
		}
		defer term.Detach()
		controller = hosts.Combine(host, term)
	}

	drv, err := s.driver(host, controller, *useTerm)
	if err != nil {
		return err
	}
	defer drv.Close()

	if err := drv.Run(ctx); err != nil {
		return err
	}

	if *shot != "" {
		if err := host.Screenshot(*shot); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%d frames (%s)\n", host.Frames(), host.Title())

	return s.end()
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through the profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	c.remaining(md)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	s, err := c.start()
	if err != nil {
		return err
	}
	defer s.close()

	host := headless.NewHost(*c.width, *c.height, blit.FormatABGR8888)

	drv, err := s.driver(host, host, false)
	if err != nil {
		return err
	}
	defer drv.Close()

	// deliberately not saving preferences because we don't want any changes
	// to the performance run impacting the play mode
	return performance.Check(ctx, md.Output, prf, drv, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s (%s)\n", v, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}
