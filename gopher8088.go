// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger"
	"github.com/jetsetilly/gopher8088/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8088/disassembly"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/modalflag"
	"github.com/jetsetilly/gopher8088/paths"
	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/statsview"
	"github.com/jetsetilly/gopher8088/version"
	"github.com/jetsetilly/gopher8088/wavwriter"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. The return value
// is the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubMode("RUN", "run the emulation until interrupted")
	md.AddSubMode("DEBUG", "run the emulation in the monitor")
	md.AddSubMode("DISASM", "disassemble the ROM")
	md.AddSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the flags common to every mode that creates a board.
type boardFlags struct {
	prefs *string
	log   *bool
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		prefs: md.AddString("prefs", "", "preferences for this session only (eg. \"hardware.ramkb::256; cpu.undocumented::false\")"),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// the flags common to the modes that run the emulation.
type emulationFlags struct {
	wav       *string
	statsview *bool
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	return emulationFlags{
		wav:       md.AddString("wav", "", "record speaker output to wav file"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress)),
	}
}

// createBoard creates the board and loads the ROM. The ROM is taken from the
// first remaining argument or from the hardware.rom preference.
func createBoard(md *modalflag.Modes, f boardFlags) (*hardware.Board, error) {
	if *f.log {
		logger.SetEcho(md.Output)
	}

	pth, err := paths.EnsureResourcePath(preferences.PrefsFile)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*f.prefs)
	p, err := preferences.NewPreferences(pth)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	board, err := hardware.NewBoard(p)
	if err != nil {
		return nil, err
	}

	var rom string
	switch len(md.RemainingArgs()) {
	case 0:
		rom = p.ROM.String()
		if rom == "" {
			return nil, curated.Errorf("no ROM specified")
		}
	case 1:
		rom = md.GetArg(0)
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if err := board.LoadROM(rom); err != nil {
		return nil, err
	}

	return board, nil
}

// attach the optional outputs to the board. the returned function must be
// called when the emulation ends.
func attachOutputs(md *modalflag.Modes, board *hardware.Board, f emulationFlags) (func() error, error) {
	var srv *statsview.Server

	if *f.wav != "" {
		w, err := wavwriter.New(*f.wav)
		if err != nil {
			return nil, err
		}
		board.Speaker.AddAudioMixer(w)
	}

	if *f.statsview {
		srv = statsview.Launch(md.Output, "")
	}

	return func() error {
		if srv != nil {
			srv.Stop()
		}
		return board.Speaker.EndMixing()
	}, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBoardFlags(md)
	ef := addEmulationFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	board, err := createBoard(md, bf)
	if err != nil {
		return err
	}

	end, err := attachOutputs(md, board, ef)
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	go func() {
		if _, ok := <-sig; ok {
			board.Stop()
		}
	}()

	err = board.Run(nil)
	fmt.Fprintf(md.Output, "\r%s\n", board.CPU.LastResult)

	if endErr := end(); err == nil {
		err = endErr
	}
	return err
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBoardFlags(md)
	ef := addEmulationFlags(md)
	script := md.AddString("script", "", "lua script to run when the monitor starts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	board, err := createBoard(md, bf)
	if err != nil {
		return err
	}

	end, err := attachOutputs(md, board, ef)
	if err != nil {
		return err
	}

	term := plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	dbg, err := debugger.NewDebugger(board, term)
	if err != nil {
		return err
	}

	err = dbg.Start(*script)
	if endErr := end(); err == nil {
		err = endErr
	}
	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	bf := addBoardFlags(md)
	addr := md.AddString("addr", "ffff:0000", "segment:offset of first instruction")
	count := md.AddInt("count", 32, "number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	seg, off, err := parseSegOff(*addr)
	if err != nil {
		return err
	}

	board, err := createBoard(md, bf)
	if err != nil {
		return err
	}

	return disassembly.Write(md.Output, board.Mem, seg, off, *count)
}

// parseSegOff parses a pair of hexadecimal numbers separated by a colon.
func parseSegOff(s string) (uint16, uint16, error) {
	seg, off, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, curated.Errorf("address must be in the form segment:offset (%s)", s)
	}
	sv, err := strconv.ParseUint(seg, 16, 16)
	if err != nil {
		return 0, 0, curated.Errorf("invalid segment (%s)", seg)
	}
	ov, err := strconv.ParseUint(off, 16, 16)
	if err != nil {
		return 0, 0, curated.Errorf("invalid offset (%s)", off)
	}
	return uint16(sv), uint16(ov), nil
}
