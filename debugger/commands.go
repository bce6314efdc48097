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

package debugger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"github.com/jetsetilly/gopher8088/disassembly"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/paths"
)

// Error patterns returned by the debugger.
const (
	DebuggerError  = "debugger: %v"
	UnknownCommand = "debugger: unknown command (%s)"
	CommandError   = "debugger: %s: %v"
)

// debugger keywords.
const (
	KeywordHelp   = "HELP"
	KeywordStep   = "STEP"
	KeywordRun    = "RUN"
	KeywordRegs   = "REGS"
	KeywordLast   = "LAST"
	KeywordMem    = "MEM"
	KeywordPoke   = "POKE"
	KeywordIRQ    = "IRQ"
	KeywordKey    = "KEY"
	KeywordDisasm = "DISASM"
	KeywordQueue  = "QUEUE"
	KeywordPIC    = "PIC"
	KeywordPIT    = "PIT"
	KeywordPPI    = "PPI"
	KeywordMemMap = "MEMMAP"
	KeywordMemviz = "MEMVIZ"
	KeywordLog    = "LOG"
	KeywordScript = "SCRIPT"
	KeywordReset  = "RESET"
	KeywordQuit   = "QUIT"
)

// help contains the help text for the debugger's top level commands.
var help = map[string]string{
	KeywordHelp:   "Lists commands and provides help for individual commands",
	KeywordStep:   "Step forward one or more instructions",
	KeywordRun:    "Run until a key is pressed or the address is reached",
	KeywordRegs:   "Display the current state of the CPU registers",
	KeywordLast:   "Display the result of the last instruction",
	KeywordMem:    "Display the contents of memory",
	KeywordPoke:   "Modify one or more consecutive memory addresses",
	KeywordIRQ:    "Raise an interrupt request line on the interrupt controller",
	KeywordKey:    "Queue a keyboard event",
	KeywordDisasm: "Disassemble instructions",
	KeywordQueue:  "Display the prefetch queue and the bus cycle in progress",
	KeywordPIC:    "Display the state of the interrupt controller",
	KeywordPIT:    "Display the state of the timer",
	KeywordPPI:    "Display the state of the peripheral interface",
	KeywordMemMap: "Display the memory and I/O maps",
	KeywordMemviz: "Write a graphviz description of the processor state to a file",
	KeywordLog:    "Display the most recent log entries",
	KeywordScript: "Run a Lua script",
	KeywordReset:  "Reset the emulation to its initial state",
	KeywordQuit:   "Exits the emulator",
}

// usage contains the arguments for each command.
var usage = map[string]string{
	KeywordHelp:   "[command]",
	KeywordStep:   "[count]",
	KeywordRun:    "[address]",
	KeywordRegs:   "",
	KeywordLast:   "",
	KeywordMem:    "<address> [length]",
	KeywordPoke:   "<address> <byte> [byte...]",
	KeywordIRQ:    "<line>",
	KeywordKey:    "<scancode> [UP]",
	KeywordDisasm: "[count] [address]",
	KeywordQueue:  "",
	KeywordPIC:    "",
	KeywordPIT:    "",
	KeywordPPI:    "",
	KeywordMemMap: "",
	KeywordMemviz: "[filename]",
	KeywordLog:    "[count]",
	KeywordScript: "<filename>",
	KeywordReset:  "",
	KeywordQuit:   "",
}

type command func(dbg *Debugger, args []string) error

// commands maps each keyword to the function that acts upon it
var commands map[string]command

func init() {
	commands = map[string]command{
		KeywordHelp:   (*Debugger).cmdHelp,
		KeywordStep:   (*Debugger).cmdStep,
		KeywordRun:    (*Debugger).cmdRun,
		KeywordRegs:   (*Debugger).cmdRegs,
		KeywordLast:   (*Debugger).cmdLast,
		KeywordMem:    (*Debugger).cmdMem,
		KeywordPoke:   (*Debugger).cmdPoke,
		KeywordIRQ:    (*Debugger).cmdIRQ,
		KeywordKey:    (*Debugger).cmdKey,
		KeywordDisasm: (*Debugger).cmdDisasm,
		KeywordQueue:  (*Debugger).cmdQueue,
		KeywordPIC:    (*Debugger).cmdPIC,
		KeywordPIT:    (*Debugger).cmdPIT,
		KeywordPPI:    (*Debugger).cmdPPI,
		KeywordMemMap: (*Debugger).cmdMemMap,
		KeywordMemviz: (*Debugger).cmdMemviz,
		KeywordLog:    (*Debugger).cmdLog,
		KeywordScript: (*Debugger).cmdScript,
		KeywordReset:  (*Debugger).cmdReset,
		KeywordQuit:   (*Debugger).cmdQuit,
	}
}

// parseInput splits the input into commands and acts upon each one in turn.
// Processing stops at the first command that returns an error.
//
// An empty input is the same as the STEP command when interactive is true.
func (dbg *Debugger) parseInput(input string, interactive bool) error {
	if strings.TrimSpace(input) == "" {
		if interactive {
			return dbg.parseCommand(KeywordStep)
		}
		return nil
	}

	for _, c := range strings.Split(input, ";") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if err := dbg.parseCommand(c); err != nil {
			return err
		}
		if dbg.quit {
			break
		}
	}

	return nil
}

// parseCommand acts upon a single command.
func (dbg *Debugger) parseCommand(input string) error {
	// lines beginning with # are comments
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	keyword := strings.ToUpper(tokens[0])
	dbg.printLine(terminal.StyleEcho, "%s", strings.Join(append([]string{keyword}, tokens[1:]...), " "))

	cmd, ok := commands[keyword]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return cmd(dbg, tokens[1:])
}

// arguments returns an error if the number of arguments is outside of the
// range min to max inclusive.
func arguments(keyword string, args []string, min int, max int) error {
	if len(args) < min {
		return curated.Errorf(CommandError, keyword, "too few arguments")
	}
	if len(args) > max {
		return curated.Errorf(CommandError, keyword, "too many arguments")
	}
	return nil
}

func (dbg *Debugger) cmdHelp(args []string) error {
	if err := arguments(KeywordHelp, args, 0, 1); err != nil {
		return err
	}

	if len(args) == 1 {
		keyword := strings.ToUpper(args[0])
		txt, ok := help[keyword]
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		dbg.printLine(terminal.StyleHelp, "%s %s", keyword, usage[keyword])
		dbg.printLine(terminal.StyleHelp, "  %s", txt)
		return nil
	}

	keywords := make([]string, 0, len(help))
	for k := range help {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	for _, k := range keywords {
		dbg.printLine(terminal.StyleHelp, "%-8s %s", k, help[k])
	}

	return nil
}

func (dbg *Debugger) cmdStep(args []string) error {
	if err := arguments(KeywordStep, args, 0, 1); err != nil {
		return err
	}

	count := 1
	if len(args) == 1 {
		n, err := parseNumber(args[0], 10)
		if err != nil {
			return curated.Errorf(CommandError, KeywordStep, err)
		}
		if n == 0 {
			return curated.Errorf(CommandError, KeywordStep, "count must be greater than zero")
		}
		count = int(n)
	}

	err := dbg.run(runCondition{count: count})
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.board.CPU.LastResult)
	return err
}

func (dbg *Debugger) cmdRun(args []string) error {
	if err := arguments(KeywordRun, args, 0, 1); err != nil {
		return err
	}

	var cond runCondition
	if len(args) == 1 {
		seg, off, err := dbg.parseAddress(args[0])
		if err != nil {
			return curated.Errorf(CommandError, KeywordRun, err)
		}
		cond.address = memory.Linear(seg, off)
		cond.useAddress = true
	}

	err := dbg.run(cond)
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.board.CPU.LastResult)
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.board.CPU.Regs)
	return err
}

func (dbg *Debugger) cmdRegs(args []string) error {
	if err := arguments(KeywordRegs, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.board.CPU.Regs)
	return nil
}

func (dbg *Debugger) cmdLast(args []string) error {
	if err := arguments(KeywordLast, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.board.CPU.LastResult)
	return nil
}

func (dbg *Debugger) cmdMem(args []string) error {
	if err := arguments(KeywordMem, args, 1, 2); err != nil {
		return err
	}

	seg, off, err := dbg.parseAddress(args[0])
	if err != nil {
		return curated.Errorf(CommandError, KeywordMem, err)
	}

	length := uint64(16)
	if len(args) == 2 {
		length, err = parseNumber(args[1], 10)
		if err != nil {
			return curated.Errorf(CommandError, KeywordMem, err)
		}
		if length == 0 || length > 0x10000 {
			return curated.Errorf(CommandError, KeywordMem, "length out of range")
		}
	}

	dbg.hexDump(memory.Linear(seg, off), int(length))
	return nil
}

// hexDump prints length bytes starting at the linear address, sixteen bytes
// to a line. Unmapped addresses are shown as "--".
func (dbg *Debugger) hexDump(address uint32, length int) {
	s := strings.Builder{}
	ascii := strings.Builder{}

	for i := 0; i < length; i++ {
		a := (address + uint32(i)) & 0xfffff
		if i%16 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleFeedback, "%s %s", s.String(), ascii.String())
				s.Reset()
				ascii.Reset()
			}
			s.WriteString(fmt.Sprintf("%05x ", a))
		}

		v, err := dbg.board.Mem.Read(a)
		if err != nil {
			s.WriteString(" --")
			ascii.WriteRune('.')
			continue
		}

		s.WriteString(fmt.Sprintf(" %02x", v))
		if v >= 0x20 && v < 0x7f {
			ascii.WriteByte(v)
		} else {
			ascii.WriteRune('.')
		}
	}

	// pad last line so that the ascii column lines up
	if r := length % 16; r != 0 {
		s.WriteString(strings.Repeat("   ", 16-r))
	}
	dbg.printLine(terminal.StyleFeedback, "%s %s", s.String(), ascii.String())
}

func (dbg *Debugger) cmdPoke(args []string) error {
	if err := arguments(KeywordPoke, args, 2, 0x100); err != nil {
		return err
	}

	seg, off, err := dbg.parseAddress(args[0])
	if err != nil {
		return curated.Errorf(CommandError, KeywordPoke, err)
	}

	data := make([]uint8, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseNumber(a, 16)
		if err != nil {
			return curated.Errorf(CommandError, KeywordPoke, err)
		}
		if v > 0xff {
			return curated.Errorf(CommandError, KeywordPoke, fmt.Sprintf("%s is not a byte", a))
		}
		data = append(data, uint8(v))
	}

	address := memory.Linear(seg, off)
	for i, v := range data {
		a := (address + uint32(i)) & 0xfffff
		if err := dbg.board.Mem.Write(a, v); err != nil {
			return curated.Errorf(CommandError, KeywordPoke, err)
		}
	}

	dbg.printLine(terminal.StyleFeedback, "%d byte(s) written to %05x", len(data), address)
	return nil
}

func (dbg *Debugger) cmdIRQ(args []string) error {
	if err := arguments(KeywordIRQ, args, 1, 1); err != nil {
		return err
	}

	n, err := parseNumber(args[0], 10)
	if err != nil {
		return curated.Errorf(CommandError, KeywordIRQ, err)
	}
	if n > 7 {
		return curated.Errorf(CommandError, KeywordIRQ, "line must be between 0 and 7")
	}

	dbg.board.PIC.IRQ(int(n))
	dbg.printLine(terminal.StyleFeedback, "IRQ%d raised", n)
	return nil
}

func (dbg *Debugger) cmdKey(args []string) error {
	if err := arguments(KeywordKey, args, 1, 2); err != nil {
		return err
	}

	n, err := parseNumber(args[0], 16)
	if err != nil {
		return curated.Errorf(CommandError, KeywordKey, err)
	}
	if n == 0 || n >= keyboard.Released {
		return curated.Errorf(CommandError, KeywordKey, "scancode out of range")
	}

	ev := keyboard.Event{Scancode: uint8(n)}
	if len(args) == 2 {
		if strings.ToUpper(args[1]) != "UP" {
			return curated.Errorf(CommandError, KeywordKey, fmt.Sprintf("unrecognised argument (%s)", args[1]))
		}
		ev.Up = true
	}

	if err := dbg.board.Keyboard.PushEvent(ev); err != nil {
		return curated.Errorf(CommandError, KeywordKey, err)
	}

	dbg.printLine(terminal.StyleFeedback, "%s queued", ev)
	return nil
}

func (dbg *Debugger) cmdDisasm(args []string) error {
	if err := arguments(KeywordDisasm, args, 0, 2); err != nil {
		return err
	}

	count := 8
	seg := dbg.board.CPU.Regs.CS.Value()
	off := dbg.board.CPU.Regs.IP.Value()

	if len(args) > 0 {
		n, err := parseNumber(args[0], 10)
		if err != nil {
			return curated.Errorf(CommandError, KeywordDisasm, err)
		}
		if n == 0 || n > 0x1000 {
			return curated.Errorf(CommandError, KeywordDisasm, "count out of range")
		}
		count = int(n)
	}

	if len(args) > 1 {
		var err error
		seg, off, err = dbg.parseAddress(args[1])
		if err != nil {
			return curated.Errorf(CommandError, KeywordDisasm, err)
		}
	}

	entries, err := disassembly.Disassemble(dbg.board.Mem, seg, off, count)
	if err != nil {
		return curated.Errorf(CommandError, KeywordDisasm, err)
	}

	for _, e := range entries {
		dbg.printLine(terminal.StyleDisasm, "%s", e)
	}

	return nil
}

func (dbg *Debugger) cmdQueue(args []string) error {
	if err := arguments(KeywordQueue, args, 0, 0); err != nil {
		return err
	}

	bus := dbg.board.CPU.Bus()
	seg, off := bus.FetchAddress()
	dbg.printLine(terminal.StyleCPUStep, "queue %s next fetch %04x:%04x", bus.Queue(), seg, off)
	dbg.printLine(terminal.StyleCPUStep, "bus %s", bus)
	return nil
}

func (dbg *Debugger) cmdPIC(args []string) error {
	if err := arguments(KeywordPIC, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.board.PIC)
	return nil
}

func (dbg *Debugger) cmdPIT(args []string) error {
	if err := arguments(KeywordPIT, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.board.PIT)
	return nil
}

func (dbg *Debugger) cmdPPI(args []string) error {
	if err := arguments(KeywordPPI, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.board.PPI)
	return nil
}

func (dbg *Debugger) cmdMemMap(args []string) error {
	if err := arguments(KeywordMemMap, args, 0, 0); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.board.Mem)
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.board.IO)
	return nil
}

func (dbg *Debugger) cmdMemviz(args []string) error {
	if err := arguments(KeywordMemviz, args, 0, 1); err != nil {
		return err
	}

	var filename string
	if len(args) == 1 {
		filename = args[0]
	} else {
		rom := strings.TrimSuffix(filepath.Base(dbg.board.Prefs.ROM.String()), filepath.Ext(dbg.board.Prefs.ROM.String()))
		if rom == "." {
			rom = ""
		}
		filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", rom))
	}

	if err := dbg.memviz(filename); err != nil {
		return curated.Errorf(CommandError, KeywordMemviz, err)
	}

	dbg.printLine(terminal.StyleFeedback, "processor state written to %s", filename)
	return nil
}

func (dbg *Debugger) cmdLog(args []string) error {
	if err := arguments(KeywordLog, args, 0, 1); err != nil {
		return err
	}

	count := uint64(10)
	if len(args) == 1 {
		var err error
		count, err = parseNumber(args[0], 10)
		if err != nil {
			return curated.Errorf(CommandError, KeywordLog, err)
		}
	}

	logger.Tail(dbg.printStyle(terminal.StyleLog), int(count))
	return nil
}

func (dbg *Debugger) cmdScript(args []string) error {
	if err := arguments(KeywordScript, args, 1, 1); err != nil {
		return err
	}
	if _, err := os.Stat(args[0]); err != nil {
		return curated.Errorf(CommandError, KeywordScript, err)
	}
	return dbg.runScript(args[0])
}

func (dbg *Debugger) cmdReset(args []string) error {
	if err := arguments(KeywordReset, args, 0, 0); err != nil {
		return err
	}
	if err := dbg.board.Reset(); err != nil {
		return curated.Errorf(CommandError, KeywordReset, err)
	}
	dbg.printLine(terminal.StyleFeedback, "machine reset")
	return nil
}

func (dbg *Debugger) cmdQuit(args []string) error {
	if err := arguments(KeywordQuit, args, 0, 0); err != nil {
		return err
	}
	dbg.quit = true
	return nil
}
