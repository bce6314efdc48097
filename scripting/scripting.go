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

package scripting

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/keyboard"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for errors returned by a script.
const ScriptError = "scripting: %v"

// Monitor is the interface to the monitor that is running the script.
type Monitor interface {
	Board() *hardware.Board
	Command(input string) error
	Print(s string)
}

// RunFile runs the Lua script in the named file.
func RunFile(mon Monitor, filename string) error {
	L := newState(mon)
	defer L.Close()

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua script contained in the string.
func RunString(mon Monitor, script string) error {
	L := newState(mon)
	defer L.Close()

	if err := L.DoString(script); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

type environment struct {
	mon   Monitor
	board *hardware.Board
}

func newState(mon Monitor) *lua.LState {
	env := &environment{
		mon:   mon,
		board: mon.Board(),
	}

	L := lua.NewState()
	L.SetGlobal("print", L.NewFunction(env.print))
	L.SetGlobal("step", L.NewFunction(env.step))
	L.SetGlobal("reg", L.NewFunction(env.reg))
	L.SetGlobal("setreg", L.NewFunction(env.setreg))
	L.SetGlobal("peek", L.NewFunction(env.peek))
	L.SetGlobal("poke", L.NewFunction(env.poke))
	L.SetGlobal("irq", L.NewFunction(env.irq))
	L.SetGlobal("key", L.NewFunction(env.key))
	L.SetGlobal("command", L.NewFunction(env.command))

	return L
}

func (env *environment) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	env.mon.Print(strings.Join(s, "\t"))
	return 0
}

func (env *environment) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		L.ArgError(1, "count must be greater than zero")
	}
	if err := env.board.StepN(n); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (env *environment) reg(L *lua.LState) int {
	name := L.CheckString(1)
	regs := &env.board.CPU.Regs

	if strings.ToLower(name) == "flags" {
		L.Push(lua.LNumber(regs.Flags.Value()))
		return 1
	}

	r, ok := regs.Named(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	}
	L.Push(lua.LNumber(r.Value()))
	return 1
}

func (env *environment) setreg(L *lua.LState) int {
	name := L.CheckString(1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xffff {
		L.ArgError(2, "value out of range")
	}

	cpu := env.board.CPU

	switch strings.ToUpper(name) {
	case "FLAGS":
		cpu.Regs.Flags.FromValue(uint16(v))
	case "CS":
		cpu.LoadCSIP(uint16(v), cpu.Regs.IP.Value())
	case "IP":
		cpu.LoadCSIP(cpu.Regs.CS.Value(), uint16(v))
	default:
		r, ok := cpu.Regs.Named(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
		}
		r.Load(uint16(v))
	}

	return 0
}

func checkAddress(L *lua.LState, n int) uint32 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xfffff {
		L.ArgError(n, "address out of range")
	}
	return uint32(a)
}

func (env *environment) peek(L *lua.LState) int {
	a := checkAddress(L, 1)

	// unmapped addresses read as open bus
	v, _ := env.board.Mem.Read(a)
	L.Push(lua.LNumber(v))
	return 1
}

func (env *environment) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	if err := env.board.Mem.Write(a, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (env *environment) irq(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 7 {
		L.ArgError(1, "line must be between 0 and 7")
	}
	env.board.PIC.IRQ(n)
	return 0
}

func (env *environment) key(L *lua.LState) int {
	code := L.CheckInt(1)
	if code <= 0 || code >= keyboard.Released {
		L.ArgError(1, "scancode out of range")
	}
	ev := keyboard.Event{
		Scancode: uint8(code),
		Up:       L.OptBool(2, false),
	}
	if err := env.board.Keyboard.PushEvent(ev); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (env *environment) command(L *lua.LState) int {
	if err := env.mon.Command(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
