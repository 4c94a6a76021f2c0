// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/catalog"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/performance/limiter"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
)

// exit status when a mode ends with an error.
const errorStatus = 10

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "CARTINFO", "OPCODES", "CATALOG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return errorStatus
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "CARTINFO":
		err = cartinfo(md)

	case "OPCODES":
		err = opcodes(md)

	case "CATALOG":
		err = catalogue(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return errorStatus
	}

	return 0
}

// cartridgeArg returns the loader for the single cartridge argument of the
// current mode.
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// newGameBoy creates a GameBoy with preferences loaded from disk. The
// command line preferences, if any, are applied for the lifetime of the
// GameBoy.
func newGameBoy(prefsStr string) (*hardware.GameBoy, error) {
	prefs.PushCommandLineStack(prefsStr)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	return hardware.NewGameBoy(p)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run for (0 runs until the CPU stops)")
	fpsCap := md.AddBool("fpscap", false, "cap frame rate to that of the DMG")
	serial := md.AddBool("serial", true, "echo serial output")
	log := md.AddBool("log", false, "echo debugging log")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewAvailability()))
	prefsStr := md.AddString("prefs", "", "preferences for this run only (eg. \"hardware.postboot::false\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(md.Output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	gb, err := newGameBoy(*prefsStr)
	if err != nil {
		return err
	}

	if *serial {
		gb.Serial.SetEcho(md.Output)
	}

	err = gb.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	err = gb.Start()
	if err != nil {
		return err
	}

	var lim *limiter.FpsLimiter
	if *fpsCap {
		lim = limiter.NewFPSLimiter(limiter.DMGFrameRate)
		defer lim.End()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	check := func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		if gb.Killed() {
			return govern.Ending, nil
		}
		if lim != nil {
			lim.Wait()
		}
		return govern.Running, nil
	}

	if *frames > 0 {
		err = gb.RunForFrameCount(*frames, func(_ int) (govern.State, error) {
			return check()
		})
	} else {
		err = gb.Run(check)
	}

	out := gb.Serial.Output()
	if *serial && len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(md.Output)
	}

	fmt.Fprintln(md.Output, gb.CPU.String())
	fmt.Fprintf(md.Output, "%d frames (%.2f seconds)\n", gb.FrameNum(), gb.Seconds())

	return err
}

func statsviewAvailability() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	prefsStr := md.AddString("prefs", "", "preferences for this session only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := newGameBoy(*prefsStr)
	if err != nil {
		return err
	}

	err = gb.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(gb)
	if err != nil {
		return err
	}

	return dbg.Run(nil, nil)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	trace := md.AddBool("trace", false, "disassemble instructions as they are executed")
	limit := md.AddInt("limit", 0, "maximum number of instructions to trace (0 is unlimited)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	bootCheck := md.AddBool("bootcheck", true, "validate the cartridge header")
	bank := md.AddInt("bank", -1, "show disassembly for a specific bank")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	if *trace {
		prf := preferences.NewDefaultPreferences()
		err = prf.BootCheck.Set(*bootCheck)
		if err != nil {
			return err
		}

		gb, err := hardware.NewGameBoy(prf)
		if err != nil {
			return err
		}
		gb.Logging = false

		err = gb.AttachCartridge(cartload)
		if err != nil {
			return err
		}

		return disassembly.TraceWithAttr(gb, md.Output, attr, *limit)
	}

	cart := cartridge.NewCartridge()
	err = cart.Attach(cartload, *bootCheck)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart)
	if err != nil {
		return err
	}

	if *bank < 0 {
		return dsm.Write(md.Output, attr)
	}
	return dsm.WriteBank(md.Output, attr, *bank)
}

var (
	infoLabel = lipgloss.NewStyle().Bold(true).Width(16)
	infoTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func cartinfo(md *modalflag.Modes) error {
	md.NewMode()

	bootCheck := md.AddBool("bootcheck", true, "validate the cartridge header")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	cart := cartridge.NewCartridge()
	err = cart.Attach(cartload, *bootCheck)
	if err != nil {
		return err
	}

	hdr := cart.Header

	ram := "none"
	if hdr.RAMSize > 0 {
		ram = fmt.Sprintf("%dKB", hdr.RAMSize)
	}

	lines := []string{infoTitle.Render(hdr.Title)}
	field := func(label string, value string) {
		lines = append(lines, infoLabel.Render(label)+value)
	}
	field("File", cart.Filename)
	field("Hash", cart.Hash)
	field("Type", hdr.Type.String())
	field("Mapper", cart.ID())
	field("ROM banks", fmt.Sprintf("%d", hdr.ROMBanks))
	field("RAM", ram)
	field("Region", hdr.Region())
	field("Checksum", fmt.Sprintf("%02x", hdr.Checksum))
	field("Global checksum", fmt.Sprintf("%04x", hdr.GlobalChecksum))

	_, err = fmt.Fprintln(md.Output, strings.Join(lines, "\n"))
	return err
}

func opcodes(md *modalflag.Modes) error {
	md.NewMode()

	prefixed := md.AddBool("prefixed", false, "show the CB prefixed instructions")
	plain := md.AddBool("plain", false, "do not style the table")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return disassembly.WriteOpcodeTable(md.Output, *prefixed, !*plain)
}

func catalogue(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "ADD", "REMOVE")

	db := md.AddString("db", catalog.DefaultPath(), "path to the catalog database")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cat, err := catalog.Open(*db)
	if err != nil {
		return err
	}
	defer cat.Close()

	switch md.Mode() {
	case "LIST":
		return catalogList(md, cat)
	case "ADD":
		return catalogAdd(md, cat)
	case "REMOVE":
		return catalogRemove(md, cat)
	}

	return nil
}

func catalogList(md *modalflag.Modes, cat *catalog.Catalog) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	entries, err := cat.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(md.Output, "catalog is empty")
		return nil
	}

	return catalog.Write(md.Output, entries)
}

func catalogAdd(md *modalflag.Modes, cat *catalog.Catalog) error {
	md.NewMode()

	bootCheck := md.AddBool("bootcheck", true, "validate the cartridge header")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one cartridge required for %s mode", md)
	}

	var failed int

	for _, filename := range md.RemainingArgs() {
		cartload := cartridgeloader.NewLoader(filename)

		err := addToCatalog(cat, cartload, *bootCheck)
		if err != nil {
			fmt.Fprintf(md.Output, "* %s: %v\n", cartload.ShortName(), err)
			failed++
			continue
		}

		fmt.Fprintf(md.Output, "added %s\n", cartload.ShortName())
	}

	if failed > 0 {
		return curated.Errorf("catalog: %d of %d cartridges not added", failed, len(md.RemainingArgs()))
	}

	return nil
}

// cartridges are removed by hash. an argument that can be loaded as a
// cartridge is converted to its hash first.
func catalogRemove(md *modalflag.Modes, cat *catalog.Catalog) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one hash or cartridge required for %s mode", md)
	}

	for _, arg := range md.RemainingArgs() {
		hash := arg

		cartload := cartridgeloader.NewLoader(arg)
		if cartload.HasRecognisedExtension() {
			err := cartload.Load()
			if err != nil {
				return err
			}
			hash = cartload.Hash
		}

		e, err := cat.Find(hash)
		if err != nil {
			return err
		}

		err = cat.Remove(hash)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "removed %s\n", e.Title)
	}

	return nil
}

func addToCatalog(cat *catalog.Catalog, cartload cartridgeloader.Loader, bootCheck bool) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	hdr, err := cartridge.ParseHeader(cartload.Data, bootCheck)
	if err != nil {
		return err
	}

	return cat.Add(cartload, hdr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", false, "cap frame rate to that of the DMG")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, cartload, !*fpsCap, *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
