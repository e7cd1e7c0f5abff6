// Package cli provides plain terminal I/O and meta-command dispatch for
// the game engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avlec/stranded/engine"
	"github.com/avlec/stranded/engine/world"
	"github.com/avlec/stranded/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *world.Defs
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *world.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop. It shows the intro, describes the starting room,
// then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Defs.Game.Intro != "" {
		c.printLine(c.Defs.Game.Intro)
		c.printLine("")
	}

	result := c.Engine.Step("look")
	c.printResult(result)

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   — Exit game",
		"  /help   — Show this help",
		"  /state  — Show current player state",
		"",
		"Game commands:",
		"  go/move/walk <dir>    — Move north, south, east or west",
		"  look (l)              — Describe the room",
		"  take/get <item>       — Pick something up",
		"  use <item>            — Use an item from your inventory",
		"  attack/fight <name>   — Fight a creature",
		"  inventory (i)         — Check what you're carrying",
		"  status (hp)           — Check your health",
		"  again (g)             — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	snap := c.Engine.Snapshot()
	c.printSystem(fmt.Sprintf("Turn: %d", snap.Turn))
	c.printSystem(fmt.Sprintf("Location: %s", snap.Room))
	c.printSystem(fmt.Sprintf("Health: %d/%d", snap.Health, snap.MaxHealth))
	c.printSystem(fmt.Sprintf("Inventory: %v", snap.Inventory))
	if snap.GameOver {
		c.printSystem(fmt.Sprintf("Game over (win: %v)", snap.Win))
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Lines {
		c.printLine(line.Text)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
