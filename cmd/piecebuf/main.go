// Package main is an interactive driver for the piecebuf engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/piecebuf/internal/config"
	"github.com/dshills/piecebuf/internal/config/watcher"
	"github.com/dshills/piecebuf/internal/engine/history"
	"github.com/dshills/piecebuf/internal/engine/piecetable"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath   string
	HistoryLimit int
	WatchConfig  bool
	File         string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.HistoryLimit > 0 {
		cfg.Editor.HistoryLimit = opts.HistoryLimit
	}
	if opts.WatchConfig {
		cfg.REPL.WatchConfig = true
	}

	var initial string
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.File, err)
			return 1
		}
		initial = string(data)
	}

	buf := piecetable.FromString(initial)
	hist := history.NewHistory(buf, history.WithMaxEntries(cfg.Editor.HistoryLimit))

	var w *watcher.Watcher
	if cfg.REPL.WatchConfig && opts.ConfigPath != "" {
		w, err = watcher.New(opts.ConfigPath, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			defer w.Close()
		}
	}

	repl(buf, hist, cfg, w, opts.ConfigPath)
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.HistoryLimit, "history", 0, "Undo stack capacity (overrides config)")
	flag.IntVar(&opts.HistoryLimit, "n", 0, "Undo stack capacity (shorthand)")
	flag.BoolVar(&opts.WatchConfig, "watch-config", false, "Reload configuration on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "piecebuf - piece-table text buffer REPL\n\n")
		fmt.Fprintf(os.Stderr, "Usage: piecebuf [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n%s", commandHelp)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("piecebuf %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.File = flag.Arg(0)
	}

	return opts
}

const commandHelp = `  p                      print the buffer
  i <offset> <text>      insert text (\n for newline)
  d <start> <end>        delete range, printing removed text
  r <start> <end> <text> replace range
  g <line>               print one line
  f <text> [from]        find all occurrences
  pos <offset>           offset -> line:column
  off <line> <col>       line:column -> offset
  save                   checkpoint the current state
  u                      undo to previous checkpoint
  y                      redo
  hist                   show history stack sizes
  q                      quit
`

func repl(buf *piecetable.PieceTable, hist *history.History, cfg config.Config, w *watcher.Watcher, cfgPath string) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		// Apply any pending config reload before the next command. The
		// engine is single-threaded, so reloads are folded into the loop
		// instead of racing it from a goroutine.
		if w != nil {
			select {
			case <-w.Events():
				if next, err := config.Load(cfgPath); err == nil {
					cfg = next
					hist.SetMaxEntries(cfg.Editor.HistoryLimit)
					fmt.Printf("config reloaded: history limit %d\n", cfg.Editor.HistoryLimit)
				}
			default:
			}
		}

		fmt.Print(cfg.REPL.Prompt)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return
		}

		if err := execute(buf, hist, line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func execute(buf *piecetable.PieceTable, hist *history.History, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "p":
		fmt.Println(buf.Text())

	case "i":
		offStr, text, ok := strings.Cut(rest, " ")
		if !ok {
			return fmt.Errorf("usage: i <offset> <text>")
		}
		off, err := strconv.ParseInt(offStr, 10, 64)
		if err != nil {
			return fmt.Errorf("bad offset %q", offStr)
		}
		return buf.Insert(off, unescape(text))

	case "d":
		start, end, err := parseRange(rest)
		if err != nil {
			return err
		}
		removed, err := buf.Delete(start, end)
		if err != nil {
			return err
		}
		fmt.Printf("removed %q\n", removed)

	case "r":
		fields := strings.SplitN(rest, " ", 3)
		if len(fields) != 3 {
			return fmt.Errorf("usage: r <start> <end> <text>")
		}
		start, end, err := parseRange(fields[0] + " " + fields[1])
		if err != nil {
			return err
		}
		removed, err := buf.Replace(start, end, unescape(fields[2]))
		if err != nil {
			return err
		}
		fmt.Printf("replaced %q\n", removed)

	case "g":
		n, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return fmt.Errorf("bad line number %q", rest)
		}
		text, err := buf.LineText(uint32(n))
		if err != nil {
			return err
		}
		fmt.Println(text)

	case "f":
		needle, fromStr, hasFrom := strings.Cut(rest, " ")
		var from int64
		if hasFrom {
			var err error
			from, err = strconv.ParseInt(fromStr, 10, 64)
			if err != nil {
				return fmt.Errorf("bad offset %q", fromStr)
			}
		}
		matches, err := buf.Find(needle, from)
		if err != nil {
			return err
		}
		fmt.Println(matches)

	case "pos":
		off, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return fmt.Errorf("bad offset %q", rest)
		}
		p, err := buf.OffsetToPoint(off)
		if err != nil {
			return err
		}
		fmt.Println(p)

	case "off":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return fmt.Errorf("usage: off <line> <col>")
		}
		lineNo, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("bad line %q", fields[0])
		}
		col, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("bad column %q", fields[1])
		}
		off, err := buf.PointToOffset(piecetable.Point{Line: uint32(lineNo), Column: uint32(col)})
		if err != nil {
			return err
		}
		fmt.Println(off)

	case "save":
		hist.SaveState()
		fmt.Printf("saved (%d undo entries)\n", hist.UndoCount())

	case "u":
		if !hist.Undo() {
			fmt.Println("nothing to undo")
		}

	case "y":
		if !hist.Redo() {
			fmt.Println("nothing to redo")
		}

	case "hist":
		fmt.Printf("undo: %d  redo: %d  capacity: %d\n",
			hist.UndoCount(), hist.RedoCount(), hist.MaxEntries())

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}

func parseRange(s string) (int64, int64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected <start> <end>")
	}
	start, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad start %q", fields[0])
	}
	end, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad end %q", fields[1])
	}
	return start, end, nil
}

// unescape turns literal \n and \t sequences into control characters so
// multi-line text can be entered on one REPL line.
func unescape(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}
