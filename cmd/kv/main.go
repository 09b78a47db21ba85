// Command kv is a terminal family-tree viewer. It loads a people file
// (JSON, JSONL, or GEDCOM), renders an interactive card tree centered
// on a focal person, and keeps the view in sync with external edits to
// the file.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"kinview/pkg/analysis"
	"kinview/pkg/config"
	"kinview/pkg/export"
	"kinview/pkg/loader"
	"kinview/pkg/match"
	"kinview/pkg/permalink"
	"kinview/pkg/tree"
	"kinview/pkg/ui"
	"kinview/pkg/watcher"
)

const version = "0.3.0"

func main() {
	var (
		dataPath   = flag.String("data", "", "people file (.json, .jsonl, .ged); default people.json")
		configPath = flag.String("config", "", "config file (default ~/.config/kinview/config.yaml)")
		link       = flag.String("link", "", "location reference to open, e.g. person_id=5")
		ancestry   = flag.Int("ancestry", 0, "ancestor generations to show (0 = all)")
		progeny    = flag.Int("progeny", 0, "descendant generations to show (0 = all)")
		noSiblings = flag.Bool("no-siblings", false, "hide the focal person's siblings")
		noWatch    = flag.Bool("no-watch", false, "disable live reload on file changes")
		exportPath = flag.String("export", "", "render the tree to a .svg or .png file and exit")
		checkDups  = flag.Bool("check-duplicates", false, "report likely duplicate people and exit")
		loose      = flag.Bool("loose", false, "loose duplicate matching (nicknames, ±2y birth years)")
		showVer    = flag.Bool("version", false, "show version")
	)
	flag.Parse()

	if *showVer {
		fmt.Println("kv version " + version)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}
	if *ancestry != 0 {
		cfg.AncestryDepth = *ancestry
	}
	if *progeny != 0 {
		cfg.ProgenyDepth = *progeny
	}
	if *noSiblings {
		cfg.HideSiblings = true
	}
	if *noWatch {
		cfg.Watch = false
	}

	source, err := loader.NewFileSource(cfg.Data)
	if err != nil {
		fatal(err)
	}
	opts := tree.Options{
		AncestryDepth:     cfg.AncestryDepth,
		ProgenyDepth:      cfg.ProgenyDepth,
		HideFocalSiblings: cfg.HideSiblings,
		NodeSep:           cfg.NodeSep,
		LevelSep:          cfg.LevelSep,
	}

	if *checkDups {
		if err := runDuplicateCheck(source, *loose); err != nil {
			fatal(err)
		}
		return
	}

	initialRef := *link
	if initialRef == "" {
		initialRef = permalink.Load(source.Path())
	}

	if *exportPath != "" {
		if err := runExport(source, opts, initialRef, *exportPath); err != nil {
			fatal(err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runPlain(source); err != nil {
			fatal(err)
		}
		return
	}

	app := ui.NewApp(source, opts, initialRef, ui.ThemeByName(cfg.Theme))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if cfg.Watch {
		w, err := watcher.Watch(source.Path(), 0, func() {
			p.Send(ui.RefreshMsg{})
		})
		if err == nil {
			defer w.Close()
		}
		// A failed watch is not fatal: the r key still reloads.
	}

	if _, err := p.Run(); err != nil {
		fatal(fmt.Errorf("error running viewer: %w", err))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	if def := config.DefaultPath(); def != "" {
		return config.Load(def, false)
	}
	return config.Default(), nil
}

// runPlain prints the dataset summary and person list when stdout is
// not a terminal (pipes, scripts).
func runPlain(source loader.Source) error {
	people, err := source.Load()
	if err != nil {
		return err
	}
	nodes := tree.Translate(people)
	fmt.Println(analysis.Compute(nodes).Summary())
	for _, n := range nodes {
		line := fmt.Sprintf("%s\t%s %s", n.ID, n.Gender.Glyph(), n.DisplayName())
		if span := n.Lifespan(); span != "" {
			line += "\t" + span
		}
		fmt.Println(line)
	}
	return nil
}

func runExport(source loader.Source, opts tree.Options, ref, path string) error {
	people, err := source.Load()
	if err != nil {
		return err
	}
	nodes := tree.Translate(people)
	if len(nodes) == 0 {
		return fmt.Errorf("no people to export")
	}
	focal := permalink.Parse(ref)
	sub := tree.BuildView(nodes, focal, opts)
	if sub.Empty() {
		sub = tree.BuildView(nodes, nodes[0].ID, opts)
	}
	if err := export.WriteFile(path, sub); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d people)\n", path, len(sub.Nodes))
	return nil
}

func runDuplicateCheck(source loader.Source, loose bool) error {
	people, err := source.Load()
	if err != nil {
		return err
	}
	dups := match.FindDuplicates(people, match.Options{Loose: loose})
	if len(dups) == 0 {
		fmt.Println("No likely duplicates found.")
		return nil
	}
	fmt.Printf("%d likely duplicate pair(s):\n", len(dups))
	for _, d := range dups {
		fmt.Printf("  #%d %s  ~  #%d %s  (%s)\n",
			d.A.ID, d.A.PrimaryName().String(),
			d.B.ID, d.B.PrimaryName().String(),
			d.Reason)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "kv: %v\n", err)
	os.Exit(1)
}
