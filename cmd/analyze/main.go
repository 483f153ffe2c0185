// Command analyze prints quick, human-readable heuristics about room
// configuration files in the configs directory. It summarizes seats, deck
// sizes, card shapes, and duplicate counts so a config author can sanity
// check a deck before putting it in front of players.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Seats       int           `json:"seats"`
	Deck        []interface{} `json:"deck"`
}

// DeckSummary is the computed breakdown for one configuration file.
type DeckSummary struct {
	File       string
	Name       string
	Seats      int
	DeckSize   int
	Strings    int
	Objects    int
	Other      int
	Distinct   int
	Duplicates int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "summarize room configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "configs",
				Value: "configs",
				Usage: "directory holding *.json room configurations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return analyzeDir(cmd.Writer, cmd.String("configs"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeDir(w io.Writer, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no config files found in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", filepath.Base(file))
		summary, err := analyzeConfig(file)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		printSummary(w, summary)
	}
	return nil
}

func analyzeConfig(path string) (*DeckSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	summary := &DeckSummary{
		File:     filepath.Base(path),
		Name:     config.Name,
		Seats:    config.Seats,
		DeckSize: len(config.Deck),
	}

	var distinct []interface{}
	for _, card := range config.Deck {
		switch card.(type) {
		case string:
			summary.Strings++
		case map[string]interface{}:
			summary.Objects++
		default:
			summary.Other++
		}

		seen := false
		for _, d := range distinct {
			if reflect.DeepEqual(d, card) {
				seen = true
				break
			}
		}
		if seen {
			summary.Duplicates++
		} else {
			distinct = append(distinct, card)
		}
	}
	summary.Distinct = len(distinct)
	return summary, nil
}

func printSummary(w io.Writer, s *DeckSummary) {
	fmt.Fprintf(w, "Name: %s\n", s.Name)
	fmt.Fprintf(w, "Seats: %d\n", s.Seats)
	fmt.Fprintf(w, "Deck: %d cards (%d distinct, %d duplicates)\n", s.DeckSize, s.Distinct, s.Duplicates)

	shapes := []string{}
	if s.Strings > 0 {
		shapes = append(shapes, fmt.Sprintf("%d string", s.Strings))
	}
	if s.Objects > 0 {
		shapes = append(shapes, fmt.Sprintf("%d object", s.Objects))
	}
	if s.Other > 0 {
		shapes = append(shapes, fmt.Sprintf("%d other", s.Other))
	}
	if len(shapes) > 0 {
		fmt.Fprintf(w, "Card shapes: %s\n", strings.Join(shapes, ", "))
	}
	if s.DeckSize == 0 {
		fmt.Fprintln(w, "Empty deck: players seed it with add-cards-to-deck")
	} else if s.Seats > 0 {
		fmt.Fprintf(w, "Cards per seat if dealt evenly: %d\n", s.DeckSize/s.Seats)
	}
}
