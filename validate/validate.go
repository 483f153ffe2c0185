// Command validate provides a small CLI that validates room configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Seat count bounds (2 to 8)
//   - Deck entries (no nulls, duplicates reported as information)
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// Config mirrors the JSON schema for a room configuration.
type Config struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Seats       int           `json:"seats"`
	Deck        []interface{} `json:"deck"`
}

const maxSeats = 8

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Config name is required")
	}

	if config.Seats < 2 || config.Seats > maxSeats {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("seats must be between 2 and %d, got %d", maxSeats, config.Seats))
	}

	duplicates := 0
	for i, card := range config.Deck {
		if card == nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Deck entry %d is null", i+1))
			continue
		}
		for _, earlier := range config.Deck[:i] {
			if reflect.DeepEqual(card, earlier) {
				duplicates++
				break
			}
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Seats: %d", config.Seats))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Deck: %d cards", len(config.Deck)))
		if duplicates > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Duplicate cards: %d (allowed, drawn independently)", duplicates))
		}
		if len(config.Deck) == 0 {
			result.Errors = append(result.Errors, "✓ Empty deck: players seed it with add-cards-to-deck")
		}
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
