package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is one row/object from a CSV or JSON word file.
type Record map[string]string

// parseFile dispatches on the file extension: .csv/.tsv and .json get the
// structured parsers, anything else is read as one word per line.
func parseFile(path string, wordKey string, onEachWord func(word string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return parseCsv(path, wordKey, onEachWord)
	case ".json":
		return parseJson(path, wordKey, onEachWord)
	default:
		return parseText(path, onEachWord)
	}
}

// parseText reads one word per line. Blank lines are skipped since a plain
// text file cannot distinguish an empty word from padding.
func parseText(path string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := onEachWord(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseJson(path string, wordKey string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a JSON Decoder
	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		word, err := wordFromRecord(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	return nil
}

func parseCsv(path string, wordKey string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}

	// Read the header to build the key mapping (first line is the header)
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if err != nil {
			break // End of file or an error
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, err := wordFromRecord(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	return nil
}

func wordFromRecord(record Record, wordKey string, path string) (string, error) {
	word, found := record[wordKey]
	if !found {
		return "", fmt.Errorf("%s: record has no %q field: %v", path, wordKey, record)
	}
	return word, nil
}
