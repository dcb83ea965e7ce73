package filter

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
)

//go:embed data/*.txt
var listFS embed.FS

// LoadList reads a word list: one word per line, blank lines and lines
// starting with '#' ignored, words lower-cased.
func LoadList(r io.Reader) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return set, nil
}

// LoadPairs reads a two-column mapping: "surface lemma" per line, same
// comment and blank-line rules as LoadList.
func LoadPairs(r io.Reader) (map[string]string, error) {
	pairs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed pair on line %d: %q", lineNo, line)
		}
		pairs[strings.ToLower(fields[0])] = strings.ToLower(fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pair list: %w", err)
	}
	return pairs, nil
}

func mustLoadList(name string) map[string]struct{} {
	data, err := listFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	set, err := LoadList(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("embedded word list %s: %v", name, err))
	}
	return set
}

func mustLoadPairs(name string) map[string]string {
	data, err := listFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded pair list %s: %v", name, err))
	}
	pairs, err := LoadPairs(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("embedded pair list %s: %v", name, err))
	}
	return pairs
}
