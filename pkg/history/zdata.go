package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// The z_data file is shared with the shell-side z function: one
// "path|unix-timestamp" line per directory visit.

// ReadZData counts directory visits from a z_data file. A missing file
// yields an empty map.
func ReadZData(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("opening z data: %w", err)
	}
	defer f.Close()

	visits := make(map[string]int)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		dir, _, found := strings.Cut(line, "|")
		if !found || dir == "" {
			continue
		}
		visits[dir]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading z data: %w", err)
	}
	return visits, nil
}

// AppendZData records one directory visit, creating the file and its
// directory as needed.
func AppendZData(path, dir string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating z data directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening z data: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s|%d\n", dir, time.Now().Unix())
	return err
}
