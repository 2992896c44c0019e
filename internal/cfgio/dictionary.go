package cfgio

import (
	"bufio"
	"fmt"
	"os"
)

// ReadDictionary reads every line of a dictionary file into memory,
// mirroring the source's eager open(file).readlines(): downstream
// streams need the total line count up front to size their iteration
// budget.
func ReadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return lines, nil
}

// DerivedPath builds the path for a dictionary transform's output file,
// appending one of the fixed suffixes ("-allkeys", "-modifiedkeys",
// "-calckeys") to the source dictionary's path.
func DerivedPath(source, suffix string) string {
	return source + suffix
}

// AppendLines appends lines (one per record) to path, creating it if
// necessary. Matches the source's open(file, "a") append-only output.
func AppendLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("failed to write to %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write to %s: %w", path, err)
		}
	}
	return w.Flush()
}
