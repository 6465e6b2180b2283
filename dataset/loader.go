package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/inflecta/trace"
)

// ErrMalformedPath is returned when the training or dev data file named by
// --language/--quality cannot be opened. The caller decides what to do
// with it; nothing inside the learning core recovers from a missing file.
var ErrMalformedPath = errors.New("dataset: could not open data file")

// Load reads path line by line and parses each into a Record. Malformed
// lines (wrong field count, empty field, or a literal '*' in either word)
// are skipped and traced at trace.Info; sink may be nil, in which case
// tracing is silently skipped.
func Load(path string, sink *trace.Sink) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPath, path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			sink.Log(trace.Info, "dataset: skipping malformed record at %s:%d", path, lineNo)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPath, path, err)
	}
	return records, nil
}

// TrainPath and DevPath build the conventional data file names:
// "<language>-train-<quality>" and "<language>-dev".
func TrainPath(dir, language, quality string) string {
	return joinDataPath(dir, language+"-train-"+quality)
}

func DevPath(dir, language string) string {
	return joinDataPath(dir, language+"-dev")
}

func joinDataPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}
