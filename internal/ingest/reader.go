package ingest

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoUserAgents is returned for a file with no usable lines.
var ErrNoUserAgents = errors.New("no user agents found")

// LoadUserAgents reads one user agent per line. Blank lines and lines
// starting with '#' are skipped.
func LoadUserAgents(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	agents, err := readUserAgents(stripBOM(f))
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, ErrNoUserAgents
	}
	return agents, nil
}

func readUserAgents(r io.Reader) ([]string, error) {
	var agents []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		agents = append(agents, line)
	}
	return agents, scanner.Err()
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
