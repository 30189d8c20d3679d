package usecase

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"golang.org/x/sync/errgroup"
)

// The movie file uses ^ as its field separator, a character that does
// not occur in the catalog text. Rating and tag files are plain
// comma-separated.
const (
	movieFieldSep   = "^"
	movieFieldCount = 10
	eventFieldSep   = ","
	eventFieldCount = 4
)

func LoadMovies(path string, workers int) ([]domain.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMovies(path, f, workers)
}

func LoadRatings(path string, workers int) ([]domain.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRatings(path, f, workers)
}

func LoadTags(path string, workers int) ([]domain.Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTags(path, f, workers)
}

// ParseMovies parses one catalog row per line. Parsing is strict: a
// wrong field count or a non-integer id aborts the whole run.
func ParseMovies(name string, r io.Reader, workers int) ([]domain.Movie, error) {
	lines, err := readLines(name, r)
	if err != nil {
		return nil, err
	}
	return parseLines(name, lines, workers, parseMovieLine)
}

func ParseRatings(name string, r io.Reader, workers int) ([]domain.Rating, error) {
	lines, err := readLines(name, r)
	if err != nil {
		return nil, err
	}
	return parseLines(name, lines, workers, parseRatingLine)
}

func ParseTags(name string, r io.Reader, workers int) ([]domain.Tag, error) {
	lines, err := readLines(name, r)
	if err != nil {
		return nil, err
	}
	return parseLines(name, lines, workers, parseTagLine)
}

func readLines(name string, r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

// parseLines fans the line set out over worker-sized partitions. Each
// worker writes into its own index range, so the output keeps input
// order and no locking is needed.
func parseLines[T any](name string, lines []string, workers int, parse func(string, int, string) (T, error)) ([]T, error) {
	out := make([]T, len(lines))
	if len(lines) == 0 {
		return out, nil
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(lines) + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < len(lines); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(lines))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				rec, err := parse(name, i+1, lines[i])
				if err != nil {
					return err
				}
				out[i] = rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseMovieLine(name string, n int, line string) (domain.Movie, error) {
	fields := strings.Split(line, movieFieldSep)
	if len(fields) != movieFieldCount {
		return domain.Movie{}, domain.NewParseError(name, n, "expected %d %s-separated fields, got %d", movieFieldCount, movieFieldSep, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	mid, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Movie{}, domain.NewParseError(name, n, "movie id %q is not an integer", fields[0])
	}
	return domain.Movie{
		Mid:            mid,
		Name:           fields[1],
		Description:    fields[2],
		Runtime:        fields[3],
		ReleaseDate:    fields[4],
		ProductionYear: fields[5],
		Language:       fields[6],
		Genres:         fields[7],
		Cast:           fields[8],
		Directors:      fields[9],
	}, nil
}

func parseRatingLine(name string, n int, line string) (domain.Rating, error) {
	fields, err := splitEventLine(name, n, line)
	if err != nil {
		return domain.Rating{}, err
	}
	uid, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Rating{}, domain.NewParseError(name, n, "user id %q is not an integer", fields[0])
	}
	mid, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Rating{}, domain.NewParseError(name, n, "movie id %q is not an integer", fields[1])
	}
	score, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return domain.Rating{}, domain.NewParseError(name, n, "score %q is not a number", fields[2])
	}
	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.Rating{}, domain.NewParseError(name, n, "timestamp %q is not an integer", fields[3])
	}
	return domain.Rating{Uid: uid, Mid: mid, Score: score, Timestamp: ts}, nil
}

func parseTagLine(name string, n int, line string) (domain.Tag, error) {
	fields, err := splitEventLine(name, n, line)
	if err != nil {
		return domain.Tag{}, err
	}
	uid, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Tag{}, domain.NewParseError(name, n, "user id %q is not an integer", fields[0])
	}
	mid, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Tag{}, domain.NewParseError(name, n, "movie id %q is not an integer", fields[1])
	}
	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.Tag{}, domain.NewParseError(name, n, "timestamp %q is not an integer", fields[3])
	}
	return domain.Tag{Uid: uid, Mid: mid, Text: fields[2], Timestamp: ts}, nil
}

func splitEventLine(name string, n int, line string) ([]string, error) {
	fields := strings.Split(line, eventFieldSep)
	if len(fields) != eventFieldCount {
		return nil, domain.NewParseError(name, n, "expected %d comma-separated fields, got %d", eventFieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}
