package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const minColumns = 3

// ParseOptions controls how rows map to images.
type ParseOptions struct {
	// FirstIndex is the file number of the first data row (0 or 1).
	FirstIndex   int
	HasHeader    bool
	ImageBaseURL string
}

// ParseResult holds parsed catalog rows.
type ParseResult struct {
	Images []domain.StimulusImage
	Stats  Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	SkippedBlank int
	Images       int
}

// Parse reads a tab-separated stimulus table with columns antonym, target and
// model tag. The n-th data row (counting blank rows) becomes "{n}.png".
// A non-blank row with missing columns makes the whole table malformed.
func Parse(r io.Reader, opts ParseOptions) (ParseResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		stats  Stats
		images []domain.StimulusImage
		row    int
	)

	for scanner.Scan() {
		stats.TotalLines++
		line := strings.TrimRight(scanner.Text(), "\r")

		if opts.HasHeader && stats.TotalLines == 1 {
			continue
		}

		index := row + opts.FirstIndex
		row++

		if strings.TrimSpace(line) == "" {
			stats.SkippedBlank++
			continue
		}

		fields := strings.SplitN(line, "\t", minColumns+1)
		if len(fields) < minColumns {
			return ParseResult{}, fmt.Errorf("line %d: expected %d columns, got %d", stats.TotalLines, minColumns, len(fields))
		}

		antonym := strings.TrimSpace(fields[0])
		target := strings.TrimSpace(fields[1])
		model := strings.TrimSpace(fields[2])
		if antonym == "" || target == "" {
			return ParseResult{}, fmt.Errorf("line %d: empty target or antonym", stats.TotalLines)
		}

		images = append(images, newImage(index, target, antonym, model, opts.ImageBaseURL))
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	if len(images) == 0 {
		return ParseResult{}, domain.ErrEmptyCatalog
	}

	stats.Images = len(images)
	return ParseResult{Images: images, Stats: stats}, nil
}

func newImage(index int, target, antonym, model, baseURL string) domain.StimulusImage {
	id := strconv.Itoa(index)
	fileName := id + ".png"
	return domain.StimulusImage{
		ID:          id,
		FileName:    fileName,
		URL:         strings.TrimRight(baseURL, "/") + "/" + fileName,
		TargetWord:  target,
		AntonymWord: antonym,
		Model:       model,
	}
}
