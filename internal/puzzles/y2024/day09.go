package y2024

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2024, Day: 9, Title: "Disk Fragmenter", Solve: solveDay09})
}

const freeBlock = -1

// diskSpan is a run of blocks; id is freeBlock for free space.
type diskSpan struct {
	id, start, size int
}

func parseDiskMap(input string) ([]diskSpan, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, errors.ErrEmptyInput()
	}
	spans := make([]diskSpan, 0, len(text))
	pos := 0
	for i := range len(text) {
		c := text[i]
		if c < '0' || c > '9' {
			return nil, errors.ErrBadNumber(string(c), nil).WithContext("offset", i)
		}
		size := int(c - '0')
		id := freeBlock
		if i%2 == 0 {
			id = i / 2
		}
		spans = append(spans, diskSpan{id: id, start: pos, size: size})
		pos += size
	}
	return spans, nil
}

func diskBlocks(spans []diskSpan) []int {
	var blocks []int
	for _, s := range spans {
		for range s.size {
			blocks = append(blocks, s.id)
		}
	}
	return blocks
}

// compactBlocks moves single blocks from the end into the leftmost gaps.
func compactBlocks(spans []diskSpan) int {
	blocks := diskBlocks(spans)
	left, right := 0, len(blocks)-1
	for left < right {
		switch {
		case blocks[left] != freeBlock:
			left++
		case blocks[right] == freeBlock:
			right--
		default:
			blocks[left], blocks[right] = blocks[right], freeBlock
		}
	}
	return diskChecksum(blocks)
}

// compactFiles moves whole files, highest id first, into the leftmost gap
// that fits them. Each file moves at most once.
func compactFiles(spans []diskSpan) int {
	var files, gaps []diskSpan
	for _, s := range spans {
		if s.id == freeBlock {
			gaps = append(gaps, s)
		} else {
			files = append(files, s)
		}
	}
	for f := len(files) - 1; f >= 0; f-- {
		file := &files[f]
		for g := range gaps {
			gap := &gaps[g]
			if gap.start >= file.start {
				break
			}
			if gap.size >= file.size {
				file.start = gap.start
				gap.start += file.size
				gap.size -= file.size
				break
			}
		}
	}

	sum := 0
	for _, file := range files {
		for b := range file.size {
			sum += (file.start + b) * file.id
		}
	}
	return sum
}

func diskChecksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != freeBlock {
			sum += i * id
		}
	}
	return sum
}

func solveDay09(_ context.Context, input string) (puzzle.Answer, error) {
	spans, err := parseDiskMap(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(compactBlocks(spans), compactFiles(spans)), nil
}
