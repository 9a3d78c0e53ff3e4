package y2022

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2022, Day: 13, Title: "Distress Signal", Solve: solveDay13})
}

// packet is either an integer (list == nil, isList false) or a list.
type packet struct {
	isList bool
	value  int
	list   []packet
}

func (p packet) String() string {
	if !p.isList {
		return strconv.Itoa(p.value)
	}
	parts := make([]string, len(p.list))
	for i, child := range p.list {
		parts[i] = child.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func parsePacket(s string) (packet, error) {
	p, rest, err := parsePacketPrefix(s)
	if err != nil {
		return packet{}, err
	}
	if rest != "" {
		return packet{}, errors.NewParseError(errors.ErrCodeBadLine, "trailing data after packet").
			WithContext("rest", rest)
	}
	return p, nil
}

func parsePacketPrefix(s string) (packet, string, error) {
	if s == "" {
		return packet{}, "", errors.NewParseError(errors.ErrCodeBadLine, "unexpected end of packet")
	}
	if s[0] != '[' {
		end := 0
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		if end == 0 {
			return packet{}, "", errors.NewParseError(errors.ErrCodeBadLine, "unexpected character").
				WithContext("at", s)
		}
		n, _ := strconv.Atoi(s[:end])
		return packet{value: n}, s[end:], nil
	}

	p := packet{isList: true}
	s = s[1:]
	if strings.HasPrefix(s, "]") {
		return p, s[1:], nil
	}
	for {
		child, rest, err := parsePacketPrefix(s)
		if err != nil {
			return packet{}, "", err
		}
		p.list = append(p.list, child)
		switch {
		case strings.HasPrefix(rest, ","):
			s = rest[1:]
		case strings.HasPrefix(rest, "]"):
			return p, rest[1:], nil
		default:
			return packet{}, "", errors.NewParseError(errors.ErrCodeBadLine, "unbalanced packet")
		}
	}
}

func comparePackets(a, b packet) int {
	switch {
	case !a.isList && !b.isList:
		return a.value - b.value
	case !a.isList:
		return comparePackets(packet{isList: true, list: []packet{a}}, b)
	case !b.isList:
		return comparePackets(a, packet{isList: true, list: []packet{b}})
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := comparePackets(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return len(a.list) - len(b.list)
}

func solveDay13(_ context.Context, input string) (puzzle.Answer, error) {
	var packets []packet
	for i, line := range aoc.NonEmptyLines(input) {
		p, err := parsePacket(strings.TrimSpace(line))
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		packets = append(packets, p)
	}
	if len(packets)%2 != 0 {
		return puzzle.Answer{}, errors.NewInputError(errors.ErrCodeValidationFailed, "packets must come in pairs")
	}

	ordered := 0
	for i := 0; i < len(packets); i += 2 {
		if comparePackets(packets[i], packets[i+1]) < 0 {
			ordered += i/2 + 1
		}
	}

	divider2, _ := parsePacket("[[2]]")
	divider6, _ := parsePacket("[[6]]")
	all := append(slices.Clone(packets), divider2, divider6)
	slices.SortFunc(all, comparePackets)
	key := 1
	for i, p := range all {
		if comparePackets(p, divider2) == 0 || comparePackets(p, divider6) == 0 {
			key *= i + 1
		}
	}
	return puzzle.NewAnswer(ordered, key), nil
}
