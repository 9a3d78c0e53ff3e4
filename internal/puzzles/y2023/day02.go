package y2023

import (
	"context"
	"strings"

	"github.com/conneroisu/adventofcode/internal/aoc"
	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/puzzle"
	"github.com/conneroisu/adventofcode/internal/registry"
)

func init() {
	registry.Register(puzzle.Solution{Year: 2023, Day: 2, Title: "Cube Conundrum", Solve: solveDay02})
}

type cubeGame struct {
	id int
	// most is the largest count of each colour seen in any draw.
	most map[string]int
}

func parseCubeGame(line string) (cubeGame, error) {
	head, draws, ok := strings.Cut(line, ": ")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return cubeGame{}, errors.NewParseError(errors.ErrCodeBadLine, "missing game header")
	}
	id, err := aoc.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return cubeGame{}, err
	}

	game := cubeGame{id: id, most: map[string]int{}}
	for _, draw := range strings.Split(draws, ";") {
		for _, cubes := range strings.Split(draw, ",") {
			countText, colour, ok := strings.Cut(strings.TrimSpace(cubes), " ")
			if !ok {
				return cubeGame{}, errors.NewParseError(errors.ErrCodeBadLine, "bad cube count").
					WithContext("cubes", cubes)
			}
			switch colour {
			case "red", "green", "blue":
			default:
				return cubeGame{}, errors.NewParseError(errors.ErrCodeBadLine, "unknown colour").
					WithContext("colour", colour)
			}
			count, err := aoc.Atoi(countText)
			if err != nil {
				return cubeGame{}, err
			}
			game.most[colour] = max(game.most[colour], count)
		}
	}
	return game, nil
}

func solveDay02(_ context.Context, input string) (puzzle.Answer, error) {
	possible, power := 0, 0
	for i, line := range aoc.NonEmptyLines(input) {
		game, err := parseCubeGame(line)
		if err != nil {
			return puzzle.Answer{}, errors.AtLine(err, i+1)
		}
		if game.most["red"] <= 12 && game.most["green"] <= 13 && game.most["blue"] <= 14 {
			possible += game.id
		}
		power += game.most["red"] * game.most["green"] * game.most["blue"]
	}
	return puzzle.NewAnswer(possible, power), nil
}
