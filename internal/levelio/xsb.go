// Package levelio reads and writes Sokoban levels in the XSB text notation
// and in YAML level packs.
package levelio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"svw.info/sokoban/internal/domain"
)

// XSB cell characters.
const (
	charWall             = '#'
	charTarget           = '.'
	charPlayer           = '@'
	charPlayerOnTarget   = '+'
	charTreasure         = '$'
	charTreasureOnTarget = '*'
	charFloor            = ' '
)

type cell struct {
	open     bool
	target   bool
	wall     bool
	player   bool
	treasure bool
}

// Parse builds a board from XSB rows. Short rows are padded with background.
// Open cells reachable from the player become floor and the others
// background; without a player every open cell is floor. Parse does not
// validate the board.
func Parse(rows []string) (*domain.Board, error) {
	if len(rows) == 0 {
		return nil, &domain.ArgumentError{Msg: "level has no rows"}
	}
	lines := make([][]rune, len(rows))
	width := 0
	for y, r := range rows {
		if !utf8.ValidString(r) {
			return nil, &domain.ArgumentError{Msg: fmt.Sprintf("row %d is not valid UTF-8", y)}
		}
		lines[y] = []rune(r)
		width = max(width, len(lines[y]))
	}
	if width == 0 {
		return nil, &domain.ArgumentError{Msg: "level rows are empty"}
	}

	grid := make([][]cell, len(rows))
	var player *domain.Point
	var treasures []domain.Point
	for y, r := range lines {
		grid[y] = make([]cell, width)
		for x, ch := range r {
			c, err := decodeChar(ch)
			if err != nil {
				return nil, &domain.ArgumentError{Msg: fmt.Sprintf("%v at (%d, %d)", err, x, y)}
			}
			grid[y][x] = c
			if c.player {
				if player != nil {
					return nil, &domain.ArgumentError{Msg: fmt.Sprintf("second player at (%d, %d)", x, y)}
				}
				p := domain.MustPoint(x, y)
				player = &p
			}
			if c.treasure {
				treasures = append(treasures, domain.MustPoint(x, y))
			}
		}
	}

	var reach [][]bool
	if player != nil {
		reach = reachable(grid, player.X(), player.Y())
	}

	level := make([][]domain.Field, len(grid))
	for y, line := range grid {
		level[y] = make([]domain.Field, width)
		for x, c := range line {
			level[y][x] = fieldFor(c, reach == nil || reach[y][x])
		}
	}

	b := domain.NewBoard()
	if err := b.SetLevel(level); err != nil {
		return nil, err
	}
	if player != nil {
		b.SetPlayer(*player)
	}
	for _, t := range treasures {
		b.AddTreasure(t)
	}
	return b, nil
}

func decodeChar(ch rune) (cell, error) {
	switch ch {
	case charWall:
		return cell{wall: true}, nil
	case charTarget:
		return cell{open: true, target: true}, nil
	case charPlayer:
		return cell{open: true, player: true}, nil
	case charPlayerOnTarget:
		return cell{open: true, target: true, player: true}, nil
	case charTreasure:
		return cell{open: true, treasure: true}, nil
	case charTreasureOnTarget:
		return cell{open: true, target: true, treasure: true}, nil
	case charFloor, '-', '_':
		return cell{open: true}, nil
	default:
		return cell{}, fmt.Errorf("unknown level character %q", ch)
	}
}

// fieldFor maps a decoded cell to its terrain. Targets and occupied cells
// are always playable; plain open cells depend on reachability.
func fieldFor(c cell, inside bool) domain.Field {
	switch {
	case c.wall:
		return domain.Wall
	case c.target:
		return domain.Target
	case c.player || c.treasure:
		return domain.Floor
	case c.open && inside:
		return domain.Floor
	default:
		return domain.Background
	}
}

// reachable flood-fills non-wall cells from (x, y) over the 4-neighbourhood.
func reachable(grid [][]cell, x, y int) [][]bool {
	seen := make([][]bool, len(grid))
	for i := range grid {
		seen[i] = make([]bool, len(grid[i]))
	}
	type xy struct{ x, y int }
	stack := []xy{{x, y}}
	seen[y][x] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [4]xy{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := cur.x+d.x, cur.y+d.y
			if ny < 0 || ny >= len(grid) || nx < 0 || nx >= len(grid[ny]) {
				continue
			}
			if seen[ny][nx] || grid[ny][nx].wall {
				continue
			}
			seen[ny][nx] = true
			stack = append(stack, xy{nx, ny})
		}
	}
	return seen
}

// Format writes b back to XSB rows, using '+' and '*' where the player or a
// treasure stands on a target. Trailing blanks are trimmed.
func Format(b *domain.Board) []string {
	rows := make([][]byte, b.Height())
	for y := range rows {
		rows[y] = make([]byte, b.Width())
		for x := range rows[y] {
			f, _ := b.Field(domain.MustPoint(x, y))
			rows[y][x] = f.Char()
		}
	}
	if p, ok := b.Player(); ok && p.X() < b.Width() && p.Y() < b.Height() {
		rows[p.Y()][p.X()] = overlay(rows[p.Y()][p.X()], charPlayer, charPlayerOnTarget)
	}
	for _, t := range b.Treasures().Points() {
		if t.X() < b.Width() && t.Y() < b.Height() {
			rows[t.Y()][t.X()] = overlay(rows[t.Y()][t.X()], charTreasure, charTreasureOnTarget)
		}
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.TrimRight(string(r), " ")
	}
	return out
}

func overlay(under, plain, onTarget byte) byte {
	if under == charTarget {
		return onTarget
	}
	return plain
}

// ReadText reads the rows of a single XSB level. Lines starting with ';' are
// comments; blank lines before and after the level are dropped and a blank
// line inside it is an error.
func ReadText(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, &domain.ArgumentError{Msg: "no level rows found"}
	}
	// A blank line separates levels in XSB collections.
	for _, r := range rows {
		if strings.TrimSpace(r) == "" {
			return nil, &domain.ArgumentError{Msg: "blank line inside the level: file holds more than one level"}
		}
	}
	return rows, nil
}
