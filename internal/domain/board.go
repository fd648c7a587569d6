package domain

import "strings"

// Board is a Sokoban level: a static grid of fields plus the player and the
// treasures laid over it. The board is only checked on Validate; every
// mutation requires validating again before its invariants can be trusted.
type Board struct {
	level     [][]Field
	player    Point
	hasPlayer bool
	treasures *PointSet
}

func NewBoard() *Board {
	return &Board{treasures: NewPointSet()}
}

// SetLevel replaces the grid with a deep copy of level. Rows are indexed by y
// and columns by x.
func (b *Board) SetLevel(level [][]Field) error {
	if len(level) == 0 {
		return invalidf("level must not be empty")
	}
	width := len(level[0])
	if width == 0 {
		return invalidf("level lines must not be empty")
	}
	grid := make([][]Field, len(level))
	for y, line := range level {
		if len(line) != width {
			return invalidf("length of line %d is %d, expected %d", y, len(line), width)
		}
		for x, f := range line {
			if !f.Valid() {
				return invalidf("field at (%d, %d) must be set", x, y)
			}
		}
		grid[y] = append([]Field(nil), line...)
	}
	b.level = grid
	return nil
}

// AddTreasure places a treasure at p; a treasure already there is kept.
func (b *Board) AddTreasure(p Point) {
	b.treasureSet().Add(p)
}

// RemoveTreasure takes the treasure at p away, if there is one.
func (b *Board) RemoveTreasure(p Point) {
	b.treasureSet().Remove(p)
}

// Treasures returns the board's own treasure set, not a copy.
func (b *Board) Treasures() *PointSet {
	return b.treasureSet()
}

func (b *Board) SetPlayer(p Point) {
	b.player = p
	b.hasPlayer = true
}

// Player returns the player position and whether one has been set.
func (b *Board) Player() (Point, bool) {
	return b.player, b.hasPlayer
}

// Width is the number of columns, or 0 without a level.
func (b *Board) Width() int {
	if len(b.level) == 0 {
		return 0
	}
	return len(b.level[0])
}

// Height is the number of rows, or 0 without a level.
func (b *Board) Height() int {
	return len(b.level)
}

// Field returns the terrain at p.
func (b *Board) Field(p Point) (Field, error) {
	if b.level == nil {
		return fieldNone, invalidf("level must not be nil")
	}
	if !b.inBounds(p) {
		return fieldNone, invalidf("point %s is out of bounds", p)
	}
	return b.level[p.y][p.x], nil
}

// CountTargets returns the number of target fields in the grid.
func (b *Board) CountTargets() int {
	n := 0
	for _, line := range b.level {
		for _, f := range line {
			if f == Target {
				n++
			}
		}
	}
	return n
}

// Validate checks, in order: level set; player set, in bounds and walkable;
// at least one treasure; as many treasures as targets; every treasure in
// bounds and walkable; no treasure under the player. The first violation is
// returned.
func (b *Board) Validate() error {
	if b.level == nil {
		return invalidf("level must not be nil")
	}
	if err := b.checkPlayer(); err != nil {
		return err
	}
	return b.checkTreasures()
}

// IsSolved reports whether every treasure lies on a target. It does not
// validate the board.
func (b *Board) IsSolved() bool {
	for _, t := range b.treasureSet().points {
		if f, err := b.Field(t); err != nil || f != Target {
			return false
		}
	}
	return true
}

// String draws one line per row: '#' wall, '.' target, ' ' floor and
// background, '@' player and '$' treasures.
func (b *Board) String() string {
	if b.level == nil {
		return ""
	}
	rows := make([][]byte, len(b.level))
	for y, line := range b.level {
		rows[y] = make([]byte, len(line))
		for x, f := range line {
			rows[y][x] = f.Char()
		}
	}
	if b.hasPlayer && b.inBounds(b.player) {
		rows[b.player.y][b.player.x] = PlayerChar
	}
	for _, t := range b.treasureSet().points {
		if b.inBounds(t) {
			rows[t.y][t.x] = TreasureChar
		}
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) checkPlayer() error {
	if !b.hasPlayer {
		return invalidf("player must not be nil")
	}
	if !b.inBounds(b.player) {
		return invalidf("player %s is out of bounds", b.player)
	}
	if !b.level[b.player.y][b.player.x].Walkable() {
		return invalidf("player %s is not within the field", b.player)
	}
	return nil
}

func (b *Board) checkTreasures() error {
	treasures := b.treasureSet()
	if treasures.Size() == 0 {
		return invalidf("at least one treasure must be set")
	}
	if n, targets := treasures.Size(), b.CountTargets(); n != targets {
		return invalidf("number of treasures (%d) and targets (%d) have to be equal", n, targets)
	}
	for _, t := range treasures.points {
		if !b.inBounds(t) {
			return invalidf("treasure %s is out of bounds", t)
		}
		if !b.level[t.y][t.x].Walkable() {
			return invalidf("treasure %s is not within the field", t)
		}
	}
	if treasures.Contains(b.player) {
		return invalidf("player and treasure must not share the field %s", b.player)
	}
	return nil
}

func (b *Board) inBounds(p Point) bool {
	return p.x < b.Width() && p.y < b.Height()
}

// treasureSet lazily initialises the set so a zero Board is usable.
func (b *Board) treasureSet() *PointSet {
	if b.treasures == nil {
		b.treasures = NewPointSet()
	}
	return b.treasures
}
