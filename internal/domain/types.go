package domain

// Level is a persisted Sokoban level in XSB text rows.
type Level struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Rows      []string `json:"rows" yaml:"rows"`
	CreatedAt int64    `json:"createdAt,omitempty" yaml:"-"`
	// Optional user metadata
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Notes  string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// LevelMeta is a lightweight listing entry.
type LevelMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Report is the outcome of checking one board.
type Report struct {
	Valid     bool   `json:"valid"`
	Solved    bool   `json:"solved"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Treasures int    `json:"treasures"`
	Targets   int    `json:"targets"`
	Problem   string `json:"problem,omitempty"`
}
