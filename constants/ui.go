package constants

// Terminal projection defaults (world units per cell)
const (
	// CellWidth is the world width covered by one terminal column
	CellWidth = 10.0

	// CellHeight is the world height covered by one terminal row (cells are ~2:1)
	CellHeight = 20.0
)

// Window defaults
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "pong"
)

// Score label layout
const (
	// ScoreLabelOffsetX is the horizontal distance of each label from the centre line
	ScoreLabelOffsetX = 50.0

	// ScoreLabelDrop is the label distance below the top viewport edge
	ScoreLabelDrop = 60.0
)

// Centre line
const (
	// DashCount is the number of dashes in the centre line
	DashCount = 20

	// DashWidth is the dash width in world units
	DashWidth = 2.0

	// FooterText is the terminal help line
	FooterText = "A/Z left   J/N right   q quit"
)

// Glyphs
const (
	PaddleChar = '█'
	BallChar   = '■'
	WallChar   = '█'
	DashChar   = '┆'
)
