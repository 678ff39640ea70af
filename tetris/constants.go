// Package tetris implements the rules of a falling-block puzzle game: the board, the seven
// tetromino shapes, collision, locking, line completion and the lifecycle state machine.
//
// The package performs no drawing, timing or input polling. A driver calls Press and
// Release as buttons change, Update once per tick, and reads a Snapshot to render.
package tetris

const (
	RowCount   = 20
	ColCount   = 10
	PieceCount = 7

	// InitSpeed is the drop rate, in rows per tick, of a fresh game.
	InitSpeed float32 = 0.03
	// AccelSpeed replaces the drop rate while Accelerate is held.
	AccelSpeed float32 = 0.5
	// SlamSpeed is the number of whole-row substeps taken per Slamming tick.
	SlamSpeed = 2
	// Duration is the length in ticks of the lock and completion animations.
	Duration = 10
	// IntroFrames is the length in ticks of the intro fade.
	IntroFrames = 50

	// settle frame sentinels
	slamSettleFrame = 1000
	recoverFrame    = 30

	fastLockWindow = 10
	slamBonus      = 2
)
