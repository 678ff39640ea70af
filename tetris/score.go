package tetris

// lineBonus is the award for clearing n rows with a single lock.
var lineBonus = [5]int{0, 10, 25, 75, 300}

// LineBonus returns the points for clearing rows rows at once.
func LineBonus(rows int) int {
	if rows < 0 || rows >= len(lineBonus) {
		return 0
	}
	return lineBonus[rows]
}

// LevelFor returns the level reached at score.
func LevelFor(score int) int {
	return score / 100
}

// SpeedFor returns the drop rate in rows per tick at level.
func SpeedFor(level int) float32 {
	return 0.01 * float32(level+3)
}

// lockPoints is the award for a lock that follows a descent of frame ticks.
func lockPoints(frame int, slam bool) int {
	points := 0
	if frame < fastLockWindow {
		points = fastLockWindow - frame
	}
	if slam {
		points += slamBonus
	}
	return points
}
