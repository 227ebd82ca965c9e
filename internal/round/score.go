package round

// lineScores maps the number of rows cleared by one lock to points.
var lineScores = [...]int{0, 100, 300, 700, 1500}

// ScoreFor returns the points awarded for clearing n rows with one piece.
// Counts outside the table award nothing.
func ScoreFor(n int) int {
	if n < 0 || n >= len(lineScores) {
		return 0
	}
	return lineScores[n]
}
