package domain

// BattingSlots is the number of batting order positions.
const BattingSlots = 9

// Lineup is a validated batting order plus starting pitcher.
type Lineup struct {
	Batters [BattingSlots]PlayerID `json:"batters"`
	Pitcher PlayerID               `json:"pitcher"`
}

// Contains reports whether id appears anywhere in the lineup.
func (l Lineup) Contains(id PlayerID) bool {
	if l.Pitcher == id {
		return true
	}
	for _, b := range l.Batters {
		if b == id {
			return true
		}
	}
	return false
}
