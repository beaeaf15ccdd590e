package squad

// Position is one entry of the fixed 15-a-side Gaelic games formation.
type Position struct {
	No   int
	Name string
}

const (
	StartingSize = 15
	BenchSize    = 15

	// Bench slots number on from the starting fifteen.
	BenchFirstNo = 16
	BenchLastNo  = 30
)

var startingPositions = []Position{
	{No: 1, Name: "Goalkeeper"},
	{No: 2, Name: "Right Corner-Back"},
	{No: 3, Name: "Full-Back"},
	{No: 4, Name: "Left Corner-Back"},
	{No: 5, Name: "Right Half-Back"},
	{No: 6, Name: "Centre Half-Back"},
	{No: 7, Name: "Left Half-Back"},
	{No: 8, Name: "Midfield"},
	{No: 9, Name: "Midfield"},
	{No: 10, Name: "Right Half-Forward"},
	{No: 11, Name: "Centre Half-Forward"},
	{No: 12, Name: "Left Half-Forward"},
	{No: 13, Name: "Right Corner-Forward"},
	{No: 14, Name: "Full-Forward"},
	{No: 15, Name: "Left Corner-Forward"},
}

// StartingPositions returns the canonical ordered catalog used to seed
// every new squad.
func StartingPositions() []Position {
	return append([]Position(nil), startingPositions...)
}

// EmptyStartingSlots builds the 15 unassigned starting slots.
func EmptyStartingSlots() []Slot {
	slots := make([]Slot, 0, StartingSize)
	for _, pos := range startingPositions {
		slots = append(slots, Slot{PositionNo: pos.No, PositionName: pos.Name})
	}
	return slots
}

// EmptyBenchSlots builds the 15 unassigned bench slots, numbered 16..30.
func EmptyBenchSlots() []Slot {
	slots := make([]Slot, 0, BenchSize)
	for no := BenchFirstNo; no <= BenchLastNo; no++ {
		slots = append(slots, Slot{PositionNo: no, PositionName: benchName(no)})
	}
	return slots
}
