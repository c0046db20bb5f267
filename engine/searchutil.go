package engine

import (
	"fmt"
	"strings"

	"xfchess-engine/rules"
)

const historyMaxVal = 10000

// historyTable is the butterfly history: how often a quiet move from one
// square to another caused a beta cutoff, weighted by depth.
type historyTable [2][64][64]int32

func (h *historyTable) score(side rules.Owner, mv rules.Move) int32 {
	return h[side][mv.From()][mv.To()]
}

// Increment the history score for the given move if it caused a beta-cutoff and is quiet.
func (h *historyTable) increment(side rules.Owner, mv rules.Move, depth int) {
	v := &h[side][mv.From()][mv.To()]
	*v += int32(depth * depth)
	if *v >= historyMaxVal {
		h.age(side)
	}
}

// Age the values in the history table by halving them.
func (h *historyTable) age(side rules.Owner) {
	for from := range h[side] {
		for to := range h[side][from] {
			h[side][from][to] /= 2
		}
	}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}

// PVLine is the principal variation found below a node.
type PVLine struct {
	Moves []rules.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update sets the line to mv followed by the child's line.
func (pv *PVLine) Update(mv rules.Move, child *PVLine) {
	pv.Moves = append(pv.Moves[:0], mv)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func getPVLineString(moves []rules.Move) string {
	var sb strings.Builder
	for _, mv := range moves {
		sb.WriteByte(' ')
		sb.WriteString(mv.String())
	}
	return sb.String()
}

func getMateOrCPScore(score int) string {
	if score >= Checkmate {
		pliesToMate := Max(MateScore-score, 0)
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	} else if score <= -Checkmate {
		pliesToMate := Max(MateScore+score, 0)
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
