package engine

import (
	"unsafe"

	"xfchess-engine/rules"
)

const (
	// Flags
	AlphaFlag = iota
	BetaFlag
	ExactFlag

	clusterSize = 4
)

// TransTable caches search results keyed by position signature. Entries are
// grouped in clusters of four; a signature only ever lives in the cluster its
// value selects.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

type TTEntry struct {
	Hash  uint64
	Depth int8
	Move  rules.Move
	Score int16
	Flag  int8
}

// newTransTable sizes the table to roughly sizeMB megabytes. A size of zero
// gives a table that stores nothing.
func newTransTable(sizeMB int) TransTable {
	if sizeMB <= 0 {
		return TransTable{}
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return TransTable{
		entries:      make([]TTEntry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

func (TT *TransTable) clear() {
	for i := range TT.entries {
		TT.entries[i] = TTEntry{}
	}
}

// useEntry reports whether a stored result is deep enough and its bound
// decides the window. Mate scores are stored relative to the node and are
// turned back into root distances here.
func (TT *TransTable) useEntry(ttEntry *TTEntry, hash uint64, depth int, alpha, beta, ply int) (usable bool, score int) {
	if ttEntry == nil || ttEntry.Hash != hash || int(ttEntry.Depth) < depth {
		return false, 0
	}
	norm := int(ttEntry.Score)
	if norm > Checkmate {
		norm -= ply
	} else if norm < -Checkmate {
		norm += ply
	}
	switch ttEntry.Flag {
	case ExactFlag:
		return true, norm
	case AlphaFlag:
		if norm <= alpha {
			return true, norm
		}
	case BetaFlag:
		if norm >= beta {
			return true, norm
		}
	}
	return false, 0
}

func (TT *TransTable) getEntry(hash uint64) (entry *TTEntry, found bool) {
	if TT.clusterCount == 0 {
		return nil, false
	}
	start := int(hash%TT.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		next := &TT.entries[start+i]
		if next.Hash == hash {
			return next, true
		}
	}
	return nil, false
}

// storeEntry writes a result, preferring the slot already holding the same
// signature, then an empty slot, then the shallowest entry of the cluster.
func (TT *TransTable) storeEntry(hash uint64, depth, ply int, move rules.Move, score int, flag int8) {
	if TT.clusterCount == 0 {
		return
	}
	base := int(hash%TT.clusterCount) * clusterSize

	if score > Checkmate {
		score += ply
	} else if score < -Checkmate {
		score -= ply
	}

	targetIdx := -1
	for i := base; i < base+clusterSize; i++ {
		if TT.entries[i].Hash == hash {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		for i := base; i < base+clusterSize; i++ {
			if TT.entries[i].Hash == 0 {
				targetIdx = i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		for i := base + 1; i < base+clusterSize; i++ {
			if TT.entries[i].Depth < TT.entries[targetIdx].Depth {
				targetIdx = i
			}
		}
	}

	entry := &TT.entries[targetIdx]
	// Keep a deeper result for the same position unless the new one is exact.
	if entry.Hash == hash && int(entry.Depth) > depth && flag != ExactFlag {
		return
	}
	entry.Hash = hash
	entry.Depth = int8(depth)
	entry.Move = move
	entry.Flag = flag
	entry.Score = int16(score)
}
