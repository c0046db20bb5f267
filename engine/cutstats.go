package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects counts for each cutoff and pruning mechanism.
type CutStatistics struct {
	TTCutoffs        uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	DeltaPrunes      uint64
	SEEPrunes        uint64
	CheckExtensions  uint64
}

func dumpCutStats(w io.Writer, cs CutStatistics) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   TT cutoffs: %d\n", cs.TTCutoffs)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", cs.BetaCutoffs)
	fmt.Fprintf(w, "info string   QStandPat cutoffs: %d\n", cs.QStandPatCutoffs)
	fmt.Fprintf(w, "info string   QBeta cutoffs: %d\n", cs.QBetaCutoffs)
	fmt.Fprintf(w, "info string   Delta prunes: %d\n", cs.DeltaPrunes)
	fmt.Fprintf(w, "info string   SEE prunes: %d\n", cs.SEEPrunes)
	fmt.Fprintf(w, "info string   Check extensions: %d\n", cs.CheckExtensions)
}
