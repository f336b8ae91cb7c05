// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the knife input script and handles the per-partition
// diagnostics log
package inp

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// logFile holds the handle to this partition's log file
var logFile *os.File

// Rank returns this process' partition rank: the mpi rank when running
// inside the host solver's launch, zero otherwise
func Rank() int {
	if mpi.IsOn() {
		return mpi.Rank()
	}
	return 0
}

// InitLogFile routes the standard logger to <dirout>/<fnamekey>_pN.log,
// one file per partition rank
func InitLogFile(dirout, fnamekey string) (err error) {
	logFile, err = os.Create(io.Sf("%s/%s_p%d.log", dirout, fnamekey, Rank()))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	return
}

// FlushLog closes the log file, flushing it to disk
func FlushLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Log records one progress line with its partition rank
func Log(msg string, prm ...interface{}) {
	log.Printf("knife: p%d: %s", Rank(), io.Sf(msg, prm...))
}

// LogErr records a failure with its knife context and reports whether
// the caller has to stop
func LogErr(err error, msg string, prm ...interface{}) (stop bool) {
	if err != nil {
		log.Printf("knife: p%d: ERROR: %s: %v", Rank(), io.Sf(msg, prm...), err)
		return true
	}
	return false
}
