// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package output holds helpers for writing aligned tabular output to
// the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/juju/ansiterm"
)

// TabWriter returns a writer with the standard options for tabular
// CLI output.
func TabWriter(writer io.Writer) *ansiterm.TabWriter {
	const (
		minwidth = 0
		tabwidth = 1
		padding  = 2
		padchar  = ' '
		flags    = 0
	)
	return ansiterm.NewTabWriter(writer, minwidth, tabwidth, padding, padchar, flags)
}

// Wrapper provides a simple way to print tab separated values.
type Wrapper struct {
	*ansiterm.TabWriter
}

// Println prints the values tab separated, ended with a newline.
func (w *Wrapper) Println(values ...interface{}) {
	for i, value := range values {
		if i != len(values)-1 {
			fmt.Fprintf(w.TabWriter, "%v\t", value)
		} else {
			fmt.Fprintf(w.TabWriter, "%v", value)
		}
	}
	fmt.Fprintln(w.TabWriter)
}
