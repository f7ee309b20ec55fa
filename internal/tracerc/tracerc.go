// Package tracerc generates an init .rc file that fixes permissions for
// the vendor ftrace events listed in an atrace_categories.txt file.
//
// The input format is one category name per line, followed by its event
// paths indented with spaces or tabs. Most events get their permissions
// set on late-init; a few GPU events only exist once the driver is up,
// so their chmods are deferred to the boot trigger.
package tracerc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// bootEventPrefixes lists event paths whose chmod must wait for boot.
var bootEventPrefixes = []string{
	"mali/",
	"power/gpu_work_period",
	"power/gpu_frequency",
}

// tracefs is mounted at both paths depending on kernel version.
var tracefsRoots = []string{
	"/sys/kernel/debug/tracing",
	"/sys/kernel/tracing",
}

// Generate reads an atrace categories file from r and writes the rc
// script to w.
func Generate(w io.Writer, r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return fmt.Errorf("failed to read categories file: %w", err)
	}

	writeSection(w, "late-init", lines, false)
	writeSection(w, "boot", lines, true)

	return nil
}

func writeSection(w io.Writer, trigger string, lines []string, bootSection bool) {
	fmt.Fprintf(w, "# Sets permission for vendor ftrace events on %s\n", trigger)
	fmt.Fprintf(w, "on %s\n", trigger)

	for _, line := range lines {
		if !isEventLine(line) {
			fmt.Fprintf(w, "    # %s trace points\n", line)
			continue
		}

		path := strings.TrimLeft(line, " \t")
		if isBootEvent(path) != bootSection {
			continue
		}
		for _, root := range tracefsRoots {
			fmt.Fprintf(w, "    chmod 0666 %s/events/%s/enable\n", root, path)
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func isEventLine(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func isBootEvent(path string) bool {
	for _, prefix := range bootEventPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
