// csvsift - CSV projection and filtering
//
// Selects columns and filters rows of a CSV file or stream.
// Uses manual argument parsing for POSIX compatibility (supports flags
// with no space before the argument, like -cheader1).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kolkov/csvsift"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: csvsift [-c columns] [-f filter ...] [-F filterfile] [file]"
	longUsage  = `Arguments:
  -c columns        comma-separated columns to keep (default: all columns,
                    in original header order)
  -f filter         one filter definition, e.g. 'header1>1'
                    (multiple allowed, a row must satisfy all of them)
  -F filterfile     load newline-separated filter definitions from a file

Other:
  -h, --help        show this help message
  -version          show csvsift version and exit

With no file operand, or with "-", CSV input is read from stdin.
Output is the selected columns of the surviving rows, one CSV line each.
`
)

func main() {
	// Parse command line arguments manually rather than using the
	// "flag" package, so we can support flags with no space between
	// flag and argument, like '-cheader1' (allowed by POSIX)
	var filterLines []string
	var filterFiles []string
	columns := ""

	var i int
	for i = 1; i < len(os.Args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-c":
			if i+1 >= len(os.Args) {
				usageExitf("flag needs an argument: -c")
			}
			i++
			columns = os.Args[i]
		case "-f":
			if i+1 >= len(os.Args) {
				usageExitf("flag needs an argument: -f")
			}
			i++
			filterLines = append(filterLines, os.Args[i])
		case "-F":
			if i+1 >= len(os.Args) {
				usageExitf("flag needs an argument: -F")
			}
			i++
			filterFiles = append(filterFiles, os.Args[i])
		case "-h", "--help":
			fmt.Printf("csvsift %s - CSV projection and filtering\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("csvsift version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			fmt.Println("  regex:  coregex")
			os.Exit(0)
		default:
			// Handle flags with no space: -ccolumns, -ffilter, -Ffile
			switch {
			case strings.HasPrefix(arg, "-c"):
				columns = arg[2:]
			case strings.HasPrefix(arg, "-f"):
				filterLines = append(filterLines, arg[2:])
			case strings.HasPrefix(arg, "-F"):
				filterFiles = append(filterFiles, arg[2:])
			default:
				usageExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	// Remaining arg is the input file
	args := os.Args[i:]
	if len(args) > 1 {
		usageExitf("too many file operands: %s", strings.Join(args[1:], " "))
	}

	// Assemble the filter spec: -f definitions first, then filter
	// files, in the order given
	var sb strings.Builder
	for _, line := range filterLines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	for _, f := range filterFiles {
		content, err := os.ReadFile(f)
		if err != nil {
			errorExitf("cannot read filter file %s: %v", f, err)
		}
		sb.Write(content)
		sb.WriteByte('\n')
	}
	filters := sb.String()

	// Buffer stdout for performance
	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if len(args) == 1 && args[0] != "-" {
		output, err := csvsift.ProcessFile(args[0], columns, filters)
		if err != nil {
			errorExit(err)
		}
		fmt.Fprint(stdout, output)
		return
	}

	// Read CSV from stdin
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		errorExitf("cannot read stdin: %v", err)
	}
	if err := csvsift.Exec(string(data), columns, filters, stdout); err != nil {
		errorExit(err)
	}
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "csvsift: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "csvsift: %v\n", err)
	os.Exit(1)
}

// usageExitf prints formatted error message plus the usage line and
// exits with code 2
func usageExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "csvsift: "+format+"\n", args...)
	fmt.Fprintln(os.Stderr, shortUsage)
	os.Exit(2)
}
