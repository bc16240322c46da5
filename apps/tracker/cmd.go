package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/gradetracker/core"
	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/services/report"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	createFileFunc = func(name string) (io.WriteCloser, error) { return os.Create(name) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	roster *student.Roster
	log    core.Logger
	dbPath string
	stdin  io.Reader
	stdout io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.stdout, "Usage:")
	_, _ = fmt.Fprintln(cli.stdout, "  shell                - interactive menu (default)")
	_, _ = fmt.Fprintln(cli.stdout, "  report               - print the class grade report")
	_, _ = fmt.Fprintln(cli.stdout, "  search -id ID        - print the report of one student")
	_, _ = fmt.Fprintln(cli.stdout, "  export -out FILE     - write the class report as an .xlsx workbook")
}

// loadData restores the saved roster; a missing or unreadable snapshot leaves it empty.
func (cli *commandLine) loadData(ctx context.Context) {
	err := cli.roster.Load(ctx, cli.dbPath)
	switch errors.Cause(err) {
	case nil:
		_, _ = fmt.Fprintln(cli.stdout, "Previous data loaded successfully.")
		return
	case student.ErrSnapshotNotFound:
		cli.log.Info("no saved data", map[string]interface{}{"path": cli.dbPath})
	default:
		cli.log.Warn("loading saved data", err)
	}
	_, _ = fmt.Fprintln(cli.stdout, "No previous data found or error loading. Starting with empty records.")
}

// echoInput is true when stdin is not a terminal, so transcripts show the answers.
func (cli *commandLine) echoInput() bool {
	if f, ok := cli.stdin.(*os.File); ok {
		return !isTerminalFunc(int(f.Fd()))
	}
	return false
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		args = append(args, "shell")
	}

	searchCmd := flag.NewFlagSet("search", flag.ContinueOnError)
	searchCmd.SetOutput(cli.stdout)
	searchID := searchCmd.String("id", "", "The student ID.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.stdout)
	exportOut := exportCmd.String("out", "", "Path of the .xlsx file to write.")

	switch args[1] {
	case "shell":
		cli.loadData(ctx)
		sh := &shell{
			ctx:    ctx,
			roster: cli.roster,
			p:      newPrompter(cli.stdin, cli.stdout, cli.echoInput()),
			log:    cli.log,
			dbPath: cli.dbPath,
		}
		return sh.run()
	case "report":
		cli.loadData(ctx)
		rep, err := cli.roster.ClassReport()
		if err == student.ErrNoStudents {
			_, _ = fmt.Fprintln(cli.stdout, "No students found in records.")
			return nil
		}
		reportsvc.WriteClassReport(cli.stdout, rep)
		return nil
	case "search":
		if err := searchCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *searchID == "" {
			searchCmd.Usage()
			return errHelp
		}
		cli.loadData(ctx)
		s, err := cli.roster.FindStudent(*searchID)
		if err != nil {
			if hint, ok := cli.roster.SuggestID(*searchID); ok {
				return errors.Wrapf(err, "%s (did you mean %s?)", *searchID, hint)
			}
			return errors.Wrap(err, *searchID)
		}
		reportsvc.WriteStudentCard(cli.stdout, s)
		return nil
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		cli.loadData(ctx)
		return cli.export(*exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) export(path string) error {
	rep, err := cli.roster.ClassReport()
	if err != nil {
		return err
	}
	f, err := createFileFunc(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	if err := reportsvc.WriteXLSX(f, rep, cli.roster.Students()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing export file")
	}
	_, _ = fmt.Fprintf(cli.stdout, "Class report exported to %s\n", path)
	return nil
}

func formatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}
