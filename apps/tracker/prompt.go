package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trezcool/gradetracker/core"
	"github.com/trezcool/gradetracker/core/student"
)

// prompter reads line-based answers from an injected reader.
// Every method returns io.EOF once the input is exhausted.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	echo    bool // write answers back to out, for non-interactive input
}

// maxLineSize bounds a single answer; a longer line ends the input.
const maxLineSize = 1 << 20

func newPrompter(in io.Reader, out io.Writer, echo bool) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &prompter{scanner: scanner, out: out, echo: echo}
}

func (p *prompter) println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

func (p *prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimRight(p.scanner.Text(), "\r")
	if p.echo {
		p.println(line)
	}
	return line, nil
}

// getString shows prompt and returns the trimmed answer.
func (p *prompter) getString(prompt string) (string, error) {
	p.printf("%s ", prompt)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return core.CleanString(line), nil
}

// getInt asks until a whole number is entered.
func (p *prompter) getInt(prompt string) (int, error) {
	for {
		line, err := p.getString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		p.println("Invalid input! Please enter a whole number.")
	}
}

// getCourseCount asks until a non-negative whole number is entered.
func (p *prompter) getCourseCount(prompt string) (int, error) {
	for {
		n, err := p.getInt(prompt)
		if err != nil {
			return 0, err
		}
		if err := student.ValidateCourseCount(n); err != nil {
			p.println(err.Error())
			continue
		}
		return n, nil
	}
}

// getGrade asks until a number within the grade range is entered.
func (p *prompter) getGrade(prompt string) (float64, error) {
	for {
		line, err := p.getString(prompt)
		if err != nil {
			return 0, err
		}
		grade, err := strconv.ParseFloat(line, 64)
		if err != nil {
			p.println("Invalid input! Please enter a number.")
			continue
		}
		if err := student.ValidateGrade(grade); err != nil {
			p.println(err.Error())
			continue
		}
		return grade, nil
	}
}

// getMenuChoice reads a number within [min, max] without prompting.
func (p *prompter) getMenuChoice(min, max int) (int, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(core.CleanString(line))
		if err != nil {
			p.println("Invalid input! Please enter a number.")
			continue
		}
		if choice >= min && choice <= max {
			return choice, nil
		}
		p.printf("Please enter a number between %d and %d.\n", min, max)
	}
}
