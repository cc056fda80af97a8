// Package menu drives the interactive text menu on top of a ledger.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sheikh-saqib/lender-tracker/internal/ledger"
	"github.com/sheikh-saqib/lender-tracker/internal/models"
)

// ErrInputClosed is returned when input ends before the user chose to save
// and exit. Nothing is saved in that case.
var ErrInputClosed = errors.New("input closed before save")

const banner = `
  _                           _             
 | |                         | |            
 | |     ___  __ _ _ __ _ __ | | _____ _ __ 
 | |    / _ \/ _` + "`" + ` | '__| '_ \| |/ / _ \ '__|
 | |___|  __/ (_| | |  | | | |   <  __/ |   
 |______\___|\__,_|_|  |_| |_|_|\_\___|_|   
                                            
`

const header = `*****************************************
*            LENDER TRACKER             *
*****************************************
1. Add Lender
2. View All Lenders
3. Save & Exit
`

const (
	optionAdd  = "1"
	optionView = "2"
	optionSave = "3"
)

type Menu struct {
	ledger *ledger.Ledger
	in     *bufio.Reader
	out    io.Writer
}

func New(l *ledger.Ledger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger: l,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run shows the banner and loops over the menu until the user saves and
// exits. It returns nil only after a successful save.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprint(m.out, banner)
	for {
		fmt.Fprint(m.out, header)
		fmt.Fprint(m.out, "Choose an option: ")

		option, err := m.readLine()
		if err != nil {
			return err
		}

		switch strings.TrimSpace(option) {
		case optionAdd:
			if err := m.addLender(ctx); err != nil {
				return err
			}
		case optionView:
			if err := m.viewLenders(); err != nil {
				return err
			}
		case optionSave:
			if err := m.ledger.Save(ctx); err != nil {
				return err
			}
			fmt.Fprintln(m.out, "Data saved. Exiting program.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
			fmt.Fprintln(m.out)
		}
	}
}

func (m *Menu) addLender(ctx context.Context) error {
	fmt.Fprint(m.out, "Enter lender's name: ")
	name, err := m.readLine()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, "Enter amount owed: ")
	amount, err := m.readLine()
	if err != nil {
		return err
	}

	if _, err := m.ledger.Add(ctx, name, amount); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			fmt.Fprintf(m.out, "Invalid amount %q, lender not added.\n\n", amount)
			return nil
		}
		return err
	}
	fmt.Fprintln(m.out, "Lender added successfully!")
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) viewLenders() error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "List of All Lenders:")
	if err := m.ledger.List(m.out); err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	return nil
}

// readLine returns the next input line without its line ending. A last line
// without a newline is still returned; ErrInputClosed follows it.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	switch {
	case err == nil, errors.Is(err, io.EOF) && line != "":
		return strings.TrimRight(line, "\r\n"), nil
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	default:
		return "", err
	}
}
