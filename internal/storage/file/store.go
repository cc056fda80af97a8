package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces"
	"github.com/sheikh-saqib/lender-tracker/internal/models"
)

// DefaultPath is the persistence file used when none is configured.
const DefaultPath = "lenders.txt"

const separator = ","

// ParseError reports a persisted line whose amount is not a decimal number.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileLenderStore keeps lenders in a flat text file, one "name,amount" per line.
type FileLenderStore struct {
	path string
}

func NewFileLenderStore(path string) *FileLenderStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileLenderStore{path: path}
}

func (s *FileLenderStore) Path() string { return s.path }

// Load reads the persistence file. A missing file is an empty ledger.
func (s *FileLenderStore) Load(ctx context.Context) (interfaces.LoadResult, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return interfaces.LoadResult{Lenders: []models.Lender{}}, nil
	}
	if err != nil {
		return interfaces.LoadResult{}, err
	}
	defer f.Close()

	res, err := Decode(f)
	if err != nil {
		return interfaces.LoadResult{}, fmt.Errorf("load %s: %w", s.path, err)
	}
	return res, nil
}

// Save replaces the persistence file with the given lenders. The content is
// written to a temporary file next to the destination and renamed over it,
// so an interrupted save leaves the previous file in place.
func (s *FileLenderStore) Save(ctx context.Context, lenders []models.Lender) (err error) {
	for _, l := range lenders {
		if strings.Contains(l.Name, separator) {
			log.Printf("warning: lender name %q contains %q and will not survive a reload", l.Name, separator)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = Encode(w, lenders); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), s.fileMode()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// fileMode keeps the permissions of an existing persistence file.
func (s *FileLenderStore) fileMode() fs.FileMode {
	if info, err := os.Stat(s.path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// Decode reads lenders from r in file order. Lines that do not split into
// exactly two comma separated fields are skipped and counted; a malformed
// amount aborts decoding with a *ParseError.
func Decode(r io.Reader) (interfaces.LoadResult, error) {
	res := interfaces.LoadResult{Lenders: []models.Lender{}}
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return interfaces.LoadResult{}, err
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		parts := strings.Split(line, separator)
		if len(parts) != 2 {
			res.Skipped++
		} else {
			lender, perr := models.NewLender(parts[0], parts[1])
			if perr != nil {
				return interfaces.LoadResult{}, &ParseError{Line: lineNo, Err: perr}
			}
			res.Lenders = append(res.Lenders, lender)
		}
		if err != nil {
			break
		}
	}
	return res, nil
}

// Encode writes one "name,amount" line per lender.
func Encode(w io.Writer, lenders []models.Lender) error {
	for _, l := range lenders {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", l.Name, separator, models.FormatAmount(l.AmountOwed)); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time check: ensure FileLenderStore implements LenderStore interface
var _ interfaces.LenderStore = (*FileLenderStore)(nil)
