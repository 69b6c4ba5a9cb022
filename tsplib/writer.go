package tsplib

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteTour writes tour as space-separated integers on one line.
func WriteTour(w io.Writer, tour []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range tour {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteTourFile creates path (and its parent directories) and writes tour.
// The tour goes to a temporary file in the same directory that is renamed
// over path only after a complete write, so a failure leaves no partial file.
func WriteTourFile(path string, tour []int) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = WriteTour(f, tour); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
