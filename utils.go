package pointset

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

//https://medium.com/@arpith/adventures-with-mmap-463b33405223
func fileMmap(f *os.File) (data []byte, err error) {
	info, err1 := f.Stat()
	if err1 != nil {
		err = errors.Wrap(err1, "")
		return
	}
	if info.Size() == 0 {
		//mmap rejects empty mappings
		return
	}
	data, err = syscall.Mmap(int(f.Fd()), 0, int(info.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		err = errors.Wrapf(err, "mmap %s", f.Name())
		return
	}
	return
}

func fileMunmap(data []byte) (err error) {
	if len(data) == 0 {
		return
	}
	err = syscall.Munmap(data)
	if err != nil {
		err = errors.Wrap(err, "")
		return
	}
	return
}

// ReadPoints parses whitespace separated "x y" pairs. It stops at the first
// token that is not a number; a trailing unpaired value is dropped.
func ReadPoints(r io.Reader) (points []Point) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var vals [2]float64
	idx := 0
	for scanner.Scan() {
		val, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			break
		}
		vals[idx] = val
		idx++
		if idx == len(vals) {
			points = append(points, Point{X: vals[0], Y: vals[1]})
			idx = 0
		}
	}
	return
}

// ReadPointsFile reads a bulk load file through a read-only mapping.
func ReadPointsFile(fp string) (points []Point, err error) {
	var f *os.File
	var data []byte
	if f, err = os.Open(fp); err != nil {
		err = errors.Wrap(err, "open points file")
		return
	}
	defer f.Close()
	if data, err = fileMmap(f); err != nil {
		return
	}
	defer fileMunmap(data)
	points = ReadPoints(bytes.NewReader(data))
	return
}

// LoadPointsFile is ReadPointsFile for constructors: a missing or unreadable
// file yields no points rather than an error.
func LoadPointsFile(fp string) []Point {
	points, err := ReadPointsFile(fp)
	if err != nil {
		slog.Debug("pointset: cannot load points file", "path", fp, "err", err)
		return nil
	}
	return points
}
