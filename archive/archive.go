// Package archive bundles converted outputs into a single compressed
// archive. Containers are the stdlib zip/tar writers; compression comes
// from klauspost/compress.
package archive

import (
	"archive/tar"
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/transmute-dev/transmute/errors"
	"github.com/transmute-dev/transmute/logger"
)

// Format identifies an archive container and compression.
type Format string

const (
	Zip    Format = "zip"
	TarGz  Format = "tar.gz"
	TarZst Format = "tar.zst"
)

// ParseFormat validates a format name from config or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case Zip:
		return Zip, nil
	case TarGz:
		return TarGz, nil
	case TarZst:
		return TarZst, nil
	}
	return "", errors.Newf("unknown archive format %q (want zip, tar.gz, or tar.zst)", s)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Options tune archive creation.
type Options struct {
	Format Format
	// Level is the compression level for formats that support one.
	Level int
	// Readme, when non-empty, is written into the archive as README.txt.
	Readme string
}

// Stats reports sizes for a created archive.
type Stats struct {
	// OriginalBytes is the total size of the files that went in.
	OriginalBytes int64
	// ArchiveBytes is the size of the archive on disk.
	ArchiveBytes int64
}

// entry is one archive member, backed by a file or by literal bytes.
type entry struct {
	name string
	path string
	data []byte
	size int64
	mod  time.Time
}

// Create writes the given files into an archive at dest. Entry names are
// the file base names; duplicates get a numeric suffix.
func Create(dest string, paths []string, opts Options) (Stats, error) {
	entries, err := buildEntries(paths, opts.Readme)
	if err != nil {
		return Stats{}, err
	}

	out, err := os.Create(dest)
	if err != nil {
		return Stats{}, errors.Wrapf(err, "creating archive %s", dest)
	}

	switch opts.Format {
	case Zip:
		err = writeZip(out, entries, opts.Level)
	case TarGz:
		err = writeTarGz(out, entries, opts.Level)
	case TarZst:
		err = writeTarZst(out, entries)
	default:
		err = errors.Newf("unknown archive format %q", opts.Format)
	}
	if err != nil {
		out.Close()
		os.Remove(dest)
		return Stats{}, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return Stats{}, errors.Wrapf(err, "closing archive %s", dest)
	}

	stats := Stats{}
	for _, e := range entries {
		stats.OriginalBytes += e.size
	}
	if info, err := os.Stat(dest); err == nil {
		stats.ArchiveBytes = info.Size()
	}

	logger.Infow("archive written",
		logger.FieldOutput, dest,
		logger.FieldFormat, string(opts.Format),
		logger.FieldCount, len(entries),
		logger.FieldSize, stats.ArchiveBytes)
	return stats, nil
}

// buildEntries maps each path to a unique base name and appends the
// optional readme as a literal entry.
func buildEntries(paths []string, readme string) ([]entry, error) {
	seen := make(map[string]int, len(paths))
	entries := make([]entry, 0, len(paths)+1)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", p)
		}
		base := filepath.Base(p)
		if n := seen[base]; n > 0 {
			ext := filepath.Ext(base)
			stem := strings.TrimSuffix(base, ext)
			base = stem + "-" + strconv.Itoa(n) + ext
		}
		seen[filepath.Base(p)]++
		entries = append(entries, entry{
			name: base,
			path: p,
			size: info.Size(),
			mod:  info.ModTime(),
		})
	}
	if readme != "" {
		entries = append(entries, entry{
			name: "README.txt",
			data: []byte(readme),
			size: int64(len(readme)),
			mod:  time.Now(),
		})
	}
	return entries, nil
}

func writeZip(out io.Writer, entries []entry, level int) error {
	zw := zip.NewWriter(out)
	// Replace the stdlib deflate with the faster implementation.
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})

	for _, e := range entries {
		hdr := &zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: e.mod,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return errors.Wrapf(err, "adding %s", e.name)
		}
		if err := copyEntry(w, e); err != nil {
			return err
		}
	}
	return errors.Wrap(zw.Close(), "finalizing zip")
}

func writeTarGz(out io.Writer, entries []entry, level int) error {
	gw, err := gzip.NewWriterLevel(out, level)
	if err != nil {
		return errors.Wrap(err, "creating gzip writer")
	}
	if err := writeTar(gw, entries); err != nil {
		gw.Close()
		return err
	}
	return errors.Wrap(gw.Close(), "finalizing gzip")
}

func writeTarZst(out io.Writer, entries []entry) error {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return errors.Wrap(err, "creating zstd writer")
	}
	if err := writeTar(zw, entries); err != nil {
		zw.Close()
		return err
	}
	return errors.Wrap(zw.Close(), "finalizing zstd")
}

func writeTar(out io.Writer, entries []entry) error {
	tw := tar.NewWriter(out)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:    e.name,
			Mode:    0644,
			Size:    e.size,
			ModTime: e.mod.Truncate(time.Second),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return errors.Wrapf(err, "adding %s", e.name)
		}
		if err := copyEntry(tw, e); err != nil {
			return err
		}
	}
	return errors.Wrap(tw.Close(), "finalizing tar")
}

func copyEntry(w io.Writer, e entry) error {
	if e.path == "" {
		_, err := w.Write(e.data)
		return errors.Wrapf(err, "writing %s", e.name)
	}
	f, err := os.Open(e.path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", e.path)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return errors.Wrapf(err, "copying %s", e.path)
	}
	return nil
}
