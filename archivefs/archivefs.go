// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal error patterns.
const (
	NotFound    = "archivefs: %s: not found"
	NoSelection = "archivefs: %s: no suitable file in archive"
	IsDirectory = "archivefs: %s: is a directory"
)

// ArchiveExtensions is the list of file extensions of the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchiveExt returns true if the filename has the extension of a supported
// archive type. The comparison is case insensitive.
func IsArchiveExt(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the extension of a supported archive type from the
// end of the string.
func TrimArchiveExt(s string) string {
	if IsArchiveExt(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}

// Open reads the file at filename, which may be inside an archive. If
// filename names an archive then the first file in the archive, in
// alphabetical order, for which the selection function returns true is read.
// A nil selection function accepts any file.
//
// Returns the data and the name of the file that was read.
func Open(filename string, selection func(name string) bool) ([]uint8, string, error) {
	var p Path

	err := p.Set(filename)
	if err != nil {
		return nil, "", err
	}
	defer p.Close()

	if p.InArchive() && p.inArchive == "" {
		name, err := p.selectFile(selection)
		if err != nil {
			return nil, "", err
		}
		p.inArchive = name
	}

	if p.IsDir() {
		return nil, "", curated.Errorf(IsDirectory, filename)
	}

	data, err := p.read()
	if err != nil {
		return nil, "", err
	}

	return data, p.Base(), nil
}

// Path is a location in the filesystem that may be inside an archive.
type Path struct {
	// the path on the filesystem. if the path is inside an archive, this is
	// the path of the archive file
	onDisk string

	zf *zip.ReadCloser

	// the path inside the archive, using forward slashes
	inArchive string

	isDir bool
}

func (p Path) String() string {
	if p.inArchive == "" {
		return p.onDisk
	}
	return filepath.Join(p.onDisk, filepath.FromSlash(p.inArchive))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(p.String())
}

// IsDir returns true if the path is a directory. The root of an archive and
// directories inside an archive count as directories.
func (p Path) IsDir() bool {
	return p.isDir || (p.zf != nil && p.inArchive == "")
}

// InArchive returns true if the path is inside an archive.
func (p Path) InArchive() bool {
	return p.zf != nil
}

// Close any open archive and clear the path.
func (p *Path) Close() {
	if p.zf != nil {
		p.zf.Close()
	}
	*p = Path{}
}

// Set the path. Components of the path that name an archive are entered as
// though they were directories.
func (p *Path) Set(filename string) error {
	p.Close()

	filename = filepath.Clean(filename)

	// walk up the path until we find something that exists on disk
	onDisk := filename
	var inArchive []string
	for {
		// any error is treated as the path not existing. a path that
		// continues past a regular file produces ENOTDIR rather than ENOENT
		if _, err := os.Stat(onDisk); err == nil {
			break
		}

		parent := filepath.Dir(onDisk)
		if parent == onDisk {
			return curated.Errorf(NotFound, filename)
		}
		inArchive = append([]string{filepath.Base(onDisk)}, inArchive...)
		onDisk = parent
	}

	fi, err := os.Stat(onDisk)
	if err != nil {
		return curated.Errorf("archivefs: %v", err)
	}

	if fi.IsDir() {
		if len(inArchive) > 0 {
			return curated.Errorf(NotFound, filename)
		}
		p.onDisk = onDisk
		p.isDir = true
		return nil
	}

	zf, err := zip.OpenReader(onDisk)
	if err != nil {
		if len(inArchive) > 0 {
			return curated.Errorf(NotFound, filename)
		}
		if !errors.Is(err, zip.ErrFormat) {
			return curated.Errorf("archivefs: %v", err)
		}

		// a regular file
		p.onDisk = onDisk
		return nil
	}

	p.onDisk = onDisk
	p.zf = zf
	p.inArchive = path.Join(inArchive...)

	if p.inArchive != "" {
		zfi, err := statArchived(zf, p.inArchive)
		if err != nil {
			p.Close()
			return curated.Errorf(NotFound, filename)
		}
		p.isDir = zfi.IsDir()
	}

	return nil
}

// stat a file inside the archive.
func statArchived(zf *zip.ReadCloser, name string) (os.FileInfo, error) {
	f, err := zf.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Stat()
}

// selectFile chooses a file from the archive.
func (p Path) selectFile(selection func(name string) bool) (string, error) {
	var names []string
	for _, f := range p.zf.File {
		if f.FileInfo().IsDir() || isMetadata(f.Name) {
			continue
		}
		if selection == nil || selection(f.Name) {
			names = append(names, f.Name)
		}
	}

	if len(names) == 0 {
		return "", curated.Errorf(NoSelection, p.onDisk)
	}

	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	return names[0], nil
}

// isMetadata returns true for the resource fork files that macOS adds to the
// archives it creates.
func isMetadata(name string) bool {
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._")
}

// read the file at the path.
func (p Path) read() ([]uint8, error) {
	if p.zf == nil {
		data, err := os.ReadFile(p.onDisk)
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		return data, nil
	}

	f, err := p.zf.Open(p.inArchive)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	return data, nil
}
