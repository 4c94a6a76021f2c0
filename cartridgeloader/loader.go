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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/archivefs"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// Sentinal error patterns.
const (
	NoSourceSet     = "cartridgeloader: no source set"
	FileSystemError = "cartridgeloader: %v"
	UnexpectedHash  = "cartridgeloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".SGB"}

// Loader is used to specify the cartridge to use when attaching to the
// emulated machine.
type Loader struct {
	// filename of cartridge to load. can be a http(s) URL.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	cl := Loader{
		Filename: filename,
	}

	if !cl.HasRecognisedExtension() {
		logger.Logf(logger.Allow, "cartridgeloader", "unrecognised file extension for %s", filepath.Base(filename))
	}

	return cl
}

// HasRecognisedExtension returns true if the filename has one of the
// extensions in the FileExtensions list. The comparison is case insensitive.
//
// Archive files are also recognised. The cartridge is chosen from the
// archive contents when the data is loaded.
func (cl Loader) HasRecognisedExtension() bool {
	return isROM(cl.Filename) || archivefs.IsArchiveExt(cl.Filename)
}

func isROM(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	s = archivefs.TrimArchiveExt(s)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files. Local files can be inside a zip archive.
//
// Data that has been set directly is not reloaded but is hashed if the hash
// has not yet been calculated.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 && cl.Hash != "" {
		return nil
	}

	if len(cl.Data) == 0 {
		err := cl.fetch()
		if err != nil {
			return err
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}
	cl.Hash = hash

	return nil
}

// fetch the data from the filename.
func (cl *Loader) fetch() error {
	if cl.Filename == "" {
		return curated.Errorf(NoSourceSet)
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(FileSystemError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(FileSystemError, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(FileSystemError, err)
		}

	case "file":
		var err error
		cl.Data, _, err = archivefs.Open(strings.TrimPrefix(cl.Filename, "file://"), isROM)
		if err != nil {
			return curated.Errorf(FileSystemError, err)
		}

	default:
		return curated.Errorf(FileSystemError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	return nil
}
