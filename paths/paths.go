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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function.
const baseResourcePath = ".gopherboy"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// getBasePath() returns baseResourcePath with the user's configuration
// directory prepended if the unadorned baseResourcePath cannot be found in
// the current directory.
//
// note that we're not checking for the existence of the resource requested
// by the caller.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The filename is not a full path.
//
// Format of the returned filename is:
//
//	type_cartname_YYYYMMDD_HHMMSS.ext
//
// Where "type" is a short descriptive string supplied by the caller and
// cartname is the short name of the cartridge. The cartname is omitted if it
// is the empty string.
func UniqueFilename(fileType string, cartName string, ext string) string {
	n := time.Now()
	ts := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	var fn string
	if cartName == "" {
		fn = fmt.Sprintf("%s_%s", fileType, ts)
	} else {
		fn = fmt.Sprintf("%s_%s_%s", fileType, cartName, ts)
	}

	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}

	return fn
}
