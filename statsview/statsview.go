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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server.
const Address = "localhost:12680"

var once sync.Once

// Launch the stats server in its own goroutine. Subsequent calls only report
// the address.
func Launch(output io.Writer) {
	once.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		go statsview.New().Start()
	})

	fmt.Fprintf(output, "stats server available at http://%s/debug/statsview\n", Address)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
