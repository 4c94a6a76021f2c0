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

// Package lcd implements the timing of the DMG video hardware. No pixels are
// generated.
//
// Each scanline takes 456 clock cycles and there are 154 scanlines per frame,
// of which the last ten are the vertical blank. Within the visible scanlines
// the STAT mode cycles through OAM search (mode 2), pixel transfer (mode 3)
// and horizontal blank (mode 0). The vertical blank is mode 1.
//
// The frame counter advances at the start of every vertical blank. When the
// LCD is switched off LY is held at zero and the frame counter advances every
// 70224 cycles so that the rest of the emulation can continue to count
// frames.
package lcd
