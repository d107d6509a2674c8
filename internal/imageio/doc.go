// SPDX-License-Identifier: MIT

// Package imageio is the file-system edge of lvphase: it decodes fringe
// captures (BMP, PNG, TIFF) into phasemap.Image values, expands and orders
// capture file lists, and writes 8-bit renderings of phase maps.
package imageio
