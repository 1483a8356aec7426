package renderer

import "image"

// Tile is one rectangular unit of render work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid partitions the region into tiles of at most the given size
func NewTileGrid(region image.Rectangle, tileSizeX, tileSizeY int) []*Tile {
	var tiles []*Tile
	tileID := 0

	for y0 := region.Min.Y; y0 < region.Max.Y; y0 += tileSizeY {
		for x0 := region.Min.X; x0 < region.Max.X; x0 += tileSizeX {
			x1 := min(x0+tileSizeX, region.Max.X)
			y1 := min(y0+tileSizeY, region.Max.Y)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
