package renderer

import (
	"image"
	"testing"
)

func TestNewTileGridCoversRegion(t *testing.T) {
	region := image.Rect(0, 0, 100, 70)
	tiles := NewTileGrid(region, 32, 32)

	covered := make(map[image.Point]int)
	for _, tile := range tiles {
		if !tile.Bounds.In(region) {
			t.Errorf("Tile %d bounds %v exceed the region", tile.ID, tile.Bounds)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				covered[image.Pt(x, y)]++
			}
		}
	}

	if len(covered) != region.Dx()*region.Dy() {
		t.Errorf("Expected %d covered pixels, got %d", region.Dx()*region.Dy(), len(covered))
	}
	for pt, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel %v covered %d times", pt, count)
		}
	}
}

func TestNewTileGridTileCount(t *testing.T) {
	// 100x70 in 32x32 tiles: 4 columns by 3 rows
	tiles := NewTileGrid(image.Rect(0, 0, 100, 70), 32, 32)
	if len(tiles) != 12 {
		t.Errorf("Expected 12 tiles, got %d", len(tiles))
	}

	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected sequential tile IDs, tile %d has ID %d", i, tile.ID)
		}
	}
}

func TestNewTileGridSingleTile(t *testing.T) {
	tiles := NewTileGrid(image.Rect(0, 0, 40, 30), 64, 64)
	if len(tiles) != 1 {
		t.Fatalf("Expected 1 tile, got %d", len(tiles))
	}
	if tiles[0].Bounds != image.Rect(0, 0, 40, 30) {
		t.Errorf("Expected the tile to span the region, got %v", tiles[0].Bounds)
	}
}

func TestNewTileGridSubRegion(t *testing.T) {
	region := image.Rect(10, 20, 50, 60)
	tiles := NewTileGrid(region, 16, 16)

	for _, tile := range tiles {
		if tile.Bounds.Min.X < 10 || tile.Bounds.Min.Y < 20 {
			t.Errorf("Tile %d starts outside the region: %v", tile.ID, tile.Bounds)
		}
		if tile.Bounds.Max.X > 50 || tile.Bounds.Max.Y > 60 {
			t.Errorf("Tile %d ends outside the region: %v", tile.ID, tile.Bounds)
		}
	}
}
