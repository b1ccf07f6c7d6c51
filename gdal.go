package srpair

import (
	"sync"

	"github.com/airbusgeo/godal"
	"github.com/pkg/errors"
)

var registerDrivers sync.Once

// GDALReader reads geospatial rasters through GDAL.
type GDALReader struct{}

// Open opens the raster at path. The returned dataset must be closed by the caller.
func (GDALReader) Open(path string) (RasterDataset, error) {
	registerDrivers.Do(godal.RegisterAll)

	ds, err := godal.Open(path)
	if err != nil {
		return nil, err
	}
	return &gdalDataset{ds: ds}, nil
}

type gdalDataset struct {
	ds *godal.Dataset
}

func (d *gdalDataset) Size() (int, int, int) {
	st := d.ds.Structure()
	return st.SizeX, st.SizeY, st.NBands
}

func (d *gdalDataset) Read(bands []int) ([]float32, error) {
	w, h, n := d.Size()

	// GDAL band indexes start at 0.
	var idx []int
	if bands == nil {
		for b := 0; b < n; b++ {
			idx = append(idx, b)
		}
	} else {
		for _, b := range bands {
			if b < 1 || b > n {
				return nil, errors.Errorf("band %d out of range, the raster has %d bands", b, n)
			}
			idx = append(idx, b-1)
		}
	}

	buf := make([]float32, w*h*len(idx))
	if err := d.ds.Read(0, 0, buf, w, h, godal.Bands(idx...), godal.BandInterleaved()); err != nil {
		return nil, err
	}
	return buf, nil
}

func (d *gdalDataset) Close() error {
	return d.ds.Close()
}
