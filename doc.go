/*
Package srpair builds the (high resolution, low resolution) image pairs used to train
super-resolution models. It loads generic raster images and multi-band geospatial rasters,
derives the low resolution image by downscaling, and crops and augments both images of the pair
so that pixel (x, y) of the low resolution image keeps corresponding to pixel (x*scale, y*scale)
of the high resolution one.

Every operation comes in two flavours: the handle form works on image.Image values, the dense form
on *Array buffers with the channel dimension last.

Randomness is injected through the Source interface, so a seeded generator reproduces the same pairs:

	package main

	import (
		"fmt"

		"github.com/esimov/srpair"
	)

	func main() {
		hr, err := srpair.LoadImage("T31UDQ_20200101.tif", srpair.ModeRGB)
		if err != nil {
			fmt.Printf("Error loading image: %s", err.Error())
			return
		}

		s := &srpair.Sampler{Scale: 4, CropSize: 48, Train: true, Augment: true}
		pair, err := s.Pair(srpair.NewSource(42), hr)
		if err != nil {
			fmt.Printf("Error sampling the pair: %s", err.Error())
		}
		_ = pair
	}
*/
package srpair
