package extract

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// resize fits img into width by height with nearest neighbour scaling so
// that CGA pixels stay sharp. A zero dimension keeps the aspect ratio of
// the source. When both are given and the aspect ratios differ the image is
// centered on fillColor.
func resize(logger *slog.Logger, img image.Image, width, height int, fillColor color.Color) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	srcAR := srcWidth / srcHeight

	destWidth := float64(width)
	destHeight := float64(height)
	switch {
	case width == 0 && height == 0:
		return img
	case width == 0:
		destWidth = math.Round(destHeight * srcAR)
	case height == 0:
		destHeight = math.Round(destWidth / srcAR)
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img
	}

	destSize := image.Rect(0, 0, int(destWidth), int(destHeight))
	destBounds := destSize

	destAR := destWidth / destHeight
	if srcAR < destAR {
		dw := destHeight * srcAR
		idw := int(math.Round((destWidth - dw) / 2))
		destBounds.Min.X += idw
		destBounds.Max.X -= idw
	} else if srcAR > destAR {
		dh := destWidth / srcAR
		idh := int(math.Round((destHeight - dh) / 2))
		destBounds.Min.Y += idh
		destBounds.Max.Y -= idh
	}

	logger.Info("resizing", "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := image.NewRGBA(destSize)
	if fillColor != nil {
		draw.Draw(dest, destSize, image.NewUniform(fillColor), destSize.Min, draw.Src)
	}
	draw.NearestNeighbor.Scale(dest, destBounds, img, srcBounds, draw.Over, nil)

	return dest
}
