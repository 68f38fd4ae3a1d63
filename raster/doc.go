// Package raster renders PDF pages to images for OCR.
//
// The preferred backend is poppler's pdftoppm, which rasterizes the whole
// page at 72×scale DPI so that scale 2 doubles the page's point dimensions.
// When pdftoppm is not installed the renderer falls back to the largest image
// embedded in the page, extracted with pdfcpu. Scanned documents carry one
// full-page image per page, so for them both backends see the same content.
//
//	r := raster.New("scan.pdf", raster.Options{})
//	img, err := r.RenderPage(ctx, 0, 2)
//	if err != nil {
//	    // handle error
//	}
//	// img.PNG holds the encoded page
package raster
