package model

import (
	"encoding/base64"
)

// MIMETypePNG is the MIME type of every rendered chart
const MIMETypePNG = "image/png"

// RenderedChart is an encoded chart image. It lives for one request only.
type RenderedChart struct {
	Data     []byte
	MIMEType string
}

// DataURI returns the image embedded as a base64 data URI
func (c *RenderedChart) DataURI() string {
	mime := c.MIMEType
	if mime == "" {
		mime = MIMETypePNG
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(c.Data)
}

// Size returns the number of encoded bytes
func (c *RenderedChart) Size() int {
	return len(c.Data)
}
