package providers

import (
	"io"
	"io/ioutil"
)

// Drain before close so the keep-alive connection goes back to the
// pool.
func flushResponse(resp io.ReadCloser) {
	io.Copy(ioutil.Discard, resp) // nolint: errcheck
	resp.Close()
}
