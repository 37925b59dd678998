package transfer

import (
	"regexp"
	"strings"
)

// DefaultFilename is used when the backend suggests no usable filename.
const DefaultFilename = "downloaded-file"

// filenamePattern matches filename="..." and filename=... forms. The
// backend emits both, including unquoted names mime.ParseMediaType rejects,
// so a lenient pattern match is required here.
var filenamePattern = regexp.MustCompile(`filename="?([^";]+)"?`)

// FilenameFromDisposition extracts the suggested filename from a
// Content-Disposition header value. Returns DefaultFilename when the header
// is absent, carries no filename, or the extracted name is empty.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return DefaultFilename
	}
	m := filenamePattern.FindStringSubmatch(header)
	if m == nil {
		return DefaultFilename
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return DefaultFilename
	}
	return name
}
