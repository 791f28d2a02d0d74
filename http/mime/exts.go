package mime

import "path/filepath"

// Extension maps file extensions, dot included, onto their MIME. Lookups are
// case-sensitive: "index.HTML" is not recognized.
var Extension = map[string]MIME{
	".html": HTML,
	".htm":  HTML,
	".css":  CSS,
	".js":   JS,
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".svg":  SVG,
	".ico":  ICO,
	".json": JSON,
	".xml":  XML,
	".pdf":  PDF,
	".txt":  Plain,
}

// FromPath guesses the MIME of a file by its extension. Unknown or missing
// extensions result in OctetStream. The file contents are never inspected.
//
// A leading dot doesn't start an extension, so ".txt" has none.
func FromPath(path string) MIME {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if len(ext) == len(base) {
		return OctetStream
	}

	if mime, found := Extension[ext]; found {
		return mime
	}

	return OctetStream
}
