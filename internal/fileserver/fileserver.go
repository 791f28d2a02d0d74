package fileserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ghenzhiyiya/Just-A-Server/http"
	"github.com/Ghenzhiyiya/Just-A-Server/http/method"
	"github.com/Ghenzhiyiya/Just-A-Server/http/mime"
	"github.com/Ghenzhiyiya/Just-A-Server/http/status"
)

// Index is served instead of the root path.
const Index = "/index.html"

type File struct {
	// Path is the location of the file on the filesystem.
	Path        string
	ContentType mime.MIME
	Body        []byte
}

// Resolve reads the file the request points at. Failures are reported with status
// errors: ErrMethodNotAllowed for anything but GET, ErrNotFound for missing files and
// directories, ErrInternalServerError (wrapping the cause) for unreadable files.
//
// The path is joined onto the root as is. Traversal segments are NOT rejected, so
// requests like GET /../secret may reach files outside the root.
func Resolve(root string, request *http.Request) (File, error) {
	if method.Parse(request.Method) != method.GET {
		return File{}, status.ErrMethodNotAllowed
	}

	path := Locate(root, request.Path)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return File{}, status.ErrNotFound
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", status.ErrInternalServerError, err)
	}

	return File{
		Path:        path,
		ContentType: mime.FromPath(path),
		Body:        body,
	}, nil
}

// Locate maps the request path onto the filesystem. Only a single leading slash is
// stripped, no other normalization is done except what filepath.Join does itself.
func Locate(root, path string) string {
	if path == "/" {
		path = Index
	}

	return filepath.Join(root, strings.TrimPrefix(path, "/"))
}
